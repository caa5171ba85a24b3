package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GhostIdentity is one named ghost operator profile for the attract screen.
type GhostIdentity struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Level       string `json:"level"` // "rookie", "steady", "master"
}

var (
	ghostIdentities []GhostIdentity
	ghostIDMap      map[string]bool
	ghostNameMap    map[string]string
	loadOnce        sync.Once
	loadErr         error
)

// LoadIdentities loads the ghost profiles from the given path.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read ghost identities: %w", err)
			return
		}

		if err := json.Unmarshal(data, &ghostIdentities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal ghost identities: %w", err)
			return
		}

		ghostIDMap = make(map[string]bool)
		ghostNameMap = make(map[string]string)
		for _, identity := range ghostIdentities {
			if identity.UserID == "" {
				continue
			}
			ghostIDMap[identity.UserID] = true
			name := identity.DisplayName
			if name == "" {
				name = identity.Username
			}
			ghostNameMap[identity.UserID] = name
		}
	})
	return loadErr
}

// GetGhostIdentity returns an identity by index (mod pool size), with a
// generated fallback when no pool is loaded.
func GetGhostIdentity(index int) GhostIdentity {
	if len(ghostIdentities) == 0 {
		return GhostIdentity{
			UserID:      fmt.Sprintf("ghost-%d", index),
			DisplayName: fmt.Sprintf("Ghost Operator %d", index),
			Level:       "steady",
		}
	}
	return ghostIdentities[index%len(ghostIdentities)]
}

// GetGhostDisplayName returns the display name for a ghost ID, or an empty
// string if the ID is not in the pool.
func GetGhostDisplayName(userID string) string {
	if ghostNameMap == nil {
		return ""
	}
	return ghostNameMap[userID]
}

// IsGhost reports whether the given user ID belongs to the ghost pool.
func IsGhost(userID string) bool {
	if ghostIDMap == nil {
		return false
	}
	return ghostIDMap[userID]
}
