package bot

import "fmt"

// NewBrain creates a ghost brain for the specified skill level.
func NewBrain(level GhostLevel) (Brain, error) {
	switch level {
	case GhostLevelRookie:
		return RookieGhost{}, nil
	case GhostLevelSteady:
		return SteadyGhost{}, nil
	case GhostLevelMaster:
		return MasterGhost{}, nil
	default:
		return nil, fmt.Errorf("unknown ghost level: %d", level)
	}
}

// ParseGhostLevel maps a config string to a ghost level, defaulting to steady.
func ParseGhostLevel(s string) GhostLevel {
	switch s {
	case "rookie":
		return GhostLevelRookie
	case "master":
		return GhostLevelMaster
	default:
		return GhostLevelSteady
	}
}
