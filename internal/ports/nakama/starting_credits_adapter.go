package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pressbrake/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	startingCreditsCollection = "onboarding"
	startingCreditsKey        = "starting_credits_v1"
)

// NakamaStartingCreditsAdapter grants the new-operator balance using Nakama
// storage + wallet updates in a single MultiUpdate.
type NakamaStartingCreditsAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaStartingCreditsAdapter creates a new starting credits adapter.
func NewNakamaStartingCreditsAdapter(nk runtime.NakamaModule) *NakamaStartingCreditsAdapter {
	return &NakamaStartingCreditsAdapter{nk: nk}
}

// GrantStartingCreditsOnce grants the starting balance and records a marker
// atomically. The conditional storage write (version "*") makes the grant
// idempotent: a second attempt is rejected by version and reported as not
// granted rather than as an error.
func (a *NakamaStartingCreditsAdapter) GrantStartingCreditsOnce(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("userID is required")
	}
	if amount <= 0 {
		return false, fmt.Errorf("amount must be positive")
	}

	marker := map[string]interface{}{
		"amount":     amount,
		"granted_at": time.Now().UTC().Format(time.RFC3339),
	}
	value, err := json.Marshal(marker)
	if err != nil {
		return false, fmt.Errorf("failed to marshal starting credits marker: %w", err)
	}

	storageWrites := []*runtime.StorageWrite{
		{
			Collection:      startingCreditsCollection,
			Key:             startingCreditsKey,
			UserID:          userID,
			Value:           string(value),
			Version:         "*",
			PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	}

	walletUpdates := []*runtime.WalletUpdate{
		{
			UserID:    userID,
			Changeset: map[string]int64{"credits": amount},
			Metadata:  metadata,
		},
	}

	_, _, err = a.nk.MultiUpdate(ctx, nil, storageWrites, nil, walletUpdates, true)
	if err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return false, nil
		}
		return false, fmt.Errorf("failed to grant starting credits: %w", err)
	}

	return true, nil
}

var _ ports.StartingCreditsPort = (*NakamaStartingCreditsAdapter)(nil)
