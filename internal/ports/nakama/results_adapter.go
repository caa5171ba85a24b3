package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"pressbrake/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	resultsCollection = "results"
	resultsKey        = "last_session"
)

// NakamaResultsAdapter implements ports.ResultsPort on Nakama storage.
type NakamaResultsAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaResultsAdapter creates a new results adapter.
func NewNakamaResultsAdapter(nk runtime.NakamaModule) *NakamaResultsAdapter {
	return &NakamaResultsAdapter{nk: nk}
}

// SaveResult overwrites the operator's latest session record.
func (a *NakamaResultsAdapter) SaveResult(ctx context.Context, userID string, record ports.SessionRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}

	_, err = a.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      resultsCollection,
			Key:             resultsKey,
			UserID:          userID,
			Value:           string(value),
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write session record: %w", err)
	}
	return nil
}

// LoadResult returns the operator's latest session record.
func (a *NakamaResultsAdapter) LoadResult(ctx context.Context, userID string) (ports.SessionRecord, bool, error) {
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{
		{
			Collection: resultsCollection,
			Key:        resultsKey,
			UserID:     userID,
		},
	})
	if err != nil {
		return ports.SessionRecord{}, false, fmt.Errorf("failed to read session record: %w", err)
	}
	if len(objects) == 0 {
		return ports.SessionRecord{}, false, nil
	}

	var record ports.SessionRecord
	if err := json.Unmarshal([]byte(objects[0].Value), &record); err != nil {
		return ports.SessionRecord{}, false, fmt.Errorf("failed to unmarshal session record: %w", err)
	}
	return record, true, nil
}

var _ ports.ResultsPort = (*NakamaResultsAdapter)(nil)
