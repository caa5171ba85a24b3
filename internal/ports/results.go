package ports

import "context"

// SessionRecord is the persisted summary of an operator's finished session.
type SessionRecord struct {
	MachineID  string `json:"machine_id"`
	Score      int    `json:"score"`
	Rounds     int    `json:"rounds"`
	FinishedAt string `json:"finished_at"`
}

// ResultsPort persists the most recent finished session per operator so the
// share-token RPC can attest a score the server actually recorded.
type ResultsPort interface {
	// SaveResult overwrites the operator's latest session record.
	SaveResult(ctx context.Context, userID string, record SessionRecord) error

	// LoadResult returns the operator's latest session record.
	// found=false when the operator has no finished session yet.
	LoadResult(ctx context.Context, userID string) (SessionRecord, bool, error)
}
