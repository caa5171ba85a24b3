package ports

import "context"

// WalletUpdate represents a single credits change for an operator.
type WalletUpdate struct {
	UserID   string
	Amount   int64
	Metadata map[string]interface{}
}

// EconomyPort defines the interface for managing arcade credits.
type EconomyPort interface {
	// GetBalance retrieves the current credits balance for an operator.
	GetBalance(ctx context.Context, userID string) (int64, error)

	// UpdateBalances applies multiple wallet changes.
	// This is used at game over to pay out the session's earnings.
	UpdateBalances(ctx context.Context, updates []WalletUpdate) error
}
