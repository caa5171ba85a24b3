package ports

import "context"

// StartingCreditsPort grants the new-operator credits at most once per user.
type StartingCreditsPort interface {
	// GrantStartingCreditsOnce attempts to grant the one-time starting balance.
	// Returns granted=false when the grant was already recorded.
	GrantStartingCreditsOnce(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) (bool, error)
}
