package ports

import "context"

// LeaderboardEntry is one ranked row of the score board, highest score first.
type LeaderboardEntry struct {
	UserID   string
	Username string
	Score    int64
	Rank     int64
}

// LeaderboardPort defines the interface to the persistent score board.
// Failures here never roll back session state; callers log and move on.
type LeaderboardPort interface {
	// Submit records a finished session's score for the given operator.
	Submit(ctx context.Context, userID, username string, score int64) error

	// FetchTop returns up to n entries ordered best first.
	FetchTop(ctx context.Context, n int) ([]LeaderboardEntry, error)
}
