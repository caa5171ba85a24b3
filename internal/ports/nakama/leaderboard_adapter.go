package nakama

import (
	"context"
	"fmt"

	"pressbrake/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaLeaderboardAdapter implements ports.LeaderboardPort on Nakama's
// leaderboard records.
type NakamaLeaderboardAdapter struct {
	nk runtime.NakamaModule
	id string
}

// NewNakamaLeaderboardAdapter creates a leaderboard adapter for the given board id.
func NewNakamaLeaderboardAdapter(nk runtime.NakamaModule, id string) *NakamaLeaderboardAdapter {
	return &NakamaLeaderboardAdapter{nk: nk, id: id}
}

// Submit records a finished session's score. The board keeps each operator's
// best score (the "best" operator set at creation time).
func (a *NakamaLeaderboardAdapter) Submit(ctx context.Context, userID, username string, score int64) error {
	_, err := a.nk.LeaderboardRecordWrite(ctx, a.id, userID, username, score, 0, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to write leaderboard record: %w", err)
	}
	return nil
}

// FetchTop returns up to n entries ordered best first.
func (a *NakamaLeaderboardAdapter) FetchTop(ctx context.Context, n int) ([]ports.LeaderboardEntry, error) {
	records, _, _, _, err := a.nk.LeaderboardRecordsList(ctx, a.id, nil, n, "", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard records: %w", err)
	}
	return toEntries(records), nil
}

func toEntries(records []*api.LeaderboardRecord) []ports.LeaderboardEntry {
	entries := make([]ports.LeaderboardEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, ports.LeaderboardEntry{
			UserID:   rec.GetOwnerId(),
			Username: rec.GetUsername().GetValue(),
			Score:    rec.GetScore(),
			Rank:     rec.GetRank(),
		})
	}
	return entries
}

// Qualifies reports whether a score would place on a board of size n: either
// an open slot remains or the score beats the current lowest. Ties qualify;
// tie ranking stays the board's concern.
func Qualifies(entries []ports.LeaderboardEntry, n int, score int64) bool {
	if len(entries) < n {
		return true
	}
	lowest := entries[len(entries)-1].Score
	return score >= lowest
}

var _ ports.LeaderboardPort = (*NakamaLeaderboardAdapter)(nil)
