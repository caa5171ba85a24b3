package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickPlayRequest selects the machine skin to play on.
type QuickPlayRequest struct {
	Machine string `json:"machine"`
}

// QuickPlayResponse is the payload returned to clients starting a session.
type QuickPlayResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// rpcQuickPlay creates a fresh solo machine for the caller. Every operator
// gets their own authoritative match; there is nothing to join-in-progress.
func rpcQuickPlay(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req QuickPlayRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
		}
	}

	matchID, err := nk.MatchCreate(ctx, MatchNamePressBrake, map[string]interface{}{
		"machine": req.Machine,
		"demo":    false,
	})
	if err != nil {
		logger.Error("rpcQuickPlay: MatchCreate error: %v", err)
		return "", err
	}

	b, _ := json.Marshal(QuickPlayResponse{MatchID: matchID, IsNew: true})
	return string(b), nil
}

// rpcWatchDemo finds a running attract-screen demo to spectate, creating one
// when none is live.
func rpcWatchDemo(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	// Find any running demo of our game.
	query := "+label.game:pressbrake +label.demo:T"

	limit := 1
	authoritative := true
	minSize := 0
	maxSize := 100

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("rpcWatchDemo: MatchList error: %v", err)
		return "", err
	}

	if len(matches) > 0 {
		b, _ := json.Marshal(QuickPlayResponse{MatchID: matches[0].MatchId, IsNew: false})
		return string(b), nil
	}

	matchID, err := nk.MatchCreate(ctx, MatchNamePressBrake, map[string]interface{}{
		"demo": true,
	})
	if err != nil {
		logger.Error("rpcWatchDemo: MatchCreate error: %v", err)
		return "", err
	}

	b, _ := json.Marshal(QuickPlayResponse{MatchID: matchID, IsNew: true})
	return string(b), nil
}
