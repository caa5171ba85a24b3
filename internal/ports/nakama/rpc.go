package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"pressbrake/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickPlay, rpcQuickPlay); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcWatchDemo, rpcWatchDemo); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcLeaderboardTop, rpcLeaderboardTop); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcShareToken, rpcShareToken)
}

// LeaderboardTopResponse is the payload returned for the score board RPC.
type LeaderboardTopResponse struct {
	Entries []wireLeaderboardEntry `json:"entries"`
}

func rpcLeaderboardTop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	adapter := NewNakamaLeaderboardAdapter(nk, LeaderboardID)
	entries, err := adapter.FetchTop(ctx, LeaderboardTopN)
	if err != nil {
		logger.Error("rpcLeaderboardTop: %v", err)
		return "", runtime.NewError("Failed to fetch leaderboard", 13) // INTERNAL
	}

	b, _ := json.Marshal(LeaderboardTopResponse{Entries: toWireEntries(entries)})
	return string(b), nil
}

// ShareTokenResponse carries the signed result token.
type ShareTokenResponse struct {
	Token string `json:"token"`
}

// rpcShareToken mints a signed token attesting the caller's last recorded
// session, so a score can be shared outside the game without trusting the
// client to report it.
func rpcShareToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("Authentication required", 16) // UNAUTHENTICATED
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	secret := env["pressbrake_share_secret"]
	issuer := env["pressbrake_share_issuer"]
	if secret == "" || issuer == "" {
		secret = "test-secret"
		issuer = "pressbrake-dev"
		logger.Warn("Share token credentials missing from env, using test defaults.")
	}

	record, found, err := NewNakamaResultsAdapter(nk).LoadResult(ctx, userID)
	if err != nil {
		logger.Error("rpcShareToken: %v", err)
		return "", runtime.NewError("Internal error", 13) // INTERNAL
	}
	if !found {
		return "", runtime.NewError("No finished session to share", 5) // NOT_FOUND
	}

	token, err := app.NewShareTokenService(secret, issuer, 0).GenerateToken(app.SessionResult{
		UserID:    userID,
		MachineID: record.MachineID,
		Score:     record.Score,
		Rounds:    record.Rounds,
	})
	if err != nil {
		logger.Error("rpcShareToken: Failed to generate token: %v", err)
		return "", runtime.NewError("Internal error", 13) // INTERNAL
	}

	b, _ := json.Marshal(ShareTokenResponse{Token: token})
	return string(b), nil
}
