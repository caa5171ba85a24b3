package nakama

const (
	// RpcQuickPlay is the Nakama RPC id clients call to create a solo machine.
	RpcQuickPlay = "quick_play"

	// RpcWatchDemo is the RPC id clients call to find or create an attract
	// screen demo match to spectate.
	RpcWatchDemo = "watch_demo"

	// RpcLeaderboardTop is the RPC id returning the ranked score board.
	RpcLeaderboardTop = "leaderboard_top"

	// RpcShareToken is the RPC id minting a signed result token for a
	// finished session.
	RpcShareToken = "share_token"

	// MatchNamePressBrake is the authoritative match handler name registered with Nakama.
	MatchNamePressBrake = "pressbrake_match"

	// LeaderboardID is the persistent score board identifier.
	LeaderboardID = "pressbrake_top_scores"

	// LeaderboardTopN is the board size used for the qualification check at
	// game over.
	LeaderboardTopN = 10
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpTogglePress  int64 = 1 // start-or-stop depending on phase
	OpAdvanceRound int64 = 2
	OpRestart      int64 = 3

	// Server -> Client events
	OpStateSnapshot int64 = 101
	OpRoundStarted  int64 = 102
	OpBendStarted   int64 = 103
	OpBendStopped   int64 = 104
	OpSessionEnded  int64 = 105
	OpGameError     int64 = 110
)
