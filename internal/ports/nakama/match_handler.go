package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"pressbrake/internal/app"
	"pressbrake/internal/bot"
	"pressbrake/internal/config"
	"pressbrake/internal/domain"
	"pressbrake/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// tickRate drives the simulation at 30 steps per second; the elapsed time
// fed into each step is still measured, never assumed from the rate.
const tickRate = 30

// MatchLabel is the queryable JSON label for a press-brake match.
type MatchLabel struct {
	Game    string `json:"game"`
	Machine string `json:"machine"`
	Phase   string `json:"phase"`
	Demo    bool   `json:"demo"`
	Open    int    `json:"open"`
}

// MatchState holds the authoritative runtime state for one machine instance.
type MatchState struct {
	OperatorID string                      `json:"operator_id"` // user ID at the pedal, empty until claimed
	Demo       bool                        `json:"demo"`
	Tick       int64                       `json:"tick"`
	Presences  map[string]runtime.Presence `json:"-"` // userId -> presence, operator and spectators

	App     *app.Service    `json:"-"`
	Session *domain.Session `json:"-"`

	Ghost          *bot.Agent `json:"-"` // attract-screen autopilot, demo matches only
	GhostWaitUntil int64      `json:"ghost_wait_until"`

	Leaderboard ports.LeaderboardPort `json:"-"`
	Economy     ports.EconomyPort     `json:"-"`
	Results     ports.ResultsPort     `json:"-"`

	// LastStepUnixNano anchors the true elapsed-time measurement between loops.
	LastStepUnixNano int64 `json:"-"`
}

// operatorName resolves the display name shown on the cabinet marquee.
func (ms *MatchState) operatorName() string {
	if ms.Demo && ms.Ghost != nil {
		return ms.Ghost.Name
	}
	if p, ok := ms.Presences[ms.OperatorID]; ok {
		return p.GetUsername()
	}
	return ms.OperatorID
}

type matchHandler struct {
	// now is injectable so tests can drive synthetic elapsed time.
	now func() time.Time
}

func newMatchHandler() *matchHandler {
	return &matchHandler{now: time.Now}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing press-brake match.")

	if err := config.LoadMachinesConfig("data/machine_profiles.json"); err != nil {
		logger.Warn("MatchInit: Could not load machine profiles: %v", err)
	}

	machineID, _ := params["machine"].(string)
	demo, _ := params["demo"].(bool)
	profile := config.GetProfile(machineID)

	state := &MatchState{
		Demo:        demo,
		Presences:   make(map[string]runtime.Presence),
		App:         app.NewService(nil),
		Leaderboard: NewNakamaLeaderboardAdapter(nk, LeaderboardID),
		Economy:     NewNakamaEconomyAdapter(nk),
		Results:     NewNakamaResultsAdapter(nk),
	}
	state.Session, _ = state.App.NewSession(profile)

	if demo {
		if err := bot.LoadIdentities("data/ghost_identities.json"); err != nil {
			logger.Warn("MatchInit: Could not load ghost identities: %v", err)
		}

		identity := bot.GetGhostIdentity(int(time.Now().UnixNano() % 16))
		levelStr := ghostLevelFromEnv(ctx)
		if levelStr == "" {
			levelStr = identity.Level
		}
		level := bot.ParseGhostLevel(levelStr)
		ghost, err := bot.NewAgent(identity.UserID, identity.DisplayName, level, nil)
		if err != nil {
			logger.Error("MatchInit: Failed to create ghost agent: %v", err)
			return nil, 0, ""
		}
		state.Ghost = ghost
		state.OperatorID = identity.UserID
		state.GhostWaitUntil = int64(bot.PressDelayTicks)
	}

	labelBytes, err := json.Marshal(mh.label(state))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	return state, tickRate, string(labelBytes)
}

// ghostLevelFromEnv reads the configured attract-screen skill level.
func ghostLevelFromEnv(ctx context.Context) string {
	env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if !ok {
		return ""
	}
	return env["pressbrake_ghost_level"]
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Demo matches accept any number of spectators. A live machine accepts
	// its operator (including rejoin); everyone else is turned away.
	if matchState.Demo {
		return state, true, ""
	}
	if matchState.OperatorID == "" || matchState.OperatorID == presence.GetUserId() {
		return state, true, ""
	}
	return state, false, "machine occupied"
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if !matchState.Demo && matchState.OperatorID == "" {
			matchState.OperatorID = p.GetUserId()
			logger.Info("MatchJoin: Operator %s took the pedal.", p.GetUserId())
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
	}

	// A live machine dies with its operator; a demo runs only while watched.
	if !matchState.Demo {
		if _, present := matchState.Presences[matchState.OperatorID]; !present {
			logger.Info("MatchLeave: Operator left, terminating match.")
			return nil
		}
	} else if len(matchState.Presences) == 0 {
		logger.Debug("MatchLeave: No spectators left, terminating demo.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	// True elapsed time since the previous loop; the first loop contributes
	// nothing so a freshly created match does not jump ahead.
	nowNano := mh.now().UnixNano()
	var elapsed float64
	if matchState.LastStepUnixNano > 0 {
		elapsed = float64(nowNano-matchState.LastStepUnixNano) / float64(time.Second)
	}
	matchState.LastStepUnixNano = nowNano

	// Operator input first, then the simulation step: user actions are atomic
	// with respect to the step, never interleaved mid-transition.
	for _, msg := range messages {
		if matchState.Demo || msg.GetUserId() != matchState.OperatorID {
			continue
		}

		switch msg.GetOpCode() {
		case OpTogglePress:
			mh.dispatchEvents(ctx, matchState, dispatcher, logger, mh.togglePress(matchState))
		case OpAdvanceRound:
			mh.dispatchEvents(ctx, matchState, dispatcher, logger, matchState.App.AdvanceRound(matchState.Session))
		case OpRestart:
			mh.dispatchEvents(ctx, matchState, dispatcher, logger, matchState.App.Restart(matchState.Session))
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
			mh.sendError(matchState, dispatcher, logger, msg.GetUserId(), 400, "unknown opcode")
		}
	}

	mh.dispatchEvents(ctx, matchState, dispatcher, logger, matchState.App.Step(matchState.Session, elapsed))

	if matchState.Demo {
		mh.processGhost(ctx, matchState, dispatcher, logger)
	}

	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

// togglePress maps the cabinet's single pedal input onto the current phase.
func (mh *matchHandler) togglePress(state *MatchState) []app.Event {
	if state.Session.Phase == domain.PhaseBending {
		return state.App.StopBend(state.Session)
	}
	return state.App.StartBend(state.Session)
}

// processGhost drives the attract-screen autopilot through the same service
// entry points operator messages use.
func (mh *matchHandler) processGhost(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Ghost == nil || state.Tick < state.GhostWaitUntil {
		return
	}

	switch state.Ghost.Act(state.Session) {
	case bot.ActionPress:
		mh.dispatchEvents(ctx, state, dispatcher, logger, state.App.StartBend(state.Session))
	case bot.ActionRelease:
		mh.dispatchEvents(ctx, state, dispatcher, logger, state.App.StopBend(state.Session))
		state.GhostWaitUntil = state.Tick + bot.AdvanceDelayTicks
	case bot.ActionAdvance:
		mh.dispatchEvents(ctx, state, dispatcher, logger, state.App.AdvanceRound(state.Session))
		state.GhostWaitUntil = state.Tick + bot.PressDelayTicks
	case bot.ActionRestart:
		mh.dispatchEvents(ctx, state, dispatcher, logger, state.App.Restart(state.Session))
		state.GhostWaitUntil = state.Tick + bot.PressDelayTicks
	}
}

// dispatchEvents converts app events to wire messages and handles game-over
// side effects.
func (mh *matchHandler) dispatchEvents(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case app.EventRoundStarted:
			mh.broadcast(dispatcher, logger, OpRoundStarted, toWireRoundStarted(ev.Payload.(app.RoundStartedPayload)))
			mh.updateLabel(state, dispatcher, logger)
		case app.EventBendStarted:
			p := ev.Payload.(app.BendStartedPayload)
			mh.broadcast(dispatcher, logger, OpBendStarted, wireBendStarted{Round: p.Round})
			mh.updateLabel(state, dispatcher, logger)
		case app.EventBendStopped:
			mh.broadcast(dispatcher, logger, OpBendStopped, toWireBendStopped(ev.Payload.(app.BendStoppedPayload)))
			mh.updateLabel(state, dispatcher, logger)
		case app.EventSessionEnded:
			mh.handleSessionEnded(ctx, state, dispatcher, logger, ev.Payload.(app.SessionEndedPayload))
		default:
			logger.Warn("Unknown event kind: %v", ev.Kind)
		}
	}
}

// handleSessionEnded settles a finished session. Every external call here is
// best-effort: a gateway failure is logged and the session's end state stands
// untouched, the client just sees a degraded board.
func (mh *matchHandler) handleSessionEnded(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, end app.SessionEndedPayload) {
	payload := wireSessionEnded{
		TotalScore:    end.TotalScore,
		RoundsPlayed:  end.RoundsPlayed,
		CreditsEarned: end.CreditsEarned,
	}

	if !state.Demo && state.OperatorID != "" {
		if state.Economy != nil && end.CreditsEarned > 0 {
			err := state.Economy.UpdateBalances(ctx, []ports.WalletUpdate{{
				UserID: state.OperatorID,
				Amount: end.CreditsEarned,
				Metadata: map[string]interface{}{
					"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
					"reason":   "session_payout",
				},
			}})
			if err != nil {
				logger.Error("Failed to pay out credits: %v", err)
			}
		}

		if state.Results != nil {
			err := state.Results.SaveResult(ctx, state.OperatorID, ports.SessionRecord{
				MachineID:  state.Session.Machine.ID,
				Score:      end.TotalScore,
				Rounds:     end.RoundsPlayed,
				FinishedAt: mh.now().UTC().Format(time.RFC3339),
			})
			if err != nil {
				logger.Error("Failed to save session record: %v", err)
			}
		}

		if state.Leaderboard != nil {
			if err := state.Leaderboard.Submit(ctx, state.OperatorID, state.operatorName(), int64(end.TotalScore)); err != nil {
				logger.Error("Failed to submit leaderboard record: %v", err)
			}
		}
	}

	if state.Leaderboard != nil {
		top, err := state.Leaderboard.FetchTop(ctx, LeaderboardTopN)
		if err != nil {
			logger.Error("Failed to fetch leaderboard top: %v", err)
		} else {
			payload.Qualifies = Qualifies(top, LeaderboardTopN, int64(end.TotalScore))
			payload.Top = toWireEntries(top)
		}
	}

	if state.Demo {
		state.GhostWaitUntil = state.Tick + bot.RestartDelayTicks
	}

	mh.broadcast(dispatcher, logger, OpSessionEnded, payload)
	mh.updateLabel(state, dispatcher, logger)
}

// broadcastSnapshot feeds the renderer: phase, angles and score, every tick.
func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	mh.broadcast(dispatcher, logger, OpStateSnapshot, toWireSnapshot(state.Session, state.operatorName(), state.Demo))
}

func (mh *matchHandler) broadcast(dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, payload any) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal payload for opcode %d: %v", opCode, err)
		return
	}
	if err := dispatcher.BroadcastMessage(opCode, bytes, nil, nil, true); err != nil {
		logger.Error("Failed to broadcast opcode %d: %v", opCode, err)
	}
}

// sendError sends a wireGameError to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int32, message string) {
	bytes, err := json.Marshal(wireGameError{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal game error: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: presence not found", userID)
		return
	}

	if err := dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Error("Failed to send game error: %v", err)
	}
}

func (mh *matchHandler) label(state *MatchState) MatchLabel {
	open := 0
	if !state.Demo && state.OperatorID == "" {
		open = 1
	}
	return MatchLabel{
		Game:    "pressbrake",
		Machine: state.Session.Machine.ID,
		Phase:   string(state.Session.Phase),
		Demo:    state.Demo,
		Open:    open,
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	labelBytes, err := json.Marshal(mh.label(state))
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
