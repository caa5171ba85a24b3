package app

import (
	"math/rand"
	"time"

	"pressbrake/internal/domain"
)

// Service contains press-brake use-cases operating on domain session state.
// Illegal transitions (stop while idle, toggle after game over, duplicate
// stop signals) are silent no-ops that emit no events: the machine simply
// ignores inputs it is not ready for.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
// Inject a seeded rng in tests to get deterministic target sequences.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// NewSession starts a fresh session on the given machine and emits the
// first round_started event.
func (s *Service) NewSession(machine domain.MachineProfile) (*domain.Session, []Event) {
	session := domain.NewSession(machine, domain.DrawTarget(s.rng, machine))
	return session, []Event{roundStartedEvent(session)}
}

// StartBend engages the press. Only legal from idle.
func (s *Service) StartBend(session *domain.Session) []Event {
	if session.Phase != domain.PhaseIdle {
		return nil
	}
	session.Phase = domain.PhaseBending
	return []Event{{
		Kind:    EventBendStarted,
		Payload: BendStartedPayload{Round: session.Round},
	}}
}

// Step advances the simulation by the true elapsed time since the previous
// step. Outside the bending phase it is a no-op. When the angle reaches the
// machine floor the bend is force-stopped exactly as if the operator had
// released the pedal.
func (s *Service) Step(session *domain.Session, elapsedSeconds float64) []Event {
	if session.Phase != domain.PhaseBending {
		return nil
	}

	angle, clamped := domain.Advance(session.CurrentAngle, session.Machine.BendSpeed, elapsedSeconds, session.Machine.FloorAngle)
	session.CurrentAngle = angle
	if !clamped {
		return nil
	}
	return s.stopBend(session, true)
}

// StopBend finalizes the bend on operator release. Only legal from bending;
// a duplicate stop after the round is already finalized does nothing.
func (s *Service) StopBend(session *domain.Session) []Event {
	return s.stopBend(session, false)
}

// stopBend scores the bend exactly once and advances the round counter.
func (s *Service) stopBend(session *domain.Session, forced bool) []Event {
	if session.Phase != domain.PhaseBending {
		return nil
	}

	points := domain.ScoreBend(session.CurrentAngle, session.TargetAngle)
	session.Score += points
	session.Phase = domain.PhaseStopped
	session.Round++

	return []Event{{
		Kind: EventBendStopped,
		Payload: BendStoppedPayload{
			Round:       session.Round - 1,
			FinalAngle:  session.CurrentAngle,
			TargetAngle: session.TargetAngle,
			Points:      points,
			TotalScore:  session.Score,
			Forced:      forced,
		},
	}}
}

// AdvanceRound moves from a finalized bend into the next round, or into
// game over once the round counter has passed the machine's max rounds.
func (s *Service) AdvanceRound(session *domain.Session) []Event {
	if session.Phase != domain.PhaseStopped {
		return nil
	}

	if !session.RoundsRemaining() {
		session.Phase = domain.PhaseGameOver
		return []Event{{
			Kind: EventSessionEnded,
			Payload: SessionEndedPayload{
				TotalScore:    session.Score,
				RoundsPlayed:  session.Machine.MaxRounds,
				CreditsEarned: int64(session.Score) * CreditsPerScorePoint,
			},
		}}
	}

	session.ResetForRound(domain.DrawTarget(s.rng, session.Machine))
	return []Event{roundStartedEvent(session)}
}

// Restart resets the whole session as if entering round 1 fresh. Legal from
// any phase; an operator can abandon a half-played session.
func (s *Service) Restart(session *domain.Session) []Event {
	session.Score = 0
	session.Round = 1
	session.ResetForRound(domain.DrawTarget(s.rng, session.Machine))
	return []Event{roundStartedEvent(session)}
}

func roundStartedEvent(session *domain.Session) Event {
	return Event{
		Kind: EventRoundStarted,
		Payload: RoundStartedPayload{
			Round:       session.Round,
			MaxRounds:   session.Machine.MaxRounds,
			TargetAngle: session.TargetAngle,
		},
	}
}
