package app

import (
	"math/rand"
	"testing"

	"pressbrake/internal/domain"
)

func testMachine() domain.MachineProfile {
	return domain.MachineProfile{
		ID:           "standard",
		FloorAngle:   45,
		BendSpeed:    30,
		TargetAngles: []int{90, 105, 120, 135},
		MaxRounds:    10,
	}
}

func newTestService() *Service {
	return NewService(rand.New(rand.NewSource(42)))
}

func requireKinds(t *testing.T, events []Event, want ...EventKind) {
	t.Helper()
	if len(events) != len(want) {
		t.Fatalf("got %d events (%+v), want %d", len(events), events, len(want))
	}
	for i, kind := range want {
		if events[i].Kind != kind {
			t.Fatalf("event[%d] = %s, want %s", i, events[i].Kind, kind)
		}
	}
}

func TestNewSessionEmitsFirstRound(t *testing.T) {
	svc := newTestService()
	session, events := svc.NewSession(testMachine())

	requireKinds(t, events, EventRoundStarted)
	payload := events[0].Payload.(RoundStartedPayload)
	if payload.Round != 1 || payload.MaxRounds != 10 {
		t.Fatalf("payload = %+v, want round 1 of 10", payload)
	}
	if payload.TargetAngle != session.TargetAngle {
		t.Fatalf("event target %d != session target %d", payload.TargetAngle, session.TargetAngle)
	}
}

func TestHeldBendLandsOnTarget(t *testing.T) {
	// Held for exactly 3 simulated seconds at 30 deg/s: 180 -> 90 -> full bonus.
	svc := newTestService()
	session, _ := svc.NewSession(testMachine())
	session.TargetAngle = 90

	requireKinds(t, svc.StartBend(session), EventBendStarted)

	// 180 ticks of a 60Hz driver.
	var events []Event
	for i := 0; i < 180; i++ {
		events = svc.Step(session, 1.0/60.0)
	}
	if len(events) != 0 {
		t.Fatalf("floor stop fired early: %+v", events)
	}
	if diff := session.CurrentAngle - 90; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("CurrentAngle = %v, want 90", session.CurrentAngle)
	}

	stopEvents := svc.StopBend(session)
	requireKinds(t, stopEvents, EventBendStopped)
	payload := stopEvents[0].Payload.(BendStoppedPayload)
	if payload.Points != 100 {
		t.Fatalf("Points = %d, want 100", payload.Points)
	}
	if payload.Forced {
		t.Fatal("manual stop reported as forced")
	}
	if session.Phase != domain.PhaseStopped || session.Round != 2 {
		t.Fatalf("session = phase %s round %d, want stopped round 2", session.Phase, session.Round)
	}
}

func TestStartBendWhileBendingIsNoop(t *testing.T) {
	svc := newTestService()
	session, _ := svc.NewSession(testMachine())

	svc.StartBend(session)
	svc.Step(session, 0.5)
	angle := session.CurrentAngle

	if events := svc.StartBend(session); events != nil {
		t.Fatalf("duplicate start emitted events: %+v", events)
	}
	if session.Phase != domain.PhaseBending || session.CurrentAngle != angle {
		t.Fatalf("duplicate start mutated state: phase %s angle %v", session.Phase, session.CurrentAngle)
	}
}

func TestFloorForcesStopOnce(t *testing.T) {
	svc := newTestService()
	session, _ := svc.NewSession(testMachine())
	session.TargetAngle = 90
	svc.StartBend(session)

	// One huge delta would compute 180 - 30*10 = -120; the floor wins.
	events := svc.Step(session, 10)
	requireKinds(t, events, EventBendStopped)
	payload := events[0].Payload.(BendStoppedPayload)
	if !payload.Forced {
		t.Fatal("floor stop not marked forced")
	}
	if payload.FinalAngle != 45 {
		t.Fatalf("FinalAngle = %v, want clamped 45", payload.FinalAngle)
	}
	if payload.Points != domain.ScoreBend(45, 90) {
		t.Fatalf("Points = %d, want score against the floor", payload.Points)
	}

	scoreAfter := session.Score
	if events := svc.StopBend(session); events != nil {
		t.Fatalf("duplicate stop emitted events: %+v", events)
	}
	if events := svc.Step(session, 1); events != nil {
		t.Fatalf("step after stop emitted events: %+v", events)
	}
	if session.Score != scoreAfter {
		t.Fatalf("duplicate stop re-scored: %d -> %d", scoreAfter, session.Score)
	}
}

func TestStopWhileIdleIsNoop(t *testing.T) {
	svc := newTestService()
	session, _ := svc.NewSession(testMachine())

	if events := svc.StopBend(session); events != nil {
		t.Fatalf("stop while idle emitted events: %+v", events)
	}
	if session.Phase != domain.PhaseIdle || session.Round != 1 {
		t.Fatalf("stop while idle mutated state: %+v", session)
	}
}

// playRound runs one full bend holding for the given duration.
func playRound(t *testing.T, svc *Service, session *domain.Session, holdSeconds float64) BendStoppedPayload {
	t.Helper()
	requireKinds(t, svc.StartBend(session), EventBendStarted)
	events := svc.Step(session, holdSeconds)
	if len(events) == 0 {
		events = svc.StopBend(session)
	}
	requireKinds(t, events, EventBendStopped)
	return events[0].Payload.(BendStoppedPayload)
}

func TestFullSessionEndsAfterMaxRounds(t *testing.T) {
	svc := newTestService()
	machine := testMachine()
	session, _ := svc.NewSession(machine)

	total := 0
	for round := 1; round <= machine.MaxRounds; round++ {
		if session.Round != round {
			t.Fatalf("Round = %d, want %d", session.Round, round)
		}
		hold := (domain.StartAngle - float64(session.TargetAngle)) / machine.BendSpeed
		payload := playRound(t, svc, session, hold)
		total += payload.Points
		if payload.Points != 100 {
			t.Fatalf("round %d: Points = %d, want 100 (target %d)", round, payload.Points, payload.TargetAngle)
		}

		events := svc.AdvanceRound(session)
		if round < machine.MaxRounds {
			requireKinds(t, events, EventRoundStarted)
		} else {
			requireKinds(t, events, EventSessionEnded)
			end := events[0].Payload.(SessionEndedPayload)
			if end.TotalScore != total {
				t.Fatalf("TotalScore = %d, want %d", end.TotalScore, total)
			}
			if end.RoundsPlayed != machine.MaxRounds {
				t.Fatalf("RoundsPlayed = %d, want %d", end.RoundsPlayed, machine.MaxRounds)
			}
			if end.CreditsEarned != int64(total)*CreditsPerScorePoint {
				t.Fatalf("CreditsEarned = %d, want %d", end.CreditsEarned, int64(total)*CreditsPerScorePoint)
			}
		}
	}

	if session.Phase != domain.PhaseGameOver {
		t.Fatalf("Phase = %s, want %s", session.Phase, domain.PhaseGameOver)
	}

	// Terminal state ignores further input.
	if events := svc.StartBend(session); events != nil {
		t.Fatalf("start after game over emitted events: %+v", events)
	}
	if events := svc.AdvanceRound(session); events != nil {
		t.Fatalf("advance after game over emitted events: %+v", events)
	}
}

func TestTargetFixedForWholeRound(t *testing.T) {
	svc := newTestService()
	session, _ := svc.NewSession(testMachine())
	target := session.TargetAngle

	svc.StartBend(session)
	for i := 0; i < 50; i++ {
		svc.Step(session, 0.02)
		if session.TargetAngle != target {
			t.Fatalf("target changed mid-round: %d -> %d", target, session.TargetAngle)
		}
	}
}

func TestRestartResetsSession(t *testing.T) {
	svc := newTestService()
	session, _ := svc.NewSession(testMachine())

	playRound(t, svc, session, 2)
	svc.AdvanceRound(session)
	playRound(t, svc, session, 1.5)
	if session.Score == 0 {
		t.Fatal("expected accumulated score before restart")
	}

	events := svc.Restart(session)
	requireKinds(t, events, EventRoundStarted)

	if session.Score != 0 || session.Round != 1 {
		t.Fatalf("after restart Score/Round = %d/%d, want 0/1", session.Score, session.Round)
	}
	if session.Phase != domain.PhaseIdle {
		t.Fatalf("after restart Phase = %s, want %s", session.Phase, domain.PhaseIdle)
	}
	if session.CurrentAngle != domain.StartAngle {
		t.Fatalf("after restart CurrentAngle = %v, want %v", session.CurrentAngle, domain.StartAngle)
	}
}

func TestDeterministicTargetsWithSeededRng(t *testing.T) {
	first, _ := NewService(rand.New(rand.NewSource(7))).NewSession(testMachine())
	second, _ := NewService(rand.New(rand.NewSource(7))).NewSession(testMachine())

	if first.TargetAngle != second.TargetAngle {
		t.Fatalf("same seed drew %d and %d", first.TargetAngle, second.TargetAngle)
	}
}
