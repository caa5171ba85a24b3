package domain

import (
	"math/rand"
	"testing"
)

func testMachine() MachineProfile {
	return MachineProfile{
		ID:           "standard",
		FloorAngle:   45,
		BendSpeed:    30,
		TargetAngles: []int{90, 105, 120, 135},
		MaxRounds:    10,
	}
}

func TestDrawTargetStaysInCandidateSet(t *testing.T) {
	machine := testMachine()
	rng := rand.New(rand.NewSource(7))

	allowed := make(map[int]bool, len(machine.TargetAngles))
	for _, a := range machine.TargetAngles {
		allowed[a] = true
	}

	for i := 0; i < 200; i++ {
		if got := DrawTarget(rng, machine); !allowed[got] {
			t.Fatalf("DrawTarget() = %d, not in candidate set %v", got, machine.TargetAngles)
		}
	}
}

func TestNewSessionStartsFresh(t *testing.T) {
	s := NewSession(testMachine(), 120)

	if s.Phase != PhaseIdle {
		t.Fatalf("Phase = %s, want %s", s.Phase, PhaseIdle)
	}
	if s.Round != 1 {
		t.Fatalf("Round = %d, want 1", s.Round)
	}
	if s.TargetAngle != 120 {
		t.Fatalf("TargetAngle = %d, want 120", s.TargetAngle)
	}
	if s.CurrentAngle != StartAngle {
		t.Fatalf("CurrentAngle = %v, want %v", s.CurrentAngle, StartAngle)
	}
	if s.Score != 0 {
		t.Fatalf("Score = %d, want 0", s.Score)
	}
}

func TestResetForRoundKeepsScoreAndRound(t *testing.T) {
	s := NewSession(testMachine(), 90)
	s.Score = 175
	s.Round = 3
	s.CurrentAngle = 61.5
	s.Phase = PhaseStopped

	s.ResetForRound(105)

	if s.Phase != PhaseIdle {
		t.Fatalf("Phase = %s, want %s", s.Phase, PhaseIdle)
	}
	if s.TargetAngle != 105 {
		t.Fatalf("TargetAngle = %d, want 105", s.TargetAngle)
	}
	if s.CurrentAngle != StartAngle {
		t.Fatalf("CurrentAngle = %v, want %v", s.CurrentAngle, StartAngle)
	}
	if s.Score != 175 || s.Round != 3 {
		t.Fatalf("Score/Round = %d/%d, want 175/3", s.Score, s.Round)
	}
}

func TestRoundsRemaining(t *testing.T) {
	s := NewSession(testMachine(), 90)

	s.Round = 10
	if !s.RoundsRemaining() {
		t.Fatal("RoundsRemaining() = false on final round, want true")
	}
	s.Round = 11
	if s.RoundsRemaining() {
		t.Fatal("RoundsRemaining() = true past max rounds, want false")
	}
}
