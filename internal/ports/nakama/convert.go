package nakama

import (
	"pressbrake/internal/app"
	"pressbrake/internal/domain"
	"pressbrake/internal/ports"
)

// Wire payloads are JSON; field names are part of the client contract.

type wireStateSnapshot struct {
	Phase        string  `json:"phase"`
	Round        int     `json:"round"`
	MaxRounds    int     `json:"max_rounds"`
	TargetAngle  int     `json:"target_angle"`
	CurrentAngle float64 `json:"current_angle"`
	Score        int     `json:"score"`
	MachineID    string  `json:"machine_id"`
	OperatorName string  `json:"operator_name"`
	Demo         bool    `json:"demo"`
}

type wireRoundStarted struct {
	Round       int `json:"round"`
	MaxRounds   int `json:"max_rounds"`
	TargetAngle int `json:"target_angle"`
}

type wireBendStarted struct {
	Round int `json:"round"`
}

type wireBendStopped struct {
	Round       int     `json:"round"`
	FinalAngle  float64 `json:"final_angle"`
	TargetAngle int     `json:"target_angle"`
	Points      int     `json:"points"`
	TotalScore  int     `json:"total_score"`
	Forced      bool    `json:"forced"`
}

type wireLeaderboardEntry struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
	Rank     int64  `json:"rank"`
}

type wireSessionEnded struct {
	TotalScore    int                    `json:"total_score"`
	RoundsPlayed  int                    `json:"rounds_played"`
	CreditsEarned int64                  `json:"credits_earned"`
	Qualifies     bool                   `json:"qualifies"`
	Top           []wireLeaderboardEntry `json:"top"`
}

type wireGameError struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

func toWireSnapshot(session *domain.Session, operatorName string, demo bool) wireStateSnapshot {
	return wireStateSnapshot{
		Phase:        string(session.Phase),
		Round:        session.Round,
		MaxRounds:    session.Machine.MaxRounds,
		TargetAngle:  session.TargetAngle,
		CurrentAngle: session.CurrentAngle,
		Score:        session.Score,
		MachineID:    session.Machine.ID,
		OperatorName: operatorName,
		Demo:         demo,
	}
}

func toWireRoundStarted(p app.RoundStartedPayload) wireRoundStarted {
	return wireRoundStarted{
		Round:       p.Round,
		MaxRounds:   p.MaxRounds,
		TargetAngle: p.TargetAngle,
	}
}

func toWireBendStopped(p app.BendStoppedPayload) wireBendStopped {
	return wireBendStopped{
		Round:       p.Round,
		FinalAngle:  p.FinalAngle,
		TargetAngle: p.TargetAngle,
		Points:      p.Points,
		TotalScore:  p.TotalScore,
		Forced:      p.Forced,
	}
}

func toWireEntries(entries []ports.LeaderboardEntry) []wireLeaderboardEntry {
	wire := make([]wireLeaderboardEntry, len(entries))
	for i, e := range entries {
		wire[i] = wireLeaderboardEntry{
			UserID:   e.UserID,
			Username: e.Username,
			Score:    e.Score,
			Rank:     e.Rank,
		}
	}
	return wire
}
