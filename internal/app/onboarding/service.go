package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"pressbrake/internal/ports"
)

const (
	// defaultStartingCredits seeds a new operator's wallet so the first few
	// machine skins are reachable without grinding.
	defaultStartingCredits = 500
)

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// ProfileUpdateErr is set when the call-sign update failed but onboarding continued.
	ProfileUpdateErr error
	// StartingCreditsGranted is false when the grant was already recorded.
	StartingCreditsGranted bool
}

// Service handles post-auth onboarding for new operators.
type Service struct {
	accounts ports.AccountPort
	credits  ports.StartingCreditsPort
	rng      *rand.Rand
}

// NewService constructs an onboarding service with required ports.
// accounts/credits must be non-nil; rng may be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, credits ports.StartingCreditsPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		credits:  credits,
		rng:      rng,
	}
}

// OnboardNewOperator initializes the call-sign and wallet for a newly created
// account. Returns a Result with any non-fatal issues and an error if the
// starting credits cannot be granted. Side effects: updates the account
// profile and grants a one-time credits balance.
func (s *Service) OnboardNewOperator(ctx context.Context, userID string) (Result, error) {
	if s.accounts == nil || s.credits == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	result := Result{}
	callSign := s.generateCallSign()
	if err := s.accounts.UpdateProfile(ctx, userID, callSign, callSign); err != nil {
		// Call-sign updates are best-effort; the credits grant is what matters.
		result.ProfileUpdateErr = err
	}

	granted, err := s.credits.GrantStartingCreditsOnce(ctx, userID, defaultStartingCredits, map[string]interface{}{
		"reason": "starting_credits",
	})
	if err != nil {
		return result, fmt.Errorf("failed to grant starting credits: %w", err)
	}
	result.StartingCreditsGranted = granted

	return result, nil
}

func (s *Service) generateCallSign() string {
	adjectives := []string{"Steady", "Precise", "Heavy", "Rapid", "Sharp", "Steel", "Chrome", "Torque", "Solid", "True"}
	nouns := []string{"Bender", "Press", "Anvil", "Ram", "Die", "Brake", "Forge", "Gauge", "Rivet", "Caliper"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
