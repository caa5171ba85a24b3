package onboarding

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

type fakeAccountPort struct {
	updateErr error
	callSigns []string
}

func (f *fakeAccountPort) UpdateProfile(ctx context.Context, userID, username, displayName string) error {
	f.callSigns = append(f.callSigns, displayName)
	return f.updateErr
}

type fakeStartingCreditsPort struct {
	grantErr error
	grants   []startingCreditsCall
	granted  bool
}

type startingCreditsCall struct {
	userID   string
	amount   int64
	metadata map[string]interface{}
}

func (f *fakeStartingCreditsPort) GrantStartingCreditsOnce(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) (bool, error) {
	f.grants = append(f.grants, startingCreditsCall{
		userID:   userID,
		amount:   amount,
		metadata: metadata,
	})
	if f.grantErr != nil {
		return false, f.grantErr
	}
	return f.granted, nil
}

func TestOnboardNewOperator_GrantsStartingCredits(t *testing.T) {
	credits := &fakeStartingCreditsPort{granted: true}
	service := NewService(&fakeAccountPort{}, credits, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewOperator(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewOperator returned error: %v", err)
	}
	if result.ProfileUpdateErr != nil {
		t.Fatalf("Expected no profile update error, got %v", result.ProfileUpdateErr)
	}

	if len(credits.grants) != 1 {
		t.Fatalf("Expected 1 starting credits call, got %d", len(credits.grants))
	}
	if credits.grants[0].amount != defaultStartingCredits {
		t.Fatalf("Expected starting credits %d, got %d", defaultStartingCredits, credits.grants[0].amount)
	}
	if !result.StartingCreditsGranted {
		t.Fatal("Expected starting credits to be marked as granted")
	}
}

func TestOnboardNewOperator_AccountUpdateFailureStillGrantsCredits(t *testing.T) {
	credits := &fakeStartingCreditsPort{granted: true}
	service := NewService(&fakeAccountPort{updateErr: errors.New("update failed")}, credits, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewOperator(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewOperator returned error: %v", err)
	}
	if result.ProfileUpdateErr == nil {
		t.Fatal("Expected profile update error to be captured")
	}
	if len(credits.grants) != 1 {
		t.Fatalf("Expected 1 starting credits call, got %d", len(credits.grants))
	}
	if !result.StartingCreditsGranted {
		t.Fatal("Expected starting credits to be granted despite profile failure")
	}
}

func TestOnboardNewOperator_CreditsFailureIsFatal(t *testing.T) {
	credits := &fakeStartingCreditsPort{grantErr: errors.New("storage down")}
	service := NewService(&fakeAccountPort{}, credits, rand.New(rand.NewSource(1)))

	if _, err := service.OnboardNewOperator(context.Background(), "user-1"); err == nil {
		t.Fatal("Expected error when starting credits grant fails")
	}
}

func TestGenerateCallSignIsDeterministicPerSeed(t *testing.T) {
	first := NewService(&fakeAccountPort{}, &fakeStartingCreditsPort{}, rand.New(rand.NewSource(9))).generateCallSign()
	second := NewService(&fakeAccountPort{}, &fakeStartingCreditsPort{}, rand.New(rand.NewSource(9))).generateCallSign()
	if first != second {
		t.Fatalf("same seed generated %q and %q", first, second)
	}
}
