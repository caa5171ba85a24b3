package app

import (
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// ShareTokenService mints signed result tokens for finished sessions so the
// client can render a verifiable share link for an operator's score.
type ShareTokenService struct {
	secret string
	issuer string
	ttl    time.Duration
}

// DefaultShareTokenTTL bounds how long a result link stays verifiable.
const DefaultShareTokenTTL = 30 * 24 * time.Hour

// NewShareTokenService constructs a share token service. ttl may be zero to
// use the default.
func NewShareTokenService(secret, issuer string, ttl time.Duration) *ShareTokenService {
	if ttl <= 0 {
		ttl = DefaultShareTokenTTL
	}
	return &ShareTokenService{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
	}
}

// SessionResult is the finished-session summary a share token attests.
type SessionResult struct {
	UserID    string
	MachineID string
	Score     int
	Rounds    int
}

// GenerateToken signs a session result as an HS256 JWT.
func (s *ShareTokenService) GenerateToken(result SessionResult) (string, error) {
	if s == nil {
		return "", fmt.Errorf("share token service is nil")
	}
	if result.UserID == "" {
		return "", fmt.Errorf("user id is required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("share token config is incomplete")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":     s.issuer,
		"sub":     result.UserID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
		"score":   result.Score,
		"rounds":  result.Rounds,
		"machine": result.MachineID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
