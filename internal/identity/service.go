package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Yotam1312/EasyPass/internal/cryptox"
)

// dummyPINHash is a valid bcrypt hash compared against when the username is
// unknown, so the missing-user and wrong-PIN paths cost the same.
const dummyPINHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service manages user registration and credential verification.
type Service struct {
	repo Repository
	gate UnlockGate
}

// NewService creates an identity service. A nil gate defaults to
// GateUnavailable, which passes every attempt.
func NewService(repo Repository, gate UnlockGate) *Service {
	if gate == nil {
		gate = GateUnavailable{}
	}
	return &Service{repo: repo, gate: gate}
}

// Register creates a new user with a salted, adaptively hashed PIN. A taken
// username yields ErrDuplicateUsername.
func (s *Service) Register(ctx context.Context, creds Credentials) (User, error) {
	if len(creds.PIN) < 4 {
		return User{}, ErrPINTooShort
	}

	hash, err := cryptox.HashPIN(creds.PIN)
	if err != nil {
		return User{}, fmt.Errorf("hash credentials: %w", err)
	}

	user := User{
		Username:  creds.Username,
		PINHash:   hash,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, user)
}

// Authenticate verifies a username/PIN pair and runs the unlock gate. An
// unknown username and a wrong PIN both return ErrInvalidCredentials; a
// corrupt stored hash is surfaced distinctly so callers can treat it as an
// internal failure for that record.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (User, error) {
	user, err := s.repo.FindByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Burn a comparison so response timing does not reveal whether
			// the username exists.
			_, _ = cryptox.VerifyPIN(creds.PIN, dummyPINHash)
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	ok, err := cryptox.VerifyPIN(creds.PIN, user.PINHash)
	if err != nil {
		return User{}, fmt.Errorf("verify credentials for user %d: %w", user.ID, err)
	}
	if !ok {
		return User{}, ErrInvalidCredentials
	}

	if err := s.gate.Unlock(ctx, user.Username); err != nil {
		return User{}, err
	}

	return user, nil
}
