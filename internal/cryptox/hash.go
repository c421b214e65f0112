package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash marks a stored PIN hash that is not a valid bcrypt string.
// It indicates corrupt credential data, not a failed login attempt.
var ErrMalformedHash = errors.New("cryptox: malformed credential hash")

// HashPIN produces a salted bcrypt hash of the PIN. The cost factor and a
// fresh random salt are embedded in the output, so two calls with the same
// PIN yield different hashes.
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash pin: %w", err)
	}
	return string(hash), nil
}

// VerifyPIN recomputes the hash using the salt and cost embedded in the
// stored value and compares in constant time. A mismatch returns (false, nil);
// a stored value that is not a bcrypt hash returns ErrMalformedHash.
func VerifyPIN(pin, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}
