package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	lowercaseLetters = "abcdefghijklmnopqrstuvwxyz"
	uppercaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits           = "0123456789"
	symbols          = "!@#$%^&*()-_=+<>?"
)

// GeneratePassword returns a random password of the given length drawn from
// letters and digits, plus symbols when requested. Randomness comes from
// crypto/rand.
func GeneratePassword(length int, useSymbols bool) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", length)
	}

	alphabet := lowercaseLetters + uppercaseLetters + digits
	if useSymbols {
		alphabet += symbols
	}

	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}
