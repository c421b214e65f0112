package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Yotam1312/EasyPass/internal/config"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// issuer or audience, expiry, or a malformed compact token. Callers treat all
// of them as unauthenticated.
var ErrInvalidToken = errors.New("auth: invalid token")

// Claims is the signed claim set carried by an access token. It embeds the
// registered claims (issuer, audience, expiry, issued-at, subject) and adds
// the numeric user id and username.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
}

// Tokens issues and verifies HS256-signed compact JWTs. The signing key,
// issuer, audience, and TTL are fixed at construction and read-only after,
// so a single Tokens value serves concurrent requests.
type Tokens struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokens builds a Tokens from server configuration.
func NewTokens(cfg config.Config) *Tokens {
	return &Tokens{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
		ttl:      cfg.TokenTTL,
	}
}

// Issue signs a token binding the user id and username, expiring after the
// configured TTL. The expiry time is returned alongside the compact token.
func (t *Tokens) Issue(userID int64, username string) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(t.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		UserID:   userID,
		Username: username,
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// Verify checks the signature, issuer, audience, and expiry of a compact
// token and returns the embedded claims. Any failure yields ErrInvalidToken.
func (t *Tokens) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithAudience(t.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
