package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Yotam1312/EasyPass/internal/auth"
	"github.com/Yotam1312/EasyPass/internal/config"
)

func guardedApp(t *testing.T, tokens *auth.Tokens) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", JWTAuth(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": UserID(c), "username": Username(c)})
	})
	return app
}

func testTokens(ttl time.Duration) *auth.Tokens {
	return auth.NewTokens(config.Config{
		JWTSecret:   "test-signing-key",
		JWTIssuer:   "easypass-api",
		JWTAudience: "easypass-clients",
		TokenTTL:    ttl,
	})
}

func TestJWTAuthMissingHeader(t *testing.T) {
	app := guardedApp(t, testTokens(time.Hour))

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.StatusCode)
	}
}

func TestJWTAuthMalformedToken(t *testing.T) {
	app := guardedApp(t, testTokens(time.Hour))

	for _, header := range []string{"Bearer not-a-token", "Basic abc", "Bearer "} {
		req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, header)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("header %q: expected 401 got %d", header, resp.StatusCode)
		}
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tokens := testTokens(-time.Minute)
	signed, _, err := tokens.Issue(7, "alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	app := guardedApp(t, testTokens(time.Hour))
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.StatusCode)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	tokens := testTokens(time.Hour)
	signed, _, err := tokens.Issue(7, "alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	app := guardedApp(t, tokens)
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signed)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
}
