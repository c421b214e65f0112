package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Yotam1312/EasyPass/internal/identity"
)

// Handler exposes the registration and login endpoints.
type Handler struct {
	ids    *identity.Service
	tokens *Tokens
}

// NewHandler builds the auth HTTP handler.
func NewHandler(ids *identity.Service, tokens *Tokens) *Handler {
	return &Handler{ids: ids, tokens: tokens}
}

type credentialsRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

type registerResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Register creates a new vault owner.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Username == "" {
		return fiber.NewError(http.StatusBadRequest, "username is required")
	}

	user, err := h.ids.Register(c.UserContext(), identity.Credentials{Username: req.Username, PIN: req.PIN})
	switch {
	case errors.Is(err, identity.ErrDuplicateUsername):
		return fiber.NewError(http.StatusBadRequest, "username already exists")
	case errors.Is(err, identity.ErrPINTooShort):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, "registration failed")
	}

	return c.Status(http.StatusCreated).JSON(registerResponse{UserID: user.ID, Username: user.Username})
}

// Login verifies credentials and issues a bearer token. Unknown usernames and
// wrong PINs produce the same response.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := h.ids.Authenticate(c.UserContext(), identity.Credentials{Username: req.Username, PIN: req.PIN})
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials), errors.Is(err, identity.ErrUnlockDenied):
		return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, "login failed")
	}

	token, expires, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "login failed")
	}

	return c.Status(http.StatusOK).JSON(loginResponse{Token: token, ExpiresAt: expires})
}
