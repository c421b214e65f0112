package secrets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Yotam1312/EasyPass/internal/cryptox"
	"github.com/Yotam1312/EasyPass/internal/middleware"
)

// Handler exposes the vault HTTP endpoints. Every handler trusts the user id
// injected by the access guard; ownership is enforced below, in the
// repository queries.
type Handler struct {
	service *Service
}

// NewHandler builds a vault HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type entryRequest struct {
	Service  string `json:"service"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// List returns all of the caller's entries.
func (h *Handler) List(c *fiber.Ctx) error {
	entries, err := h.service.List(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.Status(http.StatusOK).JSON(entries)
}

// Create stores a new entry for the caller.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Service == "" || req.Username == "" {
		return fiber.NewError(http.StatusBadRequest, "service and username are required")
	}
	entry, err := h.service.Create(c.UserContext(), middleware.UserID(c), req.Service, req.Username, req.Password)
	if err != nil {
		return mapServiceError(err)
	}
	return c.Status(http.StatusCreated).JSON(entry)
}

// Update mutates one of the caller's entries.
func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	entry, err := h.service.Update(c.UserContext(), middleware.UserID(c), id, req.Service, req.Username, req.Password)
	if err != nil {
		return mapServiceError(err)
	}
	return c.Status(http.StatusOK).JSON(entry)
}

// Delete removes one of the caller's entries.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), middleware.UserID(c), id); err != nil {
		return mapServiceError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search finds the caller's entries by service-name substring.
func (h *Handler) Search(c *fiber.Ctx) error {
	entries, err := h.service.SearchByService(c.UserContext(), middleware.UserID(c), c.Query("service"))
	if err != nil {
		return mapServiceError(err)
	}
	if len(entries) == 0 {
		return fiber.NewError(http.StatusNotFound, "no passwords found for that service")
	}
	return c.Status(http.StatusOK).JSON(entries)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid entry id")
	}
	return id, nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, "entry not found")
	case errors.Is(err, cryptox.ErrDecryption):
		// Corrupt at-rest data; details stay in the server log.
		return fiber.NewError(http.StatusInternalServerError, "stored entry could not be read")
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
