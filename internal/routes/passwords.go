package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Yotam1312/EasyPass/internal/secrets"
)

// RegisterPasswordRoutes wires the vault CRUD and search endpoints. The
// router passed in must already carry the access guard.
func RegisterPasswordRoutes(r fiber.Router, h *secrets.Handler) {
	group := r.Group("/passwords")
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Get("/search", h.Search)
	group.Put("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}
