package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Yotam1312/EasyPass/internal/cryptox"
)

const (
	defaultGeneratedLength = 12
	maxGeneratedLength     = 128
)

// RegisterUtilsRoutes wires helper endpoints that need no authentication.
func RegisterUtilsRoutes(r fiber.Router) {
	group := r.Group("/utils")
	group.Get("/generate-password", func(c *fiber.Ctx) error {
		length := c.QueryInt("length", defaultGeneratedLength)
		if length <= 0 || length > maxGeneratedLength {
			return fiber.NewError(http.StatusBadRequest, "length must be between 1 and 128")
		}
		symbols := c.QueryBool("symbols", true)

		password, err := cryptox.GeneratePassword(length, symbols)
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, "password generation failed")
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"password": password})
	})
}
