package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Yotam1312/EasyPass/internal/auth"
	"github.com/Yotam1312/EasyPass/internal/config"
	"github.com/Yotam1312/EasyPass/internal/cryptox"
	"github.com/Yotam1312/EasyPass/internal/identity"
	"github.com/Yotam1312/EasyPass/internal/middleware"
	"github.com/Yotam1312/EasyPass/internal/secrets"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger

	// Gate overrides the device unlock capability. Nil means unavailable,
	// which passes every attempt.
	Gate identity.UnlockGate
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !config.IsDev(d.Cfg.AppEnv) {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers
	cipher := cryptox.NewCipher(d.Cfg.EncryptionKey)
	tokens := auth.NewTokens(d.Cfg)

	var identityRepo identity.Repository
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
	} else {
		identityRepo = identity.NewMemoryRepository()
	}
	identitySvc := identity.NewService(identityRepo, d.Gate)
	authHandler := auth.NewHandler(identitySvc, tokens)

	var secretsRepo secrets.Repository
	if d.DB != nil {
		secretsRepo = secrets.NewPostgresRepository(d.DB)
	} else {
		secretsRepo = secrets.NewMemoryRepository()
	}
	secretsSvc := secrets.NewService(secretsRepo, cipher, d.Logger)
	secretsHandler := secrets.NewHandler(secretsSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	rateLimiter := middleware.LoginRateLimit(d.Cache, d.Cfg.LoginRatePerMin)
	RegisterAuthRoutes(api, authHandler, rateLimiter)
	RegisterUtilsRoutes(api)

	// Protected routes: the guard is the single authentication point for
	// every vault operation.
	protected := api.Group("", middleware.JWTAuth(tokens))
	RegisterPasswordRoutes(protected, secretsHandler)

	return nil
}
