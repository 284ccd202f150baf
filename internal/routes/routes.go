package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jmsuarez/qraccess-backend/internal/config"
	"github.com/jmsuarez/qraccess-backend/internal/handlers"
	"github.com/jmsuarez/qraccess-backend/internal/middleware"
	"github.com/jmsuarez/qraccess-backend/internal/services"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	registerHandler *handlers.RegisterHandler,
	accessHandler *handlers.AccessHandler,
	tokenHandler *handlers.TokenHandler,
	fanHandler *handlers.FanHandler,
	statsHandler *handlers.StatsHandler,
	importHandler *handlers.ImportHandler,
	qrHandler *handlers.QRHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(perIPLimiter(60))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Public surface: registration form, gate scanner, QR rendering.
	// Registration and gate checks each get their own stricter bucket of
	// 20 req/min per IP, so a busy gate never starves the signup form.
	api.Post("/register", perIPLimiter(20), registerHandler.Register)
	api.Get("/check", perIPLimiter(20), accessHandler.Check)
	api.Get("/tokens/validate", tokenHandler.Validate)
	api.Get("/qr/:id", qrHandler.Image)

	// Admin session login
	api.Post("/auth/login", authHandler.Login)

	// Admin surface (session JWT, Basic credentials or X-Admin-Token)
	admin := api.Group("/admin", middleware.AdminProtected(cfg, authService))
	admin.Put("/tokens", tokenHandler.Issue)
	admin.Get("/fans", fanHandler.List)
	admin.Post("/fans", fanHandler.Create)
	admin.Delete("/fans/:id", fanHandler.Delete)
	admin.Post("/fans/:id/unblock", accessHandler.Unblock)
	admin.Post("/import", importHandler.Import)
	admin.Get("/stats", statsHandler.Overview)
}

// perIPLimiter returns a sliding-window limiter with its own counter store,
// keyed by client IP.
func perIPLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}
