package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/jmsuarez/qraccess-backend/internal/config"
	"github.com/jmsuarez/qraccess-backend/internal/dto"
	"github.com/jmsuarez/qraccess-backend/internal/services"
)

// AdminProtected guards the admin surface. A bearer session JWT is the
// primary credential; when that is missing or invalid the error handler
// falls back to the X-Admin-Token header and plain Basic credentials, so
// both the panel and curl-style scripts work.
func AdminProtected(cfg *config.Config, auth *services.AuthService) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
				return c.Next()
			}
			if auth.ValidBasic(c.Get(fiber.HeaderAuthorization)) {
				return c.Next()
			}
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="admin"`)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		},
	})
}
