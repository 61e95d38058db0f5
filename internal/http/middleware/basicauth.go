package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"nik-parser/internal/config"
	"nik-parser/internal/models"
)

func basicAuthEnabled() bool {
	return config.GetEnv("BASIC_AUTH_USER", "") != ""
}

func BasicAuth() fiber.Handler {
	return basicauth.New(basicauth.Config{
		Users: map[string]string{
			config.GetEnv("BASIC_AUTH_USER", ""): config.GetEnv("BASIC_AUTH_PASS", ""),
		},
		Unauthorized: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		},
	})
}

// AdminAuth accepts HTTP basic credentials when BASIC_AUTH_USER is set and a
// bearer token otherwise. Basic auth users act as admins. Pair it with
// RoleAuth.
func AdminAuth() fiber.Handler {
	jwtAuth := JWTAuth()
	return func(c *fiber.Ctx) error {
		if basicAuthEnabled() && strings.HasPrefix(c.Get(fiber.HeaderAuthorization), "Basic ") {
			c.Locals("role", models.RoleAdmin)
			return BasicAuth()(c)
		}
		return jwtAuth(c)
	}
}
