package handler

import "github.com/gofiber/fiber/v2"

// Logout - POST /admin/logout. Tokens are stateless; the client drops it.
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Logout berhasil",
	})
}
