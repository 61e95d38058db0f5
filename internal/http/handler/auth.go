package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"nik-parser/internal/config"
	"nik-parser/internal/helper"
	"nik-parser/internal/models"
)

// Login - POST /admin/login
func Login(c *fiber.Ctx) error {
	if config.DB == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Login admin tidak tersedia",
		})
	}

	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email dan password harus diisi",
		})
	}

	user, err := helper.FindUserByEmail(config.DB, req.Email)
	switch {
	case errors.Is(err, helper.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Email atau password salah",
		})
	case errors.Is(err, helper.ErrUserBanned):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Akun Anda telah diblokir",
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database error",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Email atau password salah",
		})
	}

	if err := helper.CheckUserRole(user, models.RoleAdmin, models.RoleOperator); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Role akun tidak diizinkan login",
		})
	}

	token, err := config.GenerateToken(user.ID, user.Nama, user.Email, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(models.LoginResponse{
		Token:   token,
		User:    models.ToUserResponse(user),
		Message: "Login berhasil! Selamat datang kembali, " + user.Nama,
	})
}
