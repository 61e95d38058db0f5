package helper

import (
	"database/sql"
	"errors"

	"nik-parser/internal/models"
)

var (
	ErrUserNotFound = errors.New("user tidak ditemukan")
	ErrUserBanned   = errors.New("user dibanned")
	ErrInvalidRole  = errors.New("role tidak sesuai")
)

// FindUserByEmail loads an admin user. Banned users are returned together
// with ErrUserBanned so callers can tell them apart from unknown emails.
func FindUserByEmail(db *sql.DB, email string) (models.User, error) {
	var user models.User
	query := `SELECT id, nama, email, password, role, is_banned
	          FROM users WHERE email = ?`
	err := db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Nama,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.IsBanned,
	)

	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	if user.IsBanned == "y" {
		return user, ErrUserBanned
	}
	return user, nil
}

// HasRole reports whether role is one of allowedRoles.
func HasRole(role string, allowedRoles ...string) bool {
	for _, allowedRole := range allowedRoles {
		if role == allowedRole {
			return true
		}
	}
	return false
}

// CheckUserRole returns ErrInvalidRole unless user holds one of allowedRoles.
func CheckUserRole(user models.User, allowedRoles ...string) error {
	if !HasRole(user.Role, allowedRoles...) {
		return ErrInvalidRole
	}
	return nil
}
