package models

import "time"

// Roles known to the admin API.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

/*
|--------------------------------------------------------------------------
| DATABASE MODEL (INTERNAL)
|--------------------------------------------------------------------------
*/
type User struct {
	ID        int64
	Nama      string
	Email     string
	Password  string
	Role      string
	IsBanned  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

/*
|--------------------------------------------------------------------------
| REQUEST
|--------------------------------------------------------------------------
*/
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
|--------------------------------------------------------------------------
| RESPONSE DTO
|--------------------------------------------------------------------------
*/
type UserResponse struct {
	ID    int64  `json:"id"`
	Nama  string `json:"nama"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Nama:  u.Nama,
		Email: u.Email,
		Role:  u.Role,
	}
}
