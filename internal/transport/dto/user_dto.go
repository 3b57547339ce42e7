package dto

import (
	"time"

	"github.com/google/uuid"
)

// SignupRequest defines the body of POST /auth/signup. Role is optional and
// must be "student" when present.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Role     string `json:"role" validate:"omitempty"`
}

// LoginRequest defines the body of POST /auth/login. Fields are not
// validated individually so every bad credential gets the same 401.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AdminCreateUserRequest defines the body of POST /admin/users.
type AdminCreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Role     string `json:"role" validate:"required"`
}

// CreateUserRequest is the storage level input for inserting a user.
type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// UserResponse is a user as returned to clients. It never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserEnvelope wraps a single user, as returned by /auth/me and /admin/users.
type UserEnvelope struct {
	User UserResponse `json:"user"`
}
