package auth_service

import (
	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/database"
	"github.com/tesseract-club/arena/internal/service/user_service"
)

var (
	msgUniqueKey = map[string]string{
		"uq_users_email": "Email is already registered. Please use a different email or try logging in.",
	}

	errMsgs = map[string]map[string]string{
		arena_errors.CodeUniqueConstraint: msgUniqueKey,
	}
)

type AuthService struct {
	DB         *database.Queries
	UserConfig *user_service.UserService
}

type UserRegistration struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=7,max=72"`
	Role     string `json:"role" validate:"required,oneof=organizer attendee"`
}

type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// optional, rejects the login when it doesn't match the stored role
	UserType string `json:"userType"`
}

type AuthResponse struct {
	User user_service.User `json:"user"`
}
