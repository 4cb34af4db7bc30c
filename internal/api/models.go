package api

import (
	"github.com/tesseract-club/arena/internal/service/auth_service"
	"github.com/tesseract-club/arena/internal/service/contest_service"
	"github.com/tesseract-club/arena/internal/service/user_service"
)

type Api struct {
	AuthServiceConfig    *auth_service.AuthService
	UserServiceConfig    *user_service.UserService
	ContestServiceConfig *contest_service.ContestService
}
