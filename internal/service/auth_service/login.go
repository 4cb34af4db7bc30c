package auth_service

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/service/user_service"
)

func (a *AuthService) Login(
	ctx context.Context,
	request UserLoginRequest,
) (response AuthResponse, token string, expiry time.Time, err error) {
	if request.Email == "" || request.Password == "" {
		err = fmt.Errorf(
			"%w, email and password must be provided",
			arena_errors.ErrInvalidUserCredentials,
		)
		return
	}

	// fetch the user
	dbUser, err := a.UserConfig.FetchUserByEmail(ctx, request.Email)
	if err != nil {
		return
	}

	// verify the password
	if err = comparePasswordHash(dbUser.PasswordHash, request.Password); err != nil {
		log.Warnf("failed login attempt for %s", request.Email)
		return
	}

	// the login form asks which kind of account is being used. reject a
	// mismatch instead of silently logging into the other dashboard.
	if request.UserType != "" &&
		!strings.EqualFold(dbUser.Role, request.UserType) {
		err = fmt.Errorf(
			"%w, incorrect user type selected. You are registered as an %s",
			arena_errors.ErrInvalidUserCredentials,
			dbUser.Role,
		)
		return
	}

	token, expiry, err = createSessionToken(dbUser, defaultSessionValidity)
	if err != nil {
		return
	}

	log.WithFields(log.Fields{
		"user_id": dbUser.ID,
		"role":    dbUser.Role,
	}).Info("logged in")

	response = AuthResponse{
		User: user_service.User{
			ID:       dbUser.ID,
			FullName: dbUser.FullName,
			Email:    dbUser.Email,
			Role:     user_service.UserRole(dbUser.Role),
		},
	}
	return
}
