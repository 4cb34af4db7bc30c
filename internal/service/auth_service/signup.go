package auth_service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/database"
	"github.com/tesseract-club/arena/internal/email"
	"github.com/tesseract-club/arena/internal/service"
	"github.com/tesseract-club/arena/internal/service/user_service"
)

func (a *AuthService) SignUp(
	ctx context.Context,
	registration UserRegistration,
) (response AuthResponse, token string, expiry time.Time, err error) {
	// Validate
	if err = service.ValidateInput(registration); err != nil {
		return
	}

	// Hash the password.
	passwordHash, err := generatePasswordHash(registration.Password)
	if err != nil {
		return
	}

	// Create the user. The unique index on lower(email) makes the
	// duplicate check case insensitive.
	dbUser, dbErr := a.DB.CreateUser(
		ctx,
		database.CreateUserParams{
			FullName:     registration.FullName,
			Email:        registration.Email,
			PasswordHash: passwordHash,
			Role:         registration.Role,
		},
	)
	if dbErr != nil {
		err = arena_errors.HandleDBErrors(
			dbErr,
			errMsgs,
			"failed to insert user into db",
		)
		return
	}

	// create a session so signup logs the user straight in
	token, expiry, err = createSessionToken(dbUser, defaultSessionValidity)
	if err != nil {
		return
	}

	// welcome mail is best effort
	mailErr := email.NewMail(
		ctx,
		"Welcome to Arena",
		fmt.Sprintf(
			"Hi %s,\n\nYour %s account is ready. Happy contesting!",
			dbUser.FullName,
			dbUser.Role,
		),
		email.KeyEmailBodyPlain,
		email.PurposeEmailSignUp,
		dbUser.Email,
	)
	if mailErr != nil {
		log.Warnf("could not queue welcome mail for %s, %v", dbUser.Email, mailErr)
	}

	log.WithFields(log.Fields{
		"user_id": dbUser.ID,
		"role":    dbUser.Role,
	}).Info("created user")

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
