package auth_service

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/database"
	"github.com/tesseract-club/arena/internal/service"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionValidity = 24 * time.Hour

func generatePasswordHash(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("unable to hash password, %v", err)
		return "", errors.Join(arena_errors.ErrInternal, err)
	}
	return string(hashBytes), nil
}

func comparePasswordHash(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return arena_errors.ErrInvalidUserCredentials
	}
	return nil
}

func createSessionToken(
	user database.User,
	validity time.Duration,
) (signedToken string, expiry time.Time, err error) {
	secret := os.Getenv(service.KeyJWTSecret)
	if secret == "" {
		err = fmt.Errorf("%w, jwt secret is not configured", arena_errors.ErrInternal)
		log.Error(err)
		return
	}

	expiry = time.Now().Add(validity)
	claims := service.UserCredentialClaims{
		UserId: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, signErr := token.SignedString([]byte(secret))
	if signErr != nil {
		err = fmt.Errorf("%w, unable to sign session token, %w", arena_errors.ErrInternal, signErr)
		log.Error(err)
		return
	}
	return
}
