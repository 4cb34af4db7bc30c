package user_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/database"
	"github.com/tesseract-club/arena/internal/service"
)

func (u *UserService) InitializeUserService() error {
	if u.DB == nil {
		return fmt.Errorf("%w, user service expects non-nil db", arena_errors.ErrInternal)
	}
	u.userCache = expirable.NewLRU[uuid.UUID, database.User](
		userCacheSize,
		nil,
		userCacheTTL,
	)
	return nil
}

func (u *UserService) FetchUserById(
	ctx context.Context,
	userId uuid.UUID,
) (dbUser database.User, err error) {
	if cached, ok := u.userCache.Get(userId); ok {
		return cached, nil
	}

	dbUser, dbErr := u.DB.GetUserById(ctx, userId)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			err = fmt.Errorf("%w, no user exist with that id", arena_errors.ErrNotFound)
			return
		}
		log.Errorf("failed to get user by id. %v", dbErr)
		err = errors.Join(arena_errors.ErrInternal, dbErr)
		return
	}

	u.userCache.Add(userId, dbUser)
	return
}

func (u *UserService) FetchUserByEmail(
	ctx context.Context,
	email string,
) (user database.User, err error) {
	user, dbErr := u.DB.GetUserByEmail(ctx, email)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			err = fmt.Errorf("%w, no user exist with that email", arena_errors.ErrInvalidUserCredentials)
			return
		}
		log.Errorf("failed to get user by email. %v", dbErr)
		err = errors.Join(arena_errors.ErrInternal, dbErr)
		return
	}
	return
}

func (u *UserService) FetchUserFromClaims(ctx context.Context) (user database.User, err error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return
	}
	user, err = u.FetchUserById(ctx, claims.UserId)
	return
}

// AuthorizeUserRole fails with ErrUnAuthorized unless the user holds the
// given role. warnMessage, if non-empty, is logged on denial.
func (u *UserService) AuthorizeUserRole(
	ctx context.Context,
	userId uuid.UUID,
	role UserRole,
	warnMessage string,
) error {
	user, err := u.FetchUserById(ctx, userId)
	if err != nil {
		return err
	}
	if UserRole(user.Role) == role {
		return nil
	}
	if warnMessage != "" {
		log.Warn(warnMessage)
	}
	return arena_errors.ErrUnAuthorized
}

func (u *UserService) GetMe(ctx context.Context) (User, error) {
	dbUser, err := u.FetchUserFromClaims(ctx)
	if err != nil {
		return User{}, err
	}
	return User{
		ID:       dbUser.ID,
		FullName: dbUser.FullName,
		Email:    dbUser.Email,
		Role:     UserRole(dbUser.Role),
	}, nil
}
