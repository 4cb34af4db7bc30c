package arena_errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

const (
	CodeUniqueConstraint     = "23505"
	CodeForeignKeyConstraint = "23503"
)

var (
	ErrInternal               = errors.New("internal service error. please try again later")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidRequest         = errors.New("invalid request")
	ErrInvalidUserCredentials = errors.New("invalid email and password")
	ErrUserAlreadyExists      = errors.New("some other user has already taken that key")
	ErrUnAuthorized           = errors.New("user not allowed to perform this action")
	ErrInvalidState           = errors.New("operation not allowed in the current contest state")
	ErrNotFound               = errors.New("entity not found")
	ErrRateLimited            = errors.New("rate limit exceeded")
	ErrEntityAlreadyExist     = errors.New("entity with given key already exist")
	ErrWriteConflict          = errors.New("concurrent modification detected")
	ErrEmailServiceStopped    = errors.New("email service is stopped currently")
)

// HandleDBErrors translates low level database errors into the service's
// sentinel errors. errMsgs maps a constraint code to a per-constraint
// user readable message.
func HandleDBErrors(
	err error,
	errMsgs map[string]map[string]string,
	contextMessage string,
) error {
	if errors.Is(err, pgx.ErrNoRows) {
		log.Error(fmt.Sprintf("%s, %v", contextMessage, ErrNotFound))
		return ErrNotFound
	}

	// assume its an internal error first
	err = fmt.Errorf(
		"%w, %s, %w",
		ErrInternal,
		contextMessage,
		err,
	)

	// check if its a pg error
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		log.Error(err)
		return err
	}

	if errMsgs == nil {
		log.Warnf("got null errMsgs")
		log.Error(err)
		return err
	}

	// check if its a foreign key error
	if pgErr.Code == CodeForeignKeyConstraint {
		msgForeignKey, ok := errMsgs[CodeForeignKeyConstraint]
		if !ok {
			log.Warnf("no msg map found for foreign key constraint.")
			return fmt.Errorf(
				"%w, %s",
				ErrInvalidRequest,
				pgErr.Detail,
			)
		}
		return handleConstraintError(pgErr, msgForeignKey, ErrInvalidRequest)
	}

	// check if its a unique key error
	if pgErr.Code == CodeUniqueConstraint {
		msgUniqueConstraint, ok := errMsgs[CodeUniqueConstraint]
		if !ok {
			log.Warnf("no msg map found for unique key constraint.")
			return fmt.Errorf(
				"%w, %s",
				ErrInvalidRequest,
				pgErr.Detail,
			)
		}
		return handleConstraintError(pgErr, msgUniqueConstraint, ErrEntityAlreadyExist)
	}

	// unknown error
	log.Error(err)
	return err
}

func handleConstraintError(
	pgErr *pgconn.PgError,
	msgs map[string]string,
	sentinel error,
) error {
	msg, ok := msgs[pgErr.ConstraintName]
	if !ok {
		log.Warnf(
			"unknown constraint violation %s",
			pgErr.ConstraintName,
		)
		msg = pgErr.Detail
	}
	err := fmt.Errorf(
		"%w, %s",
		sentinel,
		msg,
	)
	log.Error(err)
	return err
}
