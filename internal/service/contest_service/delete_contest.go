package contest_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/service"
)

// DeleteContest soft deletes: the row stays, isActive flips to false and
// every default query stops seeing it.
func (c *ContestService) DeleteContest(
	ctx context.Context,
	contestId uuid.UUID,
) error {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	for range maxSaveRetries {
		contest, fetchErr := c.fetchActiveContest(ctx, contestId)
		if fetchErr != nil {
			return fetchErr
		}

		if !CanModify(contest, claims.UserId) {
			log.Warnf(
				"user %s tried to delete contest %v owned by %v",
				claims.Email, contestId, contest.Organizer,
			)
			return fmt.Errorf(
				"%w, you can only delete contests you created",
				arena_errors.ErrUnAuthorized,
			)
		}

		if contest.Status == StatusOngoing {
			return fmt.Errorf(
				"%w, cannot delete an ongoing contest",
				arena_errors.ErrInvalidState,
			)
		}

		contest.IsActive = false
		now := time.Now()
		contest.Status = AdvanceStatus(contest.Status, contest.StartDate, contest.EndDate, now)
		contest.RefreshStats()

		if _, saveErr := c.saveContest(ctx, contest); saveErr != nil {
			if errors.Is(saveErr, arena_errors.ErrWriteConflict) {
				continue
			}
			return saveErr
		}

		log.WithFields(log.Fields{
			"contest_id": contestId,
			"organizer":  contest.Organizer,
		}).Info("soft deleted contest")
		return nil
	}

	err = fmt.Errorf(
		"%w, contest is being modified concurrently, please retry",
		arena_errors.ErrWriteConflict,
	)
	log.Error(err)
	return err
}
