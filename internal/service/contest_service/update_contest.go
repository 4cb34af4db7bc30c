package contest_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/service"
)

// saves racing on the same contest retry against the fresh row a few
// times before giving up
const maxSaveRetries = 3

func (c *ContestService) UpdateContest(
	ctx context.Context,
	contestId uuid.UUID,
	input ContestInput,
) (ContestView, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return ContestView{}, err
	}

	for attempt := range maxSaveRetries {
		select {
		case <-ctx.Done():
			err = fmt.Errorf(
				"%w, update cancelled, %w",
				arena_errors.ErrInternal, ctx.Err(),
			)
			log.Error(err)
			return ContestView{}, err
		default:
		}

		// always validate against the freshly persisted state, a stale
		// in-memory copy would reopen the time-of-check gap
		contest, fetchErr := c.fetchActiveContest(ctx, contestId)
		if fetchErr != nil {
			return ContestView{}, fetchErr
		}

		now := time.Now()
		if err = ValidateModification(contest, claims.UserId, now); err != nil {
			return ContestView{}, err
		}
		if err = validateContestInput(&input, now); err != nil {
			return ContestView{}, err
		}

		applyInput(&contest, input)
		contest.Status = AdvanceStatus(contest.Status, contest.StartDate, contest.EndDate, now)
		contest.RefreshStats()

		saved, saveErr := c.saveContest(ctx, contest)
		if saveErr != nil {
			if errors.Is(saveErr, arena_errors.ErrWriteConflict) {
				log.Warnf(
					"write conflict updating contest %v, attempt %d",
					contestId, attempt+1,
				)
				continue
			}
			return ContestView{}, saveErr
		}

		log.WithFields(log.Fields{
			"contest_id": saved.ID,
			"status":     saved.Status,
		}).Info("updated contest")

		return ToPublicView(saved, true, now), nil
	}

	err = fmt.Errorf(
		"%w, contest is being modified concurrently, please retry",
		arena_errors.ErrWriteConflict,
	)
	log.Error(err)
	return ContestView{}, err
}

// saveContest persists the aggregate under the optimistic version check.
// ErrWriteConflict is returned when someone else committed first.
func (c *ContestService) saveContest(
	ctx context.Context,
	contest Contest,
) (Contest, error) {
	params, err := contestToSaveParams(contest)
	if err != nil {
		return Contest{}, err
	}

	row, dbErr := c.DB.UpdateContest(ctx, params)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			return Contest{}, arena_errors.ErrWriteConflict
		}
		return Contest{}, arena_errors.HandleDBErrors(
			dbErr,
			errMsgs,
			fmt.Sprintf("failed to save contest %v", contest.ID),
		)
	}

	return rowToContest(row)
}
