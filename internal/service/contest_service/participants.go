package contest_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/email"
	"github.com/tesseract-club/arena/internal/service"
)

// JoinContest registers the caller on the roster. Failure order: contest
// missing or deleted, then the private password gate, then the
// registration window. Joining twice is a no-op, not an error.
func (c *ContestService) JoinContest(
	ctx context.Context,
	contestId uuid.UUID,
	password string,
) (ContestView, error) {
	user, err := c.UserServiceConfig.FetchUserFromClaims(ctx)
	if err != nil {
		return ContestView{}, err
	}

	for range maxSaveRetries {
		contest, fetchErr := c.fetchActiveContest(ctx, contestId)
		if fetchErr != nil {
			return ContestView{}, fetchErr
		}

		now := time.Now()
		if joinErr := ValidateJoin(contest, password, now); joinErr != nil {
			if errors.Is(joinErr, arena_errors.ErrUnAuthorized) {
				log.Warnf(
					"user %s gave a wrong password for private contest %v",
					user.Email, contestId,
				)
			}
			return ContestView{}, joinErr
		}

		added := contest.AddParticipant(user.ID, user.FullName, user.Email, now)
		contest.Status = AdvanceStatus(contest.Status, contest.StartDate, contest.EndDate, now)

		saved, saveErr := c.saveContest(ctx, contest)
		if saveErr != nil {
			if errors.Is(saveErr, arena_errors.ErrWriteConflict) {
				// someone else may have joined in between, re-read the
				// roster and run the duplicate check again
				continue
			}
			return ContestView{}, saveErr
		}

		if added {
			log.WithFields(log.Fields{
				"contest_id": contestId,
				"user_id":    user.ID,
			}).Info("user joined contest")

			mailErr := email.NewMail(
				ctx,
				fmt.Sprintf("You joined %s", saved.Name),
				fmt.Sprintf(
					"Hi %s,\n\nYou are registered for %s. It starts at %s.",
					user.FullName,
					saved.Name,
					saved.StartDate.Format(time.RFC1123),
				),
				email.KeyEmailBodyPlain,
				email.PurposeEmailContestJoined,
				user.Email,
			)
			if mailErr != nil {
				log.Warnf("could not queue join mail for %s, %v", user.Email, mailErr)
			}
		}

		return ToPublicView(saved, false, now), nil
	}

	err = fmt.Errorf(
		"%w, contest is being modified concurrently, please retry",
		arena_errors.ErrWriteConflict,
	)
	log.Error(err)
	return ContestView{}, err
}

// LeaveContest removes the caller from the roster. Forbidden once the
// stored status says the contest has started.
func (c *ContestService) LeaveContest(
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

		if leaveErr := ValidateLeave(contest); leaveErr != nil {
			return leaveErr
		}

		contest.RemoveParticipant(claims.UserId)
		now := time.Now()
		contest.Status = AdvanceStatus(contest.Status, contest.StartDate, contest.EndDate, now)

		if _, saveErr := c.saveContest(ctx, contest); saveErr != nil {
			if errors.Is(saveErr, arena_errors.ErrWriteConflict) {
				continue
			}
			return saveErr
		}

		log.WithFields(log.Fields{
			"contest_id": contestId,
			"user_id":    claims.UserId,
		}).Info("user left contest")
		return nil
	}

	err = fmt.Errorf(
		"%w, contest is being modified concurrently, please retry",
		arena_errors.ErrWriteConflict,
	)
	log.Error(err)
	return err
}

// GetContestParticipants returns the roster. Organizer only.
func (c *ContestService) GetContestParticipants(
	ctx context.Context,
	contestId uuid.UUID,
) ([]Participant, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	contest, err := c.fetchActiveContest(ctx, contestId)
	if err != nil {
		return nil, err
	}

	if !CanModify(contest, claims.UserId) {
		log.Warnf(
			"user %s tried to view participants of contest %v owned by %v",
			claims.Email, contestId, contest.Organizer,
		)
		return nil, fmt.Errorf(
			"%w, only the organizer can view participants",
			arena_errors.ErrUnAuthorized,
		)
	}

	return contest.Participants, nil
}
