package contest_service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/database"
	"github.com/tesseract-club/arena/internal/service"
	"github.com/tesseract-club/arena/internal/service/user_service"
)

const (
	maxContestsPerHour = 5
	creationRateWindow = time.Hour
)

func (c *ContestService) CreateContest(
	ctx context.Context,
	input ContestInput,
) (ContestView, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return ContestView{}, err
	}

	// only organizers create contests
	if err = c.UserServiceConfig.AuthorizeUserRole(
		ctx,
		claims.UserId,
		user_service.RoleOrganizer,
		fmt.Sprintf("non-organizer %s tried to create a contest", claims.Email),
	); err != nil {
		return ContestView{}, err
	}

	if err = c.enforceCreationRateLimit(ctx, claims.UserId); err != nil {
		return ContestView{}, err
	}

	now := time.Now()
	if err = validateContestInput(&input, now); err != nil {
		return ContestView{}, err
	}

	status := input.Status
	if status == "" {
		status = StatusDraft
	}
	// the auto advance runs on every save, creation included
	status = AdvanceStatus(status, input.StartDate, input.EndDate, now)

	questions, err := marshalAggregate(input.Questions, "questions")
	if err != nil {
		return ContestView{}, err
	}
	participants, err := marshalAggregate([]Participant{}, "participants")
	if err != nil {
		return ContestView{}, err
	}
	stats, err := marshalAggregate(ContestStats{}, "stats")
	if err != nil {
		return ContestView{}, err
	}

	var password *string
	if input.Password != "" {
		password = &input.Password
	}

	row, dbErr := c.DB.CreateContest(ctx, database.CreateContestParams{
		Organizer:            claims.UserId,
		Name:                 input.Name,
		Description:          input.Description,
		Visibility:           string(input.Visibility),
		Password:             password,
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
		RegistrationRequired: input.RegistrationRequired,
		RegistrationDeadline: input.RegistrationDeadline,
		AllowedLanguages:     input.AllowedLanguages,
		MaxSubmissions:       input.MaxSubmissions,
		Penalty:              input.Penalty,
		ShowLeaderboard:      input.ShowLeaderboard,
		Questions:            questions,
		Prize:                input.Prize,
		Rules:                input.Rules,
		Status:               string(status),
		Participants:         participants,
		Stats:                stats,
	})
	if dbErr != nil {
		return ContestView{}, arena_errors.HandleDBErrors(
			dbErr,
			errMsgs,
			"failed to insert contest into db",
		)
	}

	contest, err := rowToContest(row)
	if err != nil {
		return ContestView{}, err
	}

	log.WithFields(log.Fields{
		"contest_id": contest.ID,
		"organizer":  contest.Organizer,
		"status":     contest.Status,
	}).Info("created contest")

	return ToPublicView(contest, true, now), nil
}

// enforceCreationRateLimit caps contest creation per organizer. It is a
// read then compare counter, racy by tolerance, not safety critical.
func (c *ContestService) enforceCreationRateLimit(
	ctx context.Context,
	organizer uuid.UUID,
) error {
	count, dbErr := c.DB.CountRecentContestsByOrganizer(
		ctx,
		database.CountRecentContestsByOrganizerParams{
			Organizer: organizer,
			Since:     time.Now().Add(-creationRateWindow),
		},
	)
	if dbErr != nil {
		err := fmt.Errorf(
			"%w, cannot count recent contests for organizer %v, %w",
			arena_errors.ErrInternal, organizer, dbErr,
		)
		log.Error(err)
		return err
	}

	if count >= maxContestsPerHour {
		log.Warnf(
			"organizer %v hit the contest creation rate limit",
			organizer,
		)
		return fmt.Errorf(
			"%w, you can create maximum %d contests per hour",
			arena_errors.ErrRateLimited,
			maxContestsPerHour,
		)
	}

	return nil
}
