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
	"github.com/tesseract-club/arena/internal/database"
	"github.com/tesseract-club/arena/internal/service"
	"github.com/tesseract-club/arena/internal/service/user_service"
)

// fetchActiveContest reads the aggregate by id and hides soft-deleted rows
// behind a not-found, the same way a missing row is reported.
func (c *ContestService) fetchActiveContest(
	ctx context.Context,
	contestId uuid.UUID,
) (Contest, error) {
	row, dbErr := c.DB.GetContestById(ctx, contestId)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			return Contest{}, fmt.Errorf(
				"%w, no contest exist with the given id",
				arena_errors.ErrNotFound,
			)
		}
		err := fmt.Errorf(
			"%w, cannot fetch contest with id %v, %w",
			arena_errors.ErrInternal, contestId, dbErr,
		)
		log.Error(err)
		return Contest{}, err
	}

	if !row.IsActive {
		return Contest{}, fmt.Errorf(
			"%w, no contest exist with the given id",
			arena_errors.ErrNotFound,
		)
	}

	return rowToContest(row)
}

func (c *ContestService) GetContestById(
	ctx context.Context,
	contestId uuid.UUID,
) (ContestView, error) {
	contest, err := c.fetchActiveContest(ctx, contestId)
	if err != nil {
		return ContestView{}, err
	}

	isOrganizer := false
	if claims, claimsErr := service.GetClaimsFromContext(ctx); claimsErr == nil {
		isOrganizer = CanModify(contest, claims.UserId)
	}

	return ToPublicView(contest, isOrganizer, time.Now()), nil
}

// ListPublicContests is the discovery feed: public, active contests only,
// newest first, optionally narrowed to one stored status.
func (c *ContestService) ListPublicContests(
	ctx context.Context,
	request GetContestsRequest,
) (ContestList, error) {
	if err := service.ValidateInput(request); err != nil {
		return ContestList{}, err
	}

	var status *string
	if request.Status != "" {
		status = &request.Status
	}
	offset := (request.Page - 1) * request.PageSize

	rows, dbErr := c.DB.ListPublicContests(ctx, database.ListPublicContestsParams{
		Status: status,
		Limit:  request.PageSize,
		Offset: offset,
	})
	if dbErr != nil {
		err := fmt.Errorf(
			"%w, cannot fetch public contests, %w",
			arena_errors.ErrInternal, dbErr,
		)
		log.WithField("filters", request).Error(err)
		return ContestList{}, err
	}

	total, dbErr := c.DB.CountPublicContests(ctx, status)
	if dbErr != nil {
		err := fmt.Errorf(
			"%w, cannot count public contests, %w",
			arena_errors.ErrInternal, dbErr,
		)
		log.Error(err)
		return ContestList{}, err
	}

	now := time.Now()
	views := make([]ContestView, 0, len(rows))
	for _, row := range rows {
		contest, err := rowToContest(row)
		if err != nil {
			return ContestList{}, err
		}
		views = append(views, ToPublicView(contest, false, now))
	}

	totalPages := (total + int64(request.PageSize) - 1) / int64(request.PageSize)
	return ContestList{
		Contests:    views,
		Total:       total,
		CurrentPage: request.Page,
		TotalPages:  totalPages,
	}, nil
}

// ListMyContests returns every active contest owned by the caller, with
// the organizer's unredacted view.
func (c *ContestService) ListMyContests(ctx context.Context) ([]ContestView, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err = c.UserServiceConfig.AuthorizeUserRole(
		ctx,
		claims.UserId,
		user_service.RoleOrganizer,
		fmt.Sprintf("non-organizer %s tried to list own contests", claims.Email),
	); err != nil {
		return nil, err
	}

	rows, dbErr := c.DB.ListContestsByOrganizer(ctx, claims.UserId)
	if dbErr != nil {
		err = fmt.Errorf(
			"%w, cannot fetch contests for organizer %v, %w",
			arena_errors.ErrInternal, claims.UserId, dbErr,
		)
		log.Error(err)
		return nil, err
	}

	now := time.Now()
	views := make([]ContestView, 0, len(rows))
	for _, row := range rows {
		contest, convErr := rowToContest(row)
		if convErr != nil {
			return nil, convErr
		}
		views = append(views, ToPublicView(contest, true, now))
	}
	return views, nil
}
