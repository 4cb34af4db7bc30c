package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const createContest = `-- name: CreateContest :one
INSERT INTO contests (
    organizer, name, description, visibility, password,
    start_date, end_date, registration_required, registration_deadline,
    allowed_languages, max_submissions, penalty, show_leaderboard,
    questions, prize, rules, status, participants, stats
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
RETURNING id, organizer, name, description, visibility, password,
    start_date, end_date, registration_required, registration_deadline,
    allowed_languages, max_submissions, penalty, show_leaderboard,
    questions, prize, rules, status, participants, stats,
    is_active, version, created_at, updated_at
`

type CreateContestParams struct {
	Organizer            uuid.UUID
	Name                 string
	Description          string
	Visibility           string
	Password             *string
	StartDate            time.Time
	EndDate              time.Time
	RegistrationRequired bool
	RegistrationDeadline *time.Time
	AllowedLanguages     []string
	MaxSubmissions       int32
	Penalty              int32
	ShowLeaderboard      bool
	Questions            json.RawMessage
	Prize                string
	Rules                string
	Status               string
	Participants         json.RawMessage
	Stats                json.RawMessage
}

func (q *Queries) CreateContest(ctx context.Context, arg CreateContestParams) (Contest, error) {
	row := q.db.QueryRow(ctx, createContest,
		arg.Organizer,
		arg.Name,
		arg.Description,
		arg.Visibility,
		arg.Password,
		arg.StartDate,
		arg.EndDate,
		arg.RegistrationRequired,
		arg.RegistrationDeadline,
		arg.AllowedLanguages,
		arg.MaxSubmissions,
		arg.Penalty,
		arg.ShowLeaderboard,
		arg.Questions,
		arg.Prize,
		arg.Rules,
		arg.Status,
		arg.Participants,
		arg.Stats,
	)
	var i Contest
	err := row.Scan(
		&i.ID,
		&i.Organizer,
		&i.Name,
		&i.Description,
		&i.Visibility,
		&i.Password,
		&i.StartDate,
		&i.EndDate,
		&i.RegistrationRequired,
		&i.RegistrationDeadline,
		&i.AllowedLanguages,
		&i.MaxSubmissions,
		&i.Penalty,
		&i.ShowLeaderboard,
		&i.Questions,
		&i.Prize,
		&i.Rules,
		&i.Status,
		&i.Participants,
		&i.Stats,
		&i.IsActive,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getContestById = `-- name: GetContestById :one
SELECT id, organizer, name, description, visibility, password,
    start_date, end_date, registration_required, registration_deadline,
    allowed_languages, max_submissions, penalty, show_leaderboard,
    questions, prize, rules, status, participants, stats,
    is_active, version, created_at, updated_at
FROM contests
WHERE id = $1
`

func (q *Queries) GetContestById(ctx context.Context, id uuid.UUID) (Contest, error) {
	row := q.db.QueryRow(ctx, getContestById, id)
	var i Contest
	err := row.Scan(
		&i.ID,
		&i.Organizer,
		&i.Name,
		&i.Description,
		&i.Visibility,
		&i.Password,
		&i.StartDate,
		&i.EndDate,
		&i.RegistrationRequired,
		&i.RegistrationDeadline,
		&i.AllowedLanguages,
		&i.MaxSubmissions,
		&i.Penalty,
		&i.ShowLeaderboard,
		&i.Questions,
		&i.Prize,
		&i.Rules,
		&i.Status,
		&i.Participants,
		&i.Stats,
		&i.IsActive,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listPublicContests = `-- name: ListPublicContests :many
SELECT id, organizer, name, description, visibility, password,
    start_date, end_date, registration_required, registration_deadline,
    allowed_languages, max_submissions, penalty, show_leaderboard,
    questions, prize, rules, status, participants, stats,
    is_active, version, created_at, updated_at
FROM contests
WHERE visibility = 'public'
  AND is_active = TRUE
  AND ($1::text IS NULL OR status = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListPublicContestsParams struct {
	Status *string
	Limit  int32
	Offset int32
}

func (q *Queries) ListPublicContests(ctx context.Context, arg ListPublicContestsParams) ([]Contest, error) {
	rows, err := q.db.Query(ctx, listPublicContests, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Contest
	for rows.Next() {
		var i Contest
		if err := rows.Scan(
			&i.ID,
			&i.Organizer,
			&i.Name,
			&i.Description,
			&i.Visibility,
			&i.Password,
			&i.StartDate,
			&i.EndDate,
			&i.RegistrationRequired,
			&i.RegistrationDeadline,
			&i.AllowedLanguages,
			&i.MaxSubmissions,
			&i.Penalty,
			&i.ShowLeaderboard,
			&i.Questions,
			&i.Prize,
			&i.Rules,
			&i.Status,
			&i.Participants,
			&i.Stats,
			&i.IsActive,
			&i.Version,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countPublicContests = `-- name: CountPublicContests :one
SELECT count(*)
FROM contests
WHERE visibility = 'public'
  AND is_active = TRUE
  AND ($1::text IS NULL OR status = $1)
`

func (q *Queries) CountPublicContests(ctx context.Context, status *string) (int64, error) {
	row := q.db.QueryRow(ctx, countPublicContests, status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listContestsByOrganizer = `-- name: ListContestsByOrganizer :many
SELECT id, organizer, name, description, visibility, password,
    start_date, end_date, registration_required, registration_deadline,
    allowed_languages, max_submissions, penalty, show_leaderboard,
    questions, prize, rules, status, participants, stats,
    is_active, version, created_at, updated_at
FROM contests
WHERE organizer = $1
  AND is_active = TRUE
ORDER BY created_at DESC
`

func (q *Queries) ListContestsByOrganizer(ctx context.Context, organizer uuid.UUID) ([]Contest, error) {
	rows, err := q.db.Query(ctx, listContestsByOrganizer, organizer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Contest
	for rows.Next() {
		var i Contest
		if err := rows.Scan(
			&i.ID,
			&i.Organizer,
			&i.Name,
			&i.Description,
			&i.Visibility,
			&i.Password,
			&i.StartDate,
			&i.EndDate,
			&i.RegistrationRequired,
			&i.RegistrationDeadline,
			&i.AllowedLanguages,
			&i.MaxSubmissions,
			&i.Penalty,
			&i.ShowLeaderboard,
			&i.Questions,
			&i.Prize,
			&i.Rules,
			&i.Status,
			&i.Participants,
			&i.Stats,
			&i.IsActive,
			&i.Version,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateContest = `-- name: UpdateContest :one
UPDATE contests SET
    name = $3,
    description = $4,
    visibility = $5,
    password = $6,
    start_date = $7,
    end_date = $8,
    registration_required = $9,
    registration_deadline = $10,
    allowed_languages = $11,
    max_submissions = $12,
    penalty = $13,
    show_leaderboard = $14,
    questions = $15,
    prize = $16,
    rules = $17,
    status = $18,
    participants = $19,
    stats = $20,
    is_active = $21,
    version = version + 1,
    updated_at = now()
WHERE id = $1 AND version = $2
RETURNING id, organizer, name, description, visibility, password,
    start_date, end_date, registration_required, registration_deadline,
    allowed_languages, max_submissions, penalty, show_leaderboard,
    questions, prize, rules, status, participants, stats,
    is_active, version, created_at, updated_at
`

type UpdateContestParams struct {
	ID                   uuid.UUID
	Version              int32
	Name                 string
	Description          string
	Visibility           string
	Password             *string
	StartDate            time.Time
	EndDate              time.Time
	RegistrationRequired bool
	RegistrationDeadline *time.Time
	AllowedLanguages     []string
	MaxSubmissions       int32
	Penalty              int32
	ShowLeaderboard      bool
	Questions            json.RawMessage
	Prize                string
	Rules                string
	Status               string
	Participants         json.RawMessage
	Stats                json.RawMessage
	IsActive             bool
}

// UpdateContest is guarded by an optimistic version check. It returns
// pgx.ErrNoRows when the stored version no longer matches, in which case
// the caller must re-read the row and retry.
func (q *Queries) UpdateContest(ctx context.Context, arg UpdateContestParams) (Contest, error) {
	row := q.db.QueryRow(ctx, updateContest,
		arg.ID,
		arg.Version,
		arg.Name,
		arg.Description,
		arg.Visibility,
		arg.Password,
		arg.StartDate,
		arg.EndDate,
		arg.RegistrationRequired,
		arg.RegistrationDeadline,
		arg.AllowedLanguages,
		arg.MaxSubmissions,
		arg.Penalty,
		arg.ShowLeaderboard,
		arg.Questions,
		arg.Prize,
		arg.Rules,
		arg.Status,
		arg.Participants,
		arg.Stats,
		arg.IsActive,
	)
	var i Contest
	err := row.Scan(
		&i.ID,
		&i.Organizer,
		&i.Name,
		&i.Description,
		&i.Visibility,
		&i.Password,
		&i.StartDate,
		&i.EndDate,
		&i.RegistrationRequired,
		&i.RegistrationDeadline,
		&i.AllowedLanguages,
		&i.MaxSubmissions,
		&i.Penalty,
		&i.ShowLeaderboard,
		&i.Questions,
		&i.Prize,
		&i.Rules,
		&i.Status,
		&i.Participants,
		&i.Stats,
		&i.IsActive,
		&i.Version,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const countRecentContestsByOrganizer = `-- name: CountRecentContestsByOrganizer :one
SELECT count(*)
FROM contests
WHERE organizer = $1
  AND created_at >= $2
`

type CountRecentContestsByOrganizerParams struct {
	Organizer uuid.UUID
	Since     time.Time
}

func (q *Queries) CountRecentContestsByOrganizer(
	ctx context.Context,
	arg CountRecentContestsByOrganizerParams,
) (int64, error) {
	row := q.db.QueryRow(ctx, countRecentContestsByOrganizer, arg.Organizer, arg.Since)
	var count int64
	err := row.Scan(&count)
	return count, err
}
