package contest_service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/database"
	"github.com/tesseract-club/arena/internal/service/user_service"
)

var (
	msgForeignKey = map[string]string{
		"contests_organizer_fkey": "organizer does not exist",
	}

	errMsgs = map[string]map[string]string{
		arena_errors.CodeForeignKeyConstraint: msgForeignKey,
	}
)

type ContestService struct {
	DB                *database.Queries
	UserServiceConfig *user_service.UserService
}

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ContestStatus is the stored lifecycle field. It only moves as a side
// effect of a save, never on a timer, so it can lag behind ContestState
// until the next write.
type ContestStatus string

const (
	StatusDraft     ContestStatus = "draft"
	StatusPublished ContestStatus = "published"
	StatusOngoing   ContestStatus = "ongoing"
	StatusCompleted ContestStatus = "completed"
	StatusCancelled ContestStatus = "cancelled"
)

// ContestState is the display state derived from the clock. It never
// touches storage.
type ContestState string

const (
	StateDraft     ContestState = "draft"
	StateUpcoming  ContestState = "upcoming"
	StateOngoing   ContestState = "ongoing"
	StateCompleted ContestState = "completed"
	StateCancelled ContestState = "cancelled"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type ParticipationStatus string

const (
	ParticipationRegistered   ParticipationStatus = "registered"
	ParticipationActive       ParticipationStatus = "active"
	ParticipationCompleted    ParticipationStatus = "completed"
	ParticipationDisqualified ParticipationStatus = "disqualified"
)

type TestCase struct {
	Input       string `json:"input" validate:"required"`
	Output      string `json:"output" validate:"required"`
	Explanation string `json:"explanation"`
}

type Problem struct {
	Title           string            `json:"title" validate:"required,max=100"`
	Description     string            `json:"description" validate:"required,min=50,max=5000"`
	Difficulty      Difficulty        `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Category        string            `json:"category" validate:"required,oneof=algorithms data-structures math string graph dynamic-programming greedy backtracking simulation implementation sorting searching geometry number-theory"`
	Points          int32             `json:"points" validate:"required,min=1,max=1000"`
	TimeLimit       int32             `json:"timeLimit" validate:"required,min=100,max=10000"`
	MemoryLimit     int32             `json:"memoryLimit" validate:"required,min=16,max=1024"`
	Constraints     string            `json:"constraints"`
	FollowUp        string            `json:"followUp"`
	SampleTestCases []TestCase        `json:"sampleTestCases" validate:"dive"`
	HiddenTestCases []TestCase        `json:"hiddenTestCases" validate:"dive"`
	Tags            []string          `json:"tags"`
	Hints           []string          `json:"hints"`
	Editorial       string            `json:"editorial"`
	Solutions       map[string]string `json:"solutions"`
	AuthorNotes     string            `json:"authorNotes"`
}

type Participant struct {
	UserId              uuid.UUID           `json:"userId"`
	UserName            string              `json:"userName"`
	UserEmail           string              `json:"userEmail"`
	RegisteredAt        time.Time           `json:"registeredAt"`
	ParticipationStatus ParticipationStatus `json:"participationStatus"`
}

type ContestStats struct {
	TotalParticipants int32   `json:"totalParticipants"`
	TotalSubmissions  int32   `json:"totalSubmissions"`
	AverageScore      float64 `json:"averageScore"`
	CompletionRate    float64 `json:"completionRate"`
}

// Contest is the aggregate root. Problems, participants and stats have no
// identity of their own, they live and die with the contest row.
type Contest struct {
	ID                   uuid.UUID     `json:"id"`
	Organizer            uuid.UUID     `json:"organizer"`
	Name                 string        `json:"name"`
	Description          string        `json:"description"`
	Visibility           Visibility    `json:"visibility"`
	Password             string        `json:"password,omitempty"`
	StartDate            time.Time     `json:"startDate"`
	EndDate              time.Time     `json:"endDate"`
	RegistrationRequired bool          `json:"registrationRequired"`
	RegistrationDeadline *time.Time    `json:"registrationDeadline,omitempty"`
	AllowedLanguages     []string      `json:"allowedLanguages"`
	MaxSubmissions       int32         `json:"maxSubmissions"`
	Penalty              int32         `json:"penalty"`
	ShowLeaderboard      bool          `json:"showLeaderboard"`
	Questions            []Problem     `json:"questions"`
	Prize                string        `json:"prize"`
	Rules                string        `json:"rules"`
	Status               ContestStatus `json:"status"`
	Participants         []Participant `json:"participants"`
	Stats                ContestStats  `json:"stats"`
	IsActive             bool          `json:"isActive"`
	Version              int32         `json:"-"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

// ContestInput is the create/update payload. Organizer, roster and stats
// are never taken from the client.
type ContestInput struct {
	Name                 string        `json:"name" validate:"required,max=200"`
	Description          string        `json:"description" validate:"required,max=2000"`
	Visibility           Visibility    `json:"visibility" validate:"required,oneof=public private"`
	Password             string        `json:"password"`
	StartDate            time.Time     `json:"startDate"`
	EndDate              time.Time     `json:"endDate"`
	RegistrationRequired bool          `json:"registrationRequired"`
	RegistrationDeadline *time.Time    `json:"registrationDeadline"`
	AllowedLanguages     []string      `json:"allowedLanguages" validate:"required,min=1,dive,oneof=python javascript java cpp c go rust kotlin"`
	MaxSubmissions       int32         `json:"maxSubmissions" validate:"required,min=1,max=200"`
	Penalty              int32         `json:"penalty" validate:"min=0,max=60"`
	ShowLeaderboard      bool          `json:"showLeaderboard"`
	Questions            []Problem     `json:"questions" validate:"dive"`
	Prize                string        `json:"prize"`
	Rules                string        `json:"rules" validate:"max=3000"`
	Status               ContestStatus `json:"status" validate:"omitempty,oneof=draft published cancelled"`
}

type GetContestsRequest struct {
	Status   string `json:"status" validate:"omitempty,oneof=draft published ongoing completed cancelled"`
	Page     int32  `json:"page" validate:"min=1"`
	PageSize int32  `json:"page_size" validate:"min=1,max=100"`
}

type ContestList struct {
	Contests    []ContestView `json:"contests"`
	Total       int64         `json:"total"`
	CurrentPage int32         `json:"currentPage"`
	TotalPages  int64         `json:"totalPages"`
}

func rowToContest(row database.Contest) (Contest, error) {
	contest := Contest{
		ID:                   row.ID,
		Organizer:            row.Organizer,
		Name:                 row.Name,
		Description:          row.Description,
		Visibility:           Visibility(row.Visibility),
		StartDate:            row.StartDate,
		EndDate:              row.EndDate,
		RegistrationRequired: row.RegistrationRequired,
		RegistrationDeadline: row.RegistrationDeadline,
		AllowedLanguages:     row.AllowedLanguages,
		MaxSubmissions:       row.MaxSubmissions,
		Penalty:              row.Penalty,
		ShowLeaderboard:      row.ShowLeaderboard,
		Prize:                row.Prize,
		Rules:                row.Rules,
		Status:               ContestStatus(row.Status),
		IsActive:             row.IsActive,
		Version:              row.Version,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
	if row.Password != nil {
		contest.Password = *row.Password
	}
	if err := unmarshalAggregate(row.Questions, &contest.Questions, "questions"); err != nil {
		return Contest{}, err
	}
	if err := unmarshalAggregate(row.Participants, &contest.Participants, "participants"); err != nil {
		return Contest{}, err
	}
	if err := unmarshalAggregate(row.Stats, &contest.Stats, "stats"); err != nil {
		return Contest{}, err
	}
	if contest.Participants == nil {
		contest.Participants = make([]Participant, 0)
	}
	return contest, nil
}

func contestToSaveParams(contest Contest) (database.UpdateContestParams, error) {
	questions, err := marshalAggregate(contest.Questions, "questions")
	if err != nil {
		return database.UpdateContestParams{}, err
	}
	participants, err := marshalAggregate(contest.Participants, "participants")
	if err != nil {
		return database.UpdateContestParams{}, err
	}
	stats, err := marshalAggregate(contest.Stats, "stats")
	if err != nil {
		return database.UpdateContestParams{}, err
	}

	var password *string
	if contest.Password != "" {
		password = &contest.Password
	}

	return database.UpdateContestParams{
		ID:                   contest.ID,
		Version:              contest.Version,
		Name:                 contest.Name,
		Description:          contest.Description,
		Visibility:           string(contest.Visibility),
		Password:             password,
		StartDate:            contest.StartDate,
		EndDate:              contest.EndDate,
		RegistrationRequired: contest.RegistrationRequired,
		RegistrationDeadline: contest.RegistrationDeadline,
		AllowedLanguages:     contest.AllowedLanguages,
		MaxSubmissions:       contest.MaxSubmissions,
		Penalty:              contest.Penalty,
		ShowLeaderboard:      contest.ShowLeaderboard,
		Questions:            questions,
		Prize:                contest.Prize,
		Rules:                contest.Rules,
		Status:               string(contest.Status),
		Participants:         participants,
		Stats:                stats,
		IsActive:             contest.IsActive,
	}, nil
}

func marshalAggregate(v any, what string) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		err = fmt.Errorf(
			"%w, cannot marshal contest %s, %w",
			arena_errors.ErrInternal, what, err,
		)
		log.Error(err)
		return nil, err
	}
	return data, nil
}

func unmarshalAggregate(data json.RawMessage, v any, what string) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		err = fmt.Errorf(
			"%w, cannot unmarshal contest %s, %w",
			arena_errors.ErrInternal, what, err,
		)
		log.Error(err)
		return err
	}
	return nil
}
