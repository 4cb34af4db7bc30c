package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type Contest struct {
	ID                   uuid.UUID
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
	IsActive             bool
	Version              int32
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
