package user_service

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/tesseract-club/arena/internal/database"
)

type UserService struct {
	DB *database.Queries

	// users are looked up on every authenticated request, keep a small
	// expiring cache in front of the db
	userCache *expirable.LRU[uuid.UUID, database.User]
}

type UserRole string

const (
	RoleOrganizer UserRole = "organizer"
	RoleAttendee  UserRole = "attendee"

	userCacheSize = 1024
	userCacheTTL  = 5 * time.Minute
)

type User struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Role     UserRole  `json:"role"`
}
