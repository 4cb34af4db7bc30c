package contest_service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tesseract-club/arena/internal/arena_errors"
)

// CanModify is the single ownership predicate. There is no admin override.
func CanModify(contest Contest, userId uuid.UUID) bool {
	return contest.Organizer == userId
}

// ValidateModification decides whether userId may mutate the contest right
// now. Callers applying an update must re-run this against the freshly
// read row, not a copy held from an earlier request.
func ValidateModification(contest Contest, userId uuid.UUID, now time.Time) error {
	if !CanModify(contest, userId) {
		return fmt.Errorf(
			"%w, you can only modify contests you created",
			arena_errors.ErrUnAuthorized,
		)
	}

	if contest.Status == StatusOngoing || contest.Status == StatusCompleted {
		return fmt.Errorf(
			"%w, cannot modify contest that is ongoing or completed",
			arena_errors.ErrInvalidState,
		)
	}

	// a published contest becomes immutable the moment its window opens,
	// even while the stored status still says published
	if contest.Status == StatusPublished && !now.Before(contest.StartDate) {
		return fmt.Errorf(
			"%w, cannot modify contest after it has started",
			arena_errors.ErrInvalidState,
		)
	}

	return nil
}

// AdvanceStatus applies the write triggered auto advance: a published
// contest whose window has opened is rewritten to ongoing, one whose
// window has closed to completed. Any other status passes through
// untouched, so the advance is one way.
func AdvanceStatus(status ContestStatus, startDate, endDate, now time.Time) ContestStatus {
	if status != StatusPublished {
		return status
	}
	if now.After(endDate) {
		return StatusCompleted
	}
	if !now.Before(startDate) {
		return StatusOngoing
	}
	return status
}

// DeriveState computes the display state from the clock without touching
// the stored status. The two are allowed to diverge between writes.
func DeriveState(status ContestStatus, startDate, endDate, now time.Time) ContestState {
	switch status {
	case StatusDraft:
		return StateDraft
	case StatusCancelled:
		return StateCancelled
	}
	if now.Before(startDate) {
		return StateUpcoming
	}
	if !now.After(endDate) {
		return StateOngoing
	}
	return StateCompleted
}

// CanRegister reports whether the registration window is open at now.
func CanRegister(contest Contest, now time.Time) bool {
	if contest.RegistrationRequired && contest.RegistrationDeadline != nil {
		return !now.After(*contest.RegistrationDeadline)
	}
	return now.Before(contest.StartDate)
}

// ValidateJoin runs the join guards in order: the private password gate
// first, then the registration window. Contest existence is the caller's
// concern, it is checked before either gate.
func ValidateJoin(contest Contest, password string, now time.Time) error {
	if contest.Visibility == VisibilityPrivate {
		if password == "" || password != contest.Password {
			return fmt.Errorf(
				"%w, invalid password for private contest",
				arena_errors.ErrUnAuthorized,
			)
		}
	}

	if !CanRegister(contest, now) {
		return fmt.Errorf(
			"%w, registration period has ended",
			arena_errors.ErrInvalidState,
		)
	}

	return nil
}

// ValidateLeave rejects leaving once the stored status says the contest
// has started. The clock is not consulted, only the stored field.
func ValidateLeave(contest Contest) error {
	if contest.Status == StatusOngoing || contest.Status == StatusCompleted {
		return fmt.Errorf(
			"%w, cannot leave contest that has started or completed",
			arena_errors.ErrInvalidState,
		)
	}
	return nil
}
