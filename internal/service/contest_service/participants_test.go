package contest_service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/service/contest_service"
)

func privateContest(organizer uuid.UUID) contest_service.Contest {
	contest := sampleContest(organizer)
	contest.Visibility = contest_service.VisibilityPrivate
	contest.Password = "hunter22"
	return contest
}

func TestValidateJoinPasswordGate(t *testing.T) {
	organizer := uuid.New()

	t.Run("correct password joins", func(t *testing.T) {
		contest := privateContest(organizer)
		if err := contest_service.ValidateJoin(contest, "hunter22", testNow); err != nil {
			t.Errorf("correct password rejected: %v", err)
		}
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		contest := privateContest(organizer)
		err := contest_service.ValidateJoin(contest, "letmein", testNow)
		if !errors.Is(err, arena_errors.ErrUnAuthorized) {
			t.Errorf("expected unauthorized, got %v", err)
		}
	})

	t.Run("missing password is unauthorized", func(t *testing.T) {
		contest := privateContest(organizer)
		err := contest_service.ValidateJoin(contest, "", testNow)
		if !errors.Is(err, arena_errors.ErrUnAuthorized) {
			t.Errorf("expected unauthorized, got %v", err)
		}
	})

	t.Run("public contest ignores the password", func(t *testing.T) {
		contest := sampleContest(organizer)
		if err := contest_service.ValidateJoin(contest, "whatever", testNow); err != nil {
			t.Errorf("public contest rejected a join: %v", err)
		}
	})
}

func TestValidateJoinRegistrationWindow(t *testing.T) {
	organizer := uuid.New()

	t.Run("closed deadline rejects the join", func(t *testing.T) {
		contest := sampleContest(organizer)
		deadline := testNow.Add(-time.Minute)
		contest.RegistrationRequired = true
		contest.RegistrationDeadline = &deadline
		err := contest_service.ValidateJoin(contest, "", testNow)
		if !errors.Is(err, arena_errors.ErrInvalidState) {
			t.Errorf("expected invalid state, got %v", err)
		}
	})

	t.Run("joining at the deadline succeeds", func(t *testing.T) {
		contest := sampleContest(organizer)
		deadline := testNow
		contest.RegistrationRequired = true
		contest.RegistrationDeadline = &deadline
		if err := contest_service.ValidateJoin(contest, "", testNow); err != nil {
			t.Errorf("deadline moment rejected: %v", err)
		}
	})

	t.Run("started contest rejects the join", func(t *testing.T) {
		contest := sampleContest(organizer)
		err := contest_service.ValidateJoin(contest, "", contest.StartDate)
		if !errors.Is(err, arena_errors.ErrInvalidState) {
			t.Errorf("expected invalid state, got %v", err)
		}
	})
}

// the password gate runs before the window check, a wrong password on a
// closed contest still reads as unauthorized
func TestValidateJoinPasswordCheckedBeforeWindow(t *testing.T) {
	contest := privateContest(uuid.New())
	err := contest_service.ValidateJoin(contest, "letmein", contest.EndDate.Add(time.Hour))
	if !errors.Is(err, arena_errors.ErrUnAuthorized) {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

func TestValidateLeave(t *testing.T) {
	organizer := uuid.New()

	cases := []struct {
		name     string
		status   contest_service.ContestStatus
		rejected bool
	}{
		{"draft", contest_service.StatusDraft, false},
		{"published", contest_service.StatusPublished, false},
		{"cancelled", contest_service.StatusCancelled, false},
		{"ongoing", contest_service.StatusOngoing, true},
		{"completed", contest_service.StatusCompleted, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			contest := sampleContest(organizer)
			contest.Status = tc.status
			err := contest_service.ValidateLeave(contest)
			if tc.rejected && !errors.Is(err, arena_errors.ErrInvalidState) {
				t.Errorf("expected invalid state, got %v", err)
			}
			if !tc.rejected && err != nil {
				t.Errorf("leave rejected for status %s: %v", tc.status, err)
			}
		})
	}
}
