package contest_service_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/service/contest_service"
)

func validInput() contest_service.ContestInput {
	return contest_service.ContestInput{
		Name:             "Spring Qualifier",
		Description:      "Qualification round for the spring finals",
		Visibility:       contest_service.VisibilityPublic,
		StartDate:        testNow.Add(time.Hour),
		EndDate:          testNow.Add(2 * time.Hour),
		AllowedLanguages: []string{"python", "go"},
		MaxSubmissions:   50,
		Penalty:          20,
		Questions:        []contest_service.Problem{sampleProblem()},
	}
}

func TestValidateContestInputAcceptsValidPayload(t *testing.T) {
	input := validInput()
	if err := contest_service.ValidateContestInput(&input, testNow); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
}

func TestValidateContestInputShortPrivatePassword(t *testing.T) {
	input := validInput()
	input.Visibility = contest_service.VisibilityPrivate
	input.Password = "abc12" // 5 chars, one short of the minimum

	err := contest_service.ValidateContestInput(&input, testNow)
	if !errors.Is(err, arena_errors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if !strings.Contains(err.Error(), "password") {
		t.Errorf("error does not mention the password: %v", err)
	}
}

func TestValidateContestInputDateRules(t *testing.T) {
	t.Run("start in the past", func(t *testing.T) {
		input := validInput()
		input.StartDate = testNow.Add(-time.Minute)
		err := contest_service.ValidateContestInput(&input, testNow)
		if !errors.Is(err, arena_errors.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
		if !strings.Contains(err.Error(), "future") {
			t.Errorf("error does not mention the future start rule: %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		input := validInput()
		input.EndDate = input.StartDate.Add(-time.Minute)
		err := contest_service.ValidateContestInput(&input, testNow)
		if !errors.Is(err, arena_errors.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
		if !strings.Contains(err.Error(), "after start date") {
			t.Errorf("error does not mention date ordering: %v", err)
		}
	})

	t.Run("registration deadline after start", func(t *testing.T) {
		input := validInput()
		deadline := input.StartDate.Add(time.Minute)
		input.RegistrationRequired = true
		input.RegistrationDeadline = &deadline
		err := contest_service.ValidateContestInput(&input, testNow)
		if !errors.Is(err, arena_errors.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})
}

func TestValidateContestInputQuestionRules(t *testing.T) {
	t.Run("no questions", func(t *testing.T) {
		input := validInput()
		input.Questions = nil
		err := contest_service.ValidateContestInput(&input, testNow)
		if !errors.Is(err, arena_errors.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
		if !strings.Contains(err.Error(), "at least one problem") {
			t.Errorf("error does not mention the missing problems: %v", err)
		}
	})

	t.Run("missing hidden test cases", func(t *testing.T) {
		input := validInput()
		input.Questions[0].HiddenTestCases = nil
		err := contest_service.ValidateContestInput(&input, testNow)
		if !errors.Is(err, arena_errors.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
		if !strings.Contains(err.Error(), "hidden test case") {
			t.Errorf("error does not name the failing problem rule: %v", err)
		}
	})

	t.Run("short description", func(t *testing.T) {
		input := validInput()
		input.Questions[0].Description = "too short"
		err := contest_service.ValidateContestInput(&input, testNow)
		if !errors.Is(err, arena_errors.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})

	t.Run("every failure is reported at once", func(t *testing.T) {
		input := validInput()
		input.Visibility = contest_service.VisibilityPrivate
		input.Password = "abc"
		input.EndDate = input.StartDate.Add(-time.Minute)
		input.Questions[0].SampleTestCases = nil
		err := contest_service.ValidateContestInput(&input, testNow)
		if !errors.Is(err, arena_errors.ErrInvalidInput) {
			t.Fatalf("expected invalid input, got %v", err)
		}
		for _, fragment := range []string{"password", "after start date", "sample test case"} {
			if !strings.Contains(err.Error(), fragment) {
				t.Errorf("combined error is missing %q: %v", fragment, err)
			}
		}
	})
}

func TestValidateContestInputNormalizesTags(t *testing.T) {
	input := validInput()
	input.Questions[0].Tags = []string{"  Arrays ", "HASH-Map", "greedy"}

	if err := contest_service.ValidateContestInput(&input, testNow); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	want := []string{"arrays", "hash-map", "greedy"}
	got := input.Questions[0].Tags
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestApplyInputPreservesServerOwnedFields(t *testing.T) {
	contest := contest_service.Contest{
		Status: contest_service.StatusDraft,
		Stats:  contest_service.ContestStats{TotalParticipants: 2},
		Participants: []contest_service.Participant{
			{UserName: "Ada"}, {UserName: "Grace"},
		},
	}
	organizer := contest.Organizer

	input := validInput()
	input.Status = contest_service.StatusPublished
	contest_service.ApplyInput(&contest, input)

	if contest.Organizer != organizer {
		t.Error("applyInput touched the organizer")
	}
	if len(contest.Participants) != 2 {
		t.Error("applyInput touched the roster")
	}
	if contest.Status != contest_service.StatusPublished {
		t.Errorf("status = %s, want published", contest.Status)
	}

	// an empty payload status leaves the stored status alone
	input.Status = ""
	contest_service.ApplyInput(&contest, input)
	if contest.Status != contest_service.StatusPublished {
		t.Errorf("empty status overwrote the stored value with %q", contest.Status)
	}
}
