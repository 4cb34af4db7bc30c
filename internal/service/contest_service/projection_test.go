package contest_service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tesseract-club/arena/internal/service/contest_service"
)

func TestToPublicViewStripsSecretsForNonOrganizers(t *testing.T) {
	contest := sampleContest(uuid.New())
	contest.Visibility = contest_service.VisibilityPrivate
	contest.Password = "hunter2x"

	view := contest_service.ToPublicView(contest, false, testNow)

	if view.Password != "" {
		t.Error("public view leaked the contest password")
	}
	for i, question := range view.Questions {
		if len(question.HiddenTestCases) != 0 {
			t.Errorf("problem %d leaked hidden test cases", i)
		}
		if len(question.Solutions) != 0 {
			t.Errorf("problem %d leaked reference solutions", i)
		}
		if question.AuthorNotes != "" {
			t.Errorf("problem %d leaked author notes", i)
		}
		if question.Editorial == "" {
			t.Errorf("problem %d lost its editorial", i)
		}
		if len(question.SampleTestCases) == 0 {
			t.Errorf("problem %d lost its sample test cases", i)
		}
	}

	// the projection must not mutate the aggregate itself
	if contest.Questions[0].AuthorNotes == "" || len(contest.Questions[0].HiddenTestCases) == 0 {
		t.Error("projection mutated the underlying contest")
	}
}

func TestToPublicViewKeepsEverythingForOrganizer(t *testing.T) {
	contest := sampleContest(uuid.New())
	contest.Password = "hunter2x"

	view := contest_service.ToPublicView(contest, true, testNow)

	if view.Password != "hunter2x" {
		t.Error("organizer view lost the password")
	}
	if len(view.Questions[0].HiddenTestCases) == 0 {
		t.Error("organizer view lost hidden test cases")
	}
	if len(view.Questions[0].Solutions) == 0 {
		t.Error("organizer view lost solutions")
	}
}

func TestToPublicViewDerivedFields(t *testing.T) {
	contest := sampleContest(uuid.New())
	hard := sampleProblem()
	hard.Difficulty = contest_service.DifficultyHard
	hard.Points = 300
	contest.Questions = append(contest.Questions, hard)

	view := contest_service.ToPublicView(contest, false, testNow)

	if view.Duration != 1 {
		t.Errorf("duration = %d hours, want 1", view.Duration)
	}
	if view.TotalPoints != 400 {
		t.Errorf("totalPoints = %d, want 400", view.TotalPoints)
	}
	if view.DifficultyBreakdown[contest_service.DifficultyEasy] != 1 ||
		view.DifficultyBreakdown[contest_service.DifficultyHard] != 1 {
		t.Errorf("unexpected difficulty breakdown %v", view.DifficultyBreakdown)
	}
	if view.ContestState != contest_service.StateUpcoming {
		t.Errorf("contestState = %s, want upcoming", view.ContestState)
	}

	halfway := contest.StartDate.Add(30 * time.Minute)
	view = contest_service.ToPublicView(contest, false, halfway)
	if view.ContestState != contest_service.StateOngoing {
		t.Errorf("contestState = %s, want ongoing", view.ContestState)
	}
	if view.Status != contest_service.StatusPublished {
		t.Errorf("stored status = %s, want the stale published value", view.Status)
	}
}
