package contest_service

import (
	"math"
	"time"
)

// ContestView is the transmitted shape of a contest: the aggregate plus
// the derived read-only fields the dashboards render.
type ContestView struct {
	Contest
	Duration            int64              `json:"duration"`
	TotalPoints         int32              `json:"totalPoints"`
	DifficultyBreakdown map[Difficulty]int `json:"difficultyBreakdown"`
	ContestState        ContestState       `json:"contestState"`
}

// ToPublicView projects a contest for transmission. For non-organizers
// the password, every hidden test case, the reference solutions and the
// author notes are stripped. This projection is the only confidentiality
// mechanism for hidden data, so every read path must go through it.
func ToPublicView(contest Contest, isOrganizer bool, now time.Time) ContestView {
	view := ContestView{
		Contest:             contest,
		Duration:            int64(math.Round(contest.EndDate.Sub(contest.StartDate).Hours())),
		DifficultyBreakdown: map[Difficulty]int{},
		ContestState:        DeriveState(contest.Status, contest.StartDate, contest.EndDate, now),
	}
	for _, question := range contest.Questions {
		view.TotalPoints += question.Points
		view.DifficultyBreakdown[question.Difficulty]++
	}

	if isOrganizer {
		return view
	}

	view.Password = ""
	redacted := make([]Problem, len(contest.Questions))
	for i, question := range contest.Questions {
		question.HiddenTestCases = []TestCase{}
		question.Solutions = map[string]string{}
		question.AuthorNotes = ""
		// editorial stays, it is meant for participants
		redacted[i] = question
	}
	view.Questions = redacted

	return view
}
