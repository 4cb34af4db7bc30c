package contest_service

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/arena_errors"
	"github.com/tesseract-club/arena/internal/service"
)

// validateContestInput is the one place contest payloads are checked.
// Struct tags cover the per-field ranges; the cross-field rules (dates,
// private password, per-problem test case minimums) are collected here so
// the caller gets every failing field at once, not just the first. The
// payload is normalized in place, so callers persist the canonical form.
func validateContestInput(input *ContestInput, now time.Time) error {
	normalizeInput(input)

	if err := service.ValidateInput(*input); err != nil {
		return err
	}

	var errors []string

	if input.StartDate.IsZero() {
		errors = append(errors, "start date is required")
	}
	if input.EndDate.IsZero() {
		errors = append(errors, "end date is required")
	}
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() {
		if !input.StartDate.After(now) {
			errors = append(errors, "contest start date must be in the future")
		}
		if !input.EndDate.After(input.StartDate) {
			errors = append(errors, "contest end date must be after start date")
		}
	}

	if input.Visibility == VisibilityPrivate &&
		len(input.Password) < service.MinContestPasswordLength {
		errors = append(errors, fmt.Sprintf(
			"private contests must have a password of at least %d characters",
			service.MinContestPasswordLength,
		))
	}

	if input.RegistrationRequired && input.RegistrationDeadline != nil &&
		input.RegistrationDeadline.After(input.StartDate) {
		errors = append(errors, "registration deadline must be before contest start")
	}

	if len(input.Questions) == 0 {
		errors = append(errors, "at least one problem is required")
	}
	for idx, question := range input.Questions {
		if len(question.SampleTestCases) == 0 {
			errors = append(errors, fmt.Sprintf(
				"problem %d: at least one sample test case is required", idx+1,
			))
		}
		if len(question.HiddenTestCases) == 0 {
			errors = append(errors, fmt.Sprintf(
				"problem %d: at least one hidden test case is required", idx+1,
			))
		}
	}

	if len(errors) == 0 {
		return nil
	}

	err := fmt.Errorf(
		"%w, %s",
		arena_errors.ErrInvalidInput,
		strings.Join(errors, "; "),
	)
	log.Error(err)
	return err
}

// normalizeInput canonicalizes free form fields before validation.
// Problem tags are stored trimmed and lowercased.
func normalizeInput(input *ContestInput) {
	for qi := range input.Questions {
		tags := input.Questions[qi].Tags
		for ti, tag := range tags {
			tags[ti] = strings.ToLower(strings.TrimSpace(tag))
		}
	}
}

// applyInput overwrites the mutable fields of contest with the payload.
// Identity, roster and stats are owned by the server and never assigned
// from a request.
func applyInput(contest *Contest, input ContestInput) {
	contest.Name = input.Name
	contest.Description = input.Description
	contest.Visibility = input.Visibility
	contest.Password = input.Password
	contest.StartDate = input.StartDate
	contest.EndDate = input.EndDate
	contest.RegistrationRequired = input.RegistrationRequired
	contest.RegistrationDeadline = input.RegistrationDeadline
	contest.AllowedLanguages = input.AllowedLanguages
	contest.MaxSubmissions = input.MaxSubmissions
	contest.Penalty = input.Penalty
	contest.ShowLeaderboard = input.ShowLeaderboard
	contest.Questions = input.Questions
	contest.Prize = input.Prize
	contest.Rules = input.Rules
	if input.Status != "" {
		contest.Status = input.Status
	}
}
