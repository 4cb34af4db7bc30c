package contest_service_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/service"
	"github.com/tesseract-club/arena/internal/service/contest_service"
)

func TestMain(m *testing.M) {
	// setup
	fmt.Println("starting initializations")

	// logger
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
		PadLevelText:  false,
	})
	logrus.SetLevel(logrus.WarnLevel)

	logrus.Info("initializing service")
	// pure lifecycle and validation tests, no db interactions
	service.InitializeServices()

	code := m.Run() // runs all tests

	os.Exit(code)
}

var testNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func sampleProblem() contest_service.Problem {
	return contest_service.Problem{
		Title:       "Two Sum",
		Description: "Given an array of integers, return the indices of the two numbers that add up to the target value.",
		Difficulty:  contest_service.DifficultyEasy,
		Category:    "algorithms",
		Points:      100,
		TimeLimit:   1000,
		MemoryLimit: 256,
		SampleTestCases: []contest_service.TestCase{
			{Input: "4\n2 7 11 15\n9", Output: "0 1", Explanation: "2 + 7 = 9"},
		},
		HiddenTestCases: []contest_service.TestCase{
			{Input: "2\n3 3\n6", Output: "0 1"},
		},
		Solutions: map[string]string{
			"python": "def two_sum(nums, target): ...",
		},
		AuthorNotes: "watch out for duplicate values",
		Editorial:   "Use a hash map from value to index.",
	}
}

func sampleContest(organizer uuid.UUID) contest_service.Contest {
	return contest_service.Contest{
		ID:               uuid.New(),
		Organizer:        organizer,
		Name:             "Spring Qualifier",
		Description:      "Qualification round for the spring finals",
		Visibility:       contest_service.VisibilityPublic,
		StartDate:        testNow.Add(time.Hour),
		EndDate:          testNow.Add(2 * time.Hour),
		AllowedLanguages: []string{"python", "go"},
		MaxSubmissions:   50,
		Penalty:          20,
		ShowLeaderboard:  true,
		Questions:        []contest_service.Problem{sampleProblem()},
		Status:           contest_service.StatusPublished,
		Participants:     []contest_service.Participant{},
		IsActive:         true,
		Version:          1,
	}
}
