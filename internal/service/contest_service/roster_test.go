package contest_service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/tesseract-club/arena/internal/service/contest_service"
)

func TestAddParticipantIsIdempotent(t *testing.T) {
	contest := sampleContest(uuid.New())
	userId := uuid.New()

	if added := contest.AddParticipant(userId, "Ada Lovelace", "ada@example.com", testNow); !added {
		t.Fatal("first join must register the user")
	}
	if added := contest.AddParticipant(userId, "Ada Lovelace", "ada@example.com", testNow); added {
		t.Error("second join with the same user must be a no-op")
	}

	if len(contest.Participants) != 1 {
		t.Fatalf("roster size = %d, want 1", len(contest.Participants))
	}
	participant := contest.Participants[0]
	if participant.UserId != userId {
		t.Errorf("participant user id = %v, want %v", participant.UserId, userId)
	}
	if participant.ParticipationStatus != contest_service.ParticipationRegistered {
		t.Errorf("participation status = %s, want registered", participant.ParticipationStatus)
	}
	if !participant.RegisteredAt.Equal(testNow) {
		t.Errorf("registeredAt = %v, want %v", participant.RegisteredAt, testNow)
	}
}

func TestRemoveParticipant(t *testing.T) {
	contest := sampleContest(uuid.New())
	first := uuid.New()
	second := uuid.New()
	contest.AddParticipant(first, "Ada", "ada@example.com", testNow)
	contest.AddParticipant(second, "Grace", "grace@example.com", testNow)

	contest.RemoveParticipant(first)

	if len(contest.Participants) != 1 {
		t.Fatalf("roster size = %d, want 1", len(contest.Participants))
	}
	if contest.Participants[0].UserId != second {
		t.Error("the wrong participant was removed")
	}

	// removing an absent user is harmless
	contest.RemoveParticipant(first)
	if len(contest.Participants) != 1 {
		t.Error("removing an absent user changed the roster")
	}
}

func TestStatsTrackRosterLength(t *testing.T) {
	contest := sampleContest(uuid.New())

	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, userId := range users {
		contest.AddParticipant(userId, "user", "user@example.com", testNow)
		if got := contest.Stats.TotalParticipants; got != int32(i+1) {
			t.Errorf("after %d joins totalParticipants = %d", i+1, got)
		}
	}

	for i, userId := range users {
		contest.RemoveParticipant(userId)
		want := int32(len(users) - i - 1)
		if got := contest.Stats.TotalParticipants; got != want {
			t.Errorf("after %d removals totalParticipants = %d, want %d", i+1, got, want)
		}
	}
}
