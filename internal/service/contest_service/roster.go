package contest_service

import (
	"time"

	"github.com/google/uuid"
)

// AddParticipant registers userId on the roster. It is idempotent: a user
// that is already registered is left untouched and false is returned.
func (c *Contest) AddParticipant(
	userId uuid.UUID,
	userName string,
	userEmail string,
	now time.Time,
) bool {
	for _, participant := range c.Participants {
		if participant.UserId == userId {
			return false
		}
	}

	c.Participants = append(c.Participants, Participant{
		UserId:              userId,
		UserName:            userName,
		UserEmail:           userEmail,
		RegisteredAt:        now,
		ParticipationStatus: ParticipationRegistered,
	})
	c.RefreshStats()
	return true
}

// RemoveParticipant drops every roster entry for userId (expected 0 or 1).
func (c *Contest) RemoveParticipant(userId uuid.UUID) {
	kept := c.Participants[:0]
	for _, participant := range c.Participants {
		if participant.UserId != userId {
			kept = append(kept, participant)
		}
	}
	c.Participants = kept
	c.RefreshStats()
}

// RefreshStats recomputes the denormalized participant count. It must run
// on every roster mutation so stats.totalParticipants never drifts from
// the roster length.
func (c *Contest) RefreshStats() {
	c.Stats.TotalParticipants = int32(len(c.Participants))
}
