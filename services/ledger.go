package services

import (
	"time"

	"github.com/Justlrnal4/golf-group-organizer/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CastVote upserts a participant's vote on a plan card. The conflict target
// (plan_card_id, participant_id) is the sole serialization point: two
// near-simultaneous votes from the same participant collapse into one row,
// last writer wins. No vote history is kept.
func CastVote(db *gorm.DB, planCardID, participantID uint, direction string) error {
	vote := models.Vote{
		PlanCardID:    planCardID,
		ParticipantID: participantID,
		Vote:          direction,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "plan_card_id"}, {Name: "participant_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"vote": direction, "updated_at": time.Now()}),
	}).Create(&vote).Error
}

// TallyVotes counts live rows per direction. A participant contributes to
// exactly one of the two counts because only one row per pair can exist.
func TallyVotes(db *gorm.DB, planCardID uint) (up int64, down int64) {
	db.Model(&models.Vote{}).Where("plan_card_id = ? AND vote = ?", planCardID, models.VoteUp).Count(&up)
	db.Model(&models.Vote{}).Where("plan_card_id = ? AND vote = ?", planCardID, models.VoteDown).Count(&down)
	return up, down
}

// VoterChoice returns the participant's current direction, or "none".
func VoterChoice(db *gorm.DB, planCardID, participantID uint) string {
	var vote models.Vote
	if err := db.Where("plan_card_id = ? AND participant_id = ?", planCardID, participantID).First(&vote).Error; err != nil {
		return "none"
	}
	return vote.Vote
}
