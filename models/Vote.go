package models

import "time"

// Vote directions.
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// Vote is a participant's current opinion on a plan card. The composite
// unique index is the upsert key: one live row per (plan, participant),
// last write wins, no history kept.
type Vote struct {
	ID uint `json:"id" gorm:"primaryKey"`

	PlanCardID uint     `json:"planCardID" gorm:"not null;uniqueIndex:idx_plan_participant"`
	PlanCard   PlanCard `json:"-" gorm:"foreignKey:PlanCardID"`

	ParticipantID uint        `json:"participantID" gorm:"not null;uniqueIndex:idx_plan_participant"`
	Participant   Participant `json:"-" gorm:"foreignKey:ParticipantID"`

	Vote string `json:"vote" gorm:"size:8;not null"` // up | down

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
