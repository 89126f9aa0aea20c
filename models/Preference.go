package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Slot values a participant can pick for a single day.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEither    = "either"
	SlotCant      = "cant"
)

// Budget tiers, ordered cheapest first.
const (
	BudgetLow  = "$"
	BudgetMid  = "$$"
	BudgetHigh = "$$$"
)

// Preference holds one participant's availability and constraints for an
// outing. At most one row per participant; written once at join time and
// treated as immutable afterwards.
type Preference struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	ParticipantID uint        `json:"participantID" gorm:"not null;uniqueIndex"`
	Participant   Participant `json:"-" gorm:"foreignKey:ParticipantID"`
	OutingID      uint        `json:"outingID" gorm:"not null;index"`

	// Availability maps ISO dates (YYYY-MM-DD) to a slot value.
	Availability datatypes.JSON `json:"availability"`

	MaxDriveMinutes int    `json:"maxDriveMinutes" gorm:"not null"`
	Budget          string `json:"budget" gorm:"size:4;not null"`          // $ | $$ | $$$
	HolesPreference string `json:"holesPreference" gorm:"size:8;not null"` // 9 | 18 | either

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AvailabilityMap decodes the stored availability JSON. A missing or broken
// payload decodes to an empty map, which downstream logic reads as
// "not available anywhere".
func (p *Preference) AvailabilityMap() map[string]string {
	out := map[string]string{}
	if len(p.Availability) == 0 {
		return out
	}
	if err := json.Unmarshal(p.Availability, &out); err != nil {
		return map[string]string{}
	}
	return out
}
