package models

import "time"

// Participant is one person on an outing. Exactly one participant per outing
// is the organizer, created together with the outing itself; everyone else
// joins through the share code.
type Participant struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	OutingID uint   `json:"outingID" gorm:"not null;index"`
	Outing   Outing `json:"-" gorm:"foreignKey:OutingID"`

	Name        string `json:"name" gorm:"size:80;not null"`
	IsOrganizer bool   `json:"isOrganizer" gorm:"index"`

	// SessionKey ties the participant to the client session that created it,
	// so a repeated join from the same device reuses the row instead of
	// duplicating it.
	SessionKey string `json:"-" gorm:"size:64;index"`

	Preference *Preference `json:"preference" gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
	Votes      []Vote      `json:"-" gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
