package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// PlanCard is one synthesized outing proposal offered for voting. A plan
// generation pass fully replaces the outing's card set; cards are never
// updated in place.
type PlanCard struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	OutingID uint   `json:"outingID" gorm:"not null;index"`
	Outing   Outing `json:"-" gorm:"foreignKey:OutingID"`

	Title         string `json:"title" gorm:"size:160;not null"`
	CourseName    string `json:"courseName" gorm:"size:120;not null"`
	CourseAddress string `json:"courseAddress" gorm:"size:255;not null"`

	TimeWindowStart time.Time `json:"timeWindowStart"`
	TimeWindowEnd   time.Time `json:"timeWindowEnd"`

	EstimatedCost string `json:"estimatedCost" gorm:"size:64"`
	DriveTime     string `json:"driveTime" gorm:"size:64"`

	// Rationale is a JSON array of short strings; the UI shows at most 3.
	Rationale datatypes.JSON `json:"rationale"`
	FitScore  int            `json:"fitScore" gorm:"not null"` // 0-100

	Votes []Vote `json:"-" gorm:"foreignKey:PlanCardID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RationaleList decodes the stored rationale JSON, empty on any failure.
func (pc *PlanCard) RationaleList() []string {
	var out []string
	if len(pc.Rationale) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(pc.Rationale, &out); err != nil {
		return []string{}
	}
	return out
}
