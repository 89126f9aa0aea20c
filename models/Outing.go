package models

import "time"

// Outing is a planned golf trip for a small group. The date range is an
// inclusive pair of whole days; scheduling granularity below that is the
// morning/afternoon slot on each day.
// status: open | closed
type Outing struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:120;not null"`
	LocationZip string    `json:"locationZip" gorm:"size:16"`
	ShareCode   string    `json:"shareCode" gorm:"size:36;uniqueIndex"`
	Status      string    `json:"status" gorm:"size:12;index;default:open"`
	Deadline    time.Time `json:"deadline"`

	DateRangeStart time.Time `json:"dateRangeStart" gorm:"type:date;not null"`
	DateRangeEnd   time.Time `json:"dateRangeEnd" gorm:"type:date;not null"`

	Participants []Participant `json:"participants" gorm:"foreignKey:OutingID;constraint:OnDelete:CASCADE"`
	PlanCards    []PlanCard    `json:"planCards" gorm:"foreignKey:OutingID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
