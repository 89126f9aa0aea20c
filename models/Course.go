package models

import "time"

// Course is a golf venue from the static catalog. Rows are seeded by
// scripts/seed_courses.go and never mutated by the server.
type Course struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:120;not null;uniqueIndex"`
	Address string `json:"address" gorm:"size:255;not null"`

	PriceTier      string `json:"priceTier" gorm:"size:4;index"`      // $ | $$ | $$$
	HolesAvailable string `json:"holesAvailable" gorm:"size:8;index"` // 9 | 18 | both

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
