package main

import (
	"fmt"
	"log"

	"github.com/Justlrnal4/golf-group-organizer/models"
	"github.com/Justlrnal4/golf-group-organizer/storage"
)

// Seeds the static course catalog. Safe to re-run: courses are keyed by name.
func main() {
	storage.InitializeDB()

	courses := []models.Course{
		{Name: "Willow Creek Municipal", Address: "1200 Willow Creek Rd, Springfield", PriceTier: models.BudgetLow, HolesAvailable: "9"},
		{Name: "Fairview Links", Address: "88 Fairview Ave, Springfield", PriceTier: models.BudgetLow, HolesAvailable: "18"},
		{Name: "Cedar Hollow Golf Club", Address: "450 Cedar Hollow Ln, Maplewood", PriceTier: models.BudgetMid, HolesAvailable: "both"},
		{Name: "Stonebridge Country Club", Address: "2 Stonebridge Dr, Maplewood", PriceTier: models.BudgetMid, HolesAvailable: "18"},
		{Name: "Lakeside Par 3", Address: "9 Lakeside Loop, Riverton", PriceTier: models.BudgetLow, HolesAvailable: "9"},
		{Name: "Eagle Ridge Championship", Address: "777 Eagle Ridge Pkwy, Riverton", PriceTier: models.BudgetHigh, HolesAvailable: "18"},
		{Name: "Pinehurst Valley", Address: "31 Pinehurst Valley Rd, Oakdale", PriceTier: models.BudgetHigh, HolesAvailable: "both"},
		{Name: "Meadowbrook Public Course", Address: "640 Meadowbrook St, Oakdale", PriceTier: models.BudgetMid, HolesAvailable: "9"},
	}

	seeded := 0
	for _, course := range courses {
		row := course
		result := storage.DB.Where("name = ?", course.Name).FirstOrCreate(&row)
		if result.Error != nil {
			log.Fatalf("Error seeding course %q: %v", course.Name, result.Error)
		}
		if result.RowsAffected > 0 {
			seeded++
		}
	}

	fmt.Printf("Course catalog seeded: %d new, %d total\n", seeded, len(courses))
}
