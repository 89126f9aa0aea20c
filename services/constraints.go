package services

import "github.com/Justlrnal4/golf-group-organizer/models"

// ConstraintEnvelope is the single most restrictive combination of the
// group's submitted constraints.
type ConstraintEnvelope struct {
	Budget            string `json:"budget"`
	BudgetDescription string `json:"budgetDescription"`
	MaxDriveMinutes   int    `json:"maxDriveMinutes"`
	HolesPreference   string `json:"holesPreference"`
}

const (
	defaultDriveMinutes = 30
	defaultBudget       = models.BudgetMid
)

var budgetOrder = map[string]int{
	models.BudgetLow:  1,
	models.BudgetMid:  2,
	models.BudgetHigh: 3,
}

var budgetDescriptions = map[string]string{
	models.BudgetLow:  "Under $50",
	models.BudgetMid:  "$50-100",
	models.BudgetHigh: "$100+",
}

// BudgetRank maps a tier to its ordinal, reading unknown tiers as mid.
func BudgetRank(tier string) int {
	if order, ok := budgetOrder[tier]; ok {
		return order
	}
	return budgetOrder[defaultBudget]
}

// ResolveConstraints aggregates every preference into the envelope:
// lowest budget tier wins, minimum drive time wins, and holes require a
// strict consensus (one dissenter forces "either"). An empty preference
// list yields the documented defaults.
func ResolveConstraints(preferences []models.Preference) ConstraintEnvelope {
	if len(preferences) == 0 {
		return ConstraintEnvelope{
			Budget:            defaultBudget,
			BudgetDescription: budgetDescriptions[defaultBudget],
			MaxDriveMinutes:   defaultDriveMinutes,
			HolesPreference:   "either",
		}
	}

	minBudget := models.BudgetHigh
	minBudgetOrder := budgetOrder[models.BudgetHigh]
	for i := range preferences {
		if order := BudgetRank(preferences[i].Budget); order < minBudgetOrder {
			minBudgetOrder = order
			minBudget = preferences[i].Budget
		}
	}

	minDrive := 0
	for i := range preferences {
		drive := preferences[i].MaxDriveMinutes
		if drive <= 0 {
			drive = defaultDriveMinutes
		}
		if minDrive == 0 || drive < minDrive {
			minDrive = drive
		}
	}

	all18 := true
	all9 := true
	for i := range preferences {
		holes := preferences[i].HolesPreference
		if holes == "" {
			holes = "either"
		}
		if holes != "18" {
			all18 = false
		}
		if holes != "9" {
			all9 = false
		}
	}
	holesResult := "either"
	if all18 {
		holesResult = "18"
	} else if all9 {
		holesResult = "9"
	}

	description, ok := budgetDescriptions[minBudget]
	if !ok {
		description = budgetDescriptions[defaultBudget]
	}

	return ConstraintEnvelope{
		Budget:            minBudget,
		BudgetDescription: description,
		MaxDriveMinutes:   minDrive,
		HolesPreference:   holesResult,
	}
}
