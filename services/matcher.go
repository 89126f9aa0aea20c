package services

import "github.com/Justlrnal4/golf-group-organizer/models"

// MatchCourses filters the catalog down to courses the whole group can
// accept: price tier at or below the envelope's budget, and holes either
// unconstrained, supported both ways, or an exact match.
//
// An empty result is a meaningful outcome ("relax your constraints") and
// callers must not fall back to the unfiltered catalog.
func MatchCourses(catalog []models.Course, constraints ConstraintEnvelope) []models.Course {
	maxBudgetOrder := BudgetRank(constraints.Budget)

	matched := []models.Course{}
	for _, course := range catalog {
		if BudgetRank(course.PriceTier) > maxBudgetOrder {
			continue
		}
		if constraints.HolesPreference != "either" &&
			course.HolesAvailable != "both" &&
			course.HolesAvailable != constraints.HolesPreference {
			continue
		}
		matched = append(matched, course)
	}
	return matched
}
