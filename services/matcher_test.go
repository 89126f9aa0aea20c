package services

import (
	"testing"

	"github.com/Justlrnal4/golf-group-organizer/models"
	"github.com/stretchr/testify/assert"
)

var testCatalog = []models.Course{
	{ID: 1, Name: "Willow Creek Municipal", PriceTier: models.BudgetLow, HolesAvailable: "9"},
	{ID: 2, Name: "Fairview Links", PriceTier: models.BudgetLow, HolesAvailable: "18"},
	{ID: 3, Name: "Cedar Hollow Golf Club", PriceTier: models.BudgetMid, HolesAvailable: "both"},
	{ID: 4, Name: "Eagle Ridge Championship", PriceTier: models.BudgetHigh, HolesAvailable: "18"},
}

func courseNames(courses []models.Course) []string {
	names := make([]string, 0, len(courses))
	for _, c := range courses {
		names = append(names, c.Name)
	}
	return names
}

func TestMatchCoursesBudgetAtOrBelow(t *testing.T) {
	matched := MatchCourses(testCatalog, ConstraintEnvelope{Budget: models.BudgetMid, HolesPreference: "either"})

	assert.ElementsMatch(t,
		[]string{"Willow Creek Municipal", "Fairview Links", "Cedar Hollow Golf Club"},
		courseNames(matched))
}

func TestMatchCoursesHolesExactOrBoth(t *testing.T) {
	matched := MatchCourses(testCatalog, ConstraintEnvelope{Budget: models.BudgetHigh, HolesPreference: "18"})

	assert.ElementsMatch(t,
		[]string{"Fairview Links", "Cedar Hollow Golf Club", "Eagle Ridge Championship"},
		courseNames(matched))
}

// A "low budget, 18 holes" envelope against a catalog of one high-priced
// course and one low-priced 9-holer matches nothing; the pipeline reports
// that as its own outcome instead of producing plans from nothing.
func TestMatchCoursesEmptyResult(t *testing.T) {
	catalog := []models.Course{
		{Name: "Eagle Ridge Championship", PriceTier: models.BudgetHigh, HolesAvailable: "18"},
		{Name: "Lakeside Par 3", PriceTier: models.BudgetLow, HolesAvailable: "9"},
	}

	matched := MatchCourses(catalog, ConstraintEnvelope{Budget: models.BudgetLow, HolesPreference: "18"})

	assert.Empty(t, matched)
}

func TestMatchCoursesIsPureFilter(t *testing.T) {
	envelope := ConstraintEnvelope{Budget: models.BudgetMid, HolesPreference: "9"}
	matched := MatchCourses(testCatalog, envelope)

	assert.LessOrEqual(t, len(matched), len(testCatalog))
	inCatalog := map[uint]bool{}
	for _, c := range testCatalog {
		inCatalog[c.ID] = true
	}
	for _, c := range matched {
		assert.True(t, inCatalog[c.ID])
		assert.LessOrEqual(t, BudgetRank(c.PriceTier), BudgetRank(envelope.Budget))
		assert.Contains(t, []string{"9", "both"}, c.HolesAvailable)
	}
}

func TestMatchCoursesEmptyCatalog(t *testing.T) {
	matched := MatchCourses(nil, ConstraintEnvelope{Budget: models.BudgetHigh, HolesPreference: "either"})
	assert.Empty(t, matched)
}
