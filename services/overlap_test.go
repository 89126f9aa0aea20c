package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Justlrnal4/golf-group-organizer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func availabilityJSON(t *testing.T, m map[string]string) []byte {
	t.Helper()
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	return raw
}

func TestAvailableForSlot(t *testing.T) {
	avail := map[string]string{
		"2025-06-07": models.SlotEither,
		"2025-06-08": models.SlotMorning,
		"2025-06-09": models.SlotCant,
		"2025-06-10": "banana",
	}

	assert.True(t, availableForSlot(avail, "2025-06-07", models.SlotMorning))
	assert.True(t, availableForSlot(avail, "2025-06-07", models.SlotAfternoon))
	assert.True(t, availableForSlot(avail, "2025-06-08", models.SlotMorning))
	assert.False(t, availableForSlot(avail, "2025-06-08", models.SlotAfternoon))
	assert.False(t, availableForSlot(avail, "2025-06-09", models.SlotMorning))
	assert.False(t, availableForSlot(avail, "2025-06-09", models.SlotAfternoon))
	// unknown slot values never count as available
	assert.False(t, availableForSlot(avail, "2025-06-10", models.SlotMorning))
	// missing days never count as available
	assert.False(t, availableForSlot(avail, "2025-06-11", models.SlotMorning))
}

// The weekend scenario: organizer has no preference row and is assumed
// available everywhere; the two others overlap Saturday morning and one of
// them is free Sunday afternoon.
func TestComputeOverlapWeekendScenario(t *testing.T) {
	participants := []models.Participant{
		{ID: 1, OutingID: 1, Name: "Olive", IsOrganizer: true},
		{ID: 2, OutingID: 1, Name: "Mike"},
		{ID: 3, OutingID: 1, Name: "Sarah"},
	}
	preferences := []models.Preference{
		{ID: 1, ParticipantID: 2, OutingID: 1, Availability: availabilityJSON(t, map[string]string{
			"2025-06-07": models.SlotEither,
			"2025-06-08": models.SlotCant,
		})},
		{ID: 2, ParticipantID: 3, OutingID: 1, Availability: availabilityJSON(t, map[string]string{
			"2025-06-07": models.SlotMorning,
			"2025-06-08": models.SlotAfternoon,
		})},
	}

	result := ComputeOverlap(day("2025-06-07"), day("2025-06-08"), participants, preferences)

	require.True(t, result.HasOverlap)

	byKey := map[string]OverlapWindow{}
	for _, w := range result.Windows {
		byKey[w.Date+" "+w.TimeSlot] = w
	}

	satMorning, ok := byKey["2025-06-07 morning"]
	require.True(t, ok)
	assert.Equal(t, 3, satMorning.ParticipantCount)
	assert.Equal(t, 3, satMorning.TotalParticipants)
	assert.Equal(t, 1, satMorning.FitRank)
	assert.ElementsMatch(t, []string{"Olive", "Mike", "Sarah"}, satMorning.AvailableNames)

	sunAfternoon, ok := byKey["2025-06-08 afternoon"]
	require.True(t, ok)
	assert.Equal(t, 2, sunAfternoon.ParticipantCount)
	assert.Equal(t, 2, sunAfternoon.FitRank)

	// Mike said cant and Sarah said afternoon, so Sunday morning never
	// opens even though the organizer is assumed available.
	_, sunMorningExists := byKey["2025-06-08 morning"]
	assert.False(t, sunMorningExists)
}

func TestComputeOverlapSlotInstants(t *testing.T) {
	participants := []models.Participant{
		{ID: 1, Name: "Olive", IsOrganizer: true},
		{ID: 2, Name: "Mike"},
	}
	preferences := []models.Preference{
		{ID: 1, ParticipantID: 2, Availability: availabilityJSON(t, map[string]string{
			"2025-06-07": models.SlotEither,
		})},
	}

	result := ComputeOverlap(day("2025-06-07"), day("2025-06-07"), participants, preferences)

	require.Len(t, result.Windows, 2)
	for _, w := range result.Windows {
		switch w.TimeSlot {
		case models.SlotMorning:
			assert.Equal(t, 6, w.StartTime.Hour())
			assert.Equal(t, 12, w.EndTime.Hour())
		case models.SlotAfternoon:
			assert.Equal(t, 12, w.StartTime.Hour())
			assert.Equal(t, 18, w.EndTime.Hour())
		}
		assert.Equal(t, "2025-06-07", w.Date)
	}
	assert.True(t, result.HasOverlap)
}

func TestComputeOverlapOrganizerAloneOpensNoWindow(t *testing.T) {
	participants := []models.Participant{{ID: 1, Name: "Olive", IsOrganizer: true}}

	result := ComputeOverlap(day("2025-06-07"), day("2025-06-07"), participants, nil)

	assert.Empty(t, result.Windows)
	assert.False(t, result.HasOverlap)
}

func TestComputeOverlapOrganizerWithOwnPreference(t *testing.T) {
	participants := []models.Participant{
		{ID: 1, Name: "Olive", IsOrganizer: true},
		{ID: 2, Name: "Mike"},
	}
	preferences := []models.Preference{
		// organizer said cant; the auto-available rule must not apply
		{ID: 1, ParticipantID: 1, Availability: availabilityJSON(t, map[string]string{
			"2025-06-07": models.SlotCant,
		})},
		{ID: 2, ParticipantID: 2, Availability: availabilityJSON(t, map[string]string{
			"2025-06-07": models.SlotMorning,
		})},
	}

	result := ComputeOverlap(day("2025-06-07"), day("2025-06-07"), participants, preferences)

	require.Len(t, result.Windows, 1)
	assert.Equal(t, 1, result.Windows[0].ParticipantCount)
	assert.Equal(t, []string{"Mike"}, result.Windows[0].AvailableNames)
	assert.False(t, result.HasOverlap)
}

func TestComputeOverlapOrganizerNeverDoubleCounted(t *testing.T) {
	participants := []models.Participant{
		{ID: 1, Name: "Olive", IsOrganizer: true},
	}
	preferences := []models.Preference{
		{ID: 1, ParticipantID: 1, Availability: availabilityJSON(t, map[string]string{
			"2025-06-07": models.SlotEither,
		})},
	}

	result := ComputeOverlap(day("2025-06-07"), day("2025-06-07"), participants, preferences)

	require.Len(t, result.Windows, 2)
	for _, w := range result.Windows {
		assert.Equal(t, 1, w.ParticipantCount)
		assert.Equal(t, []string{"Olive"}, w.AvailableNames)
	}
}

func TestComputeOverlapNoPreferencesNoOrganizer(t *testing.T) {
	result := ComputeOverlap(day("2025-06-07"), day("2025-06-09"), nil, nil)

	assert.Empty(t, result.Windows)
	assert.False(t, result.HasOverlap)
}

func TestComputeOverlapWindowBounds(t *testing.T) {
	participants := []models.Participant{
		{ID: 1, Name: "Olive", IsOrganizer: true},
		{ID: 2, Name: "Mike"},
		{ID: 3, Name: "Sarah"},
		{ID: 4, Name: "Alex"},
	}
	preferences := []models.Preference{
		{ID: 1, ParticipantID: 2, Availability: availabilityJSON(t, map[string]string{
			"2025-06-07": models.SlotEither, "2025-06-08": models.SlotMorning, "2025-06-09": models.SlotCant,
		})},
		{ID: 2, ParticipantID: 3, Availability: availabilityJSON(t, map[string]string{
			"2025-06-08": models.SlotAfternoon, "2025-06-09": models.SlotEither,
		})},
		{ID: 3, ParticipantID: 4, Availability: availabilityJSON(t, map[string]string{
			"2025-06-07": models.SlotMorning,
		})},
	}

	result := ComputeOverlap(day("2025-06-07"), day("2025-06-09"), participants, preferences)

	require.NotEmpty(t, result.Windows)
	for _, w := range result.Windows {
		assert.GreaterOrEqual(t, w.ParticipantCount, 1)
		assert.LessOrEqual(t, w.ParticipantCount, w.TotalParticipants)
		assert.Equal(t, len(participants), w.TotalParticipants)
	}
}

func TestRankWindowsDense(t *testing.T) {
	windows := []OverlapWindow{
		{Date: "2025-06-07", TimeSlot: "morning", ParticipantCount: 2},
		{Date: "2025-06-07", TimeSlot: "afternoon", ParticipantCount: 4},
		{Date: "2025-06-08", TimeSlot: "morning", ParticipantCount: 4},
		{Date: "2025-06-08", TimeSlot: "afternoon", ParticipantCount: 3},
		{Date: "2025-06-09", TimeSlot: "morning", ParticipantCount: 2},
	}

	rankWindows(windows)

	counts := make([]int, len(windows))
	ranks := make([]int, len(windows))
	for i, w := range windows {
		counts[i] = w.ParticipantCount
		ranks[i] = w.FitRank
	}

	assert.Equal(t, []int{4, 4, 3, 2, 2}, counts)
	// ties share a rank and the next distinct count increments by exactly one
	assert.Equal(t, []int{1, 1, 2, 3, 3}, ranks)
}

func TestRankWindowsAdjacentInvariant(t *testing.T) {
	windows := []OverlapWindow{
		{ParticipantCount: 1}, {ParticipantCount: 5}, {ParticipantCount: 3},
		{ParticipantCount: 5}, {ParticipantCount: 3}, {ParticipantCount: 2},
	}

	rankWindows(windows)

	assert.Equal(t, 1, windows[0].FitRank)
	for i := 1; i < len(windows); i++ {
		prev, cur := windows[i-1], windows[i]
		if prev.ParticipantCount == cur.ParticipantCount {
			assert.Equal(t, prev.FitRank, cur.FitRank)
		} else {
			assert.Equal(t, prev.FitRank+1, cur.FitRank)
		}
	}
}
