package services

import (
	"time"

	"github.com/Justlrnal4/golf-group-organizer/models"
	"golang.org/x/exp/slices"
)

// OverlapWindow is one (day, half-day slot) pair with at least one available
// participant. Derived on every computation pass, never persisted.
type OverlapWindow struct {
	Date              string    `json:"date"` // YYYY-MM-DD
	TimeSlot          string    `json:"timeSlot"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	ParticipantCount  int       `json:"participantCount"`
	TotalParticipants int       `json:"totalParticipants"`
	AvailableNames    []string  `json:"availableNames"`
	FitRank           int       `json:"fitRank"`
}

// OverlapResult is the full output of an overlap pass over one outing.
type OverlapResult struct {
	Windows     []OverlapWindow    `json:"windows"`
	Constraints ConstraintEnvelope `json:"constraints"`
	HasOverlap  bool               `json:"hasOverlap"`
}

const (
	morningStartHour    = 6
	morningEndHour      = 12
	afternoonEndHour    = 18
	minOverlapHeadcount = 2
)

// availableForSlot decides whether a single availability map counts as
// available for a slot on a date. Missing days, "cant" and anything
// unrecognized read as not available; "either" covers both slots.
func availableForSlot(availability map[string]string, date string, slot string) bool {
	day, ok := availability[date]
	if !ok || day == models.SlotCant {
		return false
	}
	if day == models.SlotEither {
		return true
	}
	return day == slot
}

// ComputeOverlap walks every day in the outing's inclusive date range and
// both half-day slots, counting available participants per window.
//
// The organizer is assumed available for every slot unless they submitted a
// preference of their own, in which case they are treated like everyone
// else. They are never counted twice, and their assumed availability alone
// never opens a window: with zero submitted preferences there are zero
// windows.
func ComputeOverlap(rangeStart, rangeEnd time.Time, participants []models.Participant, preferences []models.Preference) OverlapResult {
	totalParticipants := len(participants)
	windows := []OverlapWindow{}

	participantByID := make(map[uint]*models.Participant, len(participants))
	var organizer *models.Participant
	for i := range participants {
		participantByID[participants[i].ID] = &participants[i]
		if participants[i].IsOrganizer {
			organizer = &participants[i]
		}
	}

	var organizerPref *models.Preference
	availabilityByPref := make([]map[string]string, len(preferences))
	for i := range preferences {
		availabilityByPref[i] = preferences[i].AvailabilityMap()
		if organizer != nil && preferences[i].ParticipantID == organizer.ID {
			organizerPref = &preferences[i]
		}
	}

	startDay := dateOnly(rangeStart)
	endDay := dateOnly(rangeEnd)

	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		dateKey := day.Format("2006-01-02")

		for _, slot := range []string{models.SlotMorning, models.SlotAfternoon} {
			availableNames := []string{}

			for i := range preferences {
				if !availableForSlot(availabilityByPref[i], dateKey, slot) {
					continue
				}
				if p, ok := participantByID[preferences[i].ParticipantID]; ok {
					availableNames = append(availableNames, p.Name)
				}
			}

			// Windows only exist where a submitted preference put someone in
			// them; the organizer's assumed availability widens a window but
			// never creates one on its own.
			if len(availableNames) == 0 {
				continue
			}

			if organizer != nil && !slices.Contains(availableNames, organizer.Name) {
				if organizerPref == nil || availableForSlot(organizerPref.AvailabilityMap(), dateKey, slot) {
					availableNames = append(availableNames, organizer.Name)
				}
			}

			startHour := morningStartHour
			endHour := morningEndHour
			if slot == models.SlotAfternoon {
				startHour = morningEndHour
				endHour = afternoonEndHour
			}

			windows = append(windows, OverlapWindow{
				Date:              dateKey,
				TimeSlot:          slot,
				StartTime:         time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, day.Location()),
				EndTime:           time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, day.Location()),
				ParticipantCount:  len(availableNames),
				TotalParticipants: totalParticipants,
				AvailableNames:    availableNames,
			})
		}
	}

	rankWindows(windows)

	hasOverlap := false
	for i := range windows {
		if windows[i].ParticipantCount >= minOverlapHeadcount {
			hasOverlap = true
			break
		}
	}

	return OverlapResult{
		Windows:     windows,
		Constraints: ResolveConstraints(preferences),
		HasOverlap:  hasOverlap,
	}
}

// rankWindows sorts by participant count descending and assigns dense ranks:
// ties share a rank and the next distinct count gets the previous rank plus
// one, so ranks never skip.
func rankWindows(windows []OverlapWindow) {
	slices.SortStableFunc(windows, func(a, b OverlapWindow) int {
		return b.ParticipantCount - a.ParticipantCount
	})

	currentRank := 0
	previousCount := -1
	for i := range windows {
		if windows[i].ParticipantCount != previousCount {
			currentRank++
			previousCount = windows[i].ParticipantCount
		}
		windows[i].FitRank = currentRank
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
