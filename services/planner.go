package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/Justlrnal4/golf-group-organizer/models"
	"github.com/Justlrnal4/golf-group-organizer/storage"
	"gorm.io/gorm"
)

// Terminal outcomes of a generation pass that are not errors.
const (
	OutcomePlansGenerated    = "plans_generated"
	OutcomeNoOverlap         = "no_overlap"
	OutcomeNoMatchingCourses = "no_matching_courses"
)

var ErrOutingNotFound = errors.New("outing not found")

const maxPlanCards = 3

// PlanGeneration is the result of one pipeline pass.
type PlanGeneration struct {
	Outcome        string
	Overlap        OverlapResult
	MatchedCourses []models.Course
	Plans          []models.PlanCard
}

// PlannerService runs the full pipeline: overlap, constraints, course
// matching, synthesis, validation and the replace-persist of plan cards.
type PlannerService struct {
	db    *gorm.DB
	synth *SynthesisService
}

func NewPlannerService() *PlannerService {
	return &PlannerService{db: storage.DB, synth: NewSynthesisService()}
}

// GeneratePlans computes the group's overlap and constraints for the outing,
// matches courses, asks the synthesis gateway for 2-3 proposals, validates
// them and replaces the outing's plan card set in one transaction.
//
// Existing plan cards are only deleted after validation succeeds, so a
// failed pass never leaves the outing without its previous proposals.
// Running two passes concurrently for the same outing is not supported.
func (s *PlannerService) GeneratePlans(ctx context.Context, outingID uint) (*PlanGeneration, error) {
	var outing models.Outing
	if err := s.db.First(&outing, outingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOutingNotFound
		}
		return nil, err
	}

	var participants []models.Participant
	if err := s.db.Where("outing_id = ?", outingID).Order("id").Find(&participants).Error; err != nil {
		return nil, err
	}

	var preferences []models.Preference
	if err := s.db.Where("outing_id = ?", outingID).Order("id").Find(&preferences).Error; err != nil {
		return nil, err
	}

	overlap := ComputeOverlap(outing.DateRangeStart, outing.DateRangeEnd, participants, preferences)
	if !overlap.HasOverlap {
		return &PlanGeneration{Outcome: OutcomeNoOverlap, Overlap: overlap}, nil
	}

	var catalog []models.Course
	if err := s.db.Order("id").Find(&catalog).Error; err != nil {
		return nil, err
	}

	matched := MatchCourses(catalog, overlap.Constraints)
	if len(matched) == 0 {
		return &PlanGeneration{Outcome: OutcomeNoMatchingCourses, Overlap: overlap}, nil
	}

	candidates, err := s.synth.GeneratePlanCandidates(ctx, SynthesisRequest{
		Outing:      outing,
		GroupSize:   len(participants),
		Windows:     overlap.Windows,
		Constraints: overlap.Constraints,
		Courses:     matched,
	})
	if err != nil {
		return nil, err
	}

	cards, err := BuildPlanCards(outing, matched, candidates)
	if err != nil {
		return nil, err
	}

	// Full replace, gated on validation above. Delete and insert share one
	// transaction so no partial card set is ever visible.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("outing_id = ?", outingID).Delete(&models.PlanCard{}).Error; err != nil {
			return err
		}
		return tx.Create(&cards).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("generated %d plans for outing %d", len(cards), outingID)

	return &PlanGeneration{
		Outcome:        OutcomePlansGenerated,
		Overlap:        overlap,
		MatchedCourses: matched,
		Plans:          cards,
	}, nil
}

const defaultFitScore = 80

// BuildPlanCards validates untrusted candidates against the matched course
// set and the outing's date range. Candidates naming a course outside the
// matched set, or with a time window that cannot be placed inside the date
// range, are dropped; if nothing survives the whole batch counts as
// malformed output.
func BuildPlanCards(outing models.Outing, matched []models.Course, candidates []PlanCandidate) ([]models.PlanCard, error) {
	coursesByName := make(map[string]models.Course, len(matched))
	for _, c := range matched {
		coursesByName[c.Name] = c
	}

	rangeStart := dateOnly(outing.DateRangeStart)
	rangeEnd := dateOnly(outing.DateRangeEnd).AddDate(0, 0, 1) // exclusive upper bound

	cards := []models.PlanCard{}
	for _, cand := range candidates {
		course, ok := coursesByName[cand.CourseName]
		if !ok {
			log.Printf("dropping plan candidate with unknown course %q", cand.CourseName)
			continue
		}

		start, startErr := time.Parse(time.RFC3339, cand.TimeWindow.Start)
		end, endErr := time.Parse(time.RFC3339, cand.TimeWindow.End)
		if startErr != nil || endErr != nil || !end.After(start) {
			log.Printf("dropping plan candidate with bad time window %q-%q", cand.TimeWindow.Start, cand.TimeWindow.End)
			continue
		}
		if start.Before(rangeStart) || end.After(rangeEnd) {
			log.Printf("dropping plan candidate outside outing range: %s", cand.TimeWindow.Start)
			continue
		}

		fitScore := defaultFitScore
		if cand.FitScore != nil {
			fitScore = *cand.FitScore
		}
		if fitScore < 0 {
			fitScore = 0
		}
		if fitScore > 100 {
			fitScore = 100
		}

		title := cand.Title
		if title == "" {
			title = "Golf at " + course.Name
		}

		rationale := cand.Rationale
		if rationale == nil {
			rationale = []string{}
		}
		if len(rationale) > 3 {
			rationale = rationale[:3]
		}
		rationaleJSON, err := json.Marshal(rationale)
		if err != nil {
			return nil, err
		}

		cards = append(cards, models.PlanCard{
			OutingID:        outing.ID,
			Title:           title,
			CourseName:      course.Name,
			CourseAddress:   course.Address, // catalog wins over whatever the model echoed
			TimeWindowStart: start,
			TimeWindowEnd:   end,
			EstimatedCost:   cand.EstimatedCost,
			DriveTime:       cand.DriveTime,
			Rationale:       rationaleJSON,
			FitScore:        fitScore,
		})

		if len(cards) == maxPlanCards {
			break
		}
	}

	if len(cards) == 0 {
		return nil, ErrSynthMalformed
	}
	return cards, nil
}
