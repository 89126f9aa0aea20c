package routes

import (
	"errors"
	"net/http"

	"github.com/Justlrnal4/golf-group-organizer/models"
	"github.com/Justlrnal4/golf-group-organizer/services"
	"github.com/Justlrnal4/golf-group-organizer/storage"
	"github.com/Justlrnal4/golf-group-organizer/utils"
	"github.com/kataras/iris/v12"
	jsonWT "github.com/kataras/iris/v12/middleware/jwt"
)

// GeneratePlans runs the full synthesis pipeline for an outing and replaces
// its plan card set. No-overlap and no-matching-courses are normal outcomes
// reported with 200; synthesis failures map to distinct statuses so callers
// can decide whether a retry makes sense.
func GeneratePlans(ctx iris.Context) {
	outingID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithStatus(http.StatusBadRequest)
		return
	}

	planner := services.NewPlannerService()
	generation, genErr := planner.GeneratePlans(ctx.Request().Context(), outingID)
	if genErr != nil {
		switch {
		case errors.Is(genErr, services.ErrOutingNotFound):
			utils.CreateNotFound(ctx)
		case errors.Is(genErr, services.ErrSynthRateLimited):
			utils.JSONError(ctx, iris.StatusTooManyRequests, "rate_limited", "Rate limit exceeded, please try again later.")
		case errors.Is(genErr, services.ErrSynthQuotaExhausted):
			utils.JSONError(ctx, iris.StatusPaymentRequired, "quota_exhausted", "AI credits depleted.")
		case errors.Is(genErr, services.ErrSynthUnreachable):
			utils.JSONError(ctx, iris.StatusBadGateway, "synthesis_unreachable", "Plan generation service is unavailable.")
		case errors.Is(genErr, services.ErrSynthMalformed):
			utils.JSONError(ctx, iris.StatusUnprocessableEntity, "malformed_synthesis_output", "Plan generation returned unusable output.")
		default:
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	switch generation.Outcome {
	case services.OutcomeNoOverlap:
		ctx.JSON(iris.Map{
			"success": false,
			"outcome": generation.Outcome,
			"message": "No time window works for at least two people yet.",
			"overlap": generation.Overlap,
		})
	case services.OutcomeNoMatchingCourses:
		ctx.JSON(iris.Map{
			"success": false,
			"outcome": generation.Outcome,
			"message": "No courses match your group's constraints.",
			"overlap": generation.Overlap,
		})
	default:
		ctx.JSON(iris.Map{
			"success": true,
			"outcome": generation.Outcome,
			"overlap": generation.Overlap,
			"plans":   generation.Plans,
		})
	}
}

type planWithVotes struct {
	models.PlanCard
	Rationale []string `json:"rationale"`
	UpCount   int64    `json:"upCount"`
	DownCount int64    `json:"downCount"`
	MyVote    string   `json:"myVote"` // up | down | none
}

// ListPlans returns the outing's current plan cards ranked by fit score,
// each with live tallies and the caller's own vote.
func ListPlans(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.ParticipantToken)

	outingID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithStatus(http.StatusBadRequest)
		return
	}

	var cards []models.PlanCard
	storage.DB.Where("outing_id = ?", outingID).Order("fit_score DESC, id").Find(&cards)

	plans := make([]planWithVotes, 0, len(cards))
	for i := range cards {
		entry := planWithVotes{
			PlanCard:  cards[i],
			Rationale: cards[i].RationaleList(),
			MyVote:    services.VoterChoice(storage.DB, cards[i].ID, claims.ID),
		}
		entry.UpCount, entry.DownCount = services.TallyVotes(storage.DB, cards[i].ID)

		plans = append(plans, entry)
	}

	ctx.JSON(iris.Map{"success": true, "plans": plans})
}
