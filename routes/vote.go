package routes

import (
	"net/http"

	"github.com/Justlrnal4/golf-group-organizer/models"
	"github.com/Justlrnal4/golf-group-organizer/services"
	"github.com/Justlrnal4/golf-group-organizer/storage"
	"github.com/Justlrnal4/golf-group-organizer/utils"
	"github.com/kataras/iris/v12"
	jsonWT "github.com/kataras/iris/v12/middleware/jwt"
)

type castVoteInput struct {
	Vote string `json:"vote" validate:"required,oneof=up down"`
}

// CastVote records or overwrites the caller's vote on a plan card, then
// publishes the fresh tallies on the outing's vote channel.
func CastVote(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.ParticipantToken)

	planCardID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithStatus(http.StatusBadRequest)
		return
	}

	var input castVoteInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var card models.PlanCard
	if err := storage.DB.First(&card, planCardID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	if card.OutingID != claims.OutingID {
		ctx.StopWithStatus(http.StatusForbidden)
		return
	}

	if err := services.CastVote(storage.DB, planCardID, claims.ID, input.Vote); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	upCount, downCount := services.TallyVotes(storage.DB, planCardID)

	voteEvents := services.NewVoteEventService()
	go voteEvents.Publish(services.VoteEvent{
		OutingID:      card.OutingID,
		PlanCardID:    planCardID,
		ParticipantID: claims.ID,
		Vote:          input.Vote,
		UpCount:       upCount,
		DownCount:     downCount,
	})

	ctx.JSON(iris.Map{
		"success":   true,
		"myVote":    input.Vote,
		"upCount":   upCount,
		"downCount": downCount,
	})
}

// GetVotes returns live tallies for a plan card plus the caller's choice.
func GetVotes(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.ParticipantToken)

	planCardID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithStatus(http.StatusBadRequest)
		return
	}

	var card models.PlanCard
	if err := storage.DB.First(&card, planCardID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	if card.OutingID != claims.OutingID {
		ctx.StopWithStatus(http.StatusForbidden)
		return
	}

	upCount, downCount := services.TallyVotes(storage.DB, planCardID)

	ctx.JSON(iris.Map{
		"success":   true,
		"upCount":   upCount,
		"downCount": downCount,
		"myVote":    services.VoterChoice(storage.DB, planCardID, claims.ID),
	})
}
