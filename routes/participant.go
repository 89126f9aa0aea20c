package routes

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Justlrnal4/golf-group-organizer/models"
	"github.com/Justlrnal4/golf-group-organizer/storage"
	"github.com/Justlrnal4/golf-group-organizer/utils"
	"github.com/kataras/iris/v12"
)

type joinOutingInput struct {
	Name            string            `json:"name" validate:"required,max=80"`
	SessionKey      string            `json:"sessionKey"`
	Availability    map[string]string `json:"availability" validate:"required"`
	MaxDriveMinutes int               `json:"maxDriveMinutes" validate:"required,gt=0"`
	Budget          string            `json:"budget" validate:"required,oneof=$ $$ $$$"`
	HolesPreference string            `json:"holesPreference" validate:"required,oneof=9 18 either"`
}

// JoinOuting adds a participant with their preference in one shot. The
// session key makes the operation idempotent: a repeat join from the same
// device returns the existing participant instead of duplicating it.
// Preferences are written once here and never updated.
func JoinOuting(ctx iris.Context) {
	outingID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithStatus(http.StatusBadRequest)
		return
	}

	var outing models.Outing
	if err := storage.DB.First(&outing, outingID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}
	if outing.Status != "open" {
		utils.CreateError(iris.StatusConflict, "Outing Closed", "This outing is no longer accepting responses.", ctx)
		return
	}
	if !outing.Deadline.IsZero() && time.Now().After(outing.Deadline) {
		utils.CreateError(iris.StatusConflict, "Deadline Passed", "The response deadline for this outing has passed.", ctx)
		return
	}

	var input joinOutingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.SessionKey != "" {
		var existing models.Participant
		if err := storage.DB.Where("outing_id = ? AND session_key = ?", outingID, input.SessionKey).First(&existing).Error; err == nil {
			token, tokenErr := utils.CreateParticipantToken(existing.ID, outingID, existing.IsOrganizer)
			if tokenErr != nil {
				utils.CreateInternalServerError(ctx)
				return
			}
			ctx.JSON(iris.Map{"success": true, "participant": existing, "token": token, "alreadyJoined": true})
			return
		}
	}

	sessionKey := input.SessionKey
	if sessionKey == "" {
		sessionKey = utils.GenerateShortToken(16)
	}

	availabilityJSON, marshalErr := json.Marshal(input.Availability)
	if marshalErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	participant := models.Participant{
		OutingID:   outingID,
		Name:       input.Name,
		SessionKey: sessionKey,
	}
	if err := storage.DB.Create(&participant).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	preference := models.Preference{
		ParticipantID:   participant.ID,
		OutingID:        outingID,
		Availability:    availabilityJSON,
		MaxDriveMinutes: input.MaxDriveMinutes,
		Budget:          input.Budget,
		HolesPreference: input.HolesPreference,
	}
	if err := storage.DB.Create(&preference).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	participant.Preference = &preference

	token, tokenErr := utils.CreateParticipantToken(participant.ID, outingID, false)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(http.StatusCreated)
	ctx.JSON(iris.Map{
		"success":     true,
		"participant": participant,
		"sessionKey":  sessionKey,
		"token":       token,
	})
}

// ListParticipants returns the roster with preference state for the outing.
func ListParticipants(ctx iris.Context) {
	outingID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithStatus(http.StatusBadRequest)
		return
	}

	var participants []models.Participant
	storage.DB.Where("outing_id = ?", outingID).Order("id").Preload("Preference").Find(&participants)

	ctx.JSON(iris.Map{"success": true, "participants": participants})
}
