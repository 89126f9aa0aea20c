package routes

import (
	"net/http"
	"time"

	"github.com/Justlrnal4/golf-group-organizer/models"
	"github.com/Justlrnal4/golf-group-organizer/services"
	"github.com/Justlrnal4/golf-group-organizer/storage"
	"github.com/Justlrnal4/golf-group-organizer/utils"
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	jsonWT "github.com/kataras/iris/v12/middleware/jwt"
)

type createOutingInput struct {
	Title          string `json:"title" validate:"required,max=120"`
	LocationZip    string `json:"locationZip" validate:"max=16"`
	OrganizerName  string `json:"organizerName" validate:"required,max=80"`
	DateRangeStart string `json:"dateRangeStart" validate:"required"` // YYYY-MM-DD
	DateRangeEnd   string `json:"dateRangeEnd" validate:"required"`   // YYYY-MM-DD
	Deadline       string `json:"deadline"`                           // RFC3339, optional
	SessionKey     string `json:"sessionKey"`
}

// CreateOuting creates the outing plus its organizer participant and hands
// back the share code and the organizer's participant token.
func CreateOuting(ctx iris.Context) {
	var input createOutingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	rangeStart, startErr := time.Parse("2006-01-02", input.DateRangeStart)
	rangeEnd, endErr := time.Parse("2006-01-02", input.DateRangeEnd)
	if startErr != nil || endErr != nil || rangeEnd.Before(rangeStart) {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "dateRangeStart and dateRangeEnd must be YYYY-MM-DD with end not before start.", ctx)
		return
	}

	// zero deadline means "no deadline"
	var deadline time.Time
	if input.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, input.Deadline)
		if err != nil {
			utils.CreateError(iris.StatusBadRequest, "Bad Request", "deadline must be RFC3339.", ctx)
			return
		}
		deadline = parsed
	}

	sessionKey := input.SessionKey
	if sessionKey == "" {
		sessionKey = utils.GenerateShortToken(16)
	}

	outing := models.Outing{
		Title:          input.Title,
		LocationZip:    input.LocationZip,
		ShareCode:      uuid.NewString(),
		Status:         "open",
		Deadline:       deadline,
		DateRangeStart: rangeStart,
		DateRangeEnd:   rangeEnd,
	}
	if err := storage.DB.Create(&outing).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	organizer := models.Participant{
		OutingID:    outing.ID,
		Name:        input.OrganizerName,
		IsOrganizer: true,
		SessionKey:  sessionKey,
	}
	if err := storage.DB.Create(&organizer).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	token, tokenErr := utils.CreateParticipantToken(organizer.ID, outing.ID, true)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(http.StatusCreated)
	ctx.JSON(iris.Map{
		"success":     true,
		"outing":      outing,
		"participant": organizer,
		"sessionKey":  sessionKey,
		"token":       token,
	})
}

// GetOutingByCode resolves a share code for the join flow. Only public
// fields are returned; no token is involved yet.
func GetOutingByCode(ctx iris.Context) {
	code := ctx.Params().Get("code")

	var outing models.Outing
	if err := storage.DB.Where("share_code = ?", code).First(&outing).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var participantCount int64
	storage.DB.Model(&models.Participant{}).Where("outing_id = ?", outing.ID).Count(&participantCount)

	ctx.JSON(iris.Map{
		"success": true,
		"outing": iris.Map{
			"id":             outing.ID,
			"title":          outing.Title,
			"locationZip":    outing.LocationZip,
			"status":         outing.Status,
			"deadline":       outing.Deadline,
			"dateRangeStart": outing.DateRangeStart,
			"dateRangeEnd":   outing.DateRangeEnd,
		},
		"participantCount": participantCount,
	})
}

// GetOuting returns the outing with its roster, preference state and the
// current overlap summary (windows, constraint envelope, hasOverlap).
func GetOuting(ctx iris.Context) {
	outingID, err := ctx.Params().GetUint("id")
	if err != nil {
		ctx.StopWithStatus(http.StatusBadRequest)
		return
	}

	var outing models.Outing
	if err := storage.DB.Preload("Participants").Preload("Participants.Preference").First(&outing, outingID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var preferences []models.Preference
	storage.DB.Where("outing_id = ?", outingID).Order("id").Find(&preferences)

	overlap := services.ComputeOverlap(outing.DateRangeStart, outing.DateRangeEnd, outing.Participants, preferences)

	ctx.JSON(iris.Map{
		"success": true,
		"outing":  outing,
		"overlap": overlap,
	})
}

// CloseOuting flips the outing to closed. Organizer only; closing is the
// only status transition the server performs.
func CloseOuting(ctx iris.Context) {
	claims := jsonWT.Get(ctx).(*utils.ParticipantToken)

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
	if claims.OutingID != outing.ID {
		ctx.StopWithStatus(http.StatusForbidden)
		return
	}

	if outing.Status != "closed" {
		if err := storage.DB.Model(&outing).Update("status", "closed").Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	ctx.JSON(iris.Map{"success": true, "outing": outing})
}
