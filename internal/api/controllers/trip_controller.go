package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripy/internal/models/request_models"
	"tripy/internal/services"
	"tripy/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// HandleTurn godoc
// @Summary Process one conversational planning turn
// @Description Merge the utterance into the trip context and return either the next question or the next set of options
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.TripTurnRequest true "Utterance, prior context snapshot, optional geolocation"
// @Success 200 {object} response_models.TripTurnResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trip/turn [post]
func (t *TripController) HandleTurn(c *gin.Context) {
	var req request_models.TripTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := t.tripService.HandleTurn(c.Request.Context(), req.Utterance, req.Context, req.Geolocation)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Turn processed successfully")
}

// SelectTransport godoc
// @Summary Select a presented transport option
// @Description Pick one of the transport options presented on a previous turn, for the outbound or return leg
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.SelectTransportRequest true "Context snapshot, option ID, leg (outbound|return)"
// @Success 200 {object} response_models.TripTurnResponse
// @Failure 409 {object} utils.APIResponse
// @Router /trip/select-transport [post]
func (t *TripController) SelectTransport(c *gin.Context) {
	var req request_models.SelectTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OptionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "OptionID is required")
		return
	}

	resp, err := t.tripService.SelectTransport(c.Request.Context(), req.Context, req.OptionID, req.Leg)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Transport selected successfully")
}

// SelectHotel godoc
// @Summary Select a presented hotel option
// @Description Pick one of the hotel options presented on a previous turn and finalize the itinerary
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.SelectHotelRequest true "Context snapshot, option ID"
// @Success 200 {object} response_models.TripTurnResponse
// @Failure 409 {object} utils.APIResponse
// @Router /trip/select-hotel [post]
func (t *TripController) SelectHotel(c *gin.Context) {
	var req request_models.SelectHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OptionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "OptionID is required")
		return
	}

	resp, err := t.tripService.SelectHotel(c.Request.Context(), req.Context, req.OptionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Hotel selected successfully")
}
