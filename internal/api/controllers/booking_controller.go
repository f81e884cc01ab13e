package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tripy/internal/models/request_models"
	"tripy/internal/services"
	"tripy/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// BookTrip godoc
// @Summary Book a finalized trip plan
// @Description Fan out bookings for every leg of the final itinerary and persist the combined outcome
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body request_models.BookTripRequest true "Finalized trip context and traveler details"
// @Success 200 {object} response_models.BookingResult
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [post]
func (b *BookingController) BookTrip(c *gin.Context) {
	var req request_models.BookTripRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Context == nil {
		utils.RespondError(c, http.StatusBadRequest, "Trip context is required")
		return
	}

	userID := c.GetString("user_id")

	result, err := b.bookingService.BookItinerary(c.Request.Context(), userID, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Booking processed")
}

// GetBooking godoc
// @Summary Get one booking with its legs
// @Tags Booking
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response_models.BookingSummary
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId} [get]
func (b *BookingController) GetBooking(c *gin.Context) {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Booking ID is required")
		return
	}

	userID := c.GetString("user_id")

	summary, err := b.bookingService.GetBooking(c.Request.Context(), userID, bookingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Booking fetched successfully")
}

// ListBookings godoc
// @Summary List the authenticated user's bookings
// @Tags Booking
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(50)
// @Success 200 {array} response_models.BookingSummary
// @Security BearerAuth
// @Router /bookings [get]
func (b *BookingController) ListBookings(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 50 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-50)")
		return
	}

	userID := c.GetString("user_id")

	summaries, err := b.bookingService.ListBookings(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summaries, "Bookings fetched successfully")
}
