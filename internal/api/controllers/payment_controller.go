package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripy/internal/models/request_models"
	"tripy/internal/services"
	"tripy/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateCheckout godoc
// @Summary Create a payment link for a booking
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body request_models.CheckoutRequest true "Booking ID"
// @Success 200 {object} response_models.CreateCheckoutResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/checkout [post]
func (p *PaymentController) CreateCheckout(c *gin.Context) {
	var req request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BookingID == "" {
		utils.RespondError(c, http.StatusBadRequest, "BookingID is required")
		return
	}

	userID := c.GetString("user_id")

	resp, err := p.paymentService.CreateCheckoutForBooking(c.Request.Context(), userID, req.BookingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Checkout created successfully")
}

// Webhook godoc
// @Summary Payment provider webhook
// @Description Receives payment notifications from payOS. Signature is verified before any state change.
// @Tags Payment
// @Accept json
// @Produce json
// @Router /payments/webhook [post]
func (p *PaymentController) Webhook(c *gin.Context) {
	p.paymentService.HandleWebhook(c)
}
