package request_models

type CheckoutRequest struct {
	BookingID string `json:"booking_id"`
}
