package request_models

import "tripy/internal/models/trip_models"

type TravelerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookTripRequest hands a finalized plan to the booking fan-out. The context
// must carry a final itinerary; anything earlier in the conversation is
// rejected.
type BookTripRequest struct {
	Context  *trip_models.TripContext `json:"context"`
	Traveler TravelerDetails          `json:"traveler"`
}
