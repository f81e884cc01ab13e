package response_models

import "tripy/internal/models/trip_models"

// TripTurnResponse is the turn-level reply. When NeedsInput is true the
// client should ask the user the Prompt question and send the answer back
// with the new context; AskingFor is the machine-readable slot identifier.
// When NeedsInput is false the Itinerary is complete and ready for booking.
type TripTurnResponse struct {
	NeedsInput bool                        `json:"needs_input"`
	AskingFor  trip_models.SlotName        `json:"asking_for,omitempty"`
	Prompt     string                      `json:"prompt,omitempty"`
	Message    string                      `json:"message,omitempty"`
	Context    *trip_models.TripContext    `json:"context"`
	Transport  []trip_models.TransportOption `json:"transport_options,omitempty"`
	Hotels     []trip_models.HotelOption     `json:"hotel_options,omitempty"`
	Itinerary  *trip_models.FinalItinerary   `json:"itinerary,omitempty"`
}
