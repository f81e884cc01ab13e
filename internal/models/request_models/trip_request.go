package request_models

import "tripy/internal/models/trip_models"

type Geolocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TripTurnRequest is one conversational turn. The context is the snapshot the
// client received on the previous turn; omitting it starts a fresh
// conversation.
type TripTurnRequest struct {
	Utterance   string                   `json:"utterance"`
	Context     *trip_models.TripContext `json:"context"`
	Geolocation *Geolocation             `json:"geolocation"`
}

const (
	SelectionLegOutbound = "outbound"
	SelectionLegReturn   = "return"
)

type SelectTransportRequest struct {
	Context  *trip_models.TripContext `json:"context"`
	OptionID string                   `json:"option_id"`
	Leg      string                   `json:"leg"`
}

type SelectHotelRequest struct {
	Context  *trip_models.TripContext `json:"context"`
	OptionID string                   `json:"option_id"`
}
