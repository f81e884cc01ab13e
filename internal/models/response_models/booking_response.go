package response_models

// LegResult is the individual outcome of one booked leg. A failed sibling
// never erases a confirmed leg; clients always see the full breakdown.
type LegResult struct {
	LegID            string `json:"leg_id"`
	Kind             string `json:"kind"`
	DisplayName      string `json:"display_name"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	Status           string `json:"status"`
	ConfirmationCode string `json:"confirmation_code,omitempty"`
	Error            string `json:"error,omitempty"`
}

type BookingResult struct {
	BookingID   string      `json:"booking_id"`
	Status      string      `json:"status"`
	TotalAmount int64       `json:"total_amount"`
	Currency    string      `json:"currency"`
	Legs        []LegResult `json:"legs"`
}

type BookingSummary struct {
	BookingID   string      `json:"booking_id"`
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	TravelDate  string      `json:"travel_date"`
	ReturnDate  string      `json:"return_date,omitempty"`
	PartySize   int         `json:"party_size"`
	TotalAmount int64       `json:"total_amount"`
	Currency    string      `json:"currency"`
	Status      string      `json:"status"`
	Legs        []LegResult `json:"legs,omitempty"`
}
