package db_models

import "github.com/google/uuid"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPartial   = "partial"
	BookingStatusFailed    = "failed"
	BookingStatusPaid      = "paid"
)

const (
	LegKindOutbound     = "outbound_transport"
	LegKindReturn       = "return_transport"
	LegKindHotel        = "hotel"
	LegKindCabToStation = "cab_to_station"
	LegKindCabToHotel   = "cab_to_hotel"
)

const (
	LegStatusConfirmed = "confirmed"
	LegStatusFailed    = "failed"
)

type Booking struct {
	BaseModel
	UserID      string
	Origin      string
	Destination string
	TravelDate  string
	ReturnDate  string
	PartySize   int
	TotalAmount int64
	Currency    string
	Status      string

	Legs []BookingLeg
}

// BookingLeg records one independently booked itinerary component and its
// individual outcome, so a partial booking keeps its confirmed legs visible.
type BookingLeg struct {
	BaseModel
	BookingID        uuid.UUID `gorm:"type:uuid;index"`
	Kind             string
	ProviderRef      string
	DisplayName      string
	Amount           int64
	Currency         string
	Status           string
	ConfirmationCode string
	FailureReason    string
}
