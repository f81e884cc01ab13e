package services

import (
	"context"
	"tripy/internal/models/trip_models"
	"tripy/pkg/utils"
)

// ItineraryBuilderInterface assembles the final plan once every selection is
// in place. It is the only component that computes the combined total.
type ItineraryBuilderInterface interface {
	Build(ctx context.Context, tripCtx *trip_models.TripContext) (*trip_models.FinalItinerary, error)
}

type ItineraryBuilder struct {
	cabService CabServiceInterface
}

func NewItineraryBuilder(cabService CabServiceInterface) ItineraryBuilderInterface {
	return &ItineraryBuilder{cabService: cabService}
}

// Build prices the combined plan. Transport and hotel scale with party size;
// the two cab legs are single bookings and are added once. Calling Build
// before the finalization gate passes is a contract violation.
func (b *ItineraryBuilder) Build(ctx context.Context, tripCtx *trip_models.TripContext) (*trip_models.FinalItinerary, error) {
	if !tripCtx.ReadyToFinalize() {
		return nil, utils.ErrItineraryNotReady
	}

	cabToStation, err := b.cabService.Estimate(ctx, tripCtx.Origin+" City", tripCtx.Origin+" Station")
	if err != nil {
		return nil, utils.ErrSearchUnavailable
	}
	cabToHotel, err := b.cabService.Estimate(ctx, tripCtx.Destination+" Station", tripCtx.SelectedHotel.Name)
	if err != nil {
		return nil, utils.ErrSearchUnavailable
	}

	partySize := int64(tripCtx.PartySize)
	transportTotal := tripCtx.SelectedOutboundTransport.Price
	if tripCtx.SelectedReturnTransport != nil {
		transportTotal += tripCtx.SelectedReturnTransport.Price
	}
	total := transportTotal*partySize +
		tripCtx.SelectedHotel.Price*partySize +
		cabToStation.Price +
		cabToHotel.Price

	itinerary := &trip_models.FinalItinerary{
		Outbound:     *tripCtx.SelectedOutboundTransport,
		Hotel:        *tripCtx.SelectedHotel,
		CabToStation: cabToStation,
		CabToHotel:   cabToHotel,
		PartySize:    tripCtx.PartySize,
		Total:        total,
		Currency:     "INR",
	}
	if tripCtx.SelectedReturnTransport != nil {
		ret := *tripCtx.SelectedReturnTransport
		itinerary.Return = &ret
	}
	return itinerary, nil
}
