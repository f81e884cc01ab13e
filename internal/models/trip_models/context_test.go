package trip_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredSlotsOrdering(t *testing.T) {
	oneWay := &TripContext{}
	assert.Equal(t, []SlotName{
		SlotOrigin, SlotDestination, SlotTravelDate,
		SlotTransportMode, SlotBudgetTier, SlotPartySize,
	}, oneWay.RequiredSlots())

	roundTrip := &TripContext{IsRoundTrip: true}
	assert.Equal(t, []SlotName{
		SlotOrigin, SlotDestination, SlotTravelDate, SlotReturnDate,
		SlotTransportMode, SlotBudgetTier, SlotPartySize,
	}, roundTrip.RequiredSlots())
}

func TestFirstUnresolvedSlotProgression(t *testing.T) {
	c := &TripContext{}

	unresolved := FirstUnresolvedSlot(c)
	require.NotNil(t, unresolved)
	assert.Equal(t, SlotOrigin, *unresolved)

	c.Origin = "Delhi"
	c.Destination = "Mumbai"
	unresolved = FirstUnresolvedSlot(c)
	require.NotNil(t, unresolved)
	assert.Equal(t, SlotTravelDate, *unresolved)

	c.TravelDate = "2025-08-18"
	c.TransportMode = ModeTrain
	c.BudgetTier = BudgetMedium
	c.PartySize = 2
	assert.Nil(t, FirstUnresolvedSlot(c))

	// Flipping to a round trip re-opens the return date.
	c.IsRoundTrip = true
	unresolved = FirstUnresolvedSlot(c)
	require.NotNil(t, unresolved)
	assert.Equal(t, SlotReturnDate, *unresolved)
}

func TestCloneIsIndependent(t *testing.T) {
	original := &TripContext{
		Origin: "Delhi",
		PresentedTransport: []TransportOption{
			{ID: "TR-1", Price: 900},
		},
		SelectedHotel: &HotelOption{ID: "hotel_1", Price: 2000},
	}

	clone := original.Clone()
	clone.Origin = "Pune"
	clone.PresentedTransport[0].Price = 1
	clone.SelectedHotel.Price = 1

	assert.Equal(t, "Delhi", original.Origin)
	assert.Equal(t, int64(900), original.PresentedTransport[0].Price)
	assert.Equal(t, int64(2000), original.SelectedHotel.Price)
}

func TestReadyToFinalize(t *testing.T) {
	c := &TripContext{PartySize: 2}
	assert.False(t, c.ReadyToFinalize())

	c.SelectedOutboundTransport = &TransportOption{ID: "TR-1"}
	assert.False(t, c.ReadyToFinalize())

	c.SelectedHotel = &HotelOption{ID: "hotel_1"}
	assert.True(t, c.ReadyToFinalize())

	// A round trip additionally needs the return leg.
	c.IsRoundTrip = true
	assert.False(t, c.ReadyToFinalize())
	c.SelectedReturnTransport = &TransportOption{ID: "TR-2"}
	assert.True(t, c.ReadyToFinalize())

	c.PartySize = 0
	assert.False(t, c.ReadyToFinalize())
}
