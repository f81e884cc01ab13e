package trip_models

// SlotName identifies one piece of information the planner must collect
// before it can search.
type SlotName string

const (
	SlotOrigin        SlotName = "origin"
	SlotDestination   SlotName = "destination"
	SlotTravelDate    SlotName = "travel_date"
	SlotReturnDate    SlotName = "return_date"
	SlotTransportMode SlotName = "transport_mode"
	SlotBudgetTier    SlotName = "budget_tier"
	SlotPartySize     SlotName = "party_size"
)

type BudgetTier string

const (
	BudgetLuxury   BudgetTier = "Luxury"
	BudgetMedium   BudgetTier = "Medium"
	BudgetFriendly BudgetTier = "Budget-friendly"
)

type TransportMode string

const (
	ModeTrain  TransportMode = "Train"
	ModeBus    TransportMode = "Bus"
	ModeFlight TransportMode = "Flight"
)

// TripContext is the whole conversation state. The server keeps no session
// store; the snapshot travels with every request and response, including the
// option lists that were presented, so a later selection can be validated
// against exactly what the user saw.
type TripContext struct {
	Origin        string        `json:"origin,omitempty"`
	Destination   string        `json:"destination,omitempty"`
	TravelDate    string        `json:"travel_date,omitempty"`
	ReturnDate    string        `json:"return_date,omitempty"`
	TransportMode TransportMode `json:"transport_mode,omitempty"`
	BudgetTier    BudgetTier    `json:"budget_tier,omitempty"`
	PartySize     int           `json:"party_size,omitempty"`
	IsRoundTrip   bool          `json:"is_round_trip,omitempty"`

	PendingSlot SlotName `json:"pending_slot,omitempty"`

	PresentedTransport       []TransportOption `json:"presented_transport,omitempty"`
	PresentedReturnTransport []TransportOption `json:"presented_return_transport,omitempty"`
	PresentedHotels          []HotelOption     `json:"presented_hotels,omitempty"`

	SelectedOutboundTransport *TransportOption `json:"selected_outbound_transport,omitempty"`
	SelectedReturnTransport   *TransportOption `json:"selected_return_transport,omitempty"`
	SelectedHotel             *HotelOption     `json:"selected_hotel,omitempty"`

	FinalItinerary *FinalItinerary `json:"final_itinerary,omitempty"`
}

// RequiredSlots lists the slots in the order questions are asked. The return
// date only becomes required once the trip is known to be a round trip, and
// slots in immediately after the outbound date.
func (c *TripContext) RequiredSlots() []SlotName {
	slots := []SlotName{SlotOrigin, SlotDestination, SlotTravelDate}
	if c.IsRoundTrip {
		slots = append(slots, SlotReturnDate)
	}
	return append(slots, SlotTransportMode, SlotBudgetTier, SlotPartySize)
}

func (c *TripContext) SlotResolved(slot SlotName) bool {
	switch slot {
	case SlotOrigin:
		return c.Origin != ""
	case SlotDestination:
		return c.Destination != ""
	case SlotTravelDate:
		return c.TravelDate != ""
	case SlotReturnDate:
		return c.ReturnDate != ""
	case SlotTransportMode:
		return c.TransportMode != ""
	case SlotBudgetTier:
		return c.BudgetTier != ""
	case SlotPartySize:
		return c.PartySize > 0
	default:
		return false
	}
}

// FirstUnresolvedSlot returns the next slot to ask about, or nil when the
// context is ready for searching.
func FirstUnresolvedSlot(c *TripContext) *SlotName {
	for _, slot := range c.RequiredSlots() {
		if !c.SlotResolved(slot) {
			s := slot
			return &s
		}
	}
	return nil
}

// Clone deep-copies the context so a turn can build its successor without
// mutating the caller's snapshot.
func (c *TripContext) Clone() *TripContext {
	next := *c

	next.PresentedTransport = append([]TransportOption(nil), c.PresentedTransport...)
	next.PresentedReturnTransport = append([]TransportOption(nil), c.PresentedReturnTransport...)
	next.PresentedHotels = append([]HotelOption(nil), c.PresentedHotels...)

	if c.SelectedOutboundTransport != nil {
		v := *c.SelectedOutboundTransport
		next.SelectedOutboundTransport = &v
	}
	if c.SelectedReturnTransport != nil {
		v := *c.SelectedReturnTransport
		next.SelectedReturnTransport = &v
	}
	if c.SelectedHotel != nil {
		v := *c.SelectedHotel
		next.SelectedHotel = &v
	}
	if c.FinalItinerary != nil {
		v := *c.FinalItinerary
		if c.FinalItinerary.Return != nil {
			r := *c.FinalItinerary.Return
			v.Return = &r
		}
		next.FinalItinerary = &v
	}
	return &next
}

// TransportSelectionComplete reports whether every required transport leg has
// been chosen.
func (c *TripContext) TransportSelectionComplete() bool {
	if c.SelectedOutboundTransport == nil {
		return false
	}
	if c.IsRoundTrip && c.SelectedReturnTransport == nil {
		return false
	}
	return true
}

// ReadyToFinalize gates itinerary assembly: all transport legs, a hotel and a
// positive party size.
func (c *TripContext) ReadyToFinalize() bool {
	return c.TransportSelectionComplete() && c.SelectedHotel != nil && c.PartySize > 0
}
