package services

import (
	"context"
	"fmt"
	"log"
	"tripy/internal/models/request_models"
	"tripy/internal/models/response_models"
	"tripy/internal/models/trip_models"
	"tripy/pkg/utils"
)

// TripServiceInterface is the trip-planning dialogue controller. It owns the
// turn loop, decides which question to ask next and walks the search,
// selection and finalize phases.
type TripServiceInterface interface {
	HandleTurn(ctx context.Context, utterance string, prior *trip_models.TripContext, geo *request_models.Geolocation) (*response_models.TripTurnResponse, error)
	SelectTransport(ctx context.Context, prior *trip_models.TripContext, optionID, leg string) (*response_models.TripTurnResponse, error)
	SelectHotel(ctx context.Context, prior *trip_models.TripContext, optionID string) (*response_models.TripTurnResponse, error)
}

type TripService struct {
	slotResolver     SlotResolverInterface
	transportService TransportSearchServiceInterface
	hotelService     HotelSearchServiceInterface
	itineraryBuilder ItineraryBuilderInterface
}

func NewTripService(
	slotResolver SlotResolverInterface,
	transportService TransportSearchServiceInterface,
	hotelService HotelSearchServiceInterface,
	itineraryBuilder ItineraryBuilderInterface,
) TripServiceInterface {
	return &TripService{
		slotResolver:     slotResolver,
		transportService: transportService,
		hotelService:     hotelService,
		itineraryBuilder: itineraryBuilder,
	}
}

var slotQuestions = map[trip_models.SlotName]string{
	trip_models.SlotOrigin:        "Where are you departing from? (Departure city)",
	trip_models.SlotDestination:   "Where do you want to go? (Destination city)",
	trip_models.SlotTravelDate:    "What is your travel date? (e.g. 18 August or Tomorrow)",
	trip_models.SlotReturnDate:    "When would you like to return?",
	trip_models.SlotTransportMode: "What transport mode do you prefer? Train, Bus, or Flight?",
	trip_models.SlotBudgetTier:    "What is your budget preference? Luxury, Medium, or Budget-friendly?",
	trip_models.SlotPartySize:     "Are you traveling solo or in a group? (e.g. Solo, 2 people, Group of 5)",
}

func (t *TripService) HandleTurn(ctx context.Context, utterance string, prior *trip_models.TripContext, geo *request_models.Geolocation) (*response_models.TripTurnResponse, error) {
	resolved, unresolved, err := t.slotResolver.ResolveTurn(ctx, prior, utterance, geo)
	if err != nil {
		return nil, err
	}

	if unresolved != nil {
		return askForSlot(resolved, *unresolved), nil
	}
	return t.advance(ctx, resolved)
}

func (t *TripService) SelectTransport(ctx context.Context, prior *trip_models.TripContext, optionID, leg string) (*response_models.TripTurnResponse, error) {
	if prior == nil || optionID == "" {
		return nil, utils.ErrInvalidInput
	}
	if trip_models.FirstUnresolvedSlot(prior) != nil {
		return nil, utils.ErrSelectionNotAllowed
	}

	next := prior.Clone()
	switch leg {
	case request_models.SelectionLegOutbound, "":
		if next.SelectedOutboundTransport != nil || len(next.PresentedTransport) == 0 {
			return nil, utils.ErrSelectionNotAllowed
		}
		option := findTransportOption(next.PresentedTransport, optionID)
		if option == nil {
			return nil, utils.ErrUnknownSelection
		}
		next.SelectedOutboundTransport = option
		next.PresentedTransport = nil
	case request_models.SelectionLegReturn:
		if !next.IsRoundTrip || next.SelectedOutboundTransport == nil ||
			next.SelectedReturnTransport != nil || len(next.PresentedReturnTransport) == 0 {
			return nil, utils.ErrSelectionNotAllowed
		}
		option := findTransportOption(next.PresentedReturnTransport, optionID)
		if option == nil {
			return nil, utils.ErrUnknownSelection
		}
		next.SelectedReturnTransport = option
		next.PresentedReturnTransport = nil
	default:
		return nil, utils.ErrInvalidInput
	}

	return t.advance(ctx, next)
}

func (t *TripService) SelectHotel(ctx context.Context, prior *trip_models.TripContext, optionID string) (*response_models.TripTurnResponse, error) {
	if prior == nil || optionID == "" {
		return nil, utils.ErrInvalidInput
	}
	if !prior.TransportSelectionComplete() || prior.SelectedHotel != nil || len(prior.PresentedHotels) == 0 {
		return nil, utils.ErrSelectionNotAllowed
	}

	next := prior.Clone()
	for i := range next.PresentedHotels {
		if next.PresentedHotels[i].ID == optionID {
			hotel := next.PresentedHotels[i]
			next.SelectedHotel = &hotel
			next.PresentedHotels = nil
			return t.advance(ctx, next)
		}
	}
	return nil, utils.ErrUnknownSelection
}

// advance walks the phase machine as far as the current context allows. The
// phase is always derived from the snapshot, never stored server side.
func (t *TripService) advance(ctx context.Context, tc *trip_models.TripContext) (*response_models.TripTurnResponse, error) {
	// A finalized plan is sticky: re-planning would re-randomize cab legs
	// and silently change the quoted total.
	if tc.FinalItinerary != nil {
		return finalizedResponse(tc), nil
	}

	if tc.SelectedOutboundTransport == nil {
		return t.presentTransport(ctx, tc, false)
	}
	if tc.IsRoundTrip && tc.SelectedReturnTransport == nil {
		return t.presentTransport(ctx, tc, true)
	}
	if tc.SelectedHotel == nil {
		return t.presentHotels(ctx, tc)
	}

	itinerary, err := t.itineraryBuilder.Build(ctx, tc)
	if err != nil {
		return nil, err
	}
	tc.FinalItinerary = itinerary
	return finalizedResponse(tc), nil
}

func (t *TripService) presentTransport(ctx context.Context, tc *trip_models.TripContext, returnLeg bool) (*response_models.TripTurnResponse, error) {
	presented := tc.PresentedTransport
	if returnLeg {
		presented = tc.PresentedReturnTransport
	}

	if len(presented) == 0 {
		origin, destination, date := tc.Origin, tc.Destination, tc.TravelDate
		if returnLeg {
			origin, destination, date = tc.Destination, tc.Origin, tc.ReturnDate
		}

		options, err := t.transportService.Search(ctx, tc.TransportMode, origin, destination, date, tc.PartySize)
		if err != nil {
			log.Printf("Transport search failed: %v", err)
			return nil, utils.ErrSearchUnavailable
		}

		if len(options) == 0 {
			// Date is the most likely culprit for an empty search, so
			// re-ask it instead of abandoning the whole context.
			dateSlot := trip_models.SlotTravelDate
			if returnLeg {
				tc.ReturnDate = ""
				dateSlot = trip_models.SlotReturnDate
			} else {
				tc.TravelDate = ""
			}
			tc.PendingSlot = dateSlot
			resp := askForSlot(tc, dateSlot)
			resp.Message = fmt.Sprintf("I'm sorry, I couldn't find any %s options from %s to %s for that date. Would you like to try a different date?",
				tc.TransportMode, origin, destination)
			return resp, nil
		}

		if returnLeg {
			tc.PresentedReturnTransport = options
		} else {
			tc.PresentedTransport = options
		}
		presented = options
	}

	message := "Great! I've found several options for you. Please select one."
	if returnLeg {
		message = "Here are the return options. Please select one."
	}
	return &response_models.TripTurnResponse{
		NeedsInput: true,
		Message:    message,
		Context:    tc,
		Transport:  presented,
	}, nil
}

func (t *TripService) presentHotels(ctx context.Context, tc *trip_models.TripContext) (*response_models.TripTurnResponse, error) {
	if len(tc.PresentedHotels) == 0 {
		checkOut := tc.ReturnDate
		if checkOut == "" {
			checkOut = utils.NextDayISO(tc.TravelDate)
		}

		hotels, err := t.hotelService.Search(ctx, tc.Destination, tc.TravelDate, checkOut, tc.PartySize, tc.BudgetTier)
		if err != nil {
			log.Printf("Hotel search failed: %v", err)
			return nil, utils.ErrSearchUnavailable
		}

		if len(hotels) == 0 {
			// Same recovery idea as transport, but the budget tier is the
			// slot most likely to have emptied the result set.
			tc.BudgetTier = ""
			tc.PendingSlot = trip_models.SlotBudgetTier
			resp := askForSlot(tc, trip_models.SlotBudgetTier)
			resp.Message = fmt.Sprintf("I couldn't find any hotels in %s for that budget. Could we try a different budget preference?", tc.Destination)
			return resp, nil
		}
		tc.PresentedHotels = hotels
	}

	return &response_models.TripTurnResponse{
		NeedsInput: true,
		Message:    "Based on your budget, here are some hotel options. Please select one.",
		Context:    tc,
		Hotels:     tc.PresentedHotels,
	}, nil
}

func askForSlot(tc *trip_models.TripContext, slot trip_models.SlotName) *response_models.TripTurnResponse {
	return &response_models.TripTurnResponse{
		NeedsInput: true,
		AskingFor:  slot,
		Prompt:     slotQuestions[slot],
		Context:    tc,
	}
}

func finalizedResponse(tc *trip_models.TripContext) *response_models.TripTurnResponse {
	return &response_models.TripTurnResponse{
		NeedsInput: false,
		Message: fmt.Sprintf("Done! Here's your trip plan from %s to %s on %s. Shall I book it?",
			tc.Origin, tc.Destination, utils.FormatDisplayDate(tc.TravelDate)),
		Context:   tc,
		Itinerary: tc.FinalItinerary,
	}
}

func findTransportOption(options []trip_models.TransportOption, id string) *trip_models.TransportOption {
	for i := range options {
		if options[i].ID == id {
			option := options[i]
			return &option
		}
	}
	return nil
}
