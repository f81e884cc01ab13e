package services

import (
	"context"
	"log"
	"strings"
	"tripy/internal/models/request_models"
	"tripy/internal/models/trip_models"
	"tripy/pkg/utils"
)

// SlotResolverInterface merges one user turn into the trip context. The
// returned context is always a fresh snapshot; the input is never mutated.
type SlotResolverInterface interface {
	ResolveTurn(ctx context.Context, prior *trip_models.TripContext, utterance string, geo *request_models.Geolocation) (*trip_models.TripContext, *trip_models.SlotName, error)
}

type SlotResolver struct {
	parser   utils.UtteranceParserInterface
	geocoder utils.GeocoderInterface
}

func NewSlotResolver(parser utils.UtteranceParserInterface, geocoder utils.GeocoderInterface) SlotResolverInterface {
	return &SlotResolver{
		parser:   parser,
		geocoder: geocoder,
	}
}

// ResolveTurn applies the precedence rules: a pending-slot answer targets
// exactly that slot, otherwise NLP extraction fills only slots that are still
// empty. A previously confirmed value is never overwritten by an NLP guess,
// so the conversation cannot "forget" state on an ambiguous later utterance.
func (s *SlotResolver) ResolveTurn(ctx context.Context, prior *trip_models.TripContext, utterance string, geo *request_models.Geolocation) (*trip_models.TripContext, *trip_models.SlotName, error) {
	if strings.TrimSpace(utterance) == "" {
		return nil, nil, utils.ErrInvalidInput
	}
	if prior == nil {
		prior = &trip_models.TripContext{}
	}

	next := prior.Clone()

	if prior.PendingSlot != "" && !prior.SlotResolved(prior.PendingSlot) {
		s.applyDirectAnswer(next, prior.PendingSlot, utterance)
	} else {
		s.applyExtraction(ctx, next, utterance)
	}

	// GPS fallback for origin; failures are swallowed since the slot can
	// still be asked for conversationally.
	if next.Origin == "" && geo != nil && s.geocoder != nil {
		if city, err := s.geocoder.ReverseCity(ctx, geo.Lat, geo.Lng); err == nil && city != "" {
			next.Origin = city
		} else if err != nil {
			log.Printf("Geolocation fallback failed: %v", err)
		}
	}

	unresolved := trip_models.FirstUnresolvedSlot(next)
	if unresolved != nil {
		next.PendingSlot = *unresolved
	} else {
		next.PendingSlot = ""
	}
	return next, unresolved, nil
}

// applyDirectAnswer interprets the utterance as the answer to one slot.
// Enumerated slots are fail-closed: unrecognized input leaves the slot empty
// and the same question is asked again next turn.
func (s *SlotResolver) applyDirectAnswer(next *trip_models.TripContext, slot trip_models.SlotName, answer string) {
	trimmed := strings.TrimSpace(answer)

	switch slot {
	case trip_models.SlotOrigin:
		next.Origin = trimmed
	case trip_models.SlotDestination:
		next.Destination = trimmed
	case trip_models.SlotTravelDate:
		next.TravelDate = utils.ParseTravelDate(trimmed)
	case trip_models.SlotReturnDate:
		next.ReturnDate = utils.ParseTravelDate(trimmed)
	case trip_models.SlotTransportMode:
		next.TransportMode = trip_models.NormalizeTransportMode(trimmed)
	case trip_models.SlotBudgetTier:
		next.BudgetTier = trip_models.NormalizeBudgetTier(trimmed)
	case trip_models.SlotPartySize:
		next.PartySize = trip_models.ParsePartySize(trimmed)
	default:
		log.Printf("Unexpected pending slot %q, ignoring answer", slot)
	}
}

// applyExtraction merges an NLP best-effort guess with fill-if-empty
// precedence. Extraction failures degrade silently to "nothing extracted".
func (s *SlotResolver) applyExtraction(ctx context.Context, next *trip_models.TripContext, utterance string) {
	parsed, err := s.parser.ParseTripUtterance(ctx, utterance)
	if err != nil {
		log.Printf("Utterance extraction failed: %v", err)
		return
	}

	if next.Origin == "" && parsed.Origin != "" {
		next.Origin = parsed.Origin
	}
	if next.Destination == "" && parsed.Destination != "" {
		next.Destination = parsed.Destination
	}
	if next.TravelDate == "" && parsed.TravelDate != "" {
		next.TravelDate = utils.ParseTravelDate(parsed.TravelDate)
	}
	if next.ReturnDate == "" && parsed.ReturnDate != "" {
		next.ReturnDate = utils.ParseTravelDate(parsed.ReturnDate)
	}
	if next.TransportMode == "" && parsed.TransportMode != "" {
		next.TransportMode = trip_models.NormalizeTransportMode(parsed.TransportMode)
	}
	if next.BudgetTier == "" && parsed.BudgetTier != "" {
		next.BudgetTier = trip_models.NormalizeBudgetTier(parsed.BudgetTier)
	}
	if next.PartySize == 0 && parsed.PartySize > 0 {
		next.PartySize = parsed.PartySize
	}
	// Round trip can only be switched on by extraction, never back off: a
	// confirmed return leg should not vanish on a later ambiguous message.
	if parsed.IsRoundTrip != nil && *parsed.IsRoundTrip {
		next.IsRoundTrip = true
	}
}
