package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripy/internal/models/request_models"
	"tripy/internal/models/trip_models"
	"tripy/pkg/utils"
)

type stubParser struct {
	parseFunc func(ctx context.Context, message string) (utils.ParsedTripDetails, error)
}

func (s *stubParser) ParseTripUtterance(ctx context.Context, message string) (utils.ParsedTripDetails, error) {
	if s.parseFunc == nil {
		return utils.ParsedTripDetails{}, nil
	}
	return s.parseFunc(ctx, message)
}

type stubGeocoder struct {
	city string
	err  error
}

func (s *stubGeocoder) ReverseCity(ctx context.Context, lat, lng float64) (string, error) {
	return s.city, s.err
}

func TestResolveTurnRejectsEmptyUtterance(t *testing.T) {
	resolver := NewSlotResolver(&stubParser{}, nil)

	_, _, err := resolver.ResolveTurn(context.Background(), nil, "   ", nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestResolveTurnExtractsInitialUtterance(t *testing.T) {
	parser := &stubParser{parseFunc: func(ctx context.Context, message string) (utils.ParsedTripDetails, error) {
		return utils.ParsedTripDetails{
			Origin:      "Delhi",
			Destination: "Mumbai",
			TravelDate:  "2025-08-18",
		}, nil
	}}
	resolver := NewSlotResolver(parser, nil)

	next, unresolved, err := resolver.ResolveTurn(context.Background(), nil, "I want to go from Delhi to Mumbai on the 18th", nil)
	require.NoError(t, err)

	assert.Equal(t, "Delhi", next.Origin)
	assert.Equal(t, "Mumbai", next.Destination)
	assert.Equal(t, "2025-08-18", next.TravelDate)

	require.NotNil(t, unresolved)
	assert.Equal(t, trip_models.SlotTransportMode, *unresolved)
	assert.Equal(t, trip_models.SlotTransportMode, next.PendingSlot)
}

func TestResolveTurnPendingAnswerTargetsOnlyThatSlot(t *testing.T) {
	parser := &stubParser{parseFunc: func(ctx context.Context, message string) (utils.ParsedTripDetails, error) {
		t.Fatal("extraction must not run while a pending slot is open")
		return utils.ParsedTripDetails{}, nil
	}}
	resolver := NewSlotResolver(parser, nil)

	prior := &trip_models.TripContext{
		Origin:      "Delhi",
		Destination: "Mumbai",
		TravelDate:  "2025-08-18",
		PendingSlot: trip_models.SlotTransportMode,
	}

	next, unresolved, err := resolver.ResolveTurn(context.Background(), prior, "by train", nil)
	require.NoError(t, err)

	assert.Equal(t, trip_models.ModeTrain, next.TransportMode)
	require.NotNil(t, unresolved)
	assert.Equal(t, trip_models.SlotBudgetTier, *unresolved)
}

func TestResolveTurnFailClosedReAsksSameSlot(t *testing.T) {
	resolver := NewSlotResolver(&stubParser{}, nil)

	prior := &trip_models.TripContext{
		Origin:      "Delhi",
		Destination: "Mumbai",
		TravelDate:  "2025-08-18",
		PendingSlot: trip_models.SlotTransportMode,
	}

	next, unresolved, err := resolver.ResolveTurn(context.Background(), prior, "by camel caravan", nil)
	require.NoError(t, err)

	assert.Equal(t, trip_models.TransportMode(""), next.TransportMode)
	require.NotNil(t, unresolved)
	assert.Equal(t, trip_models.SlotTransportMode, *unresolved)
	assert.Equal(t, trip_models.SlotTransportMode, next.PendingSlot)
}

func TestResolveTurnExtractionNeverOverwritesConfirmedSlots(t *testing.T) {
	parser := &stubParser{parseFunc: func(ctx context.Context, message string) (utils.ParsedTripDetails, error) {
		return utils.ParsedTripDetails{
			Origin:      "Chennai",
			Destination: "Goa",
			PartySize:   5,
		}, nil
	}}
	resolver := NewSlotResolver(parser, nil)

	prior := &trip_models.TripContext{
		Origin:      "Delhi",
		Destination: "Mumbai",
	}

	next, _, err := resolver.ResolveTurn(context.Background(), prior, "actually make it Goa for five", nil)
	require.NoError(t, err)

	assert.Equal(t, "Delhi", next.Origin)
	assert.Equal(t, "Mumbai", next.Destination)
	// Unset slots still pick up extracted values.
	assert.Equal(t, 5, next.PartySize)
}

func TestResolveTurnDoesNotMutatePrior(t *testing.T) {
	parser := &stubParser{parseFunc: func(ctx context.Context, message string) (utils.ParsedTripDetails, error) {
		return utils.ParsedTripDetails{Destination: "Mumbai"}, nil
	}}
	resolver := NewSlotResolver(parser, nil)

	prior := &trip_models.TripContext{Origin: "Delhi"}

	_, _, err := resolver.ResolveTurn(context.Background(), prior, "to Mumbai", nil)
	require.NoError(t, err)

	assert.Equal(t, "", prior.Destination)
	assert.Equal(t, trip_models.SlotName(""), prior.PendingSlot)
}

func TestResolveTurnGeolocationFillsMissingOrigin(t *testing.T) {
	parser := &stubParser{parseFunc: func(ctx context.Context, message string) (utils.ParsedTripDetails, error) {
		return utils.ParsedTripDetails{Destination: "Mumbai"}, nil
	}}
	resolver := NewSlotResolver(parser, &stubGeocoder{city: "Pune"})

	geo := &request_models.Geolocation{Lat: 18.52, Lng: 73.85}
	next, unresolved, err := resolver.ResolveTurn(context.Background(), nil, "take me to Mumbai", geo)
	require.NoError(t, err)

	assert.Equal(t, "Pune", next.Origin)
	require.NotNil(t, unresolved)
	assert.Equal(t, trip_models.SlotTravelDate, *unresolved)
}

func TestResolveTurnGeocoderFailureIsNotFatal(t *testing.T) {
	resolver := NewSlotResolver(&stubParser{}, &stubGeocoder{err: errors.New("nominatim down")})

	geo := &request_models.Geolocation{Lat: 18.52, Lng: 73.85}
	next, unresolved, err := resolver.ResolveTurn(context.Background(), nil, "plan a trip", geo)
	require.NoError(t, err)

	assert.Equal(t, "", next.Origin)
	require.NotNil(t, unresolved)
	assert.Equal(t, trip_models.SlotOrigin, *unresolved)
}

func TestResolveTurnRoundTripOnlySwitchesOn(t *testing.T) {
	off := false
	parser := &stubParser{parseFunc: func(ctx context.Context, message string) (utils.ParsedTripDetails, error) {
		return utils.ParsedTripDetails{IsRoundTrip: &off}, nil
	}}
	resolver := NewSlotResolver(parser, nil)

	prior := &trip_models.TripContext{
		Origin:      "Delhi",
		Destination: "Mumbai",
		IsRoundTrip: true,
		ReturnDate:  "2025-08-25",
	}

	next, _, err := resolver.ResolveTurn(context.Background(), prior, "hmm", nil)
	require.NoError(t, err)
	assert.True(t, next.IsRoundTrip)
	assert.Equal(t, "2025-08-25", next.ReturnDate)
}
