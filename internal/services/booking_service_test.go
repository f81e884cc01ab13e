package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripy/internal/models/db_models"
	"tripy/internal/models/request_models"
	"tripy/internal/models/trip_models"
	"tripy/pkg/utils"
)

type stubLegBooker struct {
	failKinds map[string]bool
}

func (s *stubLegBooker) BookLeg(ctx context.Context, kind, providerRef, displayName string, amount int64) (string, error) {
	if s.failKinds[kind] {
		return "", errors.New("provider declined")
	}
	return "CNF-000001", nil
}

type stubBookingRepo struct {
	created *db_models.Booking
	getFunc func(ctx context.Context, bookingID string) (*db_models.Booking, error)
	listErr error
}

func (s *stubBookingRepo) CreateBooking(ctx context.Context, booking *db_models.Booking) error {
	s.created = booking
	return nil
}

func (s *stubBookingRepo) GetBookingByID(ctx context.Context, bookingID string) (*db_models.Booking, error) {
	if s.getFunc == nil {
		return nil, nil
	}
	return s.getFunc(ctx, bookingID)
}

func (s *stubBookingRepo) ListBookingsByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Booking, error) {
	return nil, s.listErr
}

func (s *stubBookingRepo) UpdateBookingStatus(ctx context.Context, bookingID string, status string) error {
	return nil
}

func bookableRequest(roundTrip bool) *request_models.BookTripRequest {
	itinerary := &trip_models.FinalItinerary{
		Outbound:     trip_models.TransportOption{ID: "TR-1", DisplayName: "Mumbai Express", Price: 900},
		Hotel:        trip_models.HotelOption{ID: "hotel_1", Name: "Medium Hotel Option 1", Price: 2000},
		CabToStation: trip_models.CabLeg{Provider: "Ola", From: "Delhi City", To: "Delhi Station", Price: 150},
		CabToHotel:   trip_models.CabLeg{Provider: "Uber", From: "Mumbai Station", To: "Medium Hotel Option 1", Price: 180},
		PartySize:    2,
		Total:        6130,
		Currency:     "INR",
	}
	if roundTrip {
		itinerary.Return = &trip_models.TransportOption{ID: "TR-R1", DisplayName: "Delhi Express", Price: 950}
	}
	return &request_models.BookTripRequest{
		Context: &trip_models.TripContext{
			Origin:         "Delhi",
			Destination:    "Mumbai",
			TravelDate:     "2025-08-18",
			PartySize:      2,
			FinalItinerary: itinerary,
		},
		Traveler: request_models.TravelerDetails{Name: "Asha", Email: "asha@example.com"},
	}
}

func TestBookItineraryRequiresFinalPlan(t *testing.T) {
	service := NewBookingService(&stubLegBooker{}, &stubBookingRepo{})

	_, err := service.BookItinerary(context.Background(), "user-1", &request_models.BookTripRequest{
		Context: &trip_models.TripContext{Origin: "Delhi"},
	})
	assert.ErrorIs(t, err, utils.ErrItineraryNotReady)

	_, err = service.BookItinerary(context.Background(), "user-1", nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestBookItineraryAllLegsConfirmed(t *testing.T) {
	repo := &stubBookingRepo{}
	service := NewBookingService(&stubLegBooker{}, repo)

	result, err := service.BookItinerary(context.Background(), "user-1", bookableRequest(false))
	require.NoError(t, err)

	assert.Equal(t, db_models.BookingStatusConfirmed, result.Status)
	require.Len(t, result.Legs, 4)
	for _, leg := range result.Legs {
		assert.Equal(t, db_models.LegStatusConfirmed, leg.Status)
		assert.NotEmpty(t, leg.ConfirmationCode)
	}

	require.NotNil(t, repo.created)
	assert.Equal(t, "user-1", repo.created.UserID)
	assert.Equal(t, int64(6130), repo.created.TotalAmount)
}

func TestBookItineraryPartialFailureKeepsConfirmedLegs(t *testing.T) {
	booker := &stubLegBooker{failKinds: map[string]bool{db_models.LegKindHotel: true}}
	repo := &stubBookingRepo{}
	service := NewBookingService(booker, repo)

	result, err := service.BookItinerary(context.Background(), "user-1", bookableRequest(true))
	require.NoError(t, err)

	assert.Equal(t, db_models.BookingStatusPartial, result.Status)
	require.Len(t, result.Legs, 5)

	byKind := map[string]string{}
	for _, leg := range result.Legs {
		byKind[leg.Kind] = leg.Status
	}
	assert.Equal(t, db_models.LegStatusFailed, byKind[db_models.LegKindHotel])
	assert.Equal(t, db_models.LegStatusConfirmed, byKind[db_models.LegKindOutbound])
	assert.Equal(t, db_models.LegStatusConfirmed, byKind[db_models.LegKindReturn])
	assert.Equal(t, db_models.LegStatusConfirmed, byKind[db_models.LegKindCabToHotel])
}

func TestBookItineraryAllLegsFailed(t *testing.T) {
	booker := &stubLegBooker{failKinds: map[string]bool{
		db_models.LegKindOutbound:     true,
		db_models.LegKindHotel:        true,
		db_models.LegKindCabToStation: true,
		db_models.LegKindCabToHotel:   true,
	}}
	service := NewBookingService(booker, &stubBookingRepo{})

	result, err := service.BookItinerary(context.Background(), "user-1", bookableRequest(false))
	require.NoError(t, err)

	assert.Equal(t, db_models.BookingStatusFailed, result.Status)
	for _, leg := range result.Legs {
		assert.Equal(t, db_models.LegStatusFailed, leg.Status)
		assert.NotEmpty(t, leg.Error)
	}
}

func TestBookItineraryLegAmountsScaleWithPartySize(t *testing.T) {
	repo := &stubBookingRepo{}
	service := NewBookingService(&stubLegBooker{}, repo)

	result, err := service.BookItinerary(context.Background(), "user-1", bookableRequest(false))
	require.NoError(t, err)

	amounts := map[string]int64{}
	for _, leg := range result.Legs {
		amounts[leg.Kind] = leg.Amount
	}
	assert.Equal(t, int64(1800), amounts[db_models.LegKindOutbound])
	assert.Equal(t, int64(4000), amounts[db_models.LegKindHotel])
	// Cab legs cover the whole party and are never multiplied.
	assert.Equal(t, int64(150), amounts[db_models.LegKindCabToStation])
	assert.Equal(t, int64(180), amounts[db_models.LegKindCabToHotel])
}

func TestGetBookingEnforcesOwnership(t *testing.T) {
	repo := &stubBookingRepo{getFunc: func(ctx context.Context, bookingID string) (*db_models.Booking, error) {
		return &db_models.Booking{UserID: "someone-else", Status: db_models.BookingStatusConfirmed}, nil
	}}
	service := NewBookingService(&stubLegBooker{}, repo)

	_, err := service.GetBooking(context.Background(), "user-1", "b-1")
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)
}
