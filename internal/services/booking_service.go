package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"tripy/internal/models/db_models"
	"tripy/internal/models/request_models"
	"tripy/internal/models/response_models"
	"tripy/internal/models/trip_models"
	"tripy/internal/repositories"
	"tripy/pkg/utils"
)

// LegBookerInterface confirms one itinerary leg with its provider. The mock
// implementation stands in for partner booking APIs.
type LegBookerInterface interface {
	BookLeg(ctx context.Context, kind, providerRef, displayName string, amount int64) (string, error)
}

type mockLegBooker struct{}

func NewMockLegBooker() LegBookerInterface {
	return &mockLegBooker{}
}

func (m *mockLegBooker) BookLeg(ctx context.Context, kind, providerRef, displayName string, amount int64) (string, error) {
	// Providers decline roughly one in ten requests.
	if rand.Intn(100) < 90 {
		return fmt.Sprintf("CNF-%06d", rand.Intn(1000000)), nil
	}
	return "", fmt.Errorf("provider declined booking for %s", displayName)
}

type BookingServiceInterface interface {
	BookItinerary(ctx context.Context, userID string, request *request_models.BookTripRequest) (*response_models.BookingResult, error)
	GetBooking(ctx context.Context, userID, bookingID string) (*response_models.BookingSummary, error)
	ListBookings(ctx context.Context, userID string, page, pageSize int) ([]response_models.BookingSummary, error)
}

type BookingService struct {
	legBooker         LegBookerInterface
	bookingRepository repositories.BookingRepository
}

func NewBookingService(legBooker LegBookerInterface, bookingRepository repositories.BookingRepository) BookingServiceInterface {
	return &BookingService{
		legBooker:         legBooker,
		bookingRepository: bookingRepository,
	}
}

type legSpec struct {
	Kind        string
	ProviderRef string
	DisplayName string
	Amount      int64
}

// BookItinerary fans out one booking call per leg and joins the results. Legs
// fail independently: the overall status is confirmed only when every leg
// confirmed, failed only when none did, partial otherwise.
func (b *BookingService) BookItinerary(ctx context.Context, userID string, request *request_models.BookTripRequest) (*response_models.BookingResult, error) {
	if request == nil || request.Context == nil {
		return nil, utils.ErrInvalidInput
	}
	tripCtx := request.Context
	itinerary := tripCtx.FinalItinerary
	if itinerary == nil {
		return nil, utils.ErrItineraryNotReady
	}

	specs := buildLegSpecs(itinerary)

	results := make([]db_models.BookingLeg, len(specs))
	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(i int, spec legSpec) {
			defer wg.Done()
			leg := db_models.BookingLeg{
				Kind:        spec.Kind,
				ProviderRef: spec.ProviderRef,
				DisplayName: spec.DisplayName,
				Amount:      spec.Amount,
				Currency:    itinerary.Currency,
			}
			code, err := b.legBooker.BookLeg(ctx, spec.Kind, spec.ProviderRef, spec.DisplayName, spec.Amount)
			if err != nil {
				leg.Status = db_models.LegStatusFailed
				leg.FailureReason = err.Error()
				log.Printf("Leg booking failed (%s): %v", spec.Kind, err)
			} else {
				leg.Status = db_models.LegStatusConfirmed
				leg.ConfirmationCode = code
			}
			results[i] = leg
		}(i, spec)
	}
	wg.Wait()

	confirmed := 0
	for _, leg := range results {
		if leg.Status == db_models.LegStatusConfirmed {
			confirmed++
		}
	}
	status := db_models.BookingStatusPartial
	switch confirmed {
	case len(results):
		status = db_models.BookingStatusConfirmed
	case 0:
		status = db_models.BookingStatusFailed
	}

	booking := &db_models.Booking{
		UserID:      userID,
		Origin:      tripCtx.Origin,
		Destination: tripCtx.Destination,
		TravelDate:  tripCtx.TravelDate,
		ReturnDate:  tripCtx.ReturnDate,
		PartySize:   itinerary.PartySize,
		TotalAmount: itinerary.Total,
		Currency:    itinerary.Currency,
		Status:      status,
		Legs:        results,
	}
	if err := b.bookingRepository.CreateBooking(ctx, booking); err != nil {
		log.Printf("Persisting booking failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.BookingResult{
		BookingID:   booking.ID.String(),
		Status:      booking.Status,
		TotalAmount: booking.TotalAmount,
		Currency:    booking.Currency,
		Legs:        toLegResults(booking.Legs),
	}, nil
}

func (b *BookingService) GetBooking(ctx context.Context, userID, bookingID string) (*response_models.BookingSummary, error) {
	booking, err := b.bookingRepository.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil || booking.UserID != userID {
		return nil, utils.ErrBookingNotFound
	}
	summary := toBookingSummary(booking, true)
	return &summary, nil
}

func (b *BookingService) ListBookings(ctx context.Context, userID string, page, pageSize int) ([]response_models.BookingSummary, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}
	bookings, err := b.bookingRepository.ListBookingsByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.BookingSummary, 0, len(bookings))
	for i := range bookings {
		summaries = append(summaries, toBookingSummary(&bookings[i], false))
	}
	return summaries, nil
}

func buildLegSpecs(itinerary *trip_models.FinalItinerary) []legSpec {
	partySize := int64(itinerary.PartySize)
	specs := []legSpec{
		{
			Kind:        db_models.LegKindOutbound,
			ProviderRef: itinerary.Outbound.ID,
			DisplayName: itinerary.Outbound.DisplayName,
			Amount:      itinerary.Outbound.Price * partySize,
		},
	}
	if itinerary.Return != nil {
		specs = append(specs, legSpec{
			Kind:        db_models.LegKindReturn,
			ProviderRef: itinerary.Return.ID,
			DisplayName: itinerary.Return.DisplayName,
			Amount:      itinerary.Return.Price * partySize,
		})
	}
	specs = append(specs,
		legSpec{
			Kind:        db_models.LegKindHotel,
			ProviderRef: itinerary.Hotel.ID,
			DisplayName: itinerary.Hotel.Name,
			Amount:      itinerary.Hotel.Price * partySize,
		},
		legSpec{
			Kind:        db_models.LegKindCabToStation,
			ProviderRef: itinerary.CabToStation.Provider,
			DisplayName: fmt.Sprintf("Cab %s to %s", itinerary.CabToStation.From, itinerary.CabToStation.To),
			Amount:      itinerary.CabToStation.Price,
		},
		legSpec{
			Kind:        db_models.LegKindCabToHotel,
			ProviderRef: itinerary.CabToHotel.Provider,
			DisplayName: fmt.Sprintf("Cab %s to %s", itinerary.CabToHotel.From, itinerary.CabToHotel.To),
			Amount:      itinerary.CabToHotel.Price,
		},
	)
	return specs
}

func toLegResults(legs []db_models.BookingLeg) []response_models.LegResult {
	results := make([]response_models.LegResult, 0, len(legs))
	for _, leg := range legs {
		results = append(results, response_models.LegResult{
			LegID:            leg.ID.String(),
			Kind:             leg.Kind,
			DisplayName:      leg.DisplayName,
			Amount:           leg.Amount,
			Currency:         leg.Currency,
			Status:           leg.Status,
			ConfirmationCode: leg.ConfirmationCode,
			Error:            leg.FailureReason,
		})
	}
	return results
}

func toBookingSummary(booking *db_models.Booking, includeLegs bool) response_models.BookingSummary {
	summary := response_models.BookingSummary{
		BookingID:   booking.ID.String(),
		Origin:      booking.Origin,
		Destination: booking.Destination,
		TravelDate:  booking.TravelDate,
		ReturnDate:  booking.ReturnDate,
		PartySize:   booking.PartySize,
		TotalAmount: booking.TotalAmount,
		Currency:    booking.Currency,
		Status:      booking.Status,
	}
	if includeLegs {
		summary.Legs = toLegResults(booking.Legs)
	}
	return summary
}
