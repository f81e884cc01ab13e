package services

import (
	"context"
	"fmt"
	"math/rand"
	"tripy/internal/models/trip_models"
)

// HotelSearchServiceInterface is the hotel provider collaborator, filtered by
// budget tier. Empty results are valid.
type HotelSearchServiceInterface interface {
	Search(ctx context.Context, destination, checkIn, checkOut string, partySize int, tier trip_models.BudgetTier) ([]trip_models.HotelOption, error)
}

type mockHotelSearchService struct{}

func NewMockHotelSearchService() HotelSearchServiceInterface {
	return &mockHotelSearchService{}
}

// Nightly price floors per tier, in INR.
var tierBasePrice = map[trip_models.BudgetTier]int64{
	trip_models.BudgetLuxury:   4000,
	trip_models.BudgetMedium:   2000,
	trip_models.BudgetFriendly: 800,
}

func (s *mockHotelSearchService) Search(ctx context.Context, destination, checkIn, checkOut string, partySize int, tier trip_models.BudgetTier) ([]trip_models.HotelOption, error) {
	base, ok := tierBasePrice[tier]
	if !ok {
		return nil, nil
	}

	options := make([]trip_models.HotelOption, 0, 3)
	for i := 0; i < 3; i++ {
		price := randomPrice(base, base+1500)
		options = append(options, trip_models.HotelOption{
			ID:       fmt.Sprintf("hotel_%d_%d", i, rand.Intn(10000)),
			Name:     fmt.Sprintf("%s Hotel Option %d", tier, i+1),
			Address:  fmt.Sprintf("123 Main St, %s", destination),
			Price:    price,
			Currency: "INR",
			Rating:   3.5 + float64(i)*0.5,
			Category: tier,
			Deeplink: fmt.Sprintf("https://mock.hotels/book?d=%s&p=%d", destination, price),
		})
	}
	return options, nil
}
