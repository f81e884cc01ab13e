package services

import (
	"context"
	"fmt"
	"math/rand"
	"tripy/internal/models/trip_models"
)

// CabServiceInterface estimates local transfer legs. One cab per leg, never
// per traveler, which is why cab prices stay out of the party-size
// multiplication downstream.
type CabServiceInterface interface {
	Estimate(ctx context.Context, from, to string) (trip_models.CabLeg, error)
}

type mockCabService struct{}

func NewMockCabService() CabServiceInterface {
	return &mockCabService{}
}

var cabProviders = []string{"Uber", "Ola", "Rapido"}

func (s *mockCabService) Estimate(ctx context.Context, from, to string) (trip_models.CabLeg, error) {
	distanceKm := 5 + rand.Intn(11)
	return trip_models.CabLeg{
		Provider: cabProviders[rand.Intn(len(cabProviders))],
		From:     from,
		To:       to,
		Price:    int64(distanceKm * 20),
		Currency: "INR",
		Details:  fmt.Sprintf("Standard Ride, approx %d km / %d mins", distanceKm, distanceKm*3),
	}, nil
}
