package services

import (
	"context"
	"fmt"
	"math/rand"
	"tripy/internal/models/trip_models"
)

// TransportSearchServiceInterface is the transport provider collaborator.
// An empty result set is a valid "no departures" answer, not an error.
type TransportSearchServiceInterface interface {
	Search(ctx context.Context, mode trip_models.TransportMode, origin, destination, date string, partySize int) ([]trip_models.TransportOption, error)
}

// mockTransportSearchService generates randomized provider-like results until
// the real flight/train/bus adapters are plugged in.
type mockTransportSearchService struct{}

func NewMockTransportSearchService() TransportSearchServiceInterface {
	return &mockTransportSearchService{}
}

var airlines = []string{"IndiGo", "Air India", "Vistara", "SpiceJet"}

var trainSuffixes = []string{"Express", "Shatabdi", "Rajdhani", "Duronto", "Superfast"}

var busOperators = []string{"VRL Travels", "Orange Tours", "SRS Travels", "Neeta Travels"}

func (s *mockTransportSearchService) Search(ctx context.Context, mode trip_models.TransportMode, origin, destination, date string, partySize int) ([]trip_models.TransportOption, error) {
	count := 3 + rand.Intn(3)
	options := make([]trip_models.TransportOption, 0, count)

	for i := 0; i < count; i++ {
		var (
			name     string
			id       string
			price    int64
			durHours int
		)
		switch mode {
		case trip_models.ModeFlight:
			airline := airlines[rand.Intn(len(airlines))]
			number := 100 + rand.Intn(900)
			name = fmt.Sprintf("%s %d", airline, number)
			id = fmt.Sprintf("FL-%d-%d", number, rand.Intn(10000))
			price = randomPrice(1500, 4500)
			durHours = 1 + rand.Intn(4)
		case trip_models.ModeTrain:
			number := 10000 + rand.Intn(90000)
			name = fmt.Sprintf("%s %s", destination, trainSuffixes[rand.Intn(len(trainSuffixes))])
			id = fmt.Sprintf("TR-%d", number)
			price = randomPrice(800, 1800)
			durHours = 3 + rand.Intn(9)
		case trip_models.ModeBus:
			operator := busOperators[rand.Intn(len(busOperators))]
			name = fmt.Sprintf("%s %s-%s", operator, origin, destination)
			id = fmt.Sprintf("BUS-%d", 1000+rand.Intn(9000))
			price = randomPrice(600, 1400)
			durHours = 4 + rand.Intn(10)
		default:
			continue
		}

		depHour := 6 + rand.Intn(16)
		depMin := rand.Intn(60)
		durMin := rand.Intn(60)
		arrHour := (depHour + durHours + (depMin+durMin)/60) % 24
		arrMin := (depMin + durMin) % 60

		options = append(options, trip_models.TransportOption{
			ID:            id,
			Mode:          mode,
			DisplayName:   name,
			Origin:        origin,
			Destination:   destination,
			DepartureTime: fmt.Sprintf("%02d:%02d", depHour, depMin),
			ArrivalTime:   fmt.Sprintf("%02d:%02d", arrHour, arrMin),
			Duration:      fmt.Sprintf("%dh %dm", durHours, durMin),
			Price:         price,
			Currency:      "INR",
		})
	}

	return options, nil
}

func randomPrice(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}
