package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// GeocoderInterface resolves coordinates to a city name. It is strictly
// best-effort: "" with a nil error is a valid "don't know" answer and callers
// must tolerate it silently.
type GeocoderInterface interface {
	ReverseCity(ctx context.Context, lat, lng float64) (string, error)
}

// NominatimGeocoder reverse-geocodes through OpenStreetMap's Nominatim
// service. Mind their usage policy before pointing real traffic at it.
type NominatimGeocoder struct {
	baseURL string
	client  *http.Client
}

func NewNominatimGeocoder(baseURL string) GeocoderInterface {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &NominatimGeocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (g *NominatimGeocoder) ReverseCity(ctx context.Context, lat, lng float64) (string, error) {
	// zoom=10 keeps the answer at city/town granularity
	url := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f&zoom=10", g.baseURL, lat, lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "tripy/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("Reverse geocode request failed: %v", err)
		return "", nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Reverse geocode returned status %d", resp.StatusCode)
		return "", nil
	}

	var payload struct {
		Address struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			Suburb  string `json:"suburb"`
		} `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Reverse geocode response decode failed: %v", err)
		return "", nil
	}

	for _, candidate := range []string{
		payload.Address.City,
		payload.Address.Town,
		payload.Address.Village,
		payload.Address.Suburb,
	} {
		if candidate != "" {
			return candidate, nil
		}
	}
	return "", nil
}
