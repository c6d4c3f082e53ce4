package maps

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"googlemaps.github.io/maps"

	"tripgen/internal/itinerary"
)

// EnrichService backfills coordinates and map links on places the model
// returned without them. Best effort only: lookups that fail leave the
// entry untouched, and no accuracy guarantee is made for the ones that
// succeed.
type EnrichService struct {
	client *maps.Client
}

// NewEnrichService creates an EnrichService with the given API key.
func NewEnrichService(apiKey string) (*EnrichService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &EnrichService{client: client}, nil
}

// EnrichPlaces fills in zero coordinates and missing location URLs via a
// text search scoped to the destination. The input slice is modified in
// place and returned.
func (s *EnrichService) EnrichPlaces(ctx context.Context, destination string, places []itinerary.Place) []itinerary.Place {
	for i := range places {
		p := &places[i]
		if !needsEnrichment(p) {
			continue
		}
		r := &maps.TextSearchRequest{Query: p.Name + " " + destination}
		resp, err := s.client.TextSearch(ctx, r)
		if err != nil {
			log.Printf("maps: text search %q: %v", p.Name, err)
			continue
		}
		if len(resp.Results) == 0 {
			continue
		}
		hit := resp.Results[0]
		if p.Coordinates.Lat == 0 && p.Coordinates.Lng == 0 {
			p.Coordinates.Lat = hit.Geometry.Location.Lat
			p.Coordinates.Lng = hit.Geometry.Location.Lng
		}
		if p.Location == "" && hit.PlaceID != "" {
			p.Location = placeURL(hit.PlaceID)
		}
	}
	return places
}

func needsEnrichment(p *itinerary.Place) bool {
	if p.Name == "" {
		return false
	}
	zeroCoords := p.Coordinates.Lat == 0 && p.Coordinates.Lng == 0
	return zeroCoords || p.Location == ""
}

func placeURL(placeID string) string {
	return "https://www.google.com/maps/place/?q=place_id:" + url.QueryEscape(placeID)
}
