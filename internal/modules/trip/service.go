// README: Trip service orchestrates generation, caching, place enrichment and persistence.
package trip

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"tripgen/internal/itinerary"
)

// Generator produces an itinerary for a request. It never fails; anomalies
// are carried inside the Result.
type Generator interface {
	Generate(ctx context.Context, req itinerary.Request) itinerary.Result
}

// Enricher backfills place coordinates/links, best effort.
type Enricher interface {
	EnrichPlaces(ctx context.Context, destination string, places []itinerary.Place) []itinerary.Place
}

// ResultCache stores generated results by request key.
type ResultCache interface {
	Get(ctx context.Context, key string) (*itinerary.Result, error)
	Set(ctx context.Context, key string, res itinerary.Result) error
}

// TripStore persists trip records.
type TripStore interface {
	Create(ctx context.Context, t *Trip) error
	GetByID(ctx context.Context, id string) (*Trip, error)
	ListByUser(ctx context.Context, userID string) ([]Trip, error)
}

type Service struct {
	store     TripStore
	generator Generator
	cache     ResultCache
	enricher  Enricher
}

// NewService wires the trip service. cache and enricher may be nil to
// disable the respective step.
func NewService(store TripStore, generator Generator, cache ResultCache, enricher Enricher) *Service {
	return &Service{store: store, generator: generator, cache: cache, enricher: enricher}
}

type GenerateCommand struct {
	UserID      string
	Destination string
	Travelers   int
	StartDate   string
	EndDate     string
	Preferences string
	Budget      string
	TravelWith  string
}

// Generate runs the itinerary pipeline for cmd and saves the trip record.
// The generation itself never fails; only persistence can return an error.
func (s *Service) Generate(ctx context.Context, cmd GenerateCommand) (itinerary.Result, *Trip, error) {
	if cmd.UserID == "" || cmd.Destination == "" || cmd.Travelers <= 0 || cmd.StartDate == "" || cmd.EndDate == "" {
		return itinerary.Result{}, nil, ErrBadRequest
	}

	req := itinerary.Request{
		Destination: cmd.Destination,
		Travelers:   cmd.Travelers,
		StartDate:   cmd.StartDate,
		EndDate:     cmd.EndDate,
		Preferences: cmd.Preferences,
		Budget:      cmd.Budget,
		TravelWith:  cmd.TravelWith,
	}
	key := cacheKey(req)

	res, hit := s.cachedResult(ctx, key)
	if !hit {
		res = s.generator.Generate(ctx, req)
		if s.enricher != nil && len(res.Places) > 0 {
			res.Places = s.enricher.EnrichPlaces(ctx, cmd.Destination, res.Places)
		}
		// Only clean generations are worth replaying; partial, fallback and
		// error results should be retried on the next identical request.
		if s.cache != nil && res.Source == "" {
			if err := s.cache.Set(ctx, key, res); err != nil {
				log.Printf("trip: cache set: %v", err)
			}
		}
	}

	t := &Trip{
		ID:          uuid.NewString(),
		UserID:      cmd.UserID,
		Destination: cmd.Destination,
		Travelers:   cmd.Travelers,
		StartDate:   cmd.StartDate,
		EndDate:     cmd.EndDate,
		Preferences: cmd.Preferences,
		Budget:      cmd.Budget,
		TravelWith:  cmd.TravelWith,
		CreatedAt:   time.Now(),
	}
	if err := s.store.Create(ctx, t); err != nil {
		return itinerary.Result{}, nil, err
	}
	return res, t, nil
}

func (s *Service) cachedResult(ctx context.Context, key string) (itinerary.Result, bool) {
	if s.cache == nil {
		return itinerary.Result{}, false
	}
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("trip: cache get: %v", err)
		return itinerary.Result{}, false
	}
	if cached == nil {
		return itinerary.Result{}, false
	}
	return *cached, true
}

// Get returns one of the caller's trips.
func (s *Service) Get(ctx context.Context, userID, id string) (*Trip, error) {
	t, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Ownership is enforced as not-found to avoid leaking trip existence.
	if t.UserID != userID {
		return nil, ErrNotFound
	}
	return t, nil
}

// List returns all of the caller's trips, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Trip, error) {
	return s.store.ListByUser(ctx, userID)
}
