package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campushub/campus-events-gateway/internal/domain"
	"github.com/campushub/campus-events-gateway/internal/repository"
	"github.com/campushub/campus-events-gateway/internal/upstream"
)

// EventsService serves the browsing view: an upstream snapshot, cached
// briefly per audience, filtered by pure recomputation on every call.
type EventsService struct {
	api    *upstream.Client
	cache  *repository.EventSnapshotCache
	logger *zap.Logger
}

// NewEventsService builds the service.
func NewEventsService(api *upstream.Client, cache *repository.EventSnapshotCache, logger *zap.Logger) *EventsService {
	return &EventsService{api: api, cache: cache, logger: logger}
}

// Browse returns the filtered event view for the given audience. The
// token is forwarded so the upstream can mark registrations; audience
// keys the cache entry.
func (s *EventsService) Browse(ctx context.Context, token, audience string, filter domain.EventFilter, now time.Time) ([]domain.Event, error) {
	events, ok := s.cache.Get(ctx, audience)
	if !ok {
		fetched, err := s.api.ListEvents(ctx, token)
		if err != nil {
			return nil, err
		}
		s.cache.Store(ctx, audience, fetched)
		events = fetched
	}

	return filter.Apply(events, now), nil
}
