// Package service provides the listing service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/okian/concursos/internal/adapters/refresher"
	"github.com/okian/concursos/internal/adapters/repository"
	"github.com/okian/concursos/internal/adapters/source"
	"github.com/okian/concursos/internal/domain/classify"
	"github.com/okian/concursos/internal/domain/filter"
	"github.com/okian/concursos/internal/domain/types"
	"github.com/okian/concursos/pkg/logger"
	"github.com/okian/concursos/pkg/metrics"
)

const stopTimeout = 5 * time.Second

// Metric labels for fetches and listings that carry no source outcome or
// recognized status keyword.
const (
	outcomeCanceled    = "canceled"
	statusAny          = "any"
	statusUnrecognized = "unrecognized"
)

// ErrNoSource is returned by Start when no contest source was configured.
var ErrNoSource = errors.New("service: no contest source configured")

// Service implements the API dependencies for the contest listing.
type Service struct {
	mu sync.RWMutex

	// Core components
	source    source.Source
	store     repository.Store
	refresher *refresher.Refresher

	// Configuration
	refreshInterval time.Duration
	now             func() time.Time

	// refreshMu serializes fetch+replace so an older fetch never overwrites a newer one.
	refreshMu sync.Mutex

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets where contests are fetched from.
func WithSource(src source.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithStore replaces the default in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithClock sets the clock used for every evaluation pass.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRefreshInterval enables periodic re-fetching. Zero keeps the
// collection fetched once at Start.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.refreshInterval = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = repository.NewMemoryStore(context.Background(), repository.WithClock(s.now))
	}
	return s
}

// Start performs the initial fetch and, when an interval is configured,
// starts the periodic refresher. The refresher stops when ctx is canceled
// or Stop is called.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.source == nil {
		return ErrNoSource
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting contest listing service...")
	s.Refresh(ctx)

	if s.refreshInterval > 0 {
		s.refresher = refresher.New(s,
			refresher.WithInterval(s.refreshInterval),
			refresher.WithLogger(s.logger.Named("refresher")),
		)
		go s.refresher.Run(ctx)
	}

	s.started = true
	s.logger.Info(ctx, "contest listing service started",
		logger.Int("contests", s.store.Count(ctx)),
		logger.Duration("refreshInterval", s.refreshInterval),
	)
	return nil
}

// Stop shuts down the refresher, if any.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	s.logger.Info(ctx, "stopping contest listing service...")
	if s.refresher != nil {
		if err := s.refresher.Shutdown(ctx); err != nil {
			s.logger.Warn(ctx, "refresher did not stop cleanly", logger.Error(err))
		}
		s.refresher = nil
	}

	s.started = false
	s.logger.Info(ctx, "contest listing service stopped")
}

// Refresh fetches the collection and replaces the stored one. A failed
// fetch leaves an empty ready collection; the error is logged and counted
// but never returned. A fetch abandoned because ctx ended keeps the
// current collection.
func (s *Service) Refresh(ctx context.Context) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	log := s.log()
	if s.source == nil {
		log.Warn(ctx, "refresh skipped", logger.Error(ErrNoSource))
		return
	}

	start := time.Now()
	contests, err := s.source.Fetch(ctx)
	elapsed := time.Since(start)

	if err != nil && ctx.Err() != nil {
		metrics.RecordSourceFetch(outcomeCanceled, float64(elapsed.Microseconds())/1000)
		log.Info(ctx, "contest fetch abandoned, keeping the current collection",
			logger.Duration("elapsed", elapsed),
			logger.Error(err),
		)
		return
	}

	outcome := source.Kind(err)
	metrics.RecordSourceFetch(outcome, float64(elapsed.Microseconds())/1000)
	if err != nil {
		metrics.RecordErrorByComponent("source", outcome)
		log.Warn(ctx, "contest fetch failed, serving an empty collection",
			logger.String("outcome", outcome),
			logger.Duration("elapsed", elapsed),
			logger.Error(err),
		)
	} else {
		log.Info(ctx, "contests loaded",
			logger.Int("count", len(contests)),
			logger.Duration("elapsed", elapsed),
		)
	}

	s.store.Replace(ctx, contests, err)
	metrics.UpdateLastRefresh(s.now().Unix())
}

// View filters and classifies the stored collection against one instant.
// While the first fetch is pending every collection in the view is empty.
func (s *Service) View(ctx context.Context, spec filter.Spec) types.View {
	now := s.now()
	snap := s.store.Snapshot(ctx)

	v := types.EmptyView(string(snap.State), spec, now)
	v.Degraded = snap.Failed()
	if snap.State != repository.StateReady {
		metrics.RecordListing(statusLabel(spec.Status), 0)
		return v
	}

	v.All = snap.Contests
	v.Contests = filter.Apply(snap.Contests, spec, now)
	v.Active, v.Finished = classify.Partition(v.Contests, now)
	v.Summary = filter.Summarize(snap.Contests)
	v.FilteredSummary = filter.Summarize(v.Contests)
	v.ActiveCount = len(v.Active)
	v.FinishedCount = len(v.Finished)

	metrics.RecordListing(statusLabel(spec.Status), len(v.Contests))
	return v
}

// Overview returns the header aggregates over the full collection.
func (s *Service) Overview(ctx context.Context) types.Overview {
	snap := s.store.Snapshot(ctx)
	o := types.Overview{
		State:    string(snap.State),
		Summary:  filter.Summarize(snap.Contests),
		Degraded: snap.Failed(),
	}
	if snap.State == repository.StateReady {
		loaded := snap.LoadedAt
		o.LoadedAt = &loaded
	}
	return o
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	snap := s.store.Snapshot(ctx)
	stats := map[string]interface{}{
		"started":         s.started,
		"state":           string(snap.State),
		"refreshInterval": s.refreshInterval.String(),
		"totalContests":   len(snap.Contests),
		"loads":           snap.Loads,
	}

	if snap.State == repository.StateReady {
		stats["loadedAt"] = snap.LoadedAt
	}
	if snap.LastError != nil {
		stats["lastError"] = snap.LastError.Error()
	}

	metrics.UpdateContestsLoaded(len(snap.Contests))
	return stats
}

// statusLabel maps a raw status keyword onto the closed set of metric labels.
func statusLabel(keyword string) string {
	if st, ok := filter.ParseStatus(keyword); ok {
		return string(st)
	}
	if strings.TrimSpace(keyword) == "" {
		return statusAny
	}
	return statusUnrecognized
}

func (s *Service) log() logger.Logger {
	if s.logger == nil {
		return logger.Get()
	}
	return s.logger
}
