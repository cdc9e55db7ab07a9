package app

import (
	"context"
	"time"

	"github.com/sproutly/matchengine/internal/adapters/repository"
	"github.com/sproutly/matchengine/internal/domain/activities"
	"github.com/sproutly/matchengine/internal/domain/model"
	"github.com/sproutly/matchengine/pkg/logger"
	"github.com/sproutly/matchengine/pkg/metrics"
)

// Engine hosts the matching services over a catalog snapshot store and
// implements the dependencies required by the HTTP API.
type Engine struct {
	catalog  repository.Store
	acts     *ActivityService
	trainers *TrainerService
	logger   logger.Logger
}

// EngineOption applies a configuration option to the Engine.
type EngineOption func(*Engine)

// WithCatalog replaces the catalog store.
func WithCatalog(store repository.Store) EngineOption {
	return func(e *Engine) {
		if store != nil {
			e.catalog = store
		}
	}
}

// WithActivityService replaces the activity service.
func WithActivityService(s *ActivityService) EngineOption {
	return func(e *Engine) {
		if s != nil {
			e.acts = s
		}
	}
}

// WithTrainerService replaces the trainer service.
func WithTrainerService(s *TrainerService) EngineOption {
	return func(e *Engine) {
		if s != nil {
			e.trainers = s
		}
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine constructs an Engine with default components.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		catalog:  repository.NewMemoryStore(),
		acts:     NewActivityService(),
		trainers: NewTrainerService(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logger.Get()
	}
	return e
}

// Activities exposes the activity service for library callers.
func (e *Engine) Activities() *ActivityService { return e.acts }

// Trainers exposes the trainer service for library callers.
func (e *Engine) Trainers() *TrainerService { return e.trainers }

// ReplaceCatalog swaps in a new catalog snapshot.
func (e *Engine) ReplaceCatalog(ctx context.Context, snap repository.Snapshot) error {
	if err := e.catalog.Replace(ctx, snap); err != nil {
		return err
	}
	e.logger.Info(ctx, "catalog replaced",
		logger.Int("trainers", len(snap.Trainers)),
		logger.Int("activities", len(snap.Activities)),
		logger.Int("bindings", len(snap.Bindings)))
	return nil
}

// MatchTrainers filters the catalog trainers and ranks the survivors.
func (e *Engine) MatchTrainers(ctx context.Context, filter TrainerFilter, criteria model.RankingCriteria) []model.Trainer {
	start := time.Now()
	all := e.catalog.Trainers(ctx)
	bindings := e.catalog.Bindings(ctx)

	filtered := e.trainers.Filter(all, filter, bindings)
	ranked := e.trainers.Rank(filtered, criteria, bindings)

	metrics.RecordMatchRequest("trainers")
	metrics.RecordRankingLatency(float64(time.Since(start).Milliseconds()))
	return ranked
}

// ResolveBestMatch returns the single best trainer for the requirements,
// or nil when nobody is eligible.
func (e *Engine) ResolveBestMatch(ctx context.Context, req model.TrainerRequirements) *model.Trainer {
	start := time.Now()
	best := e.trainers.BestMatch(
		e.catalog.Trainers(ctx),
		req,
		e.catalog.Activities(ctx),
		e.catalog.Bindings(ctx),
	)

	metrics.RecordMatchRequest("best")
	metrics.RecordRankingLatency(float64(time.Since(start).Milliseconds()))
	if best == nil {
		metrics.RecordEmptyBestMatch()
	}
	return best
}

// SearchActivities filters the catalog activities and optionally ranks
// the result via the suggestion ranker.
func (e *Engine) SearchActivities(ctx context.Context, opts activities.FilterOptions, rank bool) ([]model.Activity, model.ActivityStats) {
	all := e.catalog.Activities(ctx)
	filtered := e.acts.FilterActivities(all, opts)
	if rank {
		filtered = e.acts.RankActivities(filtered, opts.Location)
	}
	metrics.RecordMatchRequest("activities")
	return filtered, e.acts.Stats(all, filtered, opts.Location)
}

// ValidateSelection checks an activity selection against the session
// budget using the stored catalog.
func (e *Engine) ValidateSelection(ctx context.Context, selectedIDs []int, trainerChoice bool, sessionDuration float64) model.ValidationResult {
	return e.acts.ValidateSelection(ctx, selectedIDs, trainerChoice, e.catalog.Activities(ctx), sessionDuration)
}

// RecommendedForMode returns the catalog activities suiting a booking
// mode.
func (e *Engine) RecommendedForMode(ctx context.Context, mode activities.Mode) []model.Activity {
	return e.acts.RecommendedForMode(e.catalog.Activities(ctx), mode)
}

// GetStats returns service statistics for the stats endpoint.
func (e *Engine) GetStats() map[string]interface{} {
	ctx := context.Background()
	trainerCount, activityCount, bindingCount := e.catalog.Counts(ctx)
	return map[string]interface{}{
		"trainers":     trainerCount,
		"activities":   activityCount,
		"bindings":     bindingCount,
		"capabilities": e.trainers.AvailableCapabilities(e.catalog.Trainers(ctx)),
	}
}
