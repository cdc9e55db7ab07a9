// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sproutly/matchengine/internal/adapters/repository"
	"github.com/sproutly/matchengine/internal/app"
	"github.com/sproutly/matchengine/internal/domain/activities"
	"github.com/sproutly/matchengine/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// ReplaceCatalog swaps in a new catalog snapshot.
	ReplaceCatalog(ctx context.Context, snap repository.Snapshot) error

	// MatchTrainers filters and ranks the catalog trainers.
	MatchTrainers(ctx context.Context, filter app.TrainerFilter, criteria model.RankingCriteria) []model.Trainer

	// ResolveBestMatch returns the best trainer or nil when none is eligible.
	ResolveBestMatch(ctx context.Context, req model.TrainerRequirements) *model.Trainer

	// SearchActivities filters and optionally ranks the catalog activities.
	SearchActivities(ctx context.Context, opts activities.FilterOptions, rank bool) ([]model.Activity, model.ActivityStats)

	// ValidateSelection checks a selection against the session budget.
	ValidateSelection(ctx context.Context, selectedIDs []int, trainerChoice bool, sessionDuration float64) model.ValidationResult

	// RecommendedForMode returns the activities suiting a booking mode.
	RecommendedForMode(ctx context.Context, mode activities.Mode) []model.Activity
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	catalogHandler   *CatalogHandler
	matchHandler     *MatchHandler
	bestMatchHandler *BestMatchHandler
	searchHandler    *SearchHandler
	validateHandler  *ValidateHandler
	recommendHandler *RecommendHandler
}

// NewServer creates a new API server with all handlers. maxLimit caps the
// size of returned collections.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		catalogHandler:   NewCatalogHandler(deps),
		matchHandler:     NewMatchHandler(deps, maxLimit),
		bestMatchHandler: NewBestMatchHandler(deps),
		searchHandler:    NewSearchHandler(deps, maxLimit),
		validateHandler:  NewValidateHandler(deps),
		recommendHandler: NewRecommendHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/catalog", MetricsMiddleware(s.catalogHandler.HandlePutCatalog, "catalog"))
	mux.HandleFunc("/match/trainers", MetricsMiddleware(s.matchHandler.HandleMatchTrainers, "match_trainers"))
	mux.HandleFunc("/match/best", MetricsMiddleware(s.bestMatchHandler.HandleBestMatch, "match_best"))
	mux.HandleFunc("/activities/search", MetricsMiddleware(s.searchHandler.HandleSearch, "activities_search"))
	mux.HandleFunc("/activities/validate", MetricsMiddleware(s.validateHandler.HandleValidate, "activities_validate"))
	mux.HandleFunc("/activities/modes/", MetricsMiddleware(s.recommendHandler.HandleRecommend, "activities_modes"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func decodeBody(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ErrBadRequest
	}
	return nil
}
