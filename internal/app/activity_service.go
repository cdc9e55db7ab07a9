// Package app provides the orchestration services composing the matching
// and scheduling domain packages, and the engine that hosts them behind
// the HTTP API.
package app

import (
	"context"
	"fmt"

	"github.com/sproutly/matchengine/internal/domain/activities"
	"github.com/sproutly/matchengine/internal/domain/model"
	"github.com/sproutly/matchengine/internal/domain/schedule"
	"github.com/sproutly/matchengine/pkg/logger"
	"github.com/sproutly/matchengine/pkg/metrics"
)

// underUtilizationRatio is the fraction of the session budget below which
// a selection draws a warning.
const underUtilizationRatio = 0.5

// regionAll labels stats computed without a location constraint.
const regionAll = "all"

// ActivityService orchestrates activity filtering, ranking, and
// selection validation. All methods are pure functions of their inputs.
type ActivityService struct {
	matcher *activities.Matcher
	logger  logger.Logger
}

// ActivityOption applies a configuration option to the ActivityService.
type ActivityOption func(*ActivityService)

// WithActivityMatcher replaces the activity matcher.
func WithActivityMatcher(m *activities.Matcher) ActivityOption {
	return func(s *ActivityService) {
		if m != nil {
			s.matcher = m
		}
	}
}

// WithActivityLogger sets a custom logger for the service.
func WithActivityLogger(l logger.Logger) ActivityOption {
	return func(s *ActivityService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewActivityService constructs an ActivityService with defaults.
func NewActivityService(opts ...ActivityOption) *ActivityService {
	s := &ActivityService{
		matcher: activities.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FilterActivities applies the optional location, search, and duration
// filters.
func (s *ActivityService) FilterActivities(as []model.Activity, opts activities.FilterOptions) []model.Activity {
	return s.matcher.Filter(as, opts)
}

// RankActivities reorders activities via the suggestion ranker.
func (s *ActivityService) RankActivities(as []model.Activity, loc *model.Location) []model.Activity {
	return s.matcher.Rank(as, loc)
}

// TotalDuration sums the durations of the selected activities.
func (s *ActivityService) TotalDuration(as []model.Activity, selectedIDs []int) float64 {
	return schedule.TotalDuration(as, selectedIDs)
}

// CanSelectActivity reports whether toggling the activity is allowed
// within the session budget.
func (s *ActivityService) CanSelectActivity(a model.Activity, selectedIDs []int, all []model.Activity, sessionDuration float64) bool {
	return schedule.CanSelect(a, selectedIDs, all, sessionDuration)
}

// ValidateSelection checks an activity selection against the session
// budget. A booking must either select activities or delegate the choice
// to the trainer; an over-budget selection is an error and an
// under-utilized one only a warning.
func (s *ActivityService) ValidateSelection(ctx context.Context, selectedIDs []int, trainerChoice bool, all []model.Activity, sessionDuration float64) model.ValidationResult {
	result := model.ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	if len(selectedIDs) == 0 {
		if !trainerChoice {
			result.Errors = append(result.Errors, "select at least one activity or let the trainer choose")
		}
	} else {
		total := schedule.TotalDuration(all, selectedIDs)
		switch {
		case total > sessionDuration:
			result.Errors = append(result.Errors,
				fmt.Sprintf("selected activities take %.1fh but the session is %.1fh", total, sessionDuration))
		case total < sessionDuration*underUtilizationRatio:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("selected activities fill only %.1fh of a %.1fh session", total, sessionDuration))
		}
	}

	result.Valid = len(result.Errors) == 0
	if !result.Valid {
		metrics.RecordValidationFailure()
		if s.logger != nil {
			s.logger.Debug(ctx, "selection rejected",
				logger.Int("selected", len(selectedIDs)),
				logger.Float64("session_hours", sessionDuration))
		}
	}
	return result
}

// RecommendedForMode returns the activities suiting a booking mode.
func (s *ActivityService) RecommendedForMode(as []model.Activity, mode activities.Mode) []model.Activity {
	return s.matcher.FilterByMode(as, mode)
}

// IsRecommendedForMode reports whether one activity suits a booking mode.
func (s *ActivityService) IsRecommendedForMode(a model.Activity, mode activities.Mode) bool {
	return s.matcher.MatchesMode(a, mode)
}

// Stats summarizes a filter pass over the catalog.
func (s *ActivityService) Stats(all, filtered []model.Activity, loc *model.Location) model.ActivityStats {
	stats := model.ActivityStats{
		Total:     len(all),
		Available: len(all),
		Filtered:  len(filtered),
		Region:    regionAll,
	}
	if loc != nil {
		stats.Available = len(s.matcher.FilterByLocation(all, loc))
		if loc.Region != "" {
			stats.Region = loc.Region
		}
	}
	return stats
}
