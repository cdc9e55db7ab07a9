package app

import (
	"sort"

	"github.com/sproutly/matchengine/internal/domain/capability"
	"github.com/sproutly/matchengine/internal/domain/model"
	"github.com/sproutly/matchengine/internal/domain/trainers"
	"github.com/sproutly/matchengine/pkg/logger"
)

// TrainerFilter bundles the optional trainer filter criteria. Absent
// fields skip their filter.
type TrainerFilter struct {
	Capabilities  []string
	Location      *model.Location
	MaxDistanceKM float64
	ActivityIDs   []int
}

// TrainerService orchestrates trainer filtering, ranking, and best-match
// resolution. All methods are pure functions of their inputs.
type TrainerService struct {
	defaultWeights model.Weights
	logger         logger.Logger
}

// TrainerOption applies a configuration option to the TrainerService.
type TrainerOption func(*TrainerService)

// WithDefaultWeights overrides the weights used when criteria carry none.
func WithDefaultWeights(w model.Weights) TrainerOption {
	return func(s *TrainerService) {
		s.defaultWeights = w
	}
}

// WithTrainerLogger sets a custom logger for the service.
func WithTrainerLogger(l logger.Logger) TrainerOption {
	return func(s *TrainerService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewTrainerService constructs a TrainerService with defaults.
func NewTrainerService(opts ...TrainerOption) *TrainerService {
	s := &TrainerService{
		defaultWeights: model.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Filter applies the capability, location, and activity filters in
// sequence.
func (s *TrainerService) Filter(ts []model.Trainer, f TrainerFilter, bindings []model.PackageActivity) []model.Trainer {
	filtered := trainers.MatchByCapability(ts, f.Capabilities)
	filtered = trainers.MatchByLocation(filtered, f.Location, f.MaxDistanceKM)
	filtered = trainers.MatchByActivities(filtered, f.ActivityIDs, bindings)
	return filtered
}

// Rank orders trainers by composite score, applying the service default
// weights when the criteria carry none.
func (s *TrainerService) Rank(ts []model.Trainer, criteria model.RankingCriteria, bindings []model.PackageActivity) []model.Trainer {
	if criteria.Weights == nil {
		w := s.defaultWeights
		criteria.Weights = &w
	}
	return trainers.RankTrainers(ts, criteria, bindings)
}

// BestMatch resolves the single best trainer for the requirements, or
// nil when nobody is eligible. The service default weights rank the
// eligible trainers, matching Rank.
func (s *TrainerService) BestMatch(ts []model.Trainer, req model.TrainerRequirements, catalog []model.Activity, bindings []model.PackageActivity) *model.Trainer {
	w := s.defaultWeights
	return trainers.BestMatch(ts, req, catalog, bindings, &w)
}

// Stats summarizes a trainer filter pass. Every trainer surviving the
// filters counts as available for booking.
func (s *TrainerService) Stats(all, filtered []model.Trainer) model.TrainerStats {
	return model.TrainerStats{
		Total:     len(all),
		Filtered:  len(filtered),
		Available: len(filtered),
	}
}

// ActivityCount returns how many package activities list the trainer.
func (s *TrainerService) ActivityCount(trainerID int, bindings []model.PackageActivity) int {
	count := 0
	for _, b := range bindings {
		for _, id := range b.TrainerIDs {
			if id == trainerID {
				count++
				break
			}
		}
	}
	return count
}

// CapabilityDisplayName maps a capability tag to its label.
func (s *TrainerService) CapabilityDisplayName(tag string) string {
	return capability.DisplayName(tag)
}

// AvailableCapabilities returns the sorted union of all capability tags
// declared across the trainers.
func (s *TrainerService) AvailableCapabilities(ts []model.Trainer) []string {
	seen := make(map[string]bool)
	for _, t := range ts {
		for _, c := range t.Capabilities {
			seen[c] = true
		}
	}
	caps := make([]string, 0, len(seen))
	for c := range seen {
		caps = append(caps, c)
	}
	sort.Strings(caps)
	return caps
}

// MatchesRequiredCapabilities reports whether the trainer declares every
// required capability.
func (s *TrainerService) MatchesRequiredCapabilities(t model.Trainer, required []string) bool {
	return capability.HasAll(t, required)
}
