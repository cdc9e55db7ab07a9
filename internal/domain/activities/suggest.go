package activities

import (
	"sort"

	"github.com/sproutly/matchengine/internal/domain/model"
)

// DefaultRanker is the built-in SuggestionRanker. With a location hint it
// prefers activities deliverable at that location, then shorter
// durations; without one it orders by duration alone. The sort is stable
// so equally ranked activities keep their input order.
type DefaultRanker struct {
	evaluator AvailabilityEvaluator
}

// NewDefaultRanker creates the built-in suggestion ranker.
func NewDefaultRanker() *DefaultRanker {
	return &DefaultRanker{evaluator: NewGeoEvaluator()}
}

// Rank returns a reordered copy of as. The result is always a
// permutation of the input.
func (r *DefaultRanker) Rank(as []model.Activity, loc *model.Location) []model.Activity {
	ranked := make([]model.Activity, len(as))
	copy(ranked, as)

	sort.SliceStable(ranked, func(i, j int) bool {
		if loc != nil {
			ai := r.evaluator.Available(ranked[i], *loc)
			aj := r.evaluator.Available(ranked[j], *loc)
			if ai != aj {
				return ai
			}
		}
		return ranked[i].Duration < ranked[j].Duration
	})
	return ranked
}
