// Package activities filters and ranks activity collections by location,
// free text, duration, and booking mode.
package activities

import (
	"strings"

	"github.com/sproutly/matchengine/internal/domain/model"
)

// Duration bucket bounds in hours for filtering.
const (
	shortBucketMax  = 1.0
	mediumBucketMax = 3.0
)

// Bucket names accepted by FilterOptions.Duration.
const (
	BucketShort  = "short"
	BucketMedium = "medium"
	BucketLong   = "long"
)

// AvailabilityEvaluator decides whether an activity can be delivered at a
// location. Implementations own the region/postcode/radius rules.
type AvailabilityEvaluator interface {
	Available(a model.Activity, loc model.Location) bool
}

// SuggestionRanker reorders a filtered activity set, optionally biased by
// a location hint. Implementations must return a permutation of the
// input, with no additions or removals.
type SuggestionRanker interface {
	Rank(as []model.Activity, loc *model.Location) []model.Activity
}

// FilterOptions selects which filters Filter applies. Zero-valued fields
// are skipped.
type FilterOptions struct {
	Location *model.Location
	Search   string
	Duration string // one of the Bucket constants
}

// Matcher filters and ranks activities using injected collaborators.
type Matcher struct {
	evaluator AvailabilityEvaluator
	ranker    SuggestionRanker
}

// New constructs a Matcher with the default geo evaluator and ranker.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		evaluator: NewGeoEvaluator(),
		ranker:    NewDefaultRanker(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Filter applies the location, free-text, and duration-bucket filters in
// sequence, skipping any that are absent from opts.
func (m *Matcher) Filter(as []model.Activity, opts FilterOptions) []model.Activity {
	result := as
	if opts.Location != nil {
		result = m.FilterByLocation(result, opts.Location)
	}
	if opts.Search != "" {
		result = filterBySearch(result, opts.Search)
	}
	if opts.Duration != "" {
		result = filterByDurationBucket(result, opts.Duration)
	}
	return result
}

// FilterByLocation keeps activities available at the location. A nil
// location is the identity transform.
func (m *Matcher) FilterByLocation(as []model.Activity, loc *model.Location) []model.Activity {
	if loc == nil {
		return as
	}
	kept := make([]model.Activity, 0, len(as))
	for _, a := range as {
		if m.evaluator.Available(a, *loc) {
			kept = append(kept, a)
		}
	}
	return kept
}

// Rank delegates to the injected suggestion ranker.
func (m *Matcher) Rank(as []model.Activity, loc *model.Location) []model.Activity {
	return m.ranker.Rank(as, loc)
}

func filterBySearch(as []model.Activity, query string) []model.Activity {
	q := strings.ToLower(query)
	kept := make([]model.Activity, 0, len(as))
	for _, a := range as {
		if strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Description), q) {
			kept = append(kept, a)
		}
	}
	return kept
}

func filterByDurationBucket(as []model.Activity, bucket string) []model.Activity {
	kept := make([]model.Activity, 0, len(as))
	for _, a := range as {
		var match bool
		switch bucket {
		case BucketShort:
			match = a.Duration <= shortBucketMax
		case BucketMedium:
			match = a.Duration > shortBucketMax && a.Duration <= mediumBucketMax
		case BucketLong:
			match = a.Duration > mediumBucketMax
		}
		if match {
			kept = append(kept, a)
		}
	}
	return kept
}
