// Package model contains domain models passed between layers.
package model

import "time"

// Default ranking weights applied when the caller supplies none.
const (
	DefaultRatingWeight     = 0.4
	DefaultExperienceWeight = 0.3
	DefaultDistanceWeight   = 0.3
)

// Trainer represents a coach who can be booked for activities.
//
// Two optional collections carry deliberately different nil semantics:
// a nil Capabilities means "no declared capabilities" and excludes the
// trainer from capability filters, while a nil ServiceRegions means "no
// regional restriction" and keeps the trainer in location filters.
type Trainer struct {
	ID   int    // stable identifier from the booking backend
	Name string
	Slug string

	Capabilities   []string // nil = none declared
	ServiceRegions []string // nil = serves everywhere

	Rating     float64 // 0-5, zero when unrated
	Experience int     // years, zero when unknown
}

// Activity represents a bookable activity with an hourly duration and
// optional availability constraints. When none of AvailableInRegions,
// AvailablePostcodes, or a radius+coordinates pair is set, the activity
// is available everywhere.
type Activity struct {
	ID          int
	Name        string
	Description string
	Duration    float64 // hours, positive

	AvailableInRegions []string
	AvailablePostcodes []string
	ServiceRadiusKM    float64
	Lat                *float64
	Lng                *float64
}

// Location is a caller-supplied point of interest. A location with no
// region and no postcode matches everything.
type Location struct {
	Postcode string
	Region   string
	City     string
	Lat      *float64
	Lng      *float64
}

// Empty reports whether the location carries neither region nor postcode
// and therefore acts as a no-op filter.
func (l Location) Empty() bool {
	return l.Region == "" && l.Postcode == ""
}

// PackageActivity links an activity to the trainers qualified to run it.
// Supplied by the caller; the engine never owns or mutates these records.
type PackageActivity struct {
	ID         int
	TrainerIDs []int
}

// Weights tune the rating/experience/distance terms of the trainer score.
// Distance is accepted for forward compatibility but not consumed by the
// current formula.
type Weights struct {
	Rating     float64
	Experience float64
	Distance   float64
}

// DefaultWeights returns the weights used when the caller supplies none.
func DefaultWeights() Weights {
	return Weights{
		Rating:     DefaultRatingWeight,
		Experience: DefaultExperienceWeight,
		Distance:   DefaultDistanceWeight,
	}
}

// RankingCriteria drives RankTrainers. Every field is optional; absent
// criteria contribute nothing to the score.
type RankingCriteria struct {
	Location     *Location
	Capabilities []string
	Activities   []string // activity references, by numeric id or name
	Date         *time.Time
	Weights      *Weights
}

// EffectiveWeights returns the supplied weights or the defaults.
func (c RankingCriteria) EffectiveWeights() Weights {
	if c.Weights == nil {
		return DefaultWeights()
	}
	return *c.Weights
}

// TrainerRequirements describes a single best-match resolution request.
type TrainerRequirements struct {
	Capabilities    []string
	Activity        string // optional single activity reference, id or name
	Location        Location
	Date            *time.Time
	SessionDuration float64
}

// ValidationResult is the verdict for an activity selection. Warnings are
// advisory and never affect Valid.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ActivityStats summarizes an activity filter pass.
type ActivityStats struct {
	Total     int    `json:"total"`
	Available int    `json:"available"`
	Filtered  int    `json:"filtered"`
	Region    string `json:"region"`
}

// TrainerStats summarizes a trainer filter pass.
type TrainerStats struct {
	Total     int `json:"total"`
	Filtered  int `json:"filtered"`
	Available int `json:"available"`
}
