// Package schedule computes selected-activity durations against a
// session budget.
package schedule

import (
	"github.com/sproutly/matchengine/internal/domain/model"
)

// Duration band thresholds in hours.
const (
	longBandMin   = 2.0
	mediumBandMin = 1.5
)

// Band classifies an activity duration for presentation. The concrete
// visual mapping belongs to the UI consuming it.
type Band string

// Band values.
const (
	BandLong   Band = "long"
	BandMedium Band = "medium"
	BandShort  Band = "short"
)

// TotalDuration sums the duration of every activity whose id appears in
// selectedIDs.
func TotalDuration(activities []model.Activity, selectedIDs []int) float64 {
	selected := idSet(selectedIDs)
	total := 0.0
	for _, a := range activities {
		if selected[a.ID] {
			total += a.Duration
		}
	}
	return total
}

// CanSelect reports whether toggling the given activity is allowed.
// Deselecting is always allowed. Adding is allowed while the running
// total stays inside the session budget, and additionally for the very
// first selection even when it alone exceeds the budget, so the caller
// can adjust the session length afterwards.
func CanSelect(activity model.Activity, selectedIDs []int, all []model.Activity, sessionDuration float64) bool {
	if idSet(selectedIDs)[activity.ID] {
		return true
	}
	total := TotalDuration(all, selectedIDs)
	if total+activity.Duration <= sessionDuration {
		return true
	}
	return len(selectedIDs) == 0
}

// RemainingCapacity returns the unused portion of the session budget,
// never negative.
func RemainingCapacity(activities []model.Activity, selectedIDs []int, sessionDuration float64) float64 {
	remaining := sessionDuration - TotalDuration(activities, selectedIDs)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ExceedsDuration reports whether the selection overruns the session
// budget.
func ExceedsDuration(activities []model.Activity, selectedIDs []int, sessionDuration float64) bool {
	return TotalDuration(activities, selectedIDs) > sessionDuration
}

// DurationBand buckets a duration for presentation.
func DurationBand(duration float64) Band {
	switch {
	case duration >= longBandMin:
		return BandLong
	case duration >= mediumBandMin:
		return BandMedium
	default:
		return BandShort
	}
}

func idSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
