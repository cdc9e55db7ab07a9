// Package trainers filters trainer collections by capability, location,
// and activity support, and ranks them by a weighted composite score.
package trainers

import (
	"strings"

	"github.com/sproutly/matchengine/internal/domain/capability"
	"github.com/sproutly/matchengine/internal/domain/model"
)

// MatchByCapability keeps trainers declaring every required capability.
// An empty requirement is the identity transform.
func MatchByCapability(ts []model.Trainer, required []string) []model.Trainer {
	if len(required) == 0 {
		return ts
	}
	kept := make([]model.Trainer, 0, len(ts))
	for _, t := range ts {
		if capability.HasAll(t, required) {
			kept = append(kept, t)
		}
	}
	return kept
}

// MatchByLocation keeps trainers serving the location's region. A
// location with neither region nor postcode is the identity transform.
// Trainers with no declared service regions are unrestricted and always
// kept; so is everyone when only a postcode is given, since postcode
// level filtering is not implemented here. maxDistanceKM is reserved for
// a future great-circle cut and currently unused.
func MatchByLocation(ts []model.Trainer, loc *model.Location, maxDistanceKM float64) []model.Trainer {
	if loc == nil || loc.Empty() {
		return ts
	}
	kept := make([]model.Trainer, 0, len(ts))
	for _, t := range ts {
		if t.ServiceRegions == nil {
			kept = append(kept, t)
			continue
		}
		if loc.Region == "" {
			kept = append(kept, t)
			continue
		}
		if servesRegion(t, loc.Region) {
			kept = append(kept, t)
		}
	}
	return kept
}

// MatchByActivity keeps trainers qualified for the activity per the
// package bindings. An unknown activity id fails open and returns all
// trainers unchanged.
func MatchByActivity(ts []model.Trainer, activityID int, bindings []model.PackageActivity) []model.Trainer {
	binding, ok := findBinding(bindings, activityID)
	if !ok {
		return ts
	}
	qualified := trainerIDSet(binding.TrainerIDs)
	kept := make([]model.Trainer, 0, len(ts))
	for _, t := range ts {
		if qualified[t.ID] {
			kept = append(kept, t)
		}
	}
	return kept
}

// MatchByActivities keeps trainers qualified for at least one of the
// requested activities (OR semantics). Empty inputs are the identity
// transform.
func MatchByActivities(ts []model.Trainer, activityIDs []int, bindings []model.PackageActivity) []model.Trainer {
	if len(activityIDs) == 0 || len(bindings) == 0 {
		return ts
	}
	qualified := make(map[int]bool)
	for _, id := range activityIDs {
		if binding, ok := findBinding(bindings, id); ok {
			for _, tid := range binding.TrainerIDs {
				qualified[tid] = true
			}
		}
	}
	kept := make([]model.Trainer, 0, len(ts))
	for _, t := range ts {
		if qualified[t.ID] {
			kept = append(kept, t)
		}
	}
	return kept
}

func servesRegion(t model.Trainer, region string) bool {
	for _, r := range t.ServiceRegions {
		if strings.EqualFold(r, region) {
			return true
		}
	}
	return false
}

func findBinding(bindings []model.PackageActivity, activityID int) (model.PackageActivity, bool) {
	for _, b := range bindings {
		if b.ID == activityID {
			return b, true
		}
	}
	return model.PackageActivity{}, false
}

func trainerIDSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
