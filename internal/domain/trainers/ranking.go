package trainers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sproutly/matchengine/internal/domain/capability"
	"github.com/sproutly/matchengine/internal/domain/model"
)

// Composite score constants. The capability and activity term weights are
// fixed product constants and intentionally independent of the
// caller-supplied rating/experience weights; changing either side would
// change established ranking outcomes.
const (
	capabilityTermWeight = 0.4
	activityTermWeight   = 0.3

	ratingScale          = 20.0 // maps the 0-5 rating onto a 0-100 scale
	fullScore            = 100.0
	experienceCeilingYrs = 10.0 // years of experience worth a full score
)

// RankTrainers returns the trainers ordered by composite score, highest
// first. The sort is stable: trainers with identical scores keep their
// relative input order. The input slice is never mutated.
func RankTrainers(ts []model.Trainer, criteria model.RankingCriteria, bindings []model.PackageActivity) []model.Trainer {
	ranked := make([]model.Trainer, len(ts))
	copy(ranked, ts)

	scores := make(map[int]float64, len(ranked))
	for _, t := range ranked {
		scores[t.ID] = compositeScore(t, criteria, bindings)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})
	return ranked
}

// BestMatch resolves a single best trainer for the requirements:
// capability filter, then location, then (when the activity reference
// resolves against the catalog) the activity's qualified-trainer list.
// A nil weights falls back to the default ranking weights. Returns nil
// when no trainer survives the filters.
func BestMatch(ts []model.Trainer, req model.TrainerRequirements, catalog []model.Activity, bindings []model.PackageActivity, weights *model.Weights) *model.Trainer {
	eligible := MatchByCapability(ts, req.Capabilities)
	eligible = MatchByLocation(eligible, &req.Location, 0)

	criteria := model.RankingCriteria{
		Location:     &req.Location,
		Capabilities: req.Capabilities,
		Date:         req.Date,
		Weights:      weights,
	}
	if id, ok := ResolveActivityRef(req.Activity, catalog); ok {
		eligible = MatchByActivity(eligible, id, bindings)
		criteria.Activities = []string{strconv.Itoa(id)}
	}

	if len(eligible) == 0 {
		return nil
	}
	ranked := RankTrainers(eligible, criteria, bindings)
	best := ranked[0]
	return &best
}

// ResolveActivityRef resolves an activity reference given by numeric id
// or by name (case-insensitive) against the catalog.
func ResolveActivityRef(ref string, catalog []model.Activity) (int, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, false
	}
	if id, err := strconv.Atoi(ref); err == nil {
		for _, a := range catalog {
			if a.ID == id {
				return id, true
			}
		}
		return 0, false
	}
	for _, a := range catalog {
		if strings.EqualFold(a.Name, ref) {
			return a.ID, true
		}
	}
	return 0, false
}

// compositeScore is the additive ranking formula. Higher is better.
func compositeScore(t model.Trainer, criteria model.RankingCriteria, bindings []model.PackageActivity) float64 {
	score := 0.0

	if len(criteria.Capabilities) > 0 {
		score += capability.Score(t, criteria.Capabilities) * capabilityTermWeight
	}

	if len(criteria.Activities) > 0 && len(bindings) > 0 {
		score += activityTerm(t, criteria.Activities, bindings)
	}

	weights := criteria.EffectiveWeights()
	score += t.Rating * ratingScale * weights.Rating

	experience := float64(t.Experience) / experienceCeilingYrs
	if experience > 1 {
		experience = 1
	}
	score += experience * fullScore * weights.Experience

	return score
}

// activityTerm scores the share of requested activities the trainer is
// qualified for. Only numeric references known to the bindings count.
func activityTerm(t model.Trainer, refs []string, bindings []model.PackageActivity) float64 {
	requested := make([]model.PackageActivity, 0, len(refs))
	for _, ref := range refs {
		id, err := strconv.Atoi(strings.TrimSpace(ref))
		if err != nil {
			continue
		}
		if binding, ok := findBinding(bindings, id); ok {
			requested = append(requested, binding)
		}
	}
	if len(requested) == 0 {
		return 0
	}
	supported := 0
	for _, binding := range requested {
		if trainerIDSet(binding.TrainerIDs)[t.ID] {
			supported++
		}
	}
	return float64(supported) / float64(len(requested)) * fullScore * activityTermWeight
}
