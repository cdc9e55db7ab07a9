// Package capability tests trainers against required capability tags and
// computes capability-match scores.
package capability

import (
	"github.com/sproutly/matchengine/internal/domain/model"
)

// Score bounds.
const (
	maxScore = 100.0
	minScore = 0.0
)

// Has reports whether the trainer declares the given capability tag.
// A trainer with no declared capabilities has none of them.
func Has(t model.Trainer, tag string) bool {
	for _, c := range t.Capabilities {
		if c == tag {
			return true
		}
	}
	return false
}

// HasAll reports whether the trainer declares every required tag.
// Vacuously true when required is empty.
func HasAll(t model.Trainer, required []string) bool {
	for _, r := range required {
		if !Has(t, r) {
			return false
		}
	}
	return true
}

// HasAny reports whether the trainer declares at least one required tag.
// Vacuously true when required is empty.
func HasAny(t model.Trainer, required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if Has(t, r) {
			return true
		}
	}
	return false
}

// Score returns the percentage of required tags the trainer declares,
// clamped to [0,100]. No requirement means a perfect match; a trainer
// with no declared capabilities scores zero against any requirement.
func Score(t model.Trainer, required []string) float64 {
	if len(required) == 0 {
		return maxScore
	}
	if len(t.Capabilities) == 0 {
		return minScore
	}
	matched := 0
	for _, r := range required {
		if Has(t, r) {
			matched++
		}
	}
	score := float64(matched) / float64(len(required)) * maxScore
	if score > maxScore {
		return maxScore
	}
	if score < minScore {
		return minScore
	}
	return score
}

// Compare returns the score difference between two trainers against the
// same requirement. Positive favors a.
func Compare(a, b model.Trainer, required []string) float64 {
	return Score(a, required) - Score(b, required)
}

// Missing returns the required tags the trainer does not declare, in the
// order they were requested.
func Missing(t model.Trainer, required []string) []string {
	missing := make([]string, 0, len(required))
	for _, r := range required {
		if !Has(t, r) {
			missing = append(missing, r)
		}
	}
	return missing
}

// displayNames maps capability tags to their human-readable labels.
// Product-owned fixed table; unknown tags fall back to the tag itself.
var displayNames = map[string]string{
	"travel_escort":   "Travel escort",
	"homework_help":   "Homework help",
	"special_needs":   "Special needs care",
	"first_aid":       "First aid certified",
	"swimming":        "Swimming supervision",
	"own_transport":   "Own transport",
	"overnight_care":  "Overnight care",
	"sports_coaching": "Sports coaching",
	"music_tuition":   "Music tuition",
	"meal_prep":       "Meal preparation",
}

// DisplayName returns the human-readable label for a capability tag, or
// the tag itself when no label is defined.
func DisplayName(tag string) string {
	if name, ok := displayNames[tag]; ok {
		return name
	}
	return tag
}
