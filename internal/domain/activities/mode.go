package activities

import (
	"strings"

	"github.com/sproutly/matchengine/internal/domain/model"
)

// Mode is a fixed enumeration of booking intents used to recommend
// activity subsets.
type Mode string

// Known booking modes.
const (
	ModeSchoolRunAfter   Mode = "school-run-after"
	ModeWeekendRespite   Mode = "weekend-respite"
	ModeTherapyCompanion Mode = "therapy-companion"
	ModeExamSupport      Mode = "exam-support"
	ModeHolidayDayTrip   Mode = "holiday-day-trip"
	ModeSingleDayEvent   Mode = "single-day-event"
)

// Mode heuristic thresholds in hours.
const (
	schoolRunMaxDuration = 2.0
	respiteMinDuration   = 3.0
	dayTripMinDuration   = 4.0
)

// modeMatchers is the product-owned mode heuristic table. Each predicate
// decides whether an activity suits the mode. single-day-event has no
// entry on purpose: those bookings carry their own bespoke activity.
var modeMatchers = map[Mode]func(model.Activity) bool{
	ModeSchoolRunAfter: func(a model.Activity) bool {
		return a.Duration <= schoolRunMaxDuration || nameContains(a, "homework")
	},
	ModeWeekendRespite: func(a model.Activity) bool {
		return a.Duration >= respiteMinDuration
	},
	ModeTherapyCompanion: func(a model.Activity) bool {
		return containsAny(a, "sensory", "calm", "quiet", "therapy")
	},
	ModeExamSupport: func(a model.Activity) bool {
		return containsAny(a, "homework", "study", "exam", "tutor")
	},
	ModeHolidayDayTrip: func(a model.Activity) bool {
		return a.Duration >= dayTripMinDuration || containsAny(a, "trip")
	},
}

// FilterByMode returns the activities suiting the booking mode. Unknown
// modes and single-day-event return an empty list.
func (m *Matcher) FilterByMode(as []model.Activity, mode Mode) []model.Activity {
	match, ok := modeMatchers[mode]
	if !ok {
		return []model.Activity{}
	}
	kept := make([]model.Activity, 0, len(as))
	for _, a := range as {
		if match(a) {
			kept = append(kept, a)
		}
	}
	return kept
}

// MatchesMode reports whether a single activity suits the booking mode.
func (m *Matcher) MatchesMode(a model.Activity, mode Mode) bool {
	match, ok := modeMatchers[mode]
	if !ok {
		return false
	}
	return match(a)
}

// nameContains matches a keyword case-insensitively against the activity
// name only.
func nameContains(a model.Activity, keyword string) bool {
	return strings.Contains(strings.ToLower(a.Name), keyword)
}

// containsAny matches keywords case-insensitively against the activity
// name and description.
func containsAny(a model.Activity, keywords ...string) bool {
	name := strings.ToLower(a.Name)
	desc := strings.ToLower(a.Description)
	for _, kw := range keywords {
		if strings.Contains(name, kw) || strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}
