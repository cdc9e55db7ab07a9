// Package seed generates synthetic catalog snapshots for demos and
// load testing against a running match engine.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/sproutly/matchengine/internal/domain/model"
)

// Generation bounds.
const (
	maxCapabilitiesPerTrainer = 4
	maxRegionsPerTrainer      = 3
	maxRating                 = 5.0
	maxExperienceYears        = 15
	minActivityHours          = 0.5
	maxActivityHours          = 5.0
	durationStepHours         = 0.5
	maxTrainersPerActivity    = 6
	restrictedTrainerShare    = 0.7 // share of trainers with declared regions
	capableTrainerShare       = 0.8 // share of trainers with declared capabilities
)

var capabilityPool = []string{
	"travel_escort", "homework_help", "special_needs", "first_aid",
	"swimming", "own_transport", "overnight_care", "sports_coaching",
	"music_tuition", "meal_prep",
}

var regionPool = []string{
	"north", "south", "east", "west", "central",
}

var activityNamePool = []string{
	"Homework club", "Swimming session", "Park trip", "Sensory play",
	"Study skills tutoring", "Football practice", "Calm corner reading",
	"Museum day trip", "Music practice", "Exam revision",
}

// Generator produces deterministic synthetic catalogs from a seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with the given random seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // deterministic seed for reproducible catalogs
}

// Catalog generates trainers, activities, and bindings of the requested
// sizes. Trainer and activity ids are sequential; uuids fill the slugs so
// repeated runs against one service stay distinguishable.
func (g *Generator) Catalog(trainerCount, activityCount int) ([]model.Trainer, []model.Activity, []model.PackageActivity) {
	trainers := make([]model.Trainer, trainerCount)
	for i := range trainers {
		trainers[i] = g.trainer(i + 1)
	}

	activities := make([]model.Activity, activityCount)
	bindings := make([]model.PackageActivity, activityCount)
	for i := range activities {
		activities[i] = g.activity(i + 1)
		bindings[i] = g.binding(i+1, trainerCount)
	}
	return trainers, activities, bindings
}

func (g *Generator) trainer(id int) model.Trainer {
	t := model.Trainer{
		ID:         id,
		Name:       fmt.Sprintf("Trainer %d", id),
		Slug:       uuid.NewString(),
		Rating:     float64(g.rng.Intn(int(maxRating*2)+1)) / 2, // 0, 0.5, ... 5
		Experience: g.rng.Intn(maxExperienceYears + 1),
	}
	if g.rng.Float64() < capableTrainerShare {
		t.Capabilities = g.pick(capabilityPool, 1+g.rng.Intn(maxCapabilitiesPerTrainer))
	}
	if g.rng.Float64() < restrictedTrainerShare {
		t.ServiceRegions = g.pick(regionPool, 1+g.rng.Intn(maxRegionsPerTrainer))
	}
	return t
}

func (g *Generator) activity(id int) model.Activity {
	steps := int((maxActivityHours - minActivityHours) / durationStepHours)
	a := model.Activity{
		ID:          id,
		Name:        activityNamePool[g.rng.Intn(len(activityNamePool))],
		Description: fmt.Sprintf("Session %s", uuid.NewString()),
		Duration:    minActivityHours + durationStepHours*float64(g.rng.Intn(steps+1)),
	}
	if g.rng.Intn(2) == 0 {
		a.AvailableInRegions = g.pick(regionPool, 1+g.rng.Intn(2))
	}
	return a
}

func (g *Generator) binding(activityID, trainerCount int) model.PackageActivity {
	count := 1 + g.rng.Intn(maxTrainersPerActivity)
	if count > trainerCount {
		count = trainerCount
	}
	ids := g.rng.Perm(trainerCount)[:count]
	trainerIDs := make([]int, count)
	for i, idx := range ids {
		trainerIDs[i] = idx + 1
	}
	return model.PackageActivity{ID: activityID, TrainerIDs: trainerIDs}
}

// pick returns up to n distinct entries from pool in random order.
func (g *Generator) pick(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	chosen := make([]string, 0, n)
	for _, idx := range g.rng.Perm(len(pool))[:n] {
		chosen = append(chosen, pool[idx])
	}
	return chosen
}
