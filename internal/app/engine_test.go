package app_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sproutly/matchengine/internal/adapters/repository"
	"github.com/sproutly/matchengine/internal/app"
	"github.com/sproutly/matchengine/internal/domain/activities"
	"github.com/sproutly/matchengine/internal/domain/model"
	"github.com/sproutly/matchengine/pkg/logger"
)

func seededEngine() *app.Engine {
	store := repository.NewMemoryStore(repository.WithInitial(repository.Snapshot{
		Trainers:   sampleTrainers(),
		Activities: sampleActivities(),
		Bindings:   sampleBindings(),
	}))
	return app.NewEngine(app.WithCatalog(store))
}

func TestEngine(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}
	ctx := context.Background()

	Convey("Given an engine over a seeded catalog", t, func() {
		e := seededEngine()

		Convey("When matching trainers with a capability filter", func() {
			ranked := e.MatchTrainers(ctx, app.TrainerFilter{Capabilities: []string{"first_aid"}}, model.RankingCriteria{})

			Convey("Then only qualified trainers come back, ranked", func() {
				So(trainerIDs(ranked), ShouldResemble, []int{1, 2})
			})
		})

		Convey("When resolving the best match", func() {
			req := model.TrainerRequirements{Capabilities: []string{"travel_escort"}}
			best := e.ResolveBestMatch(ctx, req)

			So(best, ShouldNotBeNil)
			So(best.ID, ShouldEqual, 1)
		})

		Convey("When no trainer can satisfy the requirements", func() {
			req := model.TrainerRequirements{Capabilities: []string{"overnight_care"}}
			So(e.ResolveBestMatch(ctx, req), ShouldBeNil)
		})

		Convey("When searching activities", func() {
			found, stats := e.SearchActivities(ctx, activities.FilterOptions{Search: "swimming"}, false)

			So(found, ShouldHaveLength, 1)
			So(found[0].ID, ShouldEqual, 2)
			So(stats.Total, ShouldEqual, 3)
			So(stats.Filtered, ShouldEqual, 1)
		})

		Convey("When validating a selection against the catalog", func() {
			result := e.ValidateSelection(ctx, []int{1, 2}, false, 3)
			So(result.Valid, ShouldBeTrue)

			result = e.ValidateSelection(ctx, []int{3}, false, 3)
			So(result.Valid, ShouldBeFalse)
		})

		Convey("When asking for mode recommendations", func() {
			found := e.RecommendedForMode(ctx, activities.ModeExamSupport)
			So(found, ShouldHaveLength, 1)
			So(found[0].ID, ShouldEqual, 1)
		})

		Convey("When reading the stats", func() {
			stats := e.GetStats()

			So(stats["trainers"], ShouldEqual, 3)
			So(stats["activities"], ShouldEqual, 3)
			So(stats["bindings"], ShouldEqual, 2)
			So(stats["capabilities"], ShouldResemble, []string{"first_aid", "travel_escort"})
		})

		Convey("When replacing the catalog", func() {
			Convey("Then an empty snapshot is rejected", func() {
				So(e.ReplaceCatalog(ctx, repository.Snapshot{}), ShouldNotBeNil)
			})

			Convey("And a real snapshot takes effect", func() {
				err := e.ReplaceCatalog(ctx, repository.Snapshot{
					Trainers: []model.Trainer{{ID: 9, Name: "Robin", Rating: 4}},
				})
				So(err, ShouldBeNil)

				stats := e.GetStats()
				So(stats["trainers"], ShouldEqual, 1)
				So(stats["activities"], ShouldEqual, 0)
			})
		})
	})
}
