package app_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sproutly/matchengine/internal/app"
	"github.com/sproutly/matchengine/internal/domain/activities"
	"github.com/sproutly/matchengine/internal/domain/model"
)

func sampleActivities() []model.Activity {
	return []model.Activity{
		{ID: 1, Name: "Homework club", Description: "After-school study help", Duration: 1},
		{ID: 2, Name: "Swimming session", Description: "Pool time with supervision", Duration: 2},
		{ID: 3, Name: "Museum day trip", Description: "Full-day outing", Duration: 5},
	}
}

func TestValidateSelection(t *testing.T) {
	Convey("Given the activity service and a 3-hour session", t, func() {
		s := app.NewActivityService()
		ctx := context.Background()
		all := sampleActivities()
		const session = 3.0

		Convey("When nothing is selected and the trainer does not choose", func() {
			result := s.ValidateSelection(ctx, nil, false, all, session)

			Convey("Then the selection is invalid with one error", func() {
				So(result.Valid, ShouldBeFalse)
				So(result.Errors, ShouldHaveLength, 1)
				So(result.Warnings, ShouldBeEmpty)
			})
		})

		Convey("When nothing is selected but the trainer chooses", func() {
			result := s.ValidateSelection(ctx, nil, true, all, session)

			Convey("Then the selection is valid", func() {
				So(result.Valid, ShouldBeTrue)
				So(result.Errors, ShouldBeEmpty)
			})
		})

		Convey("When the selection fits the budget comfortably", func() {
			result := s.ValidateSelection(ctx, []int{1, 2}, false, all, session)

			So(result.Valid, ShouldBeTrue)
			So(result.Errors, ShouldBeEmpty)
			So(result.Warnings, ShouldBeEmpty)
		})

		Convey("When the selection overruns the budget", func() {
			result := s.ValidateSelection(ctx, []int{3}, false, all, session)

			Convey("Then the selection is invalid", func() {
				So(result.Valid, ShouldBeFalse)
				So(result.Errors, ShouldHaveLength, 1)
				So(result.Errors[0], ShouldContainSubstring, "5.0h")
			})
		})

		Convey("When the selection fills under half the budget", func() {
			result := s.ValidateSelection(ctx, []int{1}, false, all, session)

			Convey("Then the selection is valid with a warning", func() {
				So(result.Valid, ShouldBeTrue)
				So(result.Warnings, ShouldHaveLength, 1)
			})
		})
	})
}

func TestActivityServiceFiltering(t *testing.T) {
	Convey("Given the activity service", t, func() {
		s := app.NewActivityService()
		all := sampleActivities()

		Convey("When filtering by search text", func() {
			found := s.FilterActivities(all, activities.FilterOptions{Search: "swimming"})
			So(found, ShouldHaveLength, 1)
			So(found[0].ID, ShouldEqual, 2)
		})

		Convey("When asking for mode recommendations", func() {
			found := s.RecommendedForMode(all, activities.ModeExamSupport)
			So(found, ShouldHaveLength, 1)
			So(found[0].ID, ShouldEqual, 1)
		})

		Convey("When checking a single activity against a mode", func() {
			So(s.IsRecommendedForMode(all[0], activities.ModeSchoolRunAfter), ShouldBeTrue)
			So(s.IsRecommendedForMode(all[2], activities.ModeSchoolRunAfter), ShouldBeFalse)
		})

		Convey("When summing a selection", func() {
			So(s.TotalDuration(all, []int{1, 2}), ShouldEqual, 3)
		})

		Convey("When toggling within the budget", func() {
			So(s.CanSelectActivity(all[0], []int{2}, all, 3), ShouldBeTrue)
			So(s.CanSelectActivity(all[2], []int{1}, all, 3), ShouldBeFalse)
		})
	})
}

func TestActivityStats(t *testing.T) {
	Convey("Given the activity service and a restricted catalog", t, func() {
		s := app.NewActivityService()
		all := []model.Activity{
			{ID: 1, Name: "Homework club", Duration: 1},
			{ID: 2, Name: "Forest walk", Duration: 2, AvailableInRegions: []string{"north"}},
		}

		Convey("When no location is given", func() {
			stats := s.Stats(all, all[:1], nil)

			So(stats.Total, ShouldEqual, 2)
			So(stats.Available, ShouldEqual, 2)
			So(stats.Filtered, ShouldEqual, 1)
			So(stats.Region, ShouldEqual, "all")
		})

		Convey("When a region narrows availability", func() {
			loc := &model.Location{Region: "south"}
			stats := s.Stats(all, nil, loc)

			So(stats.Available, ShouldEqual, 1)
			So(stats.Region, ShouldEqual, "south")
		})
	})
}
