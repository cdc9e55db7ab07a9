package schedule_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sproutly/matchengine/internal/domain/model"
	"github.com/sproutly/matchengine/internal/domain/schedule"
)

func catalog() []model.Activity {
	return []model.Activity{
		{ID: 1, Name: "Homework club", Duration: 1.5},
		{ID: 2, Name: "Swimming session", Duration: 2},
		{ID: 3, Name: "Park trip", Duration: 5},
	}
}

func TestTotalDuration(t *testing.T) {
	Convey("Given a catalog of activities", t, func() {
		all := catalog()

		Convey("When two activities are selected", func() {
			So(schedule.TotalDuration(all, []int{1, 2}), ShouldEqual, 3.5)
		})

		Convey("When nothing is selected", func() {
			So(schedule.TotalDuration(all, nil), ShouldEqual, 0)
		})

		Convey("When the selection references an unknown id", func() {
			So(schedule.TotalDuration(all, []int{99}), ShouldEqual, 0)
		})
	})
}

func TestCanSelect(t *testing.T) {
	Convey("Given a 3-hour session", t, func() {
		all := catalog()
		const session = 3.0

		Convey("When the first selection alone exceeds the budget", func() {
			Convey("Then it is still allowed so the caller can adjust", func() {
				So(schedule.CanSelect(all[2], nil, all, session), ShouldBeTrue)
			})
		})

		Convey("When a later selection would exceed the budget", func() {
			So(schedule.CanSelect(all[2], []int{1}, all, session), ShouldBeFalse)
		})

		Convey("When the selection fits the budget", func() {
			So(schedule.CanSelect(all[0], []int{}, all, session), ShouldBeTrue)
			So(schedule.CanSelect(all[0], []int{2}, all, session), ShouldBeFalse)
		})

		Convey("When the activity is already selected", func() {
			Convey("Then deselecting is always allowed", func() {
				So(schedule.CanSelect(all[2], []int{3}, all, session), ShouldBeTrue)
			})
		})
	})
}

func TestRemainingCapacity(t *testing.T) {
	Convey("Given a 3-hour session", t, func() {
		all := catalog()

		Convey("When part of the budget is used", func() {
			So(schedule.RemainingCapacity(all, []int{1}, 3), ShouldEqual, 1.5)
		})

		Convey("When the budget is overrun", func() {
			Convey("Then the remaining capacity clamps to zero", func() {
				So(schedule.RemainingCapacity(all, []int{3}, 3), ShouldEqual, 0)
			})
		})
	})
}

func TestExceedsDuration(t *testing.T) {
	Convey("Given a 3-hour session", t, func() {
		all := catalog()

		So(schedule.ExceedsDuration(all, []int{1, 2}, 3), ShouldBeTrue)
		So(schedule.ExceedsDuration(all, []int{1}, 3), ShouldBeFalse)
		So(schedule.ExceedsDuration(all, []int{1, 2}, 3.5), ShouldBeFalse)
	})
}

func TestDurationBand(t *testing.T) {
	Convey("Given the presentation bands", t, func() {
		So(schedule.DurationBand(2), ShouldEqual, schedule.BandLong)
		So(schedule.DurationBand(3.5), ShouldEqual, schedule.BandLong)
		So(schedule.DurationBand(1.5), ShouldEqual, schedule.BandMedium)
		So(schedule.DurationBand(1.9), ShouldEqual, schedule.BandMedium)
		So(schedule.DurationBand(1), ShouldEqual, schedule.BandShort)
		So(schedule.DurationBand(0.5), ShouldEqual, schedule.BandShort)
	})
}
