package service

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHistogram(t *testing.T) {
	Convey("Given scores spread over [0.2, 0.8]", t, func() {
		bins := histogram([]float64{0.8, 0.2, 0.5, 0.21, 0.79}, 3)

		Convey("Then bins should cover the range with the maximum in the last bin", func() {
			So(bins, ShouldHaveLength, 3)
			So(bins[0].Lower, ShouldEqual, 0.2)
			So(bins[2].Upper, ShouldEqual, 0.8)
			So(bins[0].Count, ShouldEqual, 2)
			So(bins[1].Count, ShouldEqual, 1)
			So(bins[2].Count, ShouldEqual, 2)
		})
	})

	Convey("Given constant scores", t, func() {
		bins := histogram([]float64{0.4, 0.4}, 20)

		Convey("Then a single bin should hold them all", func() {
			So(bins, ShouldHaveLength, 1)
			So(bins[0].Count, ShouldEqual, 2)
		})
	})

	Convey("Given no scores", t, func() {
		So(histogram(nil, 20), ShouldBeNil)
	})
}
