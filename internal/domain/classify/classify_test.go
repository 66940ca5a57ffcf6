package classify_test

import (
	"testing"
	"time"

	"github.com/okian/concursos/internal/domain/classify"
	"github.com/okian/concursos/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestOf(t *testing.T) {
	Convey("Given a contest starting in the future with no end date", t, func() {
		c := &model.Contest{ID: "a", StartDate: day("2025-06-01")}
		now := *day("2025-01-01")

		Convey("When classifying it", func() {
			st := classify.Of(c, now)

			Convey("Then it is upcoming and nothing else", func() {
				So(st.Upcoming, ShouldBeTrue)
				So(st.Ongoing, ShouldBeFalse)
				So(st.Finished, ShouldBeFalse)
				So(st.RegistrationOpen, ShouldBeFalse)
			})

			Convey("And it lands in the active-or-upcoming bucket", func() {
				So(classify.BucketOf(c, now), ShouldEqual, classify.BucketActiveOrUpcoming)
			})
		})
	})

	Convey("Given a contest that ended before now", t, func() {
		c := &model.Contest{ID: "b", StartDate: day("2024-01-01"), EndDate: day("2024-06-01")}
		now := *day("2025-01-01")

		Convey("Then it is finished and bucketed as finished", func() {
			st := classify.Of(c, now)
			So(st.Finished, ShouldBeTrue)
			So(st.Ongoing, ShouldBeFalse)
			So(st.Upcoming, ShouldBeFalse)
			So(classify.BucketOf(c, now), ShouldEqual, classify.BucketFinished)
		})
	})

	Convey("Given a contest that started and has not ended", t, func() {
		c := &model.Contest{ID: "c", StartDate: day("2024-12-01"), EndDate: day("2025-02-01")}
		now := *day("2025-01-01")

		Convey("Then it is ongoing", func() {
			st := classify.Of(c, now)
			So(st.Ongoing, ShouldBeTrue)
			So(st.Upcoming, ShouldBeFalse)
			So(st.Finished, ShouldBeFalse)
		})

		Convey("And the end instant itself still counts as ongoing", func() {
			st := classify.Of(c, *c.EndDate)
			So(st.Ongoing, ShouldBeTrue)
			So(st.Finished, ShouldBeFalse)
		})

		Convey("And the start instant itself counts as ongoing, not upcoming", func() {
			st := classify.Of(c, *c.StartDate)
			So(st.Ongoing, ShouldBeTrue)
			So(st.Upcoming, ShouldBeFalse)
		})
	})

	Convey("Given a started contest with no end date", t, func() {
		c := &model.Contest{ID: "d", StartDate: day("2020-01-01")}

		Convey("Then it stays ongoing and never finishes", func() {
			now := *day("2030-01-01")
			So(classify.IsOngoing(c, now), ShouldBeTrue)
			So(classify.IsFinished(c, now), ShouldBeFalse)
			So(classify.BucketOf(c, now), ShouldEqual, classify.BucketActiveOrUpcoming)
		})
	})

	Convey("Given a contest whose start date could not be parsed", t, func() {
		c := &model.Contest{ID: "e", EndDate: day("2025-02-01")}
		now := *day("2025-01-01")

		Convey("Then it is neither upcoming nor ongoing", func() {
			So(classify.IsUpcoming(c, now), ShouldBeFalse)
			So(classify.IsOngoing(c, now), ShouldBeFalse)
		})

		Convey("And it does not panic on a completely empty contest", func() {
			So(func() { classify.Of(&model.Contest{}, now) }, ShouldNotPanic)
		})
	})
}

func TestIsRegistrationOpen(t *testing.T) {
	Convey("Given a contest with a registration window", t, func() {
		c := &model.Contest{
			StartDate:         day("2025-03-01"),
			RegistrationStart: day("2025-01-01"),
			RegistrationEnd:   day("2025-02-01"),
		}

		Convey("When now is inside the window", func() {
			So(classify.IsRegistrationOpen(c, *day("2025-01-15")), ShouldBeTrue)
		})

		Convey("When now is after the window", func() {
			So(classify.IsRegistrationOpen(c, *day("2025-03-01")), ShouldBeFalse)
		})

		Convey("When now is before the window", func() {
			So(classify.IsRegistrationOpen(c, *day("2024-12-31")), ShouldBeFalse)
		})

		Convey("When now equals either bound", func() {
			So(classify.IsRegistrationOpen(c, *day("2025-01-01")), ShouldBeTrue)
			So(classify.IsRegistrationOpen(c, *day("2025-02-01")), ShouldBeTrue)
		})
	})

	Convey("Given a contest with only one registration bound", t, func() {
		now := *day("2025-01-15")

		Convey("Then registration is never open", func() {
			onlyStart := &model.Contest{RegistrationStart: day("2025-01-01")}
			onlyEnd := &model.Contest{RegistrationEnd: day("2025-02-01")}
			So(classify.IsRegistrationOpen(onlyStart, now), ShouldBeFalse)
			So(classify.IsRegistrationOpen(onlyEnd, now), ShouldBeFalse)
		})
	})
}

func TestPredicatesAreMutuallyExclusive(t *testing.T) {
	Convey("Given contests spread around a fixed instant", t, func() {
		now := *day("2025-01-01")
		contests := []model.Contest{
			{StartDate: day("2025-06-01")},
			{StartDate: day("2025-06-01"), EndDate: day("2025-07-01")},
			{StartDate: day("2024-06-01")},
			{StartDate: day("2024-06-01"), EndDate: day("2025-06-01")},
			{StartDate: day("2024-06-01"), EndDate: day("2024-07-01")},
			{StartDate: &now, EndDate: &now},
			{},
		}

		Convey("Then no contest is more than one of upcoming, ongoing, finished", func() {
			for i := range contests {
				st := classify.Of(&contests[i], now)
				n := 0
				for _, b := range []bool{st.Upcoming, st.Ongoing, st.Finished} {
					if b {
						n++
					}
				}
				So(n, ShouldBeLessThanOrEqualTo, 1)
			}
		})
	})
}

func TestPartition(t *testing.T) {
	Convey("Given a mixed collection", t, func() {
		now := *day("2025-01-01")
		contests := []model.Contest{
			{ID: "1", StartDate: day("2024-01-01"), EndDate: day("2024-02-01")},
			{ID: "2", StartDate: day("2025-06-01")},
			{ID: "3", StartDate: day("2024-12-01"), EndDate: day("2025-01-01")},
			{ID: "4", StartDate: day("2023-01-01"), EndDate: day("2023-02-01")},
		}

		Convey("When partitioning", func() {
			active, finished := classify.Partition(contests, now)

			Convey("Then each bucket keeps the input order", func() {
				So(ids(active), ShouldResemble, []string{"2", "3"})
				So(ids(finished), ShouldResemble, []string{"1", "4"})
			})
		})
	})

	Convey("Given an empty collection", t, func() {
		active, finished := classify.Partition(nil, time.Now())

		Convey("Then both buckets are empty but not nil", func() {
			So(active, ShouldNotBeNil)
			So(finished, ShouldNotBeNil)
			So(active, ShouldBeEmpty)
			So(finished, ShouldBeEmpty)
		})
	})
}

func ids(cs []model.Contest) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}
