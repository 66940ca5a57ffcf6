package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options on a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "concursos")
				So(manager.subsystem, ShouldEqual, "listing")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.UpdateContestsLoaded(4)

			Convey("Then metric names and constant labels follow the options", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				found := false
				for _, f := range families {
					if f.GetName() != "test_namespace_test_subsystem_contests_loaded" {
						continue
					}
					found = true
					So(f.GetMetric()[0].GetLabel()[0].GetName(), ShouldEqual, "env")
					So(f.GetMetric()[0].GetGauge().GetValue(), ShouldEqual, 4.0)
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}

func TestManagerRecording(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		manager := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When recording source fetches", func() {
			manager.RecordSourceFetch("ok", 12)
			manager.RecordSourceFetch("ok", 30)
			manager.RecordSourceFetch("decode", 5)

			Convey("Then outcomes are counted separately", func() {
				So(testutil.ToFloat64(manager.sourceFetches.WithLabelValues("ok")), ShouldEqual, 2.0)
				So(testutil.ToFloat64(manager.sourceFetches.WithLabelValues("decode")), ShouldEqual, 1.0)
			})
		})

		Convey("When recording listings without a status", func() {
			manager.RecordListing("", 3)
			manager.RecordListing("finished", 0)

			Convey("Then they are labelled as any", func() {
				So(testutil.ToFloat64(manager.listingRequests.WithLabelValues("any")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(manager.listingRequests.WithLabelValues("finished")), ShouldEqual, 1.0)
			})
		})

		Convey("When recording HTTP requests and errors", func() {
			manager.RecordHTTPRequest("contests", "GET", "200", 1.5)
			manager.RecordError("source", "transport", "high")

			Convey("Then the counters move", func() {
				So(testutil.ToFloat64(manager.httpRequests.WithLabelValues("contests", "GET", "200")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(manager.errorRateByComponent.WithLabelValues("source", "transport")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(manager.errorRateByType.WithLabelValues("transport", "high")), ShouldEqual, 1.0)
			})
		})
	})

	Convey("Given a disabled manager", t, func() {
		manager := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()), WithMetricsEnabled(false))

		Convey("When recording", func() {
			manager.RecordSourceFetch("ok", 1)
			manager.UpdateContestsLoaded(10)

			Convey("Then nothing is observed", func() {
				So(testutil.ToFloat64(manager.sourceFetches.WithLabelValues("ok")), ShouldEqual, 0.0)
				So(testutil.ToFloat64(manager.contestsLoaded), ShouldEqual, 0.0)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then package-level helpers do not panic", func() {
			So(func() {
				RecordSourceFetch("ok", 1)
				UpdateContestsLoaded(2)
				UpdateLastRefresh(1_700_000_000)
				RecordListing("upcoming", 1)
				RecordHTTPRequest("contests", "GET", "200")
				RecordHTTPRequestDuration("contests", "GET", "200", 2)
				RecordErrorByComponent("api", "client_error")
				RecordErrorByType("client_error", "medium")
				RecordErrorByEndpoint("contests", "GET", "client_error")
				RecordErrorLatency("http", "client_error", 1)
				UpdateSystemMemoryUsage(1024)
				UpdateSystemGoroutineCount(4)
				RecordSystemGCPauseTime(0.2)
			}, ShouldNotPanic)
		})

		Convey("And the custom registry exposes them", func() {
			UpdateContestsLoaded(7)
			So(testutil.ToFloat64(globalManager.contestsLoaded), ShouldEqual, 7.0)
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
