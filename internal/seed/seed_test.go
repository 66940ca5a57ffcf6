package seed_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/concursos/internal/adapters/source"
	"github.com/okian/concursos/internal/domain/classify"
	"github.com/okian/concursos/internal/seed"
	"github.com/okian/concursos/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

var seedNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestGenerate(t *testing.T) {
	convey.Convey("Given a seeded generator config", t, func() {
		ctx := context.Background()
		cfg := seed.Config{Count: 40, Organizers: 3, Now: seedNow, Seed: 42}

		convey.Convey("When generating twice with the same seed", func() {
			first, err1 := seed.Generate(ctx, cfg)
			second, err2 := seed.Generate(ctx, cfg)

			convey.Convey("Then the output is identical", func() {
				convey.So(err1, convey.ShouldBeNil)
				convey.So(err2, convey.ShouldBeNil)
				convey.So(first, convey.ShouldResemble, second)
			})

			convey.Convey("And ids are unique and organizers are drawn from the pool", func() {
				ids := map[string]bool{}
				orgs := map[string]bool{}
				for _, c := range first {
					ids[c.ID] = true
					orgs[c.Company.ID] = true
					convey.So(c.TipoGanado, convey.ShouldNotBeEmpty)
					convey.So(c.FechaInicio, convey.ShouldNotBeEmpty)
				}
				convey.So(len(ids), convey.ShouldEqual, 40)
				convey.So(len(orgs), convey.ShouldBeLessThanOrEqualTo, 3)
			})
		})

		convey.Convey("When the count is negative", func() {
			_, err := seed.Generate(ctx, seed.Config{Count: -1})

			convey.Convey("Then it is rejected", func() {
				convey.So(errors.Is(err, seed.ErrInvalidCount), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the count is zero", func() {
			contests, err := seed.Generate(ctx, seed.Config{Seed: 1})

			convey.Convey("Then an empty collection is produced", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(contests, convey.ShouldBeEmpty)
			})
		})
	})
}

func TestSlugify(t *testing.T) {
	convey.Convey("Given names with accents and punctuation", t, func() {
		convey.So(seed.Slugify("Exposición Nacional de Caballo Peruano de Paso 2025"), convey.ShouldEqual,
			"exposicion-nacional-de-caballo-peruano-de-paso-2025")
		convey.So(seed.Slugify("  Huaraz, Áncash "), convey.ShouldEqual, "huaraz-ancash")
		convey.So(seed.Slugify(""), convey.ShouldEqual, "")
	})
}

func TestFixtureRoundTrip(t *testing.T) {
	convey.Convey("Given generated contests written to a YAML fixture", t, func() {
		ctx := context.Background()
		contests, err := seed.Generate(ctx, seed.Config{Count: 8, Now: seedNow, Seed: 7})
		convey.So(err, convey.ShouldBeNil)

		path := filepath.Join(t.TempDir(), "contests.yaml")
		convey.So(seed.WriteFile(path, contests), convey.ShouldBeNil)

		convey.Convey("When the file source reads it back", func() {
			got, err := source.NewFileSource(path, source.WithLocation(time.UTC)).Fetch(ctx)

			convey.Convey("Then every contest survives with its dates", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(got), convey.ShouldEqual, 8)
				for i := range got {
					convey.So(got[i].ID, convey.ShouldEqual, contests[i].ID)
					convey.So(got[i].StartDate, convey.ShouldNotBeNil)
				}
			})

			convey.Convey("And every listing section is populated", func() {
				var upcoming, ongoing, finished, open int
				for i := range got {
					st := classify.Of(&got[i], seedNow)
					if st.Upcoming {
						upcoming++
					}
					if st.Ongoing {
						ongoing++
					}
					if st.Finished {
						finished++
					}
					if st.RegistrationOpen {
						open++
					}
				}
				convey.So(upcoming, convey.ShouldBeGreaterThan, 0)
				convey.So(ongoing, convey.ShouldBeGreaterThan, 0)
				convey.So(finished, convey.ShouldBeGreaterThan, 0)
				convey.So(open, convey.ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestWriteYAML(t *testing.T) {
	convey.Convey("Given an empty collection", t, func() {
		var buf bytes.Buffer
		err := seed.WriteYAML(&buf, []seed.Contest{})

		convey.Convey("Then the envelope key is still written", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(buf.String(), convey.ShouldContainSubstring, "contests: []")
		})
	})
}

func TestHandler(t *testing.T) {
	convey.Convey("Given the stand-in backend", t, func() {
		ctx := context.Background()
		contests, err := seed.Generate(ctx, seed.Config{Count: 5, Now: seedNow, Seed: 3})
		convey.So(err, convey.ShouldBeNil)

		srv := httptest.NewServer(seed.NewHandler(contests))
		defer srv.Close()

		convey.Convey("When the HTTP source fetches from it", func() {
			got, err := source.NewHTTPSource(srv.URL + seed.ContestsPath).Fetch(ctx)

			convey.Convey("Then the whole collection is decoded", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(got), convey.ShouldEqual, 5)
				convey.So(got[0].Organizer.ID, convey.ShouldEqual, contests[0].Company.ID)
			})
		})

		convey.Convey("When posting to it", func() {
			resp, err := http.Post(srv.URL+seed.ContestsPath, "application/json", nil)
			convey.So(err, convey.ShouldBeNil)
			defer resp.Body.Close()

			convey.Convey("Then it answers not found", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestServe(t *testing.T) {
	convey.Convey("Given a running seed server", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- seed.Serve(ctx, "127.0.0.1:0", nil) }()

		convey.Convey("When its context is canceled", func() {
			cancel()

			convey.Convey("Then it shuts down cleanly", func() {
				select {
				case err := <-done:
					convey.So(err, convey.ShouldBeNil)
				case <-time.After(5 * time.Second):
					t.Fatal("seed server did not stop")
				}
			})
		})
	})
}
