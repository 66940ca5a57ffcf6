package config_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/concursos/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.SourceURL, convey.ShouldEqual, "http://localhost:3000/api/concursos")
			convey.So(cfg.SourceFile, convey.ShouldBeEmpty)
			convey.So(cfg.SourceTimeout(), convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.RefreshInterval(), convey.ShouldEqual, time.Duration(0))
			convey.So(cfg.Timezone, convey.ShouldEqual, "America/Lima")
		})

		convey.Convey("And the defaults should validate", func() {
			convey.So(cfg.Validate(context.Background()), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with invalid values", t, func() {
		ctx := context.Background()
		cases := []struct {
			name   string
			mutate func(c *config.Config)
		}{
			{"empty addr", func(c *config.Config) { c.Addr = "" }},
			{"no source", func(c *config.Config) { c.SourceURL = ""; c.SourceFile = "" }},
			{"zero timeout", func(c *config.Config) { c.SourceTimeoutMS = 0 }},
			{"negative interval", func(c *config.Config) { c.RefreshIntervalS = -1 }},
			{"unknown timezone", func(c *config.Config) { c.Timezone = "Mars/Olympus" }},
		}

		for _, tc := range cases {
			convey.Convey("When the config has "+tc.name, func() {
				cfg := config.New(ctx)
				tc.mutate(cfg)
				err := cfg.Validate(ctx)

				convey.Convey("Then it is rejected as ErrInvalidConfig", func() {
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				})
			})
		}
	})

	convey.Convey("Given a config pointing at a fixture file only", t, func() {
		cfg := config.New(context.Background())
		cfg.SourceURL = ""
		cfg.SourceFile = "testdata/contests.yaml"

		convey.Convey("Then it is valid", func() {
			convey.So(cfg.Validate(context.Background()), convey.ShouldBeNil)
		})
	})
}
