package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sproutly/matchengine/internal/config"
)

func TestDefaults(t *testing.T) {
	Convey("Given a fresh config", t, func() {
		cfg := config.New()

		So(cfg.LogLevel, ShouldEqual, "info")
		So(cfg.Addr, ShouldEqual, ":9080")
		So(cfg.MaxResultLimit, ShouldEqual, 100)
		So(cfg.RatingWeight, ShouldEqual, 0.4)
		So(cfg.ExperienceWeight, ShouldEqual, 0.3)
		So(cfg.DistanceWeight, ShouldEqual, 0.3)
	})
}

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file and no env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		So(err, ShouldBeNil)
		So(cfg, ShouldResemble, config.New())
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MATCHD_ADDR", ":7070")
	t.Setenv("MATCHD_MAX_RESULT_LIMIT", "25")
	t.Setenv("MATCHD_LOG_LEVEL", "debug")

	Convey("Given env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		So(err, ShouldBeNil)
		So(cfg.Addr, ShouldEqual, ":7070")
		So(cfg.MaxResultLimit, ShouldEqual, 25)
		So(cfg.LogLevel, ShouldEqual, "debug")

		Convey("And untouched fields keep their defaults", func() {
			So(cfg.RatingWeight, ShouldEqual, 0.4)
		})
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "addr: \":6060\"\nrating_weight: 0.5\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("MATCHD_CONFIG", path)

	Convey("Given a YAML config file", t, func() {
		cfg, err := config.Load(context.Background())

		So(err, ShouldBeNil)
		So(cfg.Addr, ShouldEqual, ":6060")
		So(cfg.RatingWeight, ShouldEqual, 0.5)
	})
}

func TestLoadFileEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":6060\"\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("MATCHD_CONFIG", path)
	t.Setenv("MATCHD_ADDR", ":7070")

	Convey("Given both a file and an env override", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the env value wins", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
		})
	})
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("MATCHD_CONFIG", "/nonexistent/config.yaml")

	Convey("Given a missing config file", t, func() {
		_, err := config.Load(context.Background())
		So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
	})
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("MATCHD_MAX_RESULT_LIMIT", "0")

	Convey("Given an invalid result limit", t, func() {
		_, err := config.Load(context.Background())
		So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
	})
}
