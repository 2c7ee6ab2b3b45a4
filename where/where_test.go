package where

import (
	"path/filepath"
	"testing"

	"github.com/folio-cli/folio/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() should honor the override variable", func() {
			t.Setenv(EnvConfigPath, "/tmp/folio-test-config")
			So(Config(), ShouldEqual, "/tmp/folio-test-config")
			So(Inbox(), ShouldEqual, filepath.Join("/tmp/folio-test-config", "inbox.jsonl"))
		})

		Convey("Directories should exist after resolution", func() {
			for _, dir := range []string{Cache(), Logs(), Sources(), Content(), Temp()} {
				So(lo.Must(filesystem.API().IsDir(dir)), ShouldBeTrue)
			}
		})

		Convey("Session() should live in the cache directory", func() {
			So(filepath.Dir(Session()), ShouldEqual, Cache())
		})
	})
}
