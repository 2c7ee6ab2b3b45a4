package config

import (
	"testing"
	"time"

	"github.com/folio-cli/folio/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("content.sanity.use_cdn")
			So(result, ShouldEqual, "content_sanity_use_cdn")
		})

		Convey("Env should carry the application prefix", func() {
			f := Default[key.SanityProject]
			So(f.Env(), ShouldEqual, "FOLIO_CONTENT_SANITY_PROJECT")
		})
	})
}

func TestSeconds(t *testing.T) {
	Convey("Given the revalidation window", t, func() {
		_ = Setup()

		Convey("When unset it should use the default", func() {
			So(Seconds(key.ContentRevalidate), ShouldEqual, 60*time.Second)
		})

		Convey("When set to a non-positive value it should fall back to the default", func() {
			viper.Set(key.ContactResetDelay, 0)
			defer viper.Set(key.ContactResetDelay, 5)
			So(Seconds(key.ContactResetDelay), ShouldEqual, 5*time.Second)
		})

		Convey("When overridden it should use the override", func() {
			viper.Set(key.PreloadTimeout, 3)
			defer viper.Set(key.PreloadTimeout, 10)
			So(Seconds(key.PreloadTimeout), ShouldEqual, 3*time.Second)
		})
	})
}
