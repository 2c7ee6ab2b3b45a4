package cache

import (
	"testing"
	"time"

	"github.com/folio-cli/folio/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCollectGarbage(t *testing.T) {
	Convey("Given a cache directory with fresh and stale files", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/cache/content", 0o755), ShouldBeNil)
		So(filesystem.WriteAtomic("/cache/content/sanity.video.json", []byte("{}")), ShouldBeNil)
		So(filesystem.WriteAtomic("/cache/content/old.photo.json", []byte("{}")), ShouldBeNil)

		old := time.Now().Add(-30 * 24 * time.Hour)
		So(fs.Chtimes("/cache/content/old.photo.json", old, old), ShouldBeNil)

		Convey("Only the stale file should be removed", func() {
			So(CollectGarbage("/cache", TTL), ShouldEqual, 1)

			_, err := fs.Stat("/cache/content/sanity.video.json")
			So(err, ShouldBeNil)
			_, err = fs.Stat("/cache/content/old.photo.json")
			So(err, ShouldNotBeNil)
		})

		Convey("A missing directory should remove nothing", func() {
			So(CollectGarbage("/nowhere", TTL), ShouldEqual, 0)
		})
	})
}
