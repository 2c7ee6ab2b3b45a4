package util

import (
	"testing"

	"github.com/folio-cli/folio/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSlugify(t *testing.T) {
	Convey("Slugify", t, func() {
		So(Slugify("My Sanity Mirror"), ShouldEqual, "my-sanity-mirror")
		So(Slugify("  --Vimeo/Showreel 2024!  "), ShouldEqual, "vimeo-showreel-2024")
		So(Slugify(""), ShouldEqual, "")
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "video", "videos"), ShouldEqual, "1 video")
		So(Quantify(0, "photo", "photos"), ShouldEqual, "0 photos")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("photos"), ShouldEqual, "Photos")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("sources/vimeo.lua"), ShouldEqual, "vimeo")
		So(FileStem("vimeo"), ShouldEqual, "vimeo")
	})
}

func TestWrap(t *testing.T) {
	Convey("Wrap", t, func() {
		So(Wrap(5, 5), ShouldEqual, 0)
		So(Wrap(-1, 5), ShouldEqual, 4)
		So(Wrap(-6, 5), ShouldEqual, 4)
		So(Wrap(3, 5), ShouldEqual, 3)
		So(Wrap(3, 0), ShouldEqual, 0)
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory tree", t, func() {
		filesystem.SetMemMapFs()
		lo.Must0(filesystem.API().WriteFile("/cache/content/video.json", []byte("{}"), 0o600))

		Convey("Delete should remove it recursively", func() {
			So(Delete("/cache"), ShouldBeNil)
			So(lo.Must(filesystem.API().Exists("/cache/content/video.json")), ShouldBeFalse)
		})

		Convey("Delete should fail for a missing path", func() {
			So(Delete("/missing"), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[string]
		s.Push("sections")
		s.Push("grid")
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, "grid")
		So(s.Pop(), ShouldEqual, "grid")
		So(s.Pop(), ShouldEqual, "sections")
		So(s.Pop(), ShouldEqual, "")
		s.Push("lightbox")
		s.Clear()
		So(s.Len(), ShouldEqual, 0)
	})
}
