package media

import (
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func ids(items []*Item) []string {
	return lo.Map(items, func(i *Item, _ int) string { return i.ID })
}

func TestKind(t *testing.T) {
	Convey("ParseKind", t, func() {
		k, err := ParseKind("Videos")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, Video)

		k, err = ParseKind(" photo ")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, Photo)
		So(k.Plural(), ShouldEqual, "photos")

		_, err = ParseKind("audio")
		So(err, ShouldNotBeNil)
	})
}

func TestItem(t *testing.T) {
	Convey("Given a video item", t, func() {
		v := &Item{ID: "v1", Kind: Video, Title: "Reel", URL: "https://www.youtube.com/embed/abc", Thumbnail: "https://cdn/t.jpg"}

		Convey("Alt should fall back to the title", func() {
			So(v.Alt(), ShouldEqual, "Reel")
			v.Caption = mo.Some("Night shoot")
			So(v.Alt(), ShouldEqual, "Night shoot")
		})

		Convey("Cover should be the thumbnail", func() {
			So(v.Cover(), ShouldEqual, "https://cdn/t.jpg")
		})

		Convey("Player URLs should be embeds", func() {
			So(v.IsEmbed(), ShouldBeTrue)
			v.URL = "https://cdn.sanity.io/files/p/d/clip.mp4"
			So(v.IsEmbed(), ShouldBeFalse)
		})
	})

	Convey("Given a photo item", t, func() {
		p := &Item{ID: "p1", Kind: Photo, URL: "https://cdn/p.jpg"}

		Convey("Cover should be the image and String the id", func() {
			So(p.Cover(), ShouldEqual, "https://cdn/p.jpg")
			So(p.String(), ShouldEqual, "p1")
		})
	})
}

func TestList(t *testing.T) {
	Convey("Given an unordered list with ties", t, func() {
		items := []*Item{
			{ID: "c", Order: 3, Title: "Coastline"},
			{ID: "a", Order: 1, Title: "Alleyway"},
			{ID: "b1", Order: 2, Title: "Brooklyn Bridge"},
			{ID: "b2", Order: 2, Title: "Backstage"},
		}

		Convey("SortByOrder should be stable", func() {
			SortByOrder(items)
			So(ids(items), ShouldResemble, []string{"a", "b1", "b2", "c"})
		})

		Convey("IndexOf should find items and report missing ones", func() {
			i, err := IndexOf(items, "b2")
			So(err, ShouldBeNil)
			So(i, ShouldEqual, 3)

			_, err = IndexOf(items, "zzz")
			So(err, ShouldEqual, ErrNotFound)
		})

		Convey("Dedupe should keep the first occurrence", func() {
			dup := append(items, &Item{ID: "a", Title: "Duplicate"})
			So(ids(Dedupe(dup)), ShouldResemble, []string{"c", "a", "b1", "b2"})
		})

		Convey("Filter should fuzzy match titles", func() {
			So(ids(Filter(items, "bridge")), ShouldResemble, []string{"b1"})
			So(Filter(items, ""), ShouldHaveLength, 4)
			So(Filter(items, "qqq"), ShouldBeEmpty)
		})
	})
}
