package navigator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/folio-cli/folio/media"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func items(n int) []*media.Item {
	return lo.Times(n, func(i int) *media.Item {
		return &media.Item{
			ID:    fmt.Sprintf("p%d", i),
			Kind:  media.Photo,
			Title: fmt.Sprintf("Photo %d", i),
			URL:   fmt.Sprintf("https://cdn.example.com/%d.jpg", i),
			Order: float64(i),
		}
	})
}

func gate(preloads []Preload) (Preload, bool) {
	return lo.Find(preloads, func(p Preload) bool { return p.Gate })
}

func indices(preloads []Preload) []int {
	return lo.Map(preloads, func(p Preload, _ int) int { return p.Index })
}

func TestOpenClose(t *testing.T) {
	Convey("Given a closed navigator over five items", t, func() {
		n := New()
		list := items(5)

		Convey("Opening a known id should show it and preload both neighbours", func() {
			preloads, err := n.Open(list, "p2")
			So(err, ShouldBeNil)
			So(n.Current().MustGet(), ShouldEqual, 2)
			So(n.Pending().IsAbsent(), ShouldBeTrue)
			So(n.Direction(), ShouldEqual, None)
			So(indices(preloads), ShouldResemble, []int{1, 3})
			So(lo.EveryBy(preloads, func(p Preload) bool { return !p.Gate }), ShouldBeTrue)
		})

		Convey("Opening an unknown id should be a no-op", func() {
			preloads, err := n.Open(list, "missing")
			So(err, ShouldEqual, ErrNotFound)
			So(preloads, ShouldBeEmpty)
			So(n.IsOpen(), ShouldBeFalse)
		})

		Convey("Open then close should leave nothing pending from every start", func() {
			for _, item := range list {
				_, err := n.Open(list, item.ID)
				So(err, ShouldBeNil)
				n.Close()
				So(n.IsOpen(), ShouldBeFalse)
				So(n.Pending().IsAbsent(), ShouldBeTrue)
				So(n.View(), ShouldResemble, Frame{Index: -1, Target: -1})

				_, _ = n.Open(list, item.ID)
				n.RequestNext()
				So(n.Pending().IsPresent(), ShouldBeTrue)

				n.Close()
				So(n.IsOpen(), ShouldBeFalse)
				So(n.Pending().IsAbsent(), ShouldBeTrue)
				So(n.Direction(), ShouldEqual, None)
				So(n.View(), ShouldResemble, Frame{Index: -1, Target: -1})
			}
		})

		Convey("Requests while closed should do nothing", func() {
			So(n.RequestNext(), ShouldBeEmpty)
			So(n.RequestPrevious(), ShouldBeEmpty)
			p, err := n.RequestIndex(3)
			So(err, ShouldBeNil)
			So(p, ShouldBeEmpty)
			So(n.IsOpen(), ShouldBeFalse)
		})
	})
}

func TestTransitions(t *testing.T) {
	Convey("Given five items opened at index 2", t, func() {
		n := New()
		_, _ = n.Open(items(5), "p2")

		Convey("Next should target 3 going forward and commit on resolution", func() {
			preloads := n.RequestNext()
			So(n.Pending().MustGet(), ShouldEqual, 3)
			So(n.Direction(), ShouldEqual, Forward)
			So(n.Current().MustGet(), ShouldEqual, 2)

			// index 3 is already in flight as a neighbour
			So(preloads, ShouldBeEmpty)

			n.Resolve(Resolution{Session: n.Session(), Index: 3, URL: "https://cdn.example.com/3.jpg"})
			So(n.Current().MustGet(), ShouldEqual, 3)
			So(n.Pending().IsAbsent(), ShouldBeTrue)
			So(n.Direction(), ShouldEqual, Forward)
		})

		Convey("Next then previous twice should land on 1 going backward", func() {
			n.RequestNext()
			n.Resolve(Resolution{Session: n.Session(), Index: 3, URL: "https://cdn.example.com/3.jpg"})
			So(n.Current().MustGet(), ShouldEqual, 3)

			for range 2 {
				n.RequestPrevious()
				target := n.Pending().MustGet()
				n.Resolve(Resolution{Session: n.Session(), Index: target, URL: n.items[target].URL})
			}
			So(n.Current().MustGet(), ShouldEqual, 1)
			So(n.Direction(), ShouldEqual, Backward)
		})

		Convey("Requests while pending should change nothing", func() {
			n.RequestNext()
			before := n.View()

			So(n.RequestNext(), ShouldBeEmpty)
			So(n.RequestPrevious(), ShouldBeEmpty)
			p, err := n.RequestIndex(0)
			So(err, ShouldBeNil)
			So(p, ShouldBeEmpty)

			So(n.View(), ShouldResemble, before)
		})

		Convey("A failed preload should still advance", func() {
			n.RequestNext()
			n.Resolve(Resolution{Session: n.Session(), Index: 3, URL: "https://cdn.example.com/3.jpg", Err: errors.New("boom")})
			So(n.Current().MustGet(), ShouldEqual, 3)
			So(n.Pending().IsAbsent(), ShouldBeTrue)
			So(n.Loaded("https://cdn.example.com/3.jpg"), ShouldBeFalse)
		})

		Convey("A resolved target should commit immediately", func() {
			n.Resolve(Resolution{Session: n.Session(), Index: 1, URL: "https://cdn.example.com/1.jpg"})
			So(n.Loaded("https://cdn.example.com/1.jpg"), ShouldBeTrue)

			preloads := n.RequestPrevious()
			So(n.Current().MustGet(), ShouldEqual, 1)
			So(n.Pending().IsAbsent(), ShouldBeTrue)
			So(n.Direction(), ShouldEqual, Backward)
			So(indices(preloads), ShouldResemble, []int{0, 2})
		})

		Convey("A jump to an unrequested item should emit a gated preload", func() {
			preloads, err := n.RequestIndex(0)
			So(err, ShouldBeNil)
			g, ok := gate(preloads)
			So(ok, ShouldBeTrue)
			So(g.Index, ShouldEqual, 0)
			So(g.Session, ShouldEqual, n.Session())
			So(n.Direction(), ShouldEqual, Backward)

			after := n.Resolve(g.Resolve(nil))
			So(n.Current().MustGet(), ShouldEqual, 0)
			// 1 is still in flight from the open, 4 is new
			So(indices(after), ShouldResemble, []int{4})
		})

		Convey("A jump to the current index should have no direction", func() {
			preloads, err := n.RequestIndex(2)
			So(err, ShouldBeNil)
			So(preloads, ShouldBeEmpty)
			So(n.Direction(), ShouldEqual, None)
			So(n.Pending().IsAbsent(), ShouldBeTrue)
		})

		Convey("A jump out of range should fail without changes", func() {
			_, err := n.RequestIndex(5)
			So(err, ShouldEqual, ErrOutOfRange)
			_, err = n.RequestIndex(-1)
			So(err, ShouldEqual, ErrOutOfRange)
			So(n.Current().MustGet(), ShouldEqual, 2)
		})
	})
}

func TestWrapAround(t *testing.T) {
	Convey("Given n items", t, func() {
		for _, size := range []int{1, 2, 3, 7} {
			n := New()
			_, _ = n.Open(items(size), "p0")

			Convey(fmt.Sprintf("n=%d next requests each resolved should return to the start", size), func() {
				for range size {
					n.RequestNext()
					if target, ok := n.Pending().Get(); ok {
						n.Resolve(Resolution{Session: n.Session(), Index: target, URL: n.items[target].URL})
					}
					So(n.Pending().IsAbsent(), ShouldBeTrue)
				}
				So(n.Current().MustGet(), ShouldEqual, 0)
			})
		}

		Convey("Previous from the first item should wrap to the last", func() {
			n := New()
			_, _ = n.Open(items(4), "p0")
			n.RequestPrevious()
			So(n.Pending().MustGet(), ShouldEqual, 3)
			So(n.Direction(), ShouldEqual, Backward)
		})
	})
}

func TestSingleItem(t *testing.T) {
	Convey("Given one item", t, func() {
		n := New()
		preloads, err := n.Open(items(1), "p0")
		So(err, ShouldBeNil)
		So(preloads, ShouldBeEmpty)

		Convey("Next should target the current item without a transition", func() {
			So(n.RequestNext(), ShouldBeEmpty)
			So(n.Current().MustGet(), ShouldEqual, 0)
			So(n.Pending().IsAbsent(), ShouldBeTrue)
			So(n.Direction(), ShouldEqual, None)
		})
	})
}

func TestStaleResolutions(t *testing.T) {
	Convey("Given a pending transition", t, func() {
		n := New()
		list := items(5)
		_, _ = n.Open(list, "p0")
		preloads, _ := n.RequestIndex(2)
		g, _ := gate(preloads)

		Convey("A resolution from before a close should be discarded", func() {
			n.Close()
			So(n.Resolve(g.Resolve(nil)), ShouldBeEmpty)
			So(n.IsOpen(), ShouldBeFalse)
			So(n.Loaded(g.URL), ShouldBeFalse)
		})

		Convey("A resolution from an earlier session should not affect a reopened lightbox", func() {
			n.Close()
			_, _ = n.Open(list, "p4")
			n.Resolve(g.Resolve(nil))
			So(n.Current().MustGet(), ShouldEqual, 4)
			So(n.Pending().IsAbsent(), ShouldBeTrue)
		})

		Convey("A neighbour resolution should not commit the transition", func() {
			n.Resolve(Resolution{Session: n.Session(), Index: 1, URL: list[1].URL})
			So(n.Pending().MustGet(), ShouldEqual, 2)
			So(n.Current().MustGet(), ShouldEqual, 0)
			So(n.Loaded(list[1].URL), ShouldBeTrue)
		})
	})
}

func TestAdjacent(t *testing.T) {
	Convey("Adjacent", t, func() {
		So(Adjacent(0, 0), ShouldBeEmpty)
		So(Adjacent(1, 0), ShouldBeEmpty)
		So(Adjacent(2, 0), ShouldResemble, []int{1})
		So(Adjacent(5, 0), ShouldResemble, []int{4, 1})
		So(Adjacent(5, 4), ShouldResemble, []int{3, 0})
	})
}

func TestHandle(t *testing.T) {
	Convey("Given the event interface", t, func() {
		n := New()
		list := items(3)

		_, err := n.Handle(OpenEvent{Items: list, ID: "p1"})
		So(err, ShouldBeNil)

		preloads, err := n.Handle(JumpEvent{Index: 0})
		So(err, ShouldBeNil)
		So(preloads, ShouldBeEmpty)
		So(n.Pending().MustGet(), ShouldEqual, 0)

		_, err = n.Handle(ResolvedEvent{Resolution: Resolution{Session: n.Session(), Index: 0, URL: list[0].URL}})
		So(err, ShouldBeNil)
		So(n.View().Index, ShouldEqual, 0)
		So(n.View().Item, ShouldEqual, list[0])
		So(n.View().Total, ShouldEqual, 3)

		_, err = n.Handle(NextEvent{})
		So(err, ShouldBeNil)
		_, err = n.Handle(PreviousEvent{})
		So(err, ShouldBeNil)
		So(n.View().Pending, ShouldBeTrue)
		So(n.View().Target, ShouldEqual, 1)

		_, err = n.Handle(CloseEvent{})
		So(err, ShouldBeNil)
		So(n.View().Open, ShouldBeFalse)
	})
}
