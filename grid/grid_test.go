package grid

import (
	"fmt"
	"testing"

	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/media"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSpanAt(t *testing.T) {
	Convey("SpanAt should follow the three six-cell cycles", t, func() {
		So(SpanAt(0), ShouldResemble, Span{Cols: 1, Rows: 2})
		So(SpanAt(4), ShouldResemble, Span{Cols: 2, Rows: 1})
		So(SpanAt(1), ShouldResemble, Span{Cols: 1, Rows: 1})

		So(SpanAt(9), ShouldResemble, Span{Cols: 1, Rows: 2})
		So(SpanAt(11), ShouldResemble, Span{Cols: 2, Rows: 1})

		So(SpanAt(13), ShouldResemble, Span{Cols: 2, Rows: 1})
		So(SpanAt(15), ShouldResemble, Span{Cols: 1, Rows: 2})

		So(SpanAt(18), ShouldResemble, SpanAt(0))
		So(SpanAt(-1), ShouldResemble, Span{Cols: 1, Rows: 1})

		So(SpanAt(0).Class(), ShouldEqual, "tall")
		So(SpanAt(4).Class(), ShouldEqual, "wide")
		So(SpanAt(1).Class(), ShouldBeEmpty)
	})
}

func TestWindow(t *testing.T) {
	Convey("Given three items", t, func() {
		items := lo.Times(3, func(i int) *media.Item { return &media.Item{ID: fmt.Sprint(i)} })

		Convey("Window should cycle through them", func() {
			cells := Window(items, 7)
			So(cells, ShouldHaveLength, 7)
			So(lo.Map(cells, func(c Cell, _ int) int { return c.Index }), ShouldResemble, []int{0, 1, 2, 0, 1, 2, 0})
			So(cells[6].Item, ShouldEqual, items[0])
			So(cells[6].Slot, ShouldEqual, 6)
		})

		Convey("An empty list or count should yield nothing", func() {
			So(Window(nil, 18), ShouldBeEmpty)
			So(Window(items, 0), ShouldBeEmpty)
		})
	})
}

func TestCount(t *testing.T) {
	Convey("Given the default listing sizes", t, func() {
		viper.Set(key.GridInitial, 18)
		viper.Set(key.GridStep, 6)

		So(Count(""), ShouldEqual, 18)
		So(Count("abc"), ShouldEqual, 18)
		So(Count("4"), ShouldEqual, 18)
		So(Count("24"), ShouldEqual, 24)
		So(Count("100000"), ShouldEqual, MaxCount)
		So(More(18), ShouldEqual, 24)
		So(More(MaxCount), ShouldEqual, MaxCount)
	})
}
