package splash

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/folio-cli/folio/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSession(t *testing.T) {
	Convey("Given a fresh session file", t, func() {
		s := NewSession("/cache/session.json", time.Hour)
		So(s.Init(), ShouldBeNil)
		So(s.Seen(), ShouldBeFalse)

		Convey("MarkSeen should persist across instances", func() {
			So(s.MarkSeen(), ShouldBeNil)
			So(s.Seen(), ShouldBeTrue)

			again := NewSession("/cache/session.json", time.Hour)
			So(again.Init(), ShouldBeNil)
			So(again.Seen(), ShouldBeTrue)
		})
	})
}

func TestAt(t *testing.T) {
	Convey("Given the title animation", t, func() {
		title := "Josh Gutie"

		Convey("Nothing should be visible before the first letter", func() {
			So(At(title, 0), ShouldResemble, Frame{})
			So(At(title, 299*time.Millisecond).Letters, ShouldEqual, 0)
		})

		Convey("Letters should reveal every 50ms", func() {
			So(At(title, FirstLetter).Letters, ShouldEqual, 1)
			So(At(title, FirstLetter+2*Stagger).Letters, ShouldEqual, 3)
			So(At(title, time.Second).Letters, ShouldEqual, 10)
		})

		Convey("The underline should grow after 1.2s", func() {
			So(At(title, UnderlineAt).Underline, ShouldEqual, 0)
			So(At(title, UnderlineAt+UnderlineFor/2).Underline, ShouldAlmostEqual, 0.5, 0.01)
			So(At(title, UnderlineAt+UnderlineFor).Underline, ShouldEqual, 1)
		})

		Convey("It should last at least two seconds", func() {
			So(At(title, 1999*time.Millisecond).Done, ShouldBeFalse)
			So(At(title, MinimumLength).Done, ShouldBeTrue)
		})
	})
}

func TestModel(t *testing.T) {
	Convey("Given a running splash model", t, func() {
		m := New("Josh Gutie")
		So(m.Init(), ShouldNotBeNil)

		Convey("A tick past the minimum should finish", func() {
			_, cmd := m.Update(tickMsg(m.start.Add(MinimumLength)))
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldResemble, DoneMsg{})
			So(m.View(), ShouldContainSubstring, "Josh Gutie")
		})

		Convey("A key press should skip once", func() {
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(cmd(), ShouldResemble, DoneMsg{})
			_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(cmd, ShouldBeNil)
		})
	})
}
