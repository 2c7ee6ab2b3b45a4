package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/folio-cli/folio/contact"
	"github.com/folio-cli/folio/content"
	"github.com/folio-cli/folio/filesystem"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/navigator"
	"github.com/folio-cli/folio/preload"
	"github.com/folio-cli/folio/splash"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeSource struct {
	fail bool
}

func (fakeSource) Name() string { return "fake" }

func (f fakeSource) FetchAll(_ context.Context, kind media.Kind) ([]*media.Item, error) {
	if f.fail {
		return nil, content.ErrContentFetchFailed
	}
	return lo.Times(3, func(i int) *media.Item {
		return &media.Item{
			ID:    fmt.Sprintf("%s-%d", kind, i),
			Kind:  kind,
			Title: fmt.Sprintf("Item %d", i),
			URL:   fmt.Sprintf("https://cdn.example.com/%s/%d", kind, i),
			Order: float64(i),
		}
	}), nil
}

type fakeLoader struct{}

func (fakeLoader) Preload(_ context.Context, url string) preload.Result {
	return preload.Result{URL: url, Status: preload.Ready}
}

type fakeSubmitter struct{}

func (fakeSubmitter) Submit(context.Context, contact.Form) error { return nil }

func newTestBubble(src fakeSource) *statefulBubble {
	b := newBubble(&Options{
		Source:    src,
		Loader:    fakeLoader{},
		Submitter: fakeSubmitter{},
		Session:   splash.NewSession("/session.json", time.Hour),
	})
	b.resize(100, 40)
	b.setState(sectionsState)
	return b
}

func press(b *statefulBubble, msg tea.KeyMsg) tea.Cmd {
	_, cmd := b.Update(msg)
	return cmd
}

func typeText(b *statefulBubble, text string) {
	press(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	right = tea.KeyMsg{Type: tea.KeyRight}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	send  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

// openGrid selects the videos section and delivers its content.
func openGrid(b *statefulBubble) {
	press(b, enter)
	b.Update(b.fetchSection(media.Video)())
}

func TestSplash(t *testing.T) {
	Convey("Given the splash screen", t, func() {
		b := newTestBubble(fakeSource{})
		b.setState(splashState)

		Convey("When it finishes", func() {
			b.Update(splash.DoneMsg{})

			Convey("Then the menu should show without the splash in history", func() {
				So(b.state, ShouldEqual, sectionsState)
				So(b.statesHistory.Len(), ShouldEqual, 0)
				So(b.options.Session.Seen(), ShouldBeTrue)
			})
		})
	})
}

func TestGrid(t *testing.T) {
	Convey("Given the section menu", t, func() {
		b := newTestBubble(fakeSource{})

		Convey("Selecting videos should start loading", func() {
			press(b, enter)
			So(b.state, ShouldEqual, loadingState)
			So(b.section.name, ShouldEqual, "Videos")

			Convey("And results for another section should be ignored", func() {
				b.Update(fetchedMsg{kind: media.Photo})
				So(b.state, ShouldEqual, loadingState)
			})

			Convey("And the fetched items should fill the grid", func() {
				b.Update(b.fetchSection(media.Video)())
				So(b.state, ShouldEqual, gridState)
				So(b.gridC.Items(), ShouldHaveLength, 3)
				So(b.loading, ShouldBeFalse)
			})

			Convey("And going back should return to the menu", func() {
				press(b, esc)
				So(b.state, ShouldEqual, sectionsState)
			})
		})

		Convey("A failing source should show an empty grid", func() {
			b.options.Source = fakeSource{fail: true}
			openGrid(b)
			So(b.state, ShouldEqual, gridState)
			So(b.gridC.Items(), ShouldBeEmpty)
		})
	})
}

func TestLightbox(t *testing.T) {
	Convey("Given an open lightbox", t, func() {
		b := newTestBubble(fakeSource{})
		openGrid(b)
		press(b, enter)

		So(b.state, ShouldEqual, lightboxState)
		So(b.navigator.View().Index, ShouldEqual, 0)

		resolve := func(index int) {
			b.Update(resolvedMsg{navigator.Resolution{
				Session: b.navigator.Session(),
				Index:   index,
				URL:     b.items[index].URL,
			}})
		}

		Convey("Right should wait for the next item before moving", func() {
			press(b, right)
			frame := b.navigator.View()
			So(frame.Index, ShouldEqual, 0)
			So(frame.Pending, ShouldBeTrue)
			So(frame.Direction, ShouldEqual, navigator.Forward)

			Convey("And further presses should be ignored while pending", func() {
				press(b, right)
				press(b, left)
				So(b.navigator.View().Target, ShouldEqual, 1)
				So(b.navigator.View().Direction, ShouldEqual, navigator.Forward)
			})

			Convey("And the resolution should commit the move", func() {
				resolve(1)
				So(b.navigator.View().Index, ShouldEqual, 1)
				So(b.navigator.View().Pending, ShouldBeFalse)
				So(b.View(), ShouldContainSubstring, "Item 1")
			})
		})

		Convey("The spinner should only tick while a move is pending", func() {
			_, cmd := b.Update(b.spinnerC.Tick())
			So(cmd, ShouldBeNil)

			So(press(b, right), ShouldNotBeNil)
			_, cmd = b.Update(b.spinnerC.Tick())
			So(cmd, ShouldNotBeNil)

			resolve(1)
			_, cmd = b.Update(b.spinnerC.Tick())
			So(cmd, ShouldBeNil)
		})

		Convey("The frame should tag the kind and count the stills", func() {
			b.items[0].Images = []media.Image{{URL: "https://cdn.example.com/s0.jpg"}}
			view := b.View()
			So(view, ShouldContainSubstring, "video")
			So(view, ShouldContainSubstring, "1 still")
			So(view, ShouldNotContainSubstring, "1 stills")

			b.items[0].Images = append(b.items[0].Images, media.Image{URL: "https://cdn.example.com/s1.jpg"})
			So(b.View(), ShouldContainSubstring, "2 stills")
		})

		Convey("Left from the first item should wrap to the last", func() {
			press(b, left)
			resolve(2)
			So(b.navigator.View().Index, ShouldEqual, 2)
			So(b.navigator.View().Direction, ShouldEqual, navigator.Backward)
		})

		Convey("Escape should close it and return to the grid", func() {
			press(b, esc)
			So(b.state, ShouldEqual, gridState)
			So(b.navigator.IsOpen(), ShouldBeFalse)

			Convey("And a late resolution should change nothing", func() {
				resolve(1)
				So(b.navigator.IsOpen(), ShouldBeFalse)
			})
		})
	})
}

func TestContact(t *testing.T) {
	Convey("Given the contact form", t, func() {
		b := newTestBubble(fakeSource{})
		b.sectionsC.Select(2)
		press(b, enter)

		So(b.state, ShouldEqual, contactState)
		So(b.focused, ShouldEqual, nameField)

		Convey("Sending an empty form should not submit", func() {
			press(b, send)
			So(b.contact.Status, ShouldEqual, contact.Idle)
		})

		Convey("When every field is filled and sent", func() {
			typeText(b, "Ada")
			press(b, tab)
			typeText(b, "ada@example.com")
			press(b, enter)
			So(b.focused, ShouldEqual, messageField)
			typeText(b, "Hello")

			press(b, send)
			So(b.contact.Status, ShouldEqual, contact.Submitting)
			So(b.contact.Form.Email, ShouldEqual, "ada@example.com")

			Convey("Then success should clear the fields", func() {
				b.Update(submittedMsg{seq: 1})
				So(b.contact.Status, ShouldEqual, contact.Success)
				So(b.nameC.Value(), ShouldBeEmpty)
				So(b.messageC.Value(), ShouldBeEmpty)

				Convey("And the status should reset afterwards", func() {
					b.Update(resetMsg{seq: 1})
					So(b.contact.Status, ShouldEqual, contact.Idle)
				})
			})

			Convey("Then a failure should keep the input", func() {
				b.Update(submittedMsg{seq: 1, err: errors.New("offline")})
				So(b.contact.Status, ShouldEqual, contact.Error)
				So(b.nameC.Value(), ShouldEqual, "Ada")
				So(b.View(), ShouldContainSubstring, "Something went wrong")
			})

			Convey("Then a second send should be rejected while submitting", func() {
				press(b, send)
				So(b.contact.Status, ShouldEqual, contact.Submitting)
			})
		})
	})
}
