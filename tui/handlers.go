package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/folio-cli/folio/contact"
	"github.com/folio-cli/folio/internal/ui"
	"github.com/folio-cli/folio/log"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/navigator"
	"github.com/folio-cli/folio/open"
	"github.com/folio-cli/folio/preload"
	"github.com/folio-cli/folio/util"
	"github.com/samber/lo"
)

type fetchedMsg struct {
	kind  media.Kind
	items []*media.Item
	err   error
}

type resolvedMsg struct {
	navigator.Resolution
}

type submittedMsg struct {
	seq uint64
	err error
}

type resetMsg struct {
	seq uint64
}

func (b *statefulBubble) fetchSection(kind media.Kind) tea.Cmd {
	src, ctx := b.options.Source, b.ctx
	return func() tea.Msg {
		items, err := src.FetchAll(ctx, kind)
		return fetchedMsg{kind: kind, items: items, err: err}
	}
}

// preload runs each request on its own goroutine; results come back as resolvedMsg.
// The spinner runs only while a transition waits on a gated request.
func (b *statefulBubble) preload(preloads []navigator.Preload) tea.Cmd {
	loader, ctx := b.options.Loader, b.ctx
	cmds := lo.Map(preloads, func(p navigator.Preload, _ int) tea.Cmd {
		return func() tea.Msg {
			return resolvedMsg{preload.Run(ctx, loader, p)}
		}
	})

	if lo.ContainsBy(preloads, func(p navigator.Preload) bool { return p.Gate }) {
		cmds = append(cmds, b.spinnerC.Tick)
	}
	return tea.Batch(cmds...)
}

func (b *statefulBubble) openItem(item *media.Item) tea.Cmd {
	preloads, err := b.navigator.Handle(navigator.OpenEvent{Items: b.items, ID: item.ID})
	if err != nil {
		log.Error(err)
		return ui.Notify(err.Error())
	}

	b.newState(lightboxState)
	return b.preload(preloads)
}

func (b *statefulBubble) closeItem() {
	_, _ = b.navigator.Handle(navigator.CloseEvent{})
	b.previousState()
}

func (b *statefulBubble) step(ev navigator.Event) tea.Cmd {
	preloads, err := b.navigator.Handle(ev)
	if err != nil {
		log.Error(err)
		return nil
	}
	return b.preload(preloads)
}

func (b *statefulBubble) resolve(r navigator.Resolution) tea.Cmd {
	if r.Err != nil {
		log.Warnf("preload %s: %s", r.URL, r.Err)
	}
	return b.step(navigator.ResolvedEvent{Resolution: r})
}

func (b *statefulBubble) openURL(url string) tea.Cmd {
	if url == "" {
		return nil
	}
	if err := open.Start(url); err != nil {
		log.Error(err)
		return ui.Notify("Could not open the browser")
	}
	return ui.Notify("Opened in browser")
}

func (b *statefulBubble) focusField(i int) tea.Cmd {
	b.focused = util.Wrap(i, fieldCount)
	b.blurFields()

	switch b.focused {
	case nameField:
		return b.nameC.Focus()
	case emailField:
		return b.emailC.Focus()
	default:
		return b.messageC.Focus()
	}
}

func (b *statefulBubble) blurFields() {
	b.nameC.Blur()
	b.emailC.Blur()
	b.messageC.Blur()
}

func (b *statefulBubble) clearForm() {
	b.nameC.Reset()
	b.emailC.Reset()
	b.messageC.Reset()
}

func (b *statefulBubble) submitContact() tea.Cmd {
	b.contact.Form = contact.Form{
		Name:    b.nameC.Value(),
		Email:   b.emailC.Value(),
		Message: b.messageC.Value(),
	}

	attempt, err := b.contact.Submit()
	if err != nil {
		return ui.Notify(reason(err))
	}

	submitter, ctx := b.options.Submitter, b.ctx
	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		return submittedMsg{seq: attempt.Seq, err: submitter.Submit(ctx, attempt.Form)}
	})
}

func (b *statefulBubble) completeContact(msg submittedMsg) tea.Cmd {
	if msg.err != nil {
		log.Error(msg.err)
	}

	reset, ok := b.contact.Complete(msg.seq, msg.err)
	if !ok {
		return nil
	}
	if b.contact.Status == contact.Success {
		b.clearForm()
	}

	return tea.Tick(reset.Delay, func(time.Time) tea.Msg {
		return resetMsg{seq: reset.Seq}
	})
}

// reason turns a validation error into a short sentence.
func reason(err error) string {
	if errors.Is(err, contact.ErrInvalid) {
		return util.Capitalize(strings.TrimPrefix(err.Error(), contact.ErrInvalid.Error()+": "))
	}
	return util.Capitalize(err.Error())
}

func loadFailed(kind media.Kind) string {
	return fmt.Sprintf("Could not load %s", kind.Plural())
}
