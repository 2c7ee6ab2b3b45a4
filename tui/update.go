package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/folio-cli/folio/internal/ui"
	"github.com/folio-cli/folio/log"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/navigator"
	"github.com/folio-cli/folio/splash"
	"github.com/samber/lo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := b.notifier.Update(msg)

	// results of background work are applied whatever screen is showing
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		b.splashC, _ = b.splashC.Update(msg)
		return b, cmd
	case error:
		b.raiseError(msg)
		return b, cmd
	case resolvedMsg:
		return b, tea.Batch(cmd, b.resolve(msg.Resolution))
	case submittedMsg:
		return b, tea.Batch(cmd, b.completeContact(msg))
	case resetMsg:
		b.contact.Reset(msg.seq)
		return b, cmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case splashState:
		stateCmd = b.updateSplash(msg)
	case sectionsState:
		stateCmd = b.updateSections(msg)
	case loadingState:
		stateCmd = b.updateLoading(msg)
	case gridState:
		stateCmd = b.updateGrid(msg)
	case lightboxState:
		stateCmd = b.updateLightbox(msg)
	case contactState:
		stateCmd = b.updateContact(msg)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

func (b *statefulBubble) updateSplash(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(splash.DoneMsg); ok {
		if err := b.options.Session.MarkSeen(); err != nil {
			log.Warnf("splash session: %s", err)
		}
		b.setState(sectionsState)
		return nil
	}

	var cmd tea.Cmd
	b.splashC, cmd = b.splashC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateSections(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		item, ok := b.sectionsC.SelectedItem().(*listItem)
		if !ok {
			return nil
		}

		b.section = item.internal.(*section)
		kind, ok := b.section.kind.Get()
		if !ok {
			b.newState(contactState)
			return b.focusField(nameField)
		}

		b.newState(loadingState)
		return tea.Batch(b.startLoading(), b.fetchSection(kind))
	}

	var cmd tea.Cmd
	b.sectionsC, cmd = b.sectionsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.back) {
			b.stopLoading()
			b.previousState()
		}
		return nil
	case fetchedMsg:
		if kind, ok := b.section.kind.Get(); !ok || kind != msg.kind {
			return nil
		}
		b.stopLoading()

		var cmd tea.Cmd
		if msg.err != nil {
			// an empty grid is shown instead of an error screen
			log.Error(msg.err)
			cmd = ui.Notify(loadFailed(msg.kind))
		}

		b.items = msg.items
		b.gridC.Title = b.section.name
		b.gridC.SetStatusBarItemName(string(msg.kind), msg.kind.Plural())
		b.gridC.ResetFilter()
		b.gridC.ResetSelected()
		b.newState(gridState)
		return tea.Batch(cmd, b.gridC.SetItems(lo.Map(msg.items, func(item *media.Item, _ int) list.Item {
			return &listItem{internal: item}
		})))
	}

	var cmd tea.Cmd
	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateGrid(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && b.gridC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.gridC.FilterState() == list.FilterApplied {
				b.gridC.ResetFilter()
				return nil
			}
			b.previousState()
			return nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.gridC.SelectedItem().(*listItem); ok {
				return b.openItem(item.internal.(*media.Item))
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if item, ok := b.gridC.SelectedItem().(*listItem); ok {
				return b.openURL(item.internal.(*media.Item).URL)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.gridC, cmd = b.gridC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateLightbox(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.closeItem()
		case bubblesKey.Matches(msg, b.keymap.previous):
			return b.step(navigator.PreviousEvent{})
		case bubblesKey.Matches(msg, b.keymap.next):
			return b.step(navigator.NextEvent{})
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if item := b.navigator.View().Item; item != nil {
				return b.openURL(item.URL)
			}
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		}
		return nil
	case spinner.TickMsg:
		if !b.navigator.View().Pending {
			return nil
		}
	}

	var cmd tea.Cmd
	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateContact(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.blurFields()
			b.previousState()
			return nil
		case bubblesKey.Matches(msg, b.keymap.send):
			return b.submitContact()
		case bubblesKey.Matches(msg, b.keymap.nextField):
			return b.focusField(b.focused + 1)
		case bubblesKey.Matches(msg, b.keymap.prevField):
			return b.focusField(b.focused - 1)
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.focused != messageField:
			return b.focusField(b.focused + 1)
		}
	}

	var cmd, spinnerCmd tea.Cmd
	switch b.focused {
	case nameField:
		b.nameC, cmd = b.nameC.Update(msg)
	case emailField:
		b.emailC, cmd = b.emailC.Update(msg)
	default:
		b.messageC, cmd = b.messageC.Update(msg)
	}
	b.spinnerC, spinnerCmd = b.spinnerC.Update(msg)
	return tea.Batch(cmd, spinnerCmd)
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		}
	}
	return nil
}
