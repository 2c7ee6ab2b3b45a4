package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/folio-cli/folio/color"
	"github.com/folio-cli/folio/contact"
	"github.com/folio-cli/folio/internal/ui"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/navigator"
	"github.com/folio-cli/folio/splash"
	"github.com/folio-cli/folio/style"
	"github.com/folio-cli/folio/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// statefulBubble is the root model: the current screen, its history and every component.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	// components
	splashC   *splash.Model
	spinnerC  spinner.Model
	sectionsC list.Model
	gridC     list.Model
	nameC     textinput.Model
	emailC    textinput.Model
	messageC  textarea.Model
	helpC     help.Model
	focused   int

	ctx       context.Context
	section   *section
	items     []*media.Item
	navigator *navigator.Navigator
	contact   *contact.Model
	lastError error

	width, height int
	notifier      *ui.Model

	options *Options
}

// contact form fields in focus order
const (
	nameField = iota
	emailField
	messageField
	fieldCount
)

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering where we came from.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{splashState, loadingState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.sectionsC.SetSize(listWidth, listHeight)
	b.sectionsC.Help.Width = listWidth

	b.gridC.SetSize(listWidth, listHeight)
	b.gridC.Help.Width = listWidth

	fieldWidth := min(listWidth, 72)
	b.nameC.Width = fieldWidth
	b.emailC.Width = fieldWidth
	b.messageC.SetWidth(fieldWidth)

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	return tea.Batch(b.spinnerC.Tick, b.gridC.StartSpinner())
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.gridC.StopSpinner()
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		ctx:           context.Background(),
		navigator:     navigator.New(),
		contact:       contact.NewModel(),
		notifier:      &ui.Model{},
		options:       options,
	}

	makeList := func(title string, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(color.Accent).
			Foreground(color.Accent).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(color.White)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = style.Colored(color.Ink, titleColor).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)
		return listC
	}

	site := viper.GetString(key.SplashTitle)
	bubble.splashC = splash.New(site)

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = style.New().Foreground(color.Accent)

	bubble.sectionsC = makeList(site, color.Paper)
	bubble.sectionsC.SetShowStatusBar(false)
	bubble.sectionsC.SetFilteringEnabled(false)
	bubble.sectionsC.SetItems(lo.Map(sections(), func(s *section, _ int) list.Item {
		return &listItem{internal: s}
	}))

	bubble.gridC = makeList("", color.Accent)

	bubble.nameC = textinput.New()
	bubble.nameC.Prompt = ""
	bubble.nameC.Placeholder = "Your name"
	bubble.nameC.CharLimit = 120

	bubble.emailC = textinput.New()
	bubble.emailC.Prompt = ""
	bubble.emailC.Placeholder = "you@example.com"
	bubble.emailC.CharLimit = 254

	bubble.messageC = textarea.New()
	bubble.messageC.Placeholder = "Tell me about your project"
	bubble.messageC.ShowLineNumbers = false
	bubble.messageC.SetHeight(6)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
