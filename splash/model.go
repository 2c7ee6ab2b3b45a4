package splash

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/folio-cli/folio/color"
	"github.com/folio-cli/folio/style"
)

// Timeline of the animation, measured from the start.
const (
	FirstLetter   = 300 * time.Millisecond
	Stagger       = 50 * time.Millisecond
	UnderlineAt   = 1200 * time.Millisecond
	UnderlineFor  = 800 * time.Millisecond
	MinimumLength = 2 * time.Second

	frameRate = 50 * time.Millisecond
)

// Frame is the state of the animation at a point in time.
type Frame struct {
	Letters   int
	Underline float64
	Done      bool
}

// At computes the frame for title after elapsed.
func At(title string, elapsed time.Duration) Frame {
	runes := len([]rune(title))

	letters := 0
	if elapsed >= FirstLetter {
		letters = min(runes, int((elapsed-FirstLetter)/Stagger)+1)
	}

	underline := 0.0
	if elapsed > UnderlineAt {
		underline = min(1, float64(elapsed-UnderlineAt)/float64(UnderlineFor))
	}

	return Frame{
		Letters:   letters,
		Underline: underline,
		Done:      elapsed >= MinimumLength && letters == runes && underline >= 1,
	}
}

type tickMsg time.Time

// DoneMsg is sent once the animation finished or was skipped.
type DoneMsg struct{}

// Model is the bubbletea splash screen.
type Model struct {
	title   string
	start   time.Time
	now     time.Time
	width   int
	height  int
	skipped bool
}

func New(title string) *Model {
	return &Model{title: title}
}

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	m.start = time.Now()
	m.now = m.start
	return tick()
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if !m.skipped {
			m.skipped = true
			return m, func() tea.Msg { return DoneMsg{} }
		}
	case tickMsg:
		if m.skipped {
			return m, nil
		}
		m.now = time.Time(msg)
		if m.Frame().Done {
			m.skipped = true
			return m, func() tea.Msg { return DoneMsg{} }
		}
		return m, tick()
	}
	return m, nil
}

// Frame returns the current animation frame.
func (m *Model) Frame() Frame {
	return At(m.title, m.now.Sub(m.start))
}

func (m *Model) View() string {
	f := m.Frame()
	runes := []rune(m.title)

	text := style.New().Bold(true).Foreground(color.Paper).Render(string(runes[:f.Letters]))
	text += strings.Repeat(" ", len(runes)-f.Letters)

	bar := strings.Repeat("━", int(f.Underline*float64(len(runes))))
	block := lipgloss.JoinVertical(lipgloss.Left, text, style.Fg(color.Accent)(bar))

	if m.width == 0 || m.height == 0 {
		return block
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}
