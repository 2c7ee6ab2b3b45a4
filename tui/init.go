package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	if b.state == splashState {
		return tea.Batch(textinput.Blink, b.splashC.Init())
	}
	return textinput.Blink
}
