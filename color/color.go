// Package color provides a curated palette of colors.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// Site colors, matching the web pages.
var (
	Ink     = New("#0a0a0a")
	Paper   = New("#fafafa")
	Muted   = New("#737373")
	Divider = New("#262626")
	Accent  = New("#e5e5e5")
)
