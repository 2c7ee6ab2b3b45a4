// Package icon renders UI symbols in the variant chosen by configuration.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII or Unicode squares.
package icon

import (
	"github.com/folio-cli/folio/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Lua Icon = iota + 1
	Sanity
	Video
	Photo
	Mail
	Loading
	Success
	Fail
	Previous
	Next
	Link
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Lua:      {emoji: "🌙", nerd: "", plain: "Lua", squares: "◧"},
	Sanity:   {emoji: "🗂", nerd: "", plain: "CMS", squares: "◨"},
	Video:    {emoji: "🎬", nerd: "", plain: "[V]", squares: "▶"},
	Photo:    {emoji: "📷", nerd: "", plain: "[P]", squares: "▣"},
	Mail:     {emoji: "✉️", nerd: "", plain: "@", squares: "▤"},
	Loading:  {emoji: "⏳", nerd: "", plain: "...", squares: "◌"},
	Success:  {emoji: "✅", nerd: "", plain: "OK", squares: "■"},
	Fail:     {emoji: "❌", nerd: "", plain: "X", squares: "□"},
	Previous: {emoji: "⬅️", nerd: "", plain: "<", squares: "◀"},
	Next:     {emoji: "➡️", nerd: "", plain: ">", squares: "▶"},
	Link:     {emoji: "🔗", nerd: "", plain: "->", squares: "▹"},
}

// Get returns the rendered string for the icon, or "" for an unknown icon or variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}
