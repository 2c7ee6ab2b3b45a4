package tui

import (
	"fmt"
	"strings"

	"github.com/folio-cli/folio/icon"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/style"
	"github.com/folio-cli/folio/util"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// section is an entry of the top level menu.
type section struct {
	name string
	// none for the contact form
	kind mo.Option[media.Kind]
}

func sections() []*section {
	var all []*section
	for _, kind := range media.Kinds() {
		all = append(all, &section{name: util.Capitalize(kind.Plural()), kind: mo.Some(kind)})
	}
	return append(all, &section{name: "Contact", kind: mo.None[media.Kind]()})
}

func (s *section) icon() string {
	kind, ok := s.kind.Get()
	switch {
	case !ok:
		return icon.Get(icon.Mail)
	case kind == media.Photo:
		return icon.Get(icon.Photo)
	default:
		return icon.Get(icon.Video)
	}
}

// listItem adapts sections and media items to list.Item.
type listItem struct {
	internal any
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *section:
		return fmt.Sprintf("%s %s", e.icon(), e.name)
	case *media.Item:
		if e.Title == "" {
			return style.Faint("untitled")
		}
		return e.Title
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *section:
		if _, ok := e.kind.Get(); !ok {
			return "Get in touch"
		}
		return "Browse " + strings.ToLower(e.name)
	case *media.Item:
		var parts []string
		if e.Byline != "" {
			parts = append(parts, e.Byline)
		} else if caption, ok := e.Caption.Get(); ok {
			parts = append(parts, caption)
		}
		if viper.GetBool(key.TUIShowURLs) {
			parts = append(parts, style.Faint(e.URL))
		}
		return strings.Join(parts, " • ")
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *section:
		return e.name
	case *media.Item:
		return e.Title
	default:
		return ""
	}
}
