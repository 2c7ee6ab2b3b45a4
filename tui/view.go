package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/folio-cli/folio/color"
	"github.com/folio-cli/folio/contact"
	"github.com/folio-cli/folio/icon"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/navigator"
	"github.com/folio-cli/folio/style"
	"github.com/folio-cli/folio/util"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

// frameInset is the horizontal space taken by the page padding and the lightbox frame.
const frameInset = 12

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case splashState:
		return b.splashC.View()
	case sectionsState:
		output = listExtraPaddingStyle.Render(b.sectionsC.View())
	case loadingState:
		output = b.viewLoading()
	case gridState:
		output = listExtraPaddingStyle.Render(b.gridC.View())
	case lightboxState:
		output = b.viewLightbox()
	case contactState:
		output = b.viewContact()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	name := ""
	if b.section != nil {
		name = strings.ToLower(b.section.name)
	}

	return b.renderLines(true, []string{
		style.Title("Loading"),
		"",
		b.spinnerC.View() + " Fetching " + name,
	})
}

func (b *statefulBubble) viewLightbox() string {
	frame := b.navigator.View()
	if !frame.Open {
		return b.renderLines(true, []string{style.Faint("Nothing open")})
	}

	item := frame.Item
	kindIcon := icon.Get(icon.Photo)
	if item.Kind == media.Video {
		kindIcon = icon.Get(icon.Video)
	}

	header := style.Title(b.section.name) + " " + style.Faint(fmt.Sprintf("%d / %d", frame.Index+1, frame.Total))
	body := []string{
		kindIcon + " " + style.Bold(item.Title) + " " + style.Tag(color.Ink, color.Accent)(string(item.Kind)),
	}

	if item.Byline != "" {
		body = append(body, style.Fg(color.Muted)(item.Byline))
	} else if caption, ok := item.Caption.Get(); ok {
		body = append(body, style.Italic(caption))
	}

	inner := max(b.width-frameInset, 20)
	if item.Description != "" {
		body = append(body, "", wrap.String(item.Description, inner))
	}

	if viper.GetBool(key.TUIShowURLs) {
		body = append(body, "", style.Truncate(inner)(icon.Get(icon.Link)+" "+style.Faint(item.URL)))
	}

	if n := len(item.Images); n > 0 {
		body = append(body, style.Faint(util.Quantify(n, "still", "stills")))
	}

	lines := []string{
		header,
		"",
		style.Frame(inner).Render(strings.Join(body, "\n")),
		"",
		b.viewNeighbours(frame),
	}

	if frame.Pending {
		lines = append(lines, "", b.spinnerC.View()+" Loading "+b.items[frame.Target].Title)
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewNeighbours(frame navigator.Frame) string {
	adjacent := navigator.Adjacent(frame.Total, frame.Index)
	if len(adjacent) == 0 {
		return ""
	}

	prev := b.items[adjacent[0]]
	next := b.items[adjacent[len(adjacent)-1]]

	highlight := func(dir navigator.Direction) func(string) string {
		if frame.Pending && frame.Direction == dir {
			return style.Fg(color.Accent)
		}
		return style.Faint
	}

	return fmt.Sprintf("%s %s    %s %s",
		highlight(navigator.Backward)(icon.Get(icon.Previous)),
		highlight(navigator.Backward)(prev.Title),
		highlight(navigator.Forward)(next.Title),
		highlight(navigator.Forward)(icon.Get(icon.Next)),
	)
}

func (b *statefulBubble) viewContact() string {
	label := func(field int, text string) string {
		if b.focused == field {
			return style.Fg(color.Accent)(text)
		}
		return style.Faint(text)
	}

	lines := []string{
		style.Title("Get In Touch"),
		"",
		style.Fg(color.Muted)("Have a project in mind? Let's talk about it."),
		"",
		label(nameField, "Name"),
		b.nameC.View(),
		"",
		label(emailField, "Email"),
		b.emailC.View(),
		"",
		label(messageField, "Message"),
		b.messageC.View(),
		"",
	}

	switch message := b.contact.Message(); b.contact.Status {
	case contact.Submitting:
		lines = append(lines, b.spinnerC.View()+" "+message)
	case contact.Success:
		lines = append(lines, icon.Get(icon.Success)+" "+style.Fg(color.Green)(message))
	case contact.Error:
		lines = append(lines, icon.Get(icon.Fail)+" "+style.Fg(color.Red)(wrap.String(message, max(b.width, 20))))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorMsg := wrap.String(style.Fg(color.Red)(b.lastError.Error()), b.width)
	return b.renderLines(true, []string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " Something went wrong:",
		"",
		errorMsg,
	})
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	if addHelp {
		if h := lipgloss.Height(l); b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
