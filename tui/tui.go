// Package tui is the interactive terminal portfolio browser.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/folio-cli/folio/contact"
	"github.com/folio-cli/folio/content"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/log"
	"github.com/folio-cli/folio/preload"
	"github.com/folio-cli/folio/splash"
	"github.com/spf13/viper"
)

// Options are the collaborators of the terminal browser.
type Options struct {
	Source    content.Source
	Loader    preload.Loader
	Submitter contact.Submitter
	Session   *splash.Session
}

func (o *Options) fill() error {
	if o.Source == nil {
		src, err := content.Default()
		if err != nil {
			return err
		}
		o.Source = src
	}
	if o.Loader == nil {
		o.Loader = preload.NewHTTPLoader()
	}
	if o.Submitter == nil {
		o.Submitter = contact.Default()
	}
	if o.Session == nil {
		o.Session = splash.DefaultSession()
	}
	return nil
}

// Run starts the program and blocks until the user quits.
func Run(options *Options) error {
	if err := options.fill(); err != nil {
		return err
	}

	showSplash := false
	if viper.GetBool(key.SplashEnable) {
		if err := options.Session.Init(); err != nil {
			log.Warnf("splash session: %s", err)
		}
		showSplash = !options.Session.Seen()
	}

	bubble := newBubble(options)
	if showSplash {
		bubble.setState(splashState)
	} else {
		bubble.setState(sectionsState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
