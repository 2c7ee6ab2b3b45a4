// Package splash shows the site title animation once per session.
package splash

import (
	"time"

	"github.com/folio-cli/folio/filesystem"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/where"
	"github.com/metafates/gache"
	"github.com/spf13/viper"
)

// CookieName marks a browser session that has already seen the splash.
const CookieName = "folio_splash"

// Session is the persisted "splash already shown" flag.
// It is read once by Init; afterwards Seen answers from memory.
type Session struct {
	cacher *gache.Cache[bool]
	seen   bool
}

// NewSession stores the flag at path. The flag expires after lifetime,
// which starts a new session.
func NewSession(path string, lifetime time.Duration) *Session {
	return &Session{
		cacher: gache.New[bool](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

// DefaultSession uses the session file and the configured session length.
func DefaultSession() *Session {
	return NewSession(where.Session(), time.Duration(viper.GetInt(key.SplashSession))*time.Hour)
}

// Init loads the flag. A missing or unreadable file counts as not seen.
func (s *Session) Init() error {
	seen, expired, err := s.cacher.Get()
	if err != nil {
		s.seen = false
		return err
	}
	s.seen = seen && !expired
	return nil
}

func (s *Session) Seen() bool {
	return s.seen
}

// MarkSeen records that the splash was shown.
func (s *Session) MarkSeen() error {
	s.seen = true
	return s.cacher.Set(true)
}
