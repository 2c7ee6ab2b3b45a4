package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/folio-cli/folio/contact"
	"github.com/folio-cli/folio/grid"
	"github.com/folio-cli/folio/log"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/navigator"
	"github.com/folio-cli/folio/splash"
	"github.com/folio-cli/folio/util"
	"github.com/samber/lo"
)

type preloadLink struct {
	Rel string
	URL string
	As  string
}

type page struct {
	Title         string
	Site          string
	Section       string
	Splash        bool
	SplashLetters []string
	Preloads      []preloadLink

	Cells []grid.Cell
	Count int
	More  int

	Frame    navigator.Frame
	Prev     string
	Next     string
	CloseURL string

	Form       contact.Form
	Status     contact.Status
	Message    string
	Invalid    string
	ResetAfter string
}

func (s *Server) newPage(w http.ResponseWriter, r *http.Request, section string) *page {
	p := &page{
		Title:   s.opts.Site + " - Portfolio",
		Site:    s.opts.Site,
		Section: section,
	}

	if _, err := r.Cookie(splash.CookieName); errors.Is(err, http.ErrNoCookie) {
		p.Splash = true
		p.SplashLetters = strings.Split(s.opts.Site, "")
		http.SetCookie(w, &http.Cookie{
			Name:     splash.CookieName,
			Value:    "1",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return p
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, status int, p *page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status == http.StatusOK && r.Method == http.MethodGet {
		// pages setting the splash cookie must not be shared
		w.Header().Set("Vary", "Cookie")
		w.Header().Set("Cache-Control", fmt.Sprintf("%s, max-age=%d", lo.Ternary(p.Splash, "private", "public"), int(s.opts.Revalidate.Seconds())))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}
	w.WriteHeader(status)
	if err := s.tpl.ExecuteTemplate(w, name, p); err != nil {
		log.Errorf("render %s: %s", name, err)
	}
}

func sectionOf(r *http.Request) media.Kind {
	kind, err := media.ParseKind(strings.Split(strings.Trim(r.URL.Path, "/"), "/")[0])
	if err != nil {
		return media.Video
	}
	return kind
}

// items fetches a section. Failures are logged and render as an empty list.
func (s *Server) items(r *http.Request, kind media.Kind) []*media.Item {
	items, err := s.opts.Content.FetchAll(r.Context(), kind)
	if err != nil {
		log.Errorf("fetch %s: %s", kind.Plural(), err)
		return nil
	}
	return items
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	kind := sectionOf(r)
	p := s.newPage(w, r, kind.Plural())

	p.Count = grid.Count(r.URL.Query().Get("count"))
	p.More = grid.More(p.Count)
	p.Cells = grid.Window(s.items(r, kind), p.Count)

	s.render(w, r, "grid", http.StatusOK, p)
}

func (s *Server) handleLightbox(w http.ResponseWriter, r *http.Request) {
	kind := sectionOf(r)
	items := s.items(r, kind)

	nav := navigator.New()
	preloads, err := nav.Open(items, r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	p := s.newPage(w, r, kind.Plural())
	p.Frame = nav.View()

	query := url.Values{}
	if count := r.URL.Query().Get("count"); count != "" {
		query.Set("count", count)
	}
	suffix := ""
	if len(query) > 0 {
		suffix = "?" + query.Encode()
	}

	p.CloseURL = "/" + kind.Plural() + suffix
	if len(items) > 1 {
		link := func(i int) string {
			return "/" + kind.Plural() + "/" + url.PathEscape(items[util.Wrap(i, len(items))].ID) + suffix
		}
		p.Prev = link(p.Frame.Index - 1)
		p.Next = link(p.Frame.Index + 1)
	}

	for _, pl := range preloads {
		p.Preloads = append(p.Preloads, preloadFor(items[pl.Index]))
	}

	s.render(w, r, "lightbox", http.StatusOK, p)
}

// preloadFor hints the browser to fetch a neighbour before it is opened.
func preloadFor(item *media.Item) preloadLink {
	switch {
	case item.Kind == media.Photo:
		return preloadLink{Rel: "preload", URL: item.URL, As: "image"}
	case item.IsEmbed():
		return preloadLink{Rel: "prefetch", URL: item.URL, As: "document"}
	default:
		return preloadLink{Rel: "preload", URL: item.URL, As: "video"}
	}
}

func (s *Server) handleContactPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "contact", http.StatusOK, s.newPage(w, r, "contact"))
}

func (s *Server) handleContactForm(w http.ResponseWriter, r *http.Request) {
	p := s.newPage(w, r, "contact")

	if err := r.ParseForm(); err != nil {
		p.Invalid = "Could not read the form."
		s.render(w, r, "contact", http.StatusBadRequest, p)
		return
	}

	m := s.model()
	m.Form = contact.Form{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}

	attempt, err := m.Submit()
	if err != nil {
		p.Form = m.Form
		p.Invalid = util.Capitalize(strings.TrimPrefix(err.Error(), contact.ErrInvalid.Error()+": "))
		s.render(w, r, "contact", http.StatusBadRequest, p)
		return
	}

	err = s.opts.Submitter.Submit(r.Context(), attempt.Form)
	if err != nil {
		log.Errorf("contact: %s", err)
	}
	reset, _ := m.Complete(attempt.Seq, err)

	p.Form = m.Form
	p.Status = m.Status
	p.Message = m.Message()
	p.ResetAfter = reset.Delay.String()

	s.render(w, r, "contact", http.StatusOK, p)
}

func (s *Server) model() *contact.Model {
	return &contact.Model{
		ResetDelay: s.opts.ResetDelay,
		Owner:      contact.FirstName(s.opts.Site),
		Fallback:   s.opts.Fallback,
	}
}
