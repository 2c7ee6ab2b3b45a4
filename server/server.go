// Package server renders the portfolio as web pages.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/folio-cli/folio/auth"
	"github.com/folio-cli/folio/config"
	"github.com/folio-cli/folio/contact"
	"github.com/folio-cli/folio/content"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/log"
	"github.com/spf13/viper"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Content is a source whose tags can be revalidated.
type Content interface {
	content.Source
	Invalidate(tag string) error
}

// Options configures a Server. Zero values are filled from settings.
type Options struct {
	Content    Content
	Submitter  contact.Submitter
	Site       string
	Revalidate time.Duration
	ResetDelay time.Duration
	Fallback   string
	// Secret returns the revalidation secret. An empty secret disables the endpoint.
	Secret func() (string, error)
}

type Server struct {
	opts Options
	tpl  *template.Template
}

func New(opts Options) *Server {
	if opts.Submitter == nil {
		opts.Submitter = contact.Default()
	}
	if opts.Site == "" {
		opts.Site = viper.GetString(key.ServerSite)
	}
	if opts.Revalidate <= 0 {
		opts.Revalidate = config.Seconds(key.ContentRevalidate)
	}
	if opts.ResetDelay <= 0 {
		opts.ResetDelay = config.Seconds(key.ContactResetDelay)
	}
	if opts.Fallback == "" {
		opts.Fallback = viper.GetString(key.ContactFallback)
	}
	if opts.Secret == nil {
		opts.Secret = func() (string, error) { return auth.Get(auth.RevalidateSecret) }
	}

	tpl := template.Must(template.New("pages").Funcs(template.FuncMap{
		"inc":   func(i int) int { return i + 1 },
		"delay": func(i int) string { return fmt.Sprintf("%.2fs", 0.3+float64(i)*0.05) },
	}).ParseFS(templatesFS, "templates/*.html"))

	return &Server{opts: opts, tpl: tpl}
}

// Handler returns the routed handler with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/videos", http.StatusFound)
	})
	mux.HandleFunc("GET /videos", s.handleGrid)
	mux.HandleFunc("GET /photos", s.handleGrid)
	mux.HandleFunc("GET /videos/{id}", s.handleLightbox)
	mux.HandleFunc("GET /photos/{id}", s.handleLightbox)
	mux.HandleFunc("GET /contact", s.handleContactPage)
	mux.HandleFunc("POST /contact", s.handleContactForm)
	mux.HandleFunc("POST /api/contact", s.handleContactAPI)
	mux.HandleFunc("POST /api/revalidate", s.handleRevalidate)
	mux.Handle("GET /health", HealthHandler())
	return logRequests(mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
// With h2c set, HTTP/2 is also accepted without TLS.
func (s *Server) ListenAndServe(ctx context.Context, addr string, useH2C bool) error {
	handler := s.Handler()
	if useH2C {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Infof("server listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %s", err)
		_ = srv.Close()
		return err
	}
	log.Info("server stopped")
	return nil
}
