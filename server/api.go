package server

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/folio-cli/folio/contact"
	"github.com/folio-cli/folio/log"
)

const maxBody = 64 << 10

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type apiResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// handleContactAPI accepts {"name","email","message"} and delivers it once.
func (s *Server) handleContactAPI(w http.ResponseWriter, r *http.Request) {
	var form contact.Form
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResult{Error: "invalid json"})
		return
	}

	if err := form.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResult{Error: err.Error()})
		return
	}

	if err := s.opts.Submitter.Submit(r.Context(), form.Trimmed()); err != nil {
		log.Errorf("contact: %s", err)
		writeJSON(w, http.StatusBadGateway, apiResult{Error: contact.ErrSubmissionFailed.Error()})
		return
	}

	writeJSON(w, http.StatusOK, apiResult{OK: true})
}

func bearer(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return token
	}
	return r.URL.Query().Get("secret")
}

// handleRevalidate drops a cached content tag so the next request refetches it.
func (s *Server) handleRevalidate(w http.ResponseWriter, r *http.Request) {
	secret, err := s.opts.Secret()
	if err != nil {
		log.Errorf("revalidate: %s", err)
	}
	if secret == "" {
		writeJSON(w, http.StatusForbidden, apiResult{Error: "revalidation is disabled"})
		return
	}
	if subtle.ConstantTimeCompare([]byte(bearer(r)), []byte(secret)) != 1 {
		writeJSON(w, http.StatusUnauthorized, apiResult{Error: "invalid secret"})
		return
	}

	tag := r.URL.Query().Get("tag")
	if err := s.opts.Content.Invalidate(tag); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResult{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Revalidated bool   `json:"revalidated"`
		Tag         string `json:"tag"`
		Now         int64  `json:"now"`
	}{true, tag, time.Now().UnixMilli()})
}

