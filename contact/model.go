package contact

import (
	"fmt"
	"strings"
	"time"

	"github.com/folio-cli/folio/config"
	"github.com/folio-cli/folio/key"
	"github.com/spf13/viper"
)

type Status int

const (
	Idle Status = iota
	Submitting
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// Attempt is a submission handed to a Submitter.
type Attempt struct {
	Seq  uint64
	Form Form
}

// Reset asks the caller to call Model.Reset(Seq) after Delay.
type Reset struct {
	Seq   uint64
	Delay time.Duration
}

// Model tracks the form and its status:
// idle, submitting, then success or error, then idle again after ResetDelay.
type Model struct {
	Form       Form
	Status     Status
	ResetDelay time.Duration
	// Owner and Fallback fill in the status messages.
	Owner    string
	Fallback string

	seq uint64
}

// NewModel returns an idle model configured from settings.
func NewModel() *Model {
	return &Model{
		ResetDelay: config.Seconds(key.ContactResetDelay),
		Owner:      FirstName(viper.GetString(key.ServerSite)),
		Fallback:   viper.GetString(key.ContactFallback),
	}
}

// FirstName returns the first word of a name.
func FirstName(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return s
}

// Submit validates the form and moves to submitting.
// It is rejected while a submission is in progress.
func (m *Model) Submit() (Attempt, error) {
	if m.Status == Submitting {
		return Attempt{}, ErrBusy
	}
	if err := m.Form.Validate(); err != nil {
		return Attempt{}, err
	}

	m.seq++
	m.Status = Submitting
	return Attempt{Seq: m.seq, Form: m.Form.Trimmed()}, nil
}

// Complete records the outcome of attempt seq.
// Success clears the form; failure keeps the input for a retry.
func (m *Model) Complete(seq uint64, err error) (Reset, bool) {
	if seq != m.seq || m.Status != Submitting {
		return Reset{}, false
	}

	if err != nil {
		m.Status = Error
	} else {
		m.Status = Success
		m.Form = Form{}
	}
	return Reset{Seq: seq, Delay: m.ResetDelay}, true
}

// Reset returns to idle if seq is still the latest submission.
func (m *Model) Reset(seq uint64) bool {
	if seq != m.seq || (m.Status != Success && m.Status != Error) {
		return false
	}
	m.Status = Idle
	return true
}

// Message is the status line to show, empty when idle.
func (m *Model) Message() string {
	switch m.Status {
	case Submitting:
		return "Sending..."
	case Success:
		return fmt.Sprintf("Message sent successfully! %s will get back to you soon.", m.Owner)
	case Error:
		return fmt.Sprintf("Something went wrong. Please try again or email directly at %s", m.Fallback)
	default:
		return ""
	}
}
