package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/folio-cli/folio/filesystem"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/log"
	"github.com/folio-cli/folio/network"
	"github.com/folio-cli/folio/where"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Submitter delivers a validated form. Delivery is attempted once.
type Submitter interface {
	Submit(ctx context.Context, f Form) error
}

// Default returns the webhook submitter when an endpoint is configured,
// and the local inbox otherwise.
func Default() Submitter {
	if endpoint := viper.GetString(key.ContactEndpoint); endpoint != "" {
		return &Webhook{URL: endpoint, Client: network.Client}
	}
	return &Inbox{Path: where.Inbox()}
}

// Webhook POSTs the form as JSON. Any non-2xx answer is a failure.
type Webhook struct {
	URL    string
	Client *http.Client
}

func (w *Webhook) Submit(ctx context.Context, f Form) error {
	body, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	req, err := network.NewRequest(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: webhook answered %s", ErrSubmissionFailed, res.Status)
	}

	log.Infof("contact: delivered message from %s", f.Email)
	return nil
}

// Inbox appends each message as a JSON line to a local file.
type Inbox struct {
	Path string
}

// Message is one stored submission.
type Message struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
	Form
}

func (i *Inbox) Submit(_ context.Context, f Form) error {
	data, err := json.Marshal(Message{ID: uuid.NewString(), ReceivedAt: time.Now().UTC(), Form: f})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	if err := filesystem.AppendLine(i.Path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	log.Infof("contact: stored message from %s in %s", f.Email, i.Path)
	return nil
}
