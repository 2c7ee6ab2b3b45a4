// Package preload fetches lightbox media ahead of display.
package preload

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/folio-cli/folio/config"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/log"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/navigator"
	"github.com/folio-cli/folio/network"
	_ "golang.org/x/image/webp"
)

// ErrMediaLoadFailed wraps every preload failure.
var ErrMediaLoadFailed = errors.New("media load failed")

// probeBytes is how much of a media file is requested to confirm it is reachable.
const probeBytes = 64 << 10

type Status int

const (
	Ready Status = iota + 1
	Failed
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type Result struct {
	URL    string
	Status Status
	Err    error
}

// Loader loads a media URL and reports whether it is ready to display.
type Loader interface {
	Preload(ctx context.Context, url string) Result
}

// HTTPLoader fetches media over HTTP. Images must decode, video files must
// answer a ranged request and player pages only need a successful status.
type HTTPLoader struct {
	Client  *http.Client
	Timeout time.Duration

	// IsEmbed reports whether a URL is a player page. Defaults to media.IsEmbedURL.
	IsEmbed func(url string) bool
}

// NewHTTPLoader returns a loader using the shared client and the configured timeout.
func NewHTTPLoader() *HTTPLoader {
	return &HTTPLoader{
		Client:  network.Client,
		Timeout: config.Seconds(key.PreloadTimeout),
		IsEmbed: media.IsEmbedURL,
	}
}

func (l *HTTPLoader) Preload(ctx context.Context, url string) Result {
	if err := l.fetch(ctx, url); err != nil {
		log.Warnf("preload %s: %s", url, err)
		return Result{URL: url, Status: Failed, Err: fmt.Errorf("%w: %s: %w", ErrMediaLoadFailed, url, err)}
	}
	return Result{URL: url, Status: Ready}
}

func (l *HTTPLoader) fetch(ctx context.Context, url string) error {
	if url == "" {
		return errors.New("empty url")
	}

	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	isEmbed := l.IsEmbed
	if isEmbed == nil {
		isEmbed = media.IsEmbedURL
	}
	if isEmbed(url) {
		res, err := l.get(ctx, url, false)
		if err != nil {
			return err
		}
		return res.Body.Close()
	}

	res, err := l.get(ctx, url, true)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	mediaType, _, _ := mime.ParseMediaType(res.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "image/") {
		if _, err := io.CopyN(io.Discard, res.Body, probeBytes); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}

	_, _, err = image.DecodeConfig(res.Body)
	if truncated(err) && res.StatusCode == http.StatusPartialContent {
		// metadata segments pushed the image header past the probed range
		full, getErr := l.get(ctx, url, false)
		if getErr != nil {
			return getErr
		}
		defer full.Body.Close()
		_, _, err = image.DecodeConfig(full.Body)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", mediaType, err)
	}

	return nil
}

// get requests url, asking only for the first probeBytes when ranged is set.
// Non-success responses are closed and returned as errors.
func (l *HTTPLoader) get(ctx context.Context, url string, ranged bool) (*http.Response, error) {
	req, err := network.NewRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if ranged {
		req.Header.Set("Range", fmt.Sprintf("bytes=0-%d", probeBytes-1))
	}

	res, err := l.Client.Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusPartialContent {
		_ = res.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}

	return res, nil
}

func truncated(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}

// Run performs p with l and returns the resolution for the navigator.
func Run(ctx context.Context, l Loader, p navigator.Preload) navigator.Resolution {
	return p.Resolve(l.Preload(ctx, p.URL).Err)
}
