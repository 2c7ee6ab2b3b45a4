// Package media defines the portfolio items rendered by every shell.
package media

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/mo"
)

// Kind separates the two portfolio sections.
type Kind string

const (
	Video Kind = "video"
	Photo Kind = "photo"
)

// Kinds returns every kind in display order.
func Kinds() []Kind {
	return []Kind{Video, Photo}
}

// Plural returns the section name, e.g. "videos".
func (k Kind) Plural() string {
	return string(k) + "s"
}

// ParseKind accepts the singular or plural section name.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")) {
	case Video:
		return Video, nil
	case Photo:
		return Photo, nil
	default:
		return "", fmt.Errorf("unknown media kind %q", s)
	}
}

// Image is an extra still attached to a video entry.
type Image struct {
	URL string `json:"url" jsonschema:"description=Image URL."`
	Alt string `json:"alt,omitempty" jsonschema:"description=Alternative text."`
}

// Item is a single video or photo as returned by a content source.
// Items are never mutated after a source returns them.
type Item struct {
	ID    string `json:"id" jsonschema:"description=Opaque identifier, unique within its list."`
	Kind  Kind   `json:"kind" jsonschema:"enum=video,enum=photo"`
	Title string `json:"title"`
	// URL is the full video (often a YouTube or Vimeo player) or the image itself.
	URL     string            `json:"url" jsonschema:"description=Display URL: the full video or the image."`
	Caption mo.Option[string] `json:"caption" jsonschema:"description=Alt text or caption."`
	Slug    string            `json:"slug,omitempty"`
	Order   float64           `json:"order" jsonschema:"description=User-assigned sequence number."`

	Thumbnail   string  `json:"thumbnail,omitempty"`
	Preview     string  `json:"preview,omitempty" jsonschema:"description=Short looping clip shown in the grid."`
	Byline      string  `json:"byline,omitempty"`
	Description string  `json:"description,omitempty"`
	Images      []Image `json:"images,omitempty"`
}

func (i *Item) String() string {
	if i.Title != "" {
		return i.Title
	}
	return i.ID
}

// Alt returns the caption, or the title when there is none.
func (i *Item) Alt() string {
	return i.Caption.OrElse(i.Title)
}

// Cover returns the best still for grid cells: the thumbnail for videos,
// the image itself for photos.
func (i *Item) Cover() string {
	if i.Kind == Photo {
		return i.URL
	}
	return i.Thumbnail
}

// IsEmbed reports whether URL points at a hosted video player page
// rather than a media file.
func (i *Item) IsEmbed() bool {
	return IsEmbedURL(i.URL)
}

// IsEmbedURL reports whether raw is a YouTube or Vimeo player URL.
func IsEmbedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtube.com", "youtube-nocookie.com", "youtu.be", "player.vimeo.com", "vimeo.com":
		return true
	default:
		return false
	}
}
