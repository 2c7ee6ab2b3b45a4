package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/folio-cli/folio/auth"
	"github.com/folio-cli/folio/key"
	"github.com/folio-cli/folio/log"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/network"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// SanityName is the name the Sanity backend is selected by.
const SanityName = "sanity"

const videosQuery = `*[_type == "video"] | order(order asc) {
  _id,
  title,
  slug,
  "previewVideoUrl": previewVideo.asset->url,
  "fullVideoUrl": coalesce(fullVideoUrl, fullVideo.asset->url),
  "thumbnailUrl": thumbnail.asset->url,
  byline,
  description,
  "images": images[]{ "url": asset->url, alt },
  order
}`

const photosQuery = `*[_type == "photo"] | order(order asc) {
  _id,
  title,
  slug,
  "imageUrl": image.asset->url,
  alt,
  order
}`

// Sanity queries the Sanity HTTP query API with GROQ.
type Sanity struct {
	Project    string
	Dataset    string
	APIVersion string
	UseCDN     bool
	// Token is sent as a bearer token when set, for private datasets.
	Token string
	// BaseURL overrides the computed API host.
	BaseURL string
	Client  *http.Client
}

// NewSanity builds a source from configuration and the keyring.
func NewSanity() (*Sanity, error) {
	project := viper.GetString(key.SanityProject)
	if project == "" {
		return nil, fmt.Errorf("%s is not set", key.SanityProject)
	}

	token, err := auth.Get(auth.SanityToken)
	if err != nil {
		log.Warnf("sanity token unavailable: %s", err)
	}

	return &Sanity{
		Project:    project,
		Dataset:    viper.GetString(key.SanityDataset),
		APIVersion: viper.GetString(key.SanityAPIVersion),
		UseCDN:     viper.GetBool(key.SanityUseCDN),
		Token:      token,
		Client:     network.Client,
	}, nil
}

func (s *Sanity) Name() string {
	return SanityName
}

// Endpoint returns the query URL for the configured project and dataset.
func (s *Sanity) Endpoint() string {
	base := s.BaseURL
	if base == "" {
		api := "api"
		// the CDN never serves authenticated requests
		if s.UseCDN && s.Token == "" {
			api = "apicdn"
		}
		base = fmt.Sprintf("https://%s.%s.sanity.io", s.Project, api)
	}
	return fmt.Sprintf("%s/v%s/data/query/%s", strings.TrimSuffix(base, "/"), strings.TrimPrefix(s.APIVersion, "v"), s.Dataset)
}

type sanitySlug struct {
	Current string `json:"current"`
}

type sanityImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type sanityDoc struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Slug        sanitySlug    `json:"slug"`
	Order       float64       `json:"order"`
	Preview     string        `json:"previewVideoUrl"`
	Full        string        `json:"fullVideoUrl"`
	Thumbnail   string        `json:"thumbnailUrl"`
	Byline      string        `json:"byline"`
	Description string        `json:"description"`
	Images      []sanityImage `json:"images"`
	Image       string        `json:"imageUrl"`
	Alt         string        `json:"alt"`
}

func (d *sanityDoc) item(kind media.Kind) *media.Item {
	item := &media.Item{
		ID:    d.ID,
		Kind:  kind,
		Title: d.Title,
		Slug:  d.Slug.Current,
		Order: d.Order,
	}

	switch kind {
	case media.Video:
		item.URL = d.Full
		item.Preview = d.Preview
		item.Thumbnail = d.Thumbnail
		item.Byline = d.Byline
		item.Description = d.Description
		item.Images = lo.FilterMap(d.Images, func(img sanityImage, _ int) (media.Image, bool) {
			return media.Image{URL: img.URL, Alt: img.Alt}, img.URL != ""
		})
	case media.Photo:
		item.URL = d.Image
		if d.Alt != "" {
			item.Caption = mo.Some(d.Alt)
		}
	}

	return item
}

func (s *Sanity) FetchAll(ctx context.Context, kind media.Kind) ([]*media.Item, error) {
	query := videosQuery
	if kind == media.Photo {
		query = photosQuery
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("perspective", "published")

	req, err := network.NewRequest(ctx, http.MethodGet, s.Endpoint()+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fetchErr(s.Name(), kind, err)
	}
	req.Header.Set("Accept", "application/json")
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	res, err := s.Client.Do(req)
	if err != nil {
		return nil, fetchErr(s.Name(), kind, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fetchErr(s.Name(), kind, fmt.Errorf("unexpected status %s", res.Status))
	}

	var body struct {
		Result []*sanityDoc `json:"result"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fetchErr(s.Name(), kind, fmt.Errorf("decode: %w", err))
	}

	items := lo.FilterMap(body.Result, func(d *sanityDoc, _ int) (*media.Item, bool) {
		if d == nil || d.ID == "" {
			return nil, false
		}
		return d.item(kind), true
	})

	log.Debugf("sanity: fetched %d %s", len(items), kind.Plural())
	return normalize(items, kind), nil
}
