package nasa

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// OriginalMarker tags the href of an asset's original-resolution file.
	OriginalMarker = "~orig"

	// DefaultPhotographer credits images whose metadata names nobody.
	DefaultPhotographer = "Uncredited"
)

var (
	// ErrEmptyQuery is returned by Search for an empty query string.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrEmptyAssetID is returned by Asset for an empty asset id.
	ErrEmptyAssetID = errors.New("asset id is empty")

	// ErrMalformedResponse marks a payload that lacks fields the client needs.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNoOriginal means the asset manifest lists no original-resolution file.
	ErrNoOriginal = errors.New("no original-resolution image in asset")
)

// APIError reports a non-2xx answer from the image API.
type APIError struct {
	Path       string
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api %s returned status %d", e.Path, e.StatusCode)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// SearchResponse mirrors the payload returned by /search.
type SearchResponse struct {
	Collection *SearchCollection `json:"collection"`
}

// SearchCollection holds the ordered result items.
type SearchCollection struct {
	Items []SearchItem `json:"items"`
}

// SearchItem is one search hit. Data and Links are lists in the API schema but
// the first element is the one that describes the image.
type SearchItem struct {
	Href  string     `json:"href"`
	Data  []ItemData `json:"data"`
	Links []ItemLink `json:"links"`
}

// ItemData is the descriptive metadata of a search hit.
type ItemData struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Photographer string `json:"photographer"`
	NASAID       string `json:"nasa_id"`
}

// ItemLink points at a rendition of a search hit, usually the thumbnail.
type ItemLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Render string `json:"render"`
}

// AssetResponse mirrors the payload returned by /asset/{id}.
type AssetResponse struct {
	Collection *AssetCollection `json:"collection"`
}

// AssetCollection lists every rendition of one asset.
type AssetCollection struct {
	Items []AssetItem `json:"items"`
}

// AssetItem is a single rendition.
type AssetItem struct {
	Href string `json:"href"`
}

// ImageSummary is the per-result entity shown in the search grid.
type ImageSummary struct {
	Title        string
	Description  string
	ThumbnailURL string
	Photographer string
	AssetID      string
}

// Summaries maps every search hit, in order, to an ImageSummary.
func (r SearchResponse) Summaries() ([]ImageSummary, error) {
	if r.Collection == nil {
		return nil, fmt.Errorf("%w: missing collection", ErrMalformedResponse)
	}
	out := make([]ImageSummary, 0, len(r.Collection.Items))
	for i, item := range r.Collection.Items {
		summary, err := item.Summary()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, summary)
	}
	return out, nil
}

// Summary builds the ImageSummary for one hit.
func (it SearchItem) Summary() (ImageSummary, error) {
	if len(it.Data) == 0 {
		return ImageSummary{}, fmt.Errorf("%w: item has no data", ErrMalformedResponse)
	}
	if len(it.Links) == 0 {
		return ImageSummary{}, fmt.Errorf("%w: item has no links", ErrMalformedResponse)
	}
	data := it.Data[0]
	photographer := data.Photographer
	if photographer == "" {
		photographer = DefaultPhotographer
	}
	return ImageSummary{
		Title:        data.Title,
		Description:  data.Description,
		ThumbnailURL: it.Links[0].Href,
		Photographer: photographer,
		AssetID:      data.NASAID,
	}, nil
}

// Original returns the secure URL of the first original-resolution rendition.
func (r AssetResponse) Original() (string, error) {
	if r.Collection == nil {
		return "", fmt.Errorf("%w: missing collection", ErrMalformedResponse)
	}
	for _, item := range r.Collection.Items {
		if strings.Contains(item.Href, OriginalMarker) {
			return SecureURL(item.Href), nil
		}
	}
	return "", ErrNoOriginal
}

// SecureURL rewrites an http:// prefix to https://.
func SecureURL(href string) string {
	if rest, ok := strings.CutPrefix(href, "http://"); ok {
		return "https://" + rest
	}
	return href
}
