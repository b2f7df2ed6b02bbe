package feed

import (
	"fmt"
	"net/url"
)

// Kind tags the response shape a backend returns
type Kind string

// enum of supported backend kinds
const (
	KindJSON     Kind = "json"     // rss-to-json conversion service, items are pre-parsed
	KindContents Kind = "contents" // relay wrapping the raw feed in a {"contents": "..."} envelope
	KindRaw      Kind = "raw"      // relay or direct fetch returning the feed xml as is
)

// Backend is a single fetch strategy. Endpoint is a prefix the query-escaped feed
// url is appended to; an empty endpoint on a raw backend fetches the feed directly.
type Backend struct {
	Name     string  `yaml:"name" json:"name" jsonschema:"required,description=Backend name used in logs"`
	Kind     Kind    `yaml:"kind" json:"kind" jsonschema:"required,enum=json,enum=contents,enum=raw,description=Response shape"`
	Endpoint string  `yaml:"endpoint" json:"endpoint" jsonschema:"description=URL prefix the escaped feed URL is appended to"`
	Rate     float64 `yaml:"rate" json:"rate" jsonschema:"default=0,description=Max requests per second (0 for unlimited)"`
}

// DefaultBackends returns the default fallback chain
func DefaultBackends() []Backend {
	return []Backend{
		{Name: "rss2json", Kind: KindJSON, Endpoint: "https://api.rss2json.com/v1/api.json?rss_url=", Rate: 1},
		{Name: "allorigins", Kind: KindContents, Endpoint: "https://api.allorigins.win/get?url="},
		{Name: "allorigins-raw", Kind: KindRaw, Endpoint: "https://api.allorigins.win/raw?url="},
		{Name: "direct", Kind: KindRaw},
	}
}

// Validate checks backend definition
func (b Backend) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("backend name is required")
	}
	switch b.Kind {
	case KindJSON, KindContents:
		if b.Endpoint == "" {
			return fmt.Errorf("backend %s: endpoint is required for kind %s", b.Name, b.Kind)
		}
	case KindRaw:
	default:
		return fmt.Errorf("backend %s: unknown kind %q", b.Name, b.Kind)
	}
	if b.Rate < 0 {
		return fmt.Errorf("backend %s: rate must be non-negative", b.Name)
	}
	return nil
}

// requestURL builds the url to request for the given feed
func (b Backend) requestURL(feedURL string) string {
	if b.Endpoint == "" {
		return feedURL
	}
	return b.Endpoint + url.QueryEscape(feedURL)
}
