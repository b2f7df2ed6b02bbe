package feed

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/umputun/newsnet/pkg/domain"
)

// MaxItems is the max number of items taken from a single feed
const MaxItems = 15

// XMLParser turns raw RSS/Atom content into raw items. Implementations are best effort
// and never fail, unparseable content yields no items.
type XMLParser interface {
	ParseXML(data []byte) []domain.RawItem
}

// rss2json response
type jsonFeed struct {
	Status string `json:"status"`
	Items  []struct {
		Title       string   `json:"title"`
		Link        string   `json:"link"`
		GUID        string   `json:"guid"`
		PubDate     string   `json:"pubDate"`
		Description string   `json:"description"`
		Content     string   `json:"content"`
		Categories  []string `json:"categories"`
	} `json:"items"`
}

// allorigins-style envelope
type contentsEnvelope struct {
	Contents string `json:"contents"`
}

// DecodePayload converts a backend response body into raw items for the given source.
// The returned error is set only for undecodable payloads; an empty result is not an error.
func DecodePayload(kind Kind, body []byte, xp XMLParser, source string) ([]domain.RawItem, error) {
	switch kind {
	case KindJSON:
		var jf jsonFeed
		if err := json.Unmarshal(body, &jf); err != nil {
			return nil, fmt.Errorf("decode json feed: %w", err)
		}
		if jf.Status != "ok" {
			return nil, nil
		}
		items := make([]domain.RawItem, 0, len(jf.Items))
		for _, it := range jf.Items {
			desc := it.Description
			if desc == "" {
				desc = it.Content
			}
			items = append(items, domain.RawItem{
				Title:        it.Title,
				Link:         strings.TrimSpace(it.Link),
				GUID:         strings.TrimSpace(it.GUID),
				PublishedRaw: it.PubDate,
				Description:  desc,
				Categories:   it.Categories,
			})
		}
		return finalize(items, source), nil
	case KindContents:
		var env contentsEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decode contents envelope: %w", err)
		}
		return finalize(xp.ParseXML([]byte(env.Contents)), source), nil
	case KindRaw:
		return finalize(xp.ParseXML(body), source), nil
	default:
		return nil, fmt.Errorf("unknown backend kind %q", kind)
	}
}

// finalize applies the common item rules: cap at MaxItems, drop untitled items,
// use a url-like guid as a missing link, and keep a link-less item only for the
// first position, under a synthetic link.
func finalize(items []domain.RawItem, source string) []domain.RawItem {
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	res := make([]domain.RawItem, 0, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.Title) == "" {
			continue
		}
		if it.Link == "" && looksLikeURL(it.GUID) {
			it.Link = it.GUID
		}
		if it.Link == "" {
			if i > 0 {
				continue
			}
			it.Link = PlaceholderLink(source, i)
		}
		res = append(res, it)
	}
	return res
}

// PlaceholderLink makes a synthetic link for items without any real identity
func PlaceholderLink(source string, idx int) string {
	return "placeholder://" + strings.ReplaceAll(source, " ", "_") + "/" + strconv.Itoa(idx)
}

func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
