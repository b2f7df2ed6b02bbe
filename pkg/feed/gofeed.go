package feed

import (
	"bytes"

	"github.com/go-pkgz/lgr"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsnet/pkg/domain"
)

// GofeedParser parses feeds with the strict gofeed parser
type GofeedParser struct{}

// ParseXML parses rss, atom or json feed content. Parse errors are logged and
// produce no items.
func (g GofeedParser) ParseXML(data []byte) []domain.RawItem {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		lgr.Printf("[DEBUG] gofeed can't parse feed content: %v", err)
		return nil
	}

	items := make([]domain.RawItem, 0, min(len(parsed.Items), MaxItems))
	for _, it := range parsed.Items {
		if len(items) == MaxItems {
			break
		}
		raw := domain.RawItem{
			Title:       it.Title,
			Link:        it.Link,
			GUID:        it.GUID,
			Description: it.Description,
			Categories:  it.Categories,
		}
		if raw.Description == "" {
			raw.Description = it.Content
		}
		switch {
		case it.Published != "":
			raw.PublishedRaw = it.Published
		case it.Updated != "":
			raw.PublishedRaw = it.Updated
		}
		items = append(items, raw)
	}
	return items
}

// NewXMLParser returns the xml parser by name, "gofeed" or the tolerant scanner for anything else
func NewXMLParser(name string) XMLParser {
	if name == "gofeed" {
		return GofeedParser{}
	}
	return Scanner{}
}
