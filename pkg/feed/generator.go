package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/newsnet/pkg/domain"
)

// Generator renders collected articles and the feed catalog back as RSS and OPML
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// GenerateRSS creates an RSS 2.0 feed from articles, keywords become categories
func (g *Generator) GenerateRSS(articles []domain.Article, title string) (string, error) {
	if title == "" {
		title = "newsnet - all articles"
	}

	rssItems := make([]*RSSItem, 0, len(articles))
	for _, a := range articles {
		if a.Placeholder {
			continue
		}
		rssItems = append(rssItems, &RSSItem{
			Title:       a.Title,
			Link:        a.Link,
			GUID:        a.Link,
			Description: a.Summary,
			Author:      a.Source,
			PubDate:     a.Published.Format(time.RFC1123Z),
			Categories:  a.Keywords,
		})
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("%d articles with extracted keywords", len(rssItems)),
			AtomLink:      &AtomLink{Href: g.baseURL + "/rss", Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// GenerateOPML creates an OPML subscription list from feed descriptors
func (g *Generator) GenerateOPML(feeds []domain.FeedDescriptor) (string, error) {
	type outline struct {
		XMLName  xml.Name `xml:"outline"`
		Text     string   `xml:"text,attr"`
		Title    string   `xml:"title,attr"`
		Type     string   `xml:"type,attr"`
		XMLUrl   string   `xml:"xmlUrl,attr"`
		Category string   `xml:"category,attr,omitempty"`
		Language string   `xml:"language,attr,omitempty"`
	}

	type body struct {
		XMLName  xml.Name  `xml:"body"`
		Outlines []outline `xml:"outline"`
	}

	type head struct {
		XMLName     xml.Name `xml:"head"`
		Title       string   `xml:"title"`
		DateCreated string   `xml:"dateCreated"`
	}

	type opml struct {
		XMLName xml.Name `xml:"opml"`
		Version string   `xml:"version,attr"`
		Head    head     `xml:"head"`
		Body    body     `xml:"body"`
	}

	outlines := make([]outline, 0, len(feeds))
	for _, f := range feeds {
		outlines = append(outlines, outline{
			Text:     f.Source,
			Title:    f.Source,
			Type:     "rss",
			XMLUrl:   f.URL,
			Category: f.Category,
			Language: f.Language,
		})
	}

	doc := opml{
		Version: "2.0",
		Head:    head{Title: "newsnet feed catalog", DateCreated: g.now().Format(time.RFC1123Z)},
		Body:    body{Outlines: outlines},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}
	return xml.Header + string(output), nil
}
