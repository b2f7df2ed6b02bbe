package feed

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/umputun/newsnet/pkg/domain"
)

// Scanner is a tolerant regexp-based RSS 2.0 / Atom scanner. It doesn't validate
// the document and works on feeds a strict xml decoder would reject.
type Scanner struct{}

var (
	reItem   = regexp.MustCompile(`(?is)<item\b[^>]*>(.*?)</item>`)
	reEntry  = regexp.MustCompile(`(?is)<entry\b[^>]*>(.*?)</entry>`)
	reCDATA  = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)
	reLinkEl = regexp.MustCompile(`(?is)<link\b[^>]*/?>`)
	reHref   = regexp.MustCompile(`(?is)\bhref\s*=\s*["']([^"']+)["']`)
	reRel    = regexp.MustCompile(`(?is)\brel\s*=\s*["']([^"']+)["']`)
	reTerm   = regexp.MustCompile(`(?is)<category\b[^>]*\bterm\s*=\s*["']([^"']+)["'][^>]*/?>`)
)

// tag regexps are built once per element name
var tagRes = map[string]*regexp.Regexp{}

func init() {
	for _, name := range []string{"title", "link", "guid", "id", "pubDate", "published", "updated", "dc:date",
		"description", "summary", "content", "content:encoded", "category"} {
		tagRes[name] = regexp.MustCompile(`(?is)<` + regexp.QuoteMeta(name) + `(?:\s[^>]*)?>(.*?)</` + regexp.QuoteMeta(name) + `>`)
	}
}

// ParseXML extracts raw items from rss <item> or atom <entry> blocks
func (s Scanner) ParseXML(data []byte) []domain.RawItem {
	text := string(data)
	blocks := reItem.FindAllStringSubmatch(text, MaxItems)
	if len(blocks) == 0 {
		blocks = reEntry.FindAllStringSubmatch(text, MaxItems)
	}

	items := make([]domain.RawItem, 0, len(blocks))
	for _, b := range blocks {
		block := b[1]
		item := domain.RawItem{
			Title:        tagText(block, "title"),
			Link:         scanLink(block),
			GUID:         first(tagText(block, "guid"), tagText(block, "id")),
			PublishedRaw: first(tagText(block, "pubDate"), tagText(block, "published"), tagText(block, "updated"), tagText(block, "dc:date")),
			Description:  first(tagText(block, "description"), tagText(block, "summary"), tagText(block, "content:encoded"), tagText(block, "content")),
			Categories:   scanCategories(block),
		}
		items = append(items, item)
	}
	return items
}

// tagText returns decoded text of the first element with given name, CDATA unwrapped
func tagText(block, name string) string {
	m := tagRes[name].FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	return cleanValue(m[1])
}

func cleanValue(v string) string {
	v = reCDATA.ReplaceAllString(v, "$1")
	return strings.TrimSpace(html.UnescapeString(v))
}

// scanLink returns the rss text link, or the atom href preferring rel="alternate"
func scanLink(block string) string {
	if l := tagText(block, "link"); l != "" && !strings.Contains(l, "<") {
		return l
	}
	var fallback string
	for _, el := range reLinkEl.FindAllString(block, -1) {
		href := reHref.FindStringSubmatch(el)
		if href == nil {
			continue
		}
		rel := reRel.FindStringSubmatch(el)
		if rel == nil || strings.EqualFold(rel[1], "alternate") {
			return html.UnescapeString(strings.TrimSpace(href[1]))
		}
		if fallback == "" && !strings.EqualFold(rel[1], "self") {
			fallback = html.UnescapeString(strings.TrimSpace(href[1]))
		}
	}
	return fallback
}

func scanCategories(block string) []string {
	var res []string
	for _, m := range tagRes["category"].FindAllStringSubmatch(block, -1) {
		if c := cleanValue(m[1]); c != "" {
			res = append(res, c)
		}
	}
	for _, m := range reTerm.FindAllStringSubmatch(block, -1) {
		if c := strings.TrimSpace(html.UnescapeString(m[1])); c != "" {
			res = append(res, c)
		}
	}
	return res
}

func first(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
