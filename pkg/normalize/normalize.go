// Package normalize turns raw feed items into articles: cleans titles and summaries,
// parses publish dates and canonicalizes links.
package normalize

import (
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/araddon/dateparse"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/umputun/newsnet/pkg/domain"
)

const (
	maxTitleLen   = 200
	maxSummaryLen = 200
	minSentence   = 10 // sentences of this length or shorter are skipped in summaries
	summarySents  = 2
	ellipsis      = "..."
)

var (
	reSpaces    = regexp.MustCompile(`\s+`)
	reSentences = regexp.MustCompile(`[.!?。]`)
)

// IDSource hands out article ids, shared by all normalizers of the process
type IDSource struct {
	next atomic.Int64
}

// NewIDSource makes an id source starting at 1
func NewIDSource() *IDSource {
	s := &IDSource{}
	s.next.Store(1)
	return s
}

// Next returns the next id
func (s *IDSource) Next() int64 {
	return s.next.Add(1) - 1
}

// Restore makes sure the next id is greater than maxID, never moves the counter back
func (s *IDSource) Restore(maxID int64) {
	for {
		cur := s.next.Load()
		if cur > maxID || s.next.CompareAndSwap(cur, maxID+1) {
			return
		}
	}
}

// Normalizer converts raw items to articles
type Normalizer struct {
	ids    *IDSource
	now    func() time.Time
	policy *bluemonday.Policy
}

// New makes a normalizer with the given id source and clock, time.Now used if clock is nil
func New(ids *IDSource, clock func() time.Time) *Normalizer {
	if clock == nil {
		clock = time.Now
	}
	policy := bluemonday.StrictPolicy()
	policy.AddSpaceWhenStrippingTag(true)
	return &Normalizer{ids: ids, now: clock, policy: policy}
}

// Normalize makes an article from raw item of the given feed, keywords are not set here
func (n *Normalizer) Normalize(raw domain.RawItem, fd domain.FeedDescriptor) domain.Article {
	summary := n.Summary(raw.Description)
	if raw.Summary != "" {
		summary = truncate(n.CleanText(raw.Summary), maxSummaryLen)
	}
	return domain.Article{
		ID:        n.ids.Next(),
		Title:     n.Title(raw.Title),
		Link:      CanonicalLink(raw.Link),
		Published: n.Date(raw.PublishedRaw),
		Source:    fd.Source,
		Summary:   summary,
		Keywords:  []string{},
		Category:  fd.Category,
		Language:  fd.Language,
	}
}

// CleanText strips tags, decodes entities and collapses whitespace
func (n *Normalizer) CleanText(s string) string {
	// entity-encoded markup is decoded before stripping, sanitizer output is escaped again
	s = n.policy.Sanitize(html.UnescapeString(s))
	s = html.UnescapeString(s)
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// Title returns the cleaned title truncated to 200 characters
func (n *Normalizer) Title(s string) string {
	return truncate(n.CleanText(s), maxTitleLen)
}

// Date parses a feed date, current time is used for empty or unparseable values.
// Dates without zone are treated as UTC.
func (n *Normalizer) Date(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return n.now()
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return n.now()
	}
	return t
}

// Summary keeps the first two meaningful sentences of the cleaned description,
// truncated to 200 characters and followed by an ellipsis. Empty if no sentence qualifies.
func (n *Normalizer) Summary(s string) string {
	text := n.CleanText(s)
	var sents []string
	for _, part := range reSentences.Split(text, -1) {
		part = strings.TrimSpace(part)
		if len([]rune(part)) <= minSentence {
			continue
		}
		sents = append(sents, part)
		if len(sents) == summarySents {
			break
		}
	}
	if len(sents) == 0 {
		return ""
	}
	return truncate(strings.Join(sents, ". "), maxSummaryLen) + ellipsis
}

// truncate cuts s to max runes
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max]))
}
