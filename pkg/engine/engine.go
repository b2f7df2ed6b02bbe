// Package engine runs collection cycles over the feed catalog and serves queries
// over the resulting article set.
//
// A cycle fetches feeds concurrently, normalizes and deduplicates the items, extracts
// keywords, merges favorites from the previous set and persists the result to the cache.
// The user-visible set is replaced atomically at the end of each cycle.
package engine

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsnet/pkg/cache"
	"github.com/umputun/newsnet/pkg/catalog"
	"github.com/umputun/newsnet/pkg/domain"
	"github.com/umputun/newsnet/pkg/feed"
	"github.com/umputun/newsnet/pkg/keyword"
	"github.com/umputun/newsnet/pkg/normalize"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer

// Fetcher gets raw items of a single feed, never fails
type Fetcher interface {
	Fetch(ctx context.Context, fd domain.FeedDescriptor) feed.Result
}

// Summarizer makes an article summary, errors fall back to heuristic summaries
type Summarizer interface {
	Summarize(ctx context.Context, title, text, source string) (string, error)
}

// Params defines engine dependencies and settings
type Params struct {
	Fetcher     Fetcher                 // feed fetcher, required
	Cache       *cache.Cache            // article cache, required
	Summarizer  Summarizer              // optional llm summarizer
	Feeds       []domain.FeedDescriptor // feed catalog, catalog.Feeds() if empty
	Clock       func() time.Time        // time.Now if nil
	MaxWorkers  int                     // concurrent feed fetches, 8 if zero
	MinArticles int                     // placeholder threshold, 3 if zero
}

// Service is the news engine. It is safe for concurrent use.
type Service struct {
	fetcher     Fetcher
	cache       *cache.Cache
	summarizer  Summarizer
	feeds       []domain.FeedDescriptor
	now         func() time.Time
	ids         *normalize.IDSource
	normalizer  *normalize.Normalizer
	maxWorkers  int
	minArticles int

	collectMu sync.Mutex // serializes collection cycles
	running   atomic.Bool
	writeMu   sync.Mutex // serializes set replacement and cache writes

	mu        sync.RWMutex
	articles  []domain.Article
	degraded  bool
	report    domain.CollectReport
	favorites map[string]bool // favorite links carried over from a set not published yet
}

// New makes engine service with the given params
func New(p Params) *Service {
	if len(p.Feeds) == 0 {
		p.Feeds = catalog.Feeds()
	}
	if p.Clock == nil {
		p.Clock = time.Now
	}
	if p.MaxWorkers <= 0 {
		p.MaxWorkers = 8
	}
	if p.MinArticles <= 0 {
		p.MinArticles = 3
	}

	ids := normalize.NewIDSource()
	return &Service{
		fetcher:     p.Fetcher,
		cache:       p.Cache,
		summarizer:  p.Summarizer,
		feeds:       p.Feeds,
		now:         p.Clock,
		ids:         ids,
		normalizer:  normalize.New(ids, p.Clock),
		maxWorkers:  p.MaxWorkers,
		minArticles: p.MinArticles,
		articles:    []domain.Article{},
		favorites:   map[string]bool{},
	}
}

// Load restores state from the cache. The id counter always continues after the cached ids,
// a valid entry becomes the current set, a stale one only passes its favorites to the next cycle.
// Returns true if the current set was restored.
func (s *Service) Load(ctx context.Context) bool {
	entry, ok := s.cache.Last(ctx)
	if !ok {
		lgr.Printf("[DEBUG] no cached articles")
		return false
	}

	var maxID int64
	for _, a := range entry.Articles {
		maxID = max(maxID, a.ID)
	}
	s.ids.Restore(maxID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cache.Fresh(entry) {
		for _, a := range entry.Articles {
			if a.IsFavorite {
				s.favorites[a.Link] = true
			}
		}
		lgr.Printf("[INFO] cached set of %d articles is stale, %d favorites kept", len(entry.Articles), len(s.favorites))
		return false
	}

	s.articles = entry.Articles
	s.degraded = false
	lgr.Printf("[INFO] restored %d cached articles from %s", len(entry.Articles),
		time.UnixMilli(entry.LastUpdate).Format(time.RFC3339))
	return true
}

// Collect runs a collection cycle over the first maxFeeds catalog feeds (all if maxFeeds <= 0)
// and returns the new article set. Cycles never fail, feeds failing on every backend are skipped.
// A cycle canceled by ctx publishes and persists nothing and returns the current set.
// Concurrent calls wait for the running cycle to finish.
func (s *Service) Collect(ctx context.Context, maxFeeds int) []domain.Article {
	s.collectMu.Lock()
	defer s.collectMu.Unlock()
	s.running.Store(true)
	defer s.running.Store(false)

	started := s.now()
	feeds := catalog.Limit(s.feeds, maxFeeds)
	lgr.Printf("[INFO] collecting %d feeds", len(feeds))

	// fan out, each task stores its own result slot and never returns an error
	results := make([]feed.Result, len(feeds))
	var g errgroup.Group
	g.SetLimit(s.maxWorkers)
	for i, fd := range feeds {
		g.Go(func() error {
			res := s.fetcher.Fetch(ctx, fd)
			if s.summarizer != nil && res.Failure == nil {
				s.summarize(ctx, fd, res.Items)
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	// a canceled cycle has only timeouts and partial results, current set stays in place
	if err := ctx.Err(); err != nil {
		lgr.Printf("[WARN] collection of %d feeds canceled, keeping current set: %v", len(feeds), err)
		s.mu.RLock()
		defer s.mu.RUnlock()
		return copyArticles(s.articles)
	}

	// merge in catalog order after all tasks settled
	report := domain.CollectReport{Started: started, Feeds: len(feeds), Succeeded: []string{}, Failed: []domain.FeedFailure{}}
	collected := []domain.Article{}
	for i, res := range results {
		if res.Failure != nil {
			report.Failed = append(report.Failed, *res.Failure)
			continue
		}
		report.Succeeded = append(report.Succeeded, feeds[i].Source)
		for _, raw := range res.Items {
			if s.normalizer.Title(raw.Title) == "" {
				lgr.Printf("[DEBUG] skip item %s from %s, no title text", raw.Link, feeds[i].Source)
				continue
			}
			collected = append(collected, s.article(raw, feeds[i]))
		}
	}

	articles := Dedupe(collected)
	report.Collected = len(articles)
	report.Duplicates = len(collected) - len(articles)

	degraded := len(articles) < s.minArticles
	if degraded {
		ph := Placeholders(s.ids, s.now())
		articles = append(articles, ph...)
		report.Placeholders = len(ph)
		lgr.Printf("[WARN] only %d articles collected from %d feeds, %d placeholders added",
			report.Collected, len(feeds), len(ph))
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	favs := s.favoriteLinks()
	for i := range articles {
		if favs[articles[i].Link] {
			articles[i].IsFavorite = true
		}
	}
	if degraded {
		s.favorites = favs // keep favorites for the next cycle, this set may not hold them
	} else {
		s.favorites = map[string]bool{}
	}
	s.articles = articles
	s.degraded = degraded
	report.Duration = s.now().Sub(started)
	s.report = report
	res := copyArticles(articles)
	s.mu.Unlock()

	// degraded sets are published but never persisted
	if !degraded {
		if err := s.cache.Save(ctx, res); err != nil {
			lgr.Printf("[WARN] can't save %d articles to cache: %v", len(res), err)
		}
	}

	lgr.Printf("[INFO] collected %d articles from %d of %d feeds in %v, %d duplicates dropped",
		report.Collected, len(report.Succeeded), len(feeds), report.Duration, report.Duplicates)
	return res
}

// Running reports whether a collection cycle is in progress
func (s *Service) Running() bool {
	return s.running.Load()
}

// CacheValid reports whether the cached set is still within its TTL
func (s *Service) CacheValid(ctx context.Context) bool {
	return s.cache.IsValid(ctx)
}

// LastReport returns the report of the latest finished cycle
func (s *Service) LastReport() domain.CollectReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// article turns a raw item into an article with keywords
func (s *Service) article(raw domain.RawItem, fd domain.FeedDescriptor) domain.Article {
	a := s.normalizer.Normalize(raw, fd)
	text := a.Title + " " + s.normalizer.CleanText(raw.Description) + " " + strings.Join(raw.Categories, " ")
	a.Keywords = keyword.Extract(text)
	return a
}

// summarize fills item summaries with llm results, failed items keep an empty summary
func (s *Service) summarize(ctx context.Context, fd domain.FeedDescriptor, items []domain.RawItem) {
	for i := range items {
		if ctx.Err() != nil {
			return
		}
		text := s.normalizer.CleanText(items[i].Description)
		sum, err := s.summarizer.Summarize(ctx, items[i].Title, text, fd.Source)
		if err != nil {
			lgr.Printf("[DEBUG] summary failed for %q from %s: %v", items[i].Title, fd.Source, err)
			continue
		}
		items[i].Summary = sum
	}
}

// favoriteLinks returns links marked favorite in the current set and carried over ones.
// Must be called under lock.
func (s *Service) favoriteLinks() map[string]bool {
	res := make(map[string]bool, len(s.favorites))
	for link := range s.favorites {
		res[link] = true
	}
	for _, a := range s.articles {
		if a.IsFavorite && !a.Placeholder {
			res[a.Link] = true
		}
	}
	return res
}

func copyArticles(articles []domain.Article) []domain.Article {
	res := make([]domain.Article, len(articles))
	for i, a := range articles {
		a.Keywords = append([]string{}, a.Keywords...)
		res[i] = a
	}
	return res
}
