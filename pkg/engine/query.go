package engine

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsnet/pkg/domain"
	"github.com/umputun/newsnet/pkg/network"
)

const recentPeriod = 7 * 24 * time.Hour

// Articles returns articles matching the filter, newest first
func (s *Service) Articles(f domain.Filter) []domain.Article {
	s.mu.RLock()
	res := make([]domain.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if match(a, f) {
			res = append(res, a)
		}
	}
	s.mu.RUnlock()

	res = copyArticles(res)
	sort.SliceStable(res, func(i, j int) bool { return res[i].Published.After(res[j].Published) })
	return res
}

// match checks article against filter. Search is case-insensitive over title, summary and keywords,
// date bounds are inclusive.
func match(a domain.Article, f domain.Filter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		found := strings.Contains(strings.ToLower(a.Title), q) || strings.Contains(strings.ToLower(a.Summary), q)
		for _, kw := range a.Keywords {
			if found {
				break
			}
			found = strings.Contains(strings.ToLower(kw), q)
		}
		if !found {
			return false
		}
	}
	if f.Source != "" && f.Source != "all" && a.Source != f.Source {
		return false
	}
	if f.From != nil && a.Published.Before(*f.From) {
		return false
	}
	if f.To != nil && a.Published.After(*f.To) {
		return false
	}
	if f.FavoritesOnly && !a.IsFavorite {
		return false
	}
	return true
}

// ToggleFavorite flips favorite flag of the article with given id and persists the change
// without extending the cache TTL. Returns false if there is no such article.
func (s *Service) ToggleFavorite(ctx context.Context, id int64) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	found := false
	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles[i].IsFavorite = !s.articles[i].IsFavorite
			found = true
			break
		}
	}
	degraded := s.degraded
	snapshot := copyArticles(s.articles)
	s.mu.Unlock()

	if !found {
		return false
	}
	if degraded {
		return true
	}
	if err := s.cache.Rewrite(ctx, snapshot); err != nil {
		lgr.Printf("[WARN] can't persist favorite for article %d: %v", id, err)
	}
	return true
}

// Sources returns distinct sources of collected articles, sorted
func (s *Service) Sources() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	res := []string{}
	for _, a := range s.articles {
		if !a.Placeholder && !seen[a.Source] {
			seen[a.Source] = true
			res = append(res, a.Source)
		}
	}
	sort.Strings(res)
	return res
}

// Stats returns totals over collected articles of the current set, placeholders are not counted.
// Recent articles are published within the last 7 days.
func (s *Service) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	weekAgo := s.now().Add(-recentPeriod)
	sources := map[string]bool{}
	res := domain.Stats{}
	for _, a := range s.articles {
		if a.Placeholder {
			continue
		}
		res.TotalArticles++
		sources[a.Source] = true
		if a.IsFavorite {
			res.TotalFavorites++
		}
		if !a.Published.Before(weekAgo) {
			res.RecentArticles++
		}
	}
	res.TotalSources = len(sources)
	return res
}

// KeywordStats returns the most frequent keywords of the current set
func (s *Service) KeywordStats() []domain.KeywordStat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return network.Stats(s.articles)
}

// Network returns keyword co-occurrence graph of the current set
func (s *Service) Network() domain.Network {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return network.Build(s.articles)
}
