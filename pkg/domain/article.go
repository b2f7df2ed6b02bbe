package domain

import "time"

// Article represents a normalized and enriched news article
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Published   time.Time `json:"published"`
	Source      string    `json:"source"`
	Summary     string    `json:"summary"`
	Keywords    []string  `json:"keywords"`
	IsFavorite  bool      `json:"is_favorite"`
	Category    string    `json:"category"`
	Language    string    `json:"language"`
	Placeholder bool      `json:"placeholder,omitempty"` // degraded-mode content, not collected from a feed
}

// KeywordStat is the number of articles mentioning a keyword
type KeywordStat struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// NetworkNode is a keyword in the co-occurrence graph
type NetworkNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

// NetworkEdge connects two keywords seen in the same articles
type NetworkEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value int    `json:"value"`
}

// Network is the keyword co-occurrence graph
type Network struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}

// CacheEntry is the persisted article set with its update time
type CacheEntry struct {
	Articles   []Article `json:"articles"`
	LastUpdate int64     `json:"last_update"` // epoch milliseconds
}

// Filter defines article query criteria, zero values match everything
type Filter struct {
	Search        string
	Source        string
	From          *time.Time
	To            *time.Time
	FavoritesOnly bool
}

// Stats summarizes the current article set
type Stats struct {
	TotalArticles  int `json:"total_articles"`
	TotalSources   int `json:"total_sources"`
	TotalFavorites int `json:"total_favorites"`
	RecentArticles int `json:"recent_articles"`
}
