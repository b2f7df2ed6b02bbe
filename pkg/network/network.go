// Package network builds keyword frequency stats and the keyword co-occurrence graph
// for a set of articles.
package network

import (
	"sort"

	"github.com/umputun/newsnet/pkg/domain"
)

const (
	maxStats = 30 // keywords reported by Stats
	maxNodes = 15 // top keywords turned into graph nodes
	maxPairs = 20 // repeated pairs considered for edges
	nodeMult = 2  // node value multiplier over keyword count
)

// Stats returns keyword counts over all articles, most frequent first.
// Keywords with equal counts keep the order of their first appearance.
func Stats(articles []domain.Article) []domain.KeywordStat {
	counts := map[string]int{}
	order := []string{}
	for _, a := range articles {
		for _, kw := range a.Keywords {
			if _, ok := counts[kw]; !ok {
				order = append(order, kw)
			}
			counts[kw]++
		}
	}

	res := make([]domain.KeywordStat, 0, len(order))
	for _, kw := range order {
		res = append(res, domain.KeywordStat{Keyword: kw, Count: counts[kw]})
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Count > res[j].Count })
	if len(res) > maxStats {
		res = res[:maxStats]
	}
	return res
}

type pair struct {
	from, to string
}

// Build returns the co-occurrence graph. Nodes are the top keywords by count, edges connect
// node keywords seen together in more than one article.
func Build(articles []domain.Article) domain.Network {
	stats := Stats(articles)
	if len(stats) > maxNodes {
		stats = stats[:maxNodes]
	}

	res := domain.Network{Nodes: make([]domain.NetworkNode, 0, len(stats)), Edges: []domain.NetworkEdge{}}
	isNode := make(map[string]bool, len(stats))
	for _, st := range stats {
		res.Nodes = append(res.Nodes, domain.NetworkNode{ID: st.Keyword, Label: st.Keyword, Value: st.Count * nodeMult})
		isNode[st.Keyword] = true
	}

	// pair counts keyed by sorted endpoints, kept in insertion order
	counts := map[pair]int{}
	order := []pair{}
	for _, a := range articles {
		for i := 0; i < len(a.Keywords); i++ {
			for j := i + 1; j < len(a.Keywords); j++ {
				p := pair{from: a.Keywords[i], to: a.Keywords[j]}
				if p.to < p.from {
					p.from, p.to = p.to, p.from
				}
				if _, ok := counts[p]; !ok {
					order = append(order, p)
				}
				counts[p]++
			}
		}
	}

	considered := 0
	for _, p := range order {
		if counts[p] < 2 {
			continue
		}
		if considered == maxPairs {
			break
		}
		considered++
		if isNode[p.from] && isNode[p.to] {
			res.Edges = append(res.Edges, domain.NetworkEdge{From: p.from, To: p.to, Value: counts[p]})
		}
	}
	return res
}
