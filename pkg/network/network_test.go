package network

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsnet/pkg/domain"
)

func arts(kws ...[]string) []domain.Article {
	res := make([]domain.Article, 0, len(kws))
	for i, k := range kws {
		res = append(res, domain.Article{ID: int64(i + 1), Keywords: k})
	}
	return res
}

func TestStats(t *testing.T) {
	articles := arts(
		[]string{"AI", "GPU"},
		[]string{"Cloud", "AI"},
		[]string{"GPU", "AI", "HBM"},
	)
	res := Stats(articles)
	assert.Equal(t, []domain.KeywordStat{
		{Keyword: "AI", Count: 3},
		{Keyword: "GPU", Count: 2},
		{Keyword: "Cloud", Count: 1},
		{Keyword: "HBM", Count: 1},
	}, res)

	assert.Empty(t, Stats(nil))
}

func TestStats_Limit(t *testing.T) {
	var kws []string
	for i := 0; i < 40; i++ {
		kws = append(kws, fmt.Sprintf("kw%02d", i))
	}
	res := Stats(arts(kws))
	require.Len(t, res, 30)
	assert.Equal(t, "kw00", res[0].Keyword)
	assert.Equal(t, "kw29", res[29].Keyword)
}

func TestBuild(t *testing.T) {
	articles := arts(
		[]string{"AI", "GPU", "Cloud"},
		[]string{"GPU", "AI"},
		[]string{"Cloud", "HBM"},
		[]string{"HBM", "Cloud", "AI"},
	)
	nw := Build(articles)

	assert.Equal(t, []domain.NetworkNode{
		{ID: "AI", Label: "AI", Value: 6},
		{ID: "Cloud", Label: "Cloud", Value: 6},
		{ID: "GPU", Label: "GPU", Value: 4},
		{ID: "HBM", Label: "HBM", Value: 4},
	}, nw.Nodes)

	// AI|GPU seen twice, AI|Cloud twice, Cloud|HBM twice; GPU|Cloud and AI|HBM once
	assert.Equal(t, []domain.NetworkEdge{
		{From: "AI", To: "GPU", Value: 2},
		{From: "AI", To: "Cloud", Value: 2},
		{From: "Cloud", To: "HBM", Value: 2},
	}, nw.Edges)
}

func TestBuild_EdgesOnlyBetweenNodes(t *testing.T) {
	// 16 keywords with equal counts, the last one falls out of the node set
	var kws []string
	for i := 0; i < 16; i++ {
		kws = append(kws, fmt.Sprintf("p%02d", i))
	}
	nw := Build(arts(kws, kws, kws))

	require.Len(t, nw.Nodes, 15)
	nodes := map[string]bool{}
	for _, n := range nw.Nodes {
		nodes[n.ID] = true
	}
	assert.False(t, nodes["p15"])

	// first 20 repeated pairs are p00 with p01..p15 and p01 with p02..p06, p00|p15 has no node
	require.Len(t, nw.Edges, 19)
	assert.Equal(t, domain.NetworkEdge{From: "p00", To: "p01", Value: 3}, nw.Edges[0])
	assert.Equal(t, domain.NetworkEdge{From: "p01", To: "p06", Value: 3}, nw.Edges[18])
	for _, e := range nw.Edges {
		assert.True(t, nodes[e.From], e.From)
		assert.True(t, nodes[e.To], e.To)
	}
}

func TestBuild_Empty(t *testing.T) {
	nw := Build(nil)
	assert.Empty(t, nw.Nodes)
	assert.Empty(t, nw.Edges)
	assert.NotNil(t, nw.Edges)
}
