package normalize

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsnet/pkg/domain"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	return New(NewIDSource(), func() time.Time { return fixedNow })
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newTestNormalizer()
	fd := domain.FeedDescriptor{URL: "https://x/rss", Source: "TechCrunch", Category: "Tech", Language: "en"}

	a := n.Normalize(domain.RawItem{
		Title:        "  <b>Samsung</b> &amp; SK   Hynix \n race ",
		Link:         "https://Example.com/news/1/?utm_source=rss&id=5#top",
		PublishedRaw: "Mon, 02 Jan 2006 15:04:05 -0700",
		Description:  "<p>Samsung unveiled a new HBM chip today. It targets AI servers in data centers! Short. Third sentence here is long enough.</p>",
	}, fd)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "Samsung & SK Hynix race", a.Title)
	assert.Equal(t, "https://example.com/news/1?id=5", a.Link)
	assert.True(t, a.Published.Equal(time.Date(2006, 1, 2, 15, 4, 5, 0, time.FixedZone("", -7*3600))))
	assert.Equal(t, "Samsung unveiled a new HBM chip today. It targets AI servers in data centers...", a.Summary)
	assert.Equal(t, "TechCrunch", a.Source)
	assert.Equal(t, "Tech", a.Category)
	assert.Equal(t, "en", a.Language)
	assert.False(t, a.IsFavorite)
	assert.NotNil(t, a.Keywords)

	b := n.Normalize(domain.RawItem{Title: "second", Link: "https://x/2", Summary: "<i>LLM summary</i> of the article"}, fd)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, "LLM summary of the article", b.Summary, "pre-computed summary used as is")
	assert.Equal(t, fixedNow, b.Published, "missing date falls back to now")
}

func TestNormalizer_Title(t *testing.T) {
	n := newTestNormalizer()
	long := strings.Repeat("가", 250)
	assert.Len(t, []rune(n.Title(long)), 200)
	assert.Equal(t, "AT&T deal", n.Title("AT&amp;T deal"))
	assert.Equal(t, "a b", n.Title("<p>a</p><p>b</p>"))
	assert.Equal(t, "plain", n.Title("plain"))
	assert.Empty(t, n.Title("<script>alert(1)</script>"))
}

func TestNormalizer_Date(t *testing.T) {
	n := newTestNormalizer()
	tbl := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-01T10:00:00Z", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-01-01 10:00:00", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"Tue, 03 Jan 2006 15:04:05 +0000", time.Date(2006, 1, 3, 15, 4, 5, 0, time.UTC)},
		{"", fixedNow},
		{"not a date", fixedNow},
		{"어제 오후", fixedNow},
	}
	for _, tt := range tbl {
		t.Run(tt.in, func(t *testing.T) {
			assert.True(t, tt.want.Equal(n.Date(tt.in)), "got %v", n.Date(tt.in))
		})
	}
}

func TestNormalizer_Summary(t *testing.T) {
	n := newTestNormalizer()

	t.Run("two sentences", func(t *testing.T) {
		got := n.Summary("First sentence is long. Second one is long too? Third sentence is ignored.")
		assert.Equal(t, "First sentence is long. Second one is long too...", got)
	})

	t.Run("short fragments skipped", func(t *testing.T) {
		got := n.Summary("Hi. Ok! 삼성전자가 새로운 HBM 칩을 발표했다. Done.")
		assert.Equal(t, "삼성전자가 새로운 HBM 칩을 발표했다...", got)
	})

	t.Run("truncated", func(t *testing.T) {
		got := n.Summary(strings.Repeat("word ", 100))
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.LessOrEqual(t, len([]rune(got)), 203)
	})

	t.Run("nothing qualifies", func(t *testing.T) {
		assert.Empty(t, n.Summary("Short. Tiny."))
		assert.Empty(t, n.Summary(""))
	})
}

func TestIDSource(t *testing.T) {
	ids := NewIDSource()
	assert.Equal(t, int64(1), ids.Next())
	assert.Equal(t, int64(2), ids.Next())

	ids.Restore(10)
	assert.Equal(t, int64(11), ids.Next())

	ids.Restore(5) // never goes back
	assert.Equal(t, int64(12), ids.Next())

	var wg sync.WaitGroup
	seen := sync.Map{}
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := ids.Next()
			_, dup := seen.LoadOrStore(id, true)
			assert.False(t, dup)
		}()
	}
	wg.Wait()
	require.Equal(t, int64(63), ids.Next())
}

func TestCanonicalLink(t *testing.T) {
	tbl := []struct{ in, want string }{
		{"https://example.com/a/", "https://example.com/a"},
		{"HTTPS://EXAMPLE.com/A", "https://example.com/A"},
		{"https://example.com/a?utm_source=x&utm_medium=y", "https://example.com/a"},
		{"https://example.com/a?b=2&a=1&fbclid=zz", "https://example.com/a?a=1&b=2"},
		{"https://example.com/a#comments", "https://example.com/a"},
		{"  https://example.com/a  ", "https://example.com/a"},
		{"placeholder://IT동아/0", "placeholder://IT동아/0"},
		{"not a url", "not a url"},
		{"", ""},
	}
	for _, tt := range tbl {
		assert.Equal(t, tt.want, CanonicalLink(tt.in), tt.in)
	}
}
