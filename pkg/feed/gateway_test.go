package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsnet/pkg/domain"
)

func TestGateway_Fetch(t *testing.T) {
	var jsonHits, contentsHits, rawHits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json":
			atomic.AddInt32(&jsonHits, 1)
			w.WriteHeader(http.StatusTooManyRequests)
		case "/contents":
			atomic.AddInt32(&contentsHits, 1)
			_, _ = w.Write([]byte(`{"contents":"<rss><channel></channel></rss>"}`)) // no items
		case "/raw":
			atomic.AddInt32(&rawHits, 1)
			assert.Equal(t, "https://feeds.example.com/rss", r.URL.Query().Get("url"))
			assert.Contains(t, r.Header.Get("Accept"), "application/rss+xml")
			assert.Contains(t, r.Header.Get("Accept-Language"), "ko")
			_, _ = w.Write([]byte(rssSample))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	gw := NewGateway(GatewayParams{
		Backends: []Backend{
			{Name: "json", Kind: KindJSON, Endpoint: ts.URL + "/json?rss_url="},
			{Name: "contents", Kind: KindContents, Endpoint: ts.URL + "/contents?url="},
			{Name: "raw", Kind: KindRaw, Endpoint: ts.URL + "/raw?url="},
			{Name: "never", Kind: KindRaw, Endpoint: ts.URL + "/never?url="},
		},
		Timeout: time.Second,
	})

	res := gw.Fetch(context.Background(), domain.FeedDescriptor{URL: "https://feeds.example.com/rss", Source: "src", Language: "ko"})
	assert.Nil(t, res.Failure)
	assert.Equal(t, "raw", res.Backend)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "http://example.com/article1", res.Items[0].Link)
	assert.Equal(t, int32(1), atomic.LoadInt32(&jsonHits))
	assert.Equal(t, int32(1), atomic.LoadInt32(&contentsHits))
	assert.Equal(t, int32(1), atomic.LoadInt32(&rawHits))
}

func TestGateway_FetchFailures(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/slow":
			select {
			case <-time.After(500 * time.Millisecond):
			case <-r.Context().Done():
			}
			_, _ = w.Write([]byte(rssSample))
		case "/forbidden":
			w.WriteHeader(http.StatusForbidden)
		case "/error":
			w.WriteHeader(http.StatusBadGateway)
		case "/garbage":
			_, _ = w.Write([]byte("{not json"))
		case "/empty":
			_, _ = w.Write([]byte(`<rss><channel></channel></rss>`))
		}
	}))
	defer ts.Close()

	tbl := []struct {
		name string
		b    Backend
		kind domain.FailureKind
	}{
		{"timeout", Backend{Name: "slow", Kind: KindRaw, Endpoint: ts.URL + "/slow?u="}, domain.FailureTimeout},
		{"blocked", Backend{Name: "forbidden", Kind: KindRaw, Endpoint: ts.URL + "/forbidden?u="}, domain.FailureBlocked},
		{"status", Backend{Name: "error", Kind: KindRaw, Endpoint: ts.URL + "/error?u="}, domain.FailureStatus},
		{"parse", Backend{Name: "garbage", Kind: KindJSON, Endpoint: ts.URL + "/garbage?u="}, domain.FailureParse},
		{"empty", Backend{Name: "empty", Kind: KindRaw, Endpoint: ts.URL + "/empty?u="}, domain.FailureEmpty},
		{"network", Backend{Name: "bad", Kind: KindRaw, Endpoint: "http://127.0.0.1:1/?u="}, domain.FailureNetwork},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			gw := NewGateway(GatewayParams{Backends: []Backend{tt.b}, Timeout: 100 * time.Millisecond})
			res := gw.Fetch(context.Background(), domain.FeedDescriptor{URL: "https://x/rss", Source: "src"})
			assert.Empty(t, res.Items)
			require.NotNil(t, res.Failure)
			assert.Equal(t, tt.kind, res.Failure.Kind)
			assert.Equal(t, tt.b.Name, res.Failure.Backend)
			assert.Equal(t, "src", res.Failure.Source)
			assert.NotEmpty(t, res.Failure.Error)
		})
	}
}

func TestGateway_CanceledContext(t *testing.T) {
	gw := NewGateway(GatewayParams{Backends: []Backend{{Name: "direct", Kind: KindRaw}}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := gw.Fetch(ctx, domain.FeedDescriptor{URL: "https://x/rss", Source: "src"})
	require.NotNil(t, res.Failure)
	assert.Equal(t, domain.FailureTimeout, res.Failure.Kind)
}

func TestGateway_RateLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rssSample))
	}))
	defer ts.Close()

	gw := NewGateway(GatewayParams{Backends: []Backend{{Name: "limited", Kind: KindRaw, Endpoint: ts.URL + "/?u=", Rate: 10}}})
	st := time.Now()
	for range 3 {
		res := gw.Fetch(context.Background(), domain.FeedDescriptor{URL: "https://x/rss", Source: "src"})
		require.Nil(t, res.Failure)
	}
	// burst of one, then 100ms per request
	assert.GreaterOrEqual(t, time.Since(st), 150*time.Millisecond)
}

func TestGateway_Defaults(t *testing.T) {
	gw := NewGateway(GatewayParams{})
	assert.Len(t, gw.backends, len(DefaultBackends()))
	assert.Equal(t, 10*time.Second, gw.timeout)
	assert.IsType(t, Scanner{}, gw.xml)
	assert.NotNil(t, gw.limiters[0], "rss2json is rate limited by default")
	assert.Nil(t, gw.limiters[3])
}
