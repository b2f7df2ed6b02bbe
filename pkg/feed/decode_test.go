package feed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload_JSON(t *testing.T) {
	body := `{"status":"ok","feed":{"title":"x"},"items":[
		{"title":"First","link":"https://x/1","pubDate":"2024-01-01 10:00:00","description":"desc 1","categories":["AI"]},
		{"title":"Second","link":"https://x/2","content":"content only"},
		{"title":"","link":"https://x/3"}
	]}`

	items, err := DecodePayload(KindJSON, []byte(body), Scanner{}, "src")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Title)
	assert.Equal(t, "https://x/1", items[0].Link)
	assert.Equal(t, "2024-01-01 10:00:00", items[0].PublishedRaw)
	assert.Equal(t, "desc 1", items[0].Description)
	assert.Equal(t, []string{"AI"}, items[0].Categories)
	assert.Equal(t, "content only", items[1].Description)

	t.Run("status not ok", func(t *testing.T) {
		items, err := DecodePayload(KindJSON, []byte(`{"status":"error","message":"rate limit"}`), Scanner{}, "src")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := DecodePayload(KindJSON, []byte(`<rss>`), Scanner{}, "src")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode json feed")
	})
}

func TestDecodePayload_Contents(t *testing.T) {
	env, err := json.Marshal(map[string]any{"contents": rssSample, "status": map[string]any{"http_code": 200}})
	require.NoError(t, err)

	items, err := DecodePayload(KindContents, env, Scanner{}, "src")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "http://example.com/article1", items[0].Link)
	assert.Equal(t, "https://example.com/guid-link", items[1].Link, "url-like guid used as link")

	_, err = DecodePayload(KindContents, []byte("oops"), Scanner{}, "src")
	require.Error(t, err)
}

func TestDecodePayload_Raw(t *testing.T) {
	items, err := DecodePayload(KindRaw, []byte(atomSample), Scanner{}, "src")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = DecodePayload(Kind("bad"), nil, Scanner{}, "src")
	require.Error(t, err)
}

func TestFinalize_SyntheticLinks(t *testing.T) {
	data := `<rss><channel>
		<item><title>no link first</title><guid>not-a-url</guid></item>
		<item><title>no link second</title></item>
		<item><title>with link</title><link>https://x/3</link></item>
		<item><link>https://x/4</link></item>
	</channel></rss>`

	items, err := DecodePayload(KindRaw, []byte(data), Scanner{}, "Byline Network")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "no link first", items[0].Title)
	assert.Equal(t, "placeholder://Byline_Network/0", items[0].Link)
	assert.Equal(t, "with link", items[1].Title)
	assert.Equal(t, "https://x/3", items[1].Link)
}

func TestBackend_Validate(t *testing.T) {
	for _, b := range DefaultBackends() {
		require.NoError(t, b.Validate(), b.Name)
	}
	assert.Error(t, Backend{Kind: KindRaw}.Validate())
	assert.Error(t, Backend{Name: "x", Kind: KindJSON}.Validate())
	assert.Error(t, Backend{Name: "x", Kind: "other"}.Validate())
	assert.Error(t, Backend{Name: "x", Kind: KindRaw, Rate: -1}.Validate())
}

func TestBackend_RequestURL(t *testing.T) {
	b := Backend{Name: "rss2json", Kind: KindJSON, Endpoint: "https://api.rss2json.com/v1/api.json?rss_url="}
	assert.Equal(t, "https://api.rss2json.com/v1/api.json?rss_url=https%3A%2F%2Fx.com%2Ffeed%3Fa%3D1", b.requestURL("https://x.com/feed?a=1"))
	assert.Equal(t, "https://x.com/feed", Backend{Name: "direct", Kind: KindRaw}.requestURL("https://x.com/feed"))
}
