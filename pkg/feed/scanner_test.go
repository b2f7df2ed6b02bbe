package feed

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssSample = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
	<title>Test Feed</title>
	<link>http://example.com</link>
	<item>
		<title><![CDATA[Samsung &amp; SK <b>HBM</b> race]]></title>
		<link>http://example.com/article1</link>
		<description><![CDATA[<p>Full content of article 1</p>]]></description>
		<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		<category>Semiconductor</category>
		<category><![CDATA[반도체]]></category>
		<guid isPermaLink="false">a1</guid>
	</item>
	<item>
		<title>Tom &amp; Jerry</title>
		<guid>https://example.com/guid-link</guid>
		<content:encoded><![CDATA[<p>encoded body</p>]]></content:encoded>
	</item>
</channel>
</rss>`

const atomSample = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Atom</title>
	<link href="http://example.com/" rel="self"/>
	<entry>
		<title type="html">Atom Entry 1</title>
		<link rel="self" href="http://example.com/self1"/>
		<link rel="alternate" type="text/html" href="http://example.com/entry1"/>
		<id>urn:uuid:1225c695</id>
		<updated>2006-01-02T15:04:05Z</updated>
		<summary>Entry 1 summary</summary>
		<category term="cloud"/>
	</entry>
	<entry>
		<title>Atom Entry 2</title>
		<link href="http://example.com/entry2"/>
		<published>2006-01-03T15:04:05Z</published>
		<content type="html">&lt;p&gt;Entry 2&lt;/p&gt;</content>
	</entry>
</feed>`

func TestScanner_RSS(t *testing.T) {
	items := Scanner{}.ParseXML([]byte(rssSample))
	require.Len(t, items, 2)

	assert.Equal(t, "Samsung & SK <b>HBM</b> race", items[0].Title)
	assert.Equal(t, "http://example.com/article1", items[0].Link)
	assert.Equal(t, "<p>Full content of article 1</p>", items[0].Description)
	assert.Equal(t, "Mon, 02 Jan 2006 15:04:05 -0700", items[0].PublishedRaw)
	assert.Equal(t, []string{"Semiconductor", "반도체"}, items[0].Categories)
	assert.Equal(t, "a1", items[0].GUID)

	assert.Equal(t, "Tom & Jerry", items[1].Title)
	assert.Empty(t, items[1].Link)
	assert.Equal(t, "https://example.com/guid-link", items[1].GUID)
	assert.Equal(t, "<p>encoded body</p>", items[1].Description)
}

func TestScanner_Atom(t *testing.T) {
	items := Scanner{}.ParseXML([]byte(atomSample))
	require.Len(t, items, 2)

	assert.Equal(t, "Atom Entry 1", items[0].Title)
	assert.Equal(t, "http://example.com/entry1", items[0].Link)
	assert.Equal(t, "urn:uuid:1225c695", items[0].GUID)
	assert.Equal(t, "2006-01-02T15:04:05Z", items[0].PublishedRaw)
	assert.Equal(t, "Entry 1 summary", items[0].Description)
	assert.Equal(t, []string{"cloud"}, items[0].Categories)

	assert.Equal(t, "http://example.com/entry2", items[1].Link)
	assert.Equal(t, "2006-01-03T15:04:05Z", items[1].PublishedRaw)
	assert.Equal(t, "<p>Entry 2</p>", items[1].Description)
}

func TestScanner_Tolerant(t *testing.T) {
	t.Run("garbage", func(t *testing.T) {
		assert.Empty(t, Scanner{}.ParseXML([]byte("not xml at all")))
		assert.Empty(t, Scanner{}.ParseXML(nil))
	})

	t.Run("unclosed document", func(t *testing.T) {
		data := `<rss><channel><item><title>Broken & unescaped</title><link>http://x/1</link></item><item><title>cut`
		items := Scanner{}.ParseXML([]byte(data))
		require.Len(t, items, 1)
		assert.Equal(t, "Broken & unescaped", items[0].Title)
		assert.Equal(t, "http://x/1", items[0].Link)
	})

	t.Run("capped", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("<rss><channel>")
		for i := range 40 {
			fmt.Fprintf(&sb, "<item><title>t%d</title><link>http://x/%d</link></item>", i, i)
		}
		sb.WriteString("</channel></rss>")
		items := Scanner{}.ParseXML([]byte(sb.String()))
		require.Len(t, items, MaxItems)
		assert.Equal(t, "t14", items[MaxItems-1].Title)
	})
}

func TestGofeedParser(t *testing.T) {
	items := GofeedParser{}.ParseXML([]byte(atomSample))
	require.Len(t, items, 2)
	assert.Equal(t, "Atom Entry 1", items[0].Title)
	assert.Equal(t, "2006-01-02T15:04:05Z", items[0].PublishedRaw)
	assert.Equal(t, "Atom Entry 2", items[1].Title)
	assert.Equal(t, "http://example.com/entry2", items[1].Link)
	assert.Equal(t, "2006-01-03T15:04:05Z", items[1].PublishedRaw)

	assert.Empty(t, GofeedParser{}.ParseXML([]byte("not xml")))
}

func TestNewXMLParser(t *testing.T) {
	assert.IsType(t, GofeedParser{}, NewXMLParser("gofeed"))
	assert.IsType(t, Scanner{}, NewXMLParser("scan"))
	assert.IsType(t, Scanner{}, NewXMLParser(""))
}
