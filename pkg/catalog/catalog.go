// Package catalog holds the built-in feed table. Order defines the default
// priority when a collection is limited to the first N feeds.
package catalog

import "github.com/umputun/newsnet/pkg/domain"

var feeds = []domain.FeedDescriptor{
	// korean tech news
	{URL: "https://it.donga.com/feeds/rss/", Source: "IT동아", Category: "IT", Language: "ko"},
	{URL: "https://rss.etnews.com/Section902.xml", Source: "전자신문_속보", Category: "IT", Language: "ko"},
	{URL: "https://zdnet.co.kr/news/news_xml.asp", Source: "ZDNet Korea", Category: "IT", Language: "ko"},
	{URL: "https://www.itworld.co.kr/rss/all.xml", Source: "ITWorld Korea", Category: "IT", Language: "ko"},
	{URL: "https://www.bloter.net/feed", Source: "Bloter", Category: "IT", Language: "ko"},
	{URL: "https://byline.network/feed/", Source: "Byline Network", Category: "IT", Language: "ko"},
	{URL: "https://platum.kr/feed", Source: "Platum", Category: "Startup", Language: "ko"},
	{URL: "https://www.boannews.com/media/news_rss.xml", Source: "보안뉴스", Category: "Security", Language: "ko"},
	{URL: "https://rss.etnews.com/Section901.xml", Source: "전자신문_오늘의뉴스", Category: "IT", Language: "ko"},
	{URL: "https://www.ciokorea.com/rss/all.xml", Source: "CIO Korea", Category: "IT", Language: "ko"},
	{URL: "https://it.chosun.com/rss.xml", Source: "IT조선", Category: "IT", Language: "ko"},
	{URL: "https://www.ddaily.co.kr/news_rss.php", Source: "디지털데일리", Category: "IT", Language: "ko"},
	{URL: "https://www.kbench.com/rss.xml", Source: "KBench", Category: "IT", Language: "ko"},
	{URL: "https://www.sedaily.com/rss/IT.xml", Source: "서울경제 IT", Category: "IT", Language: "ko"},
	{URL: "https://www.hankyung.com/feed/it", Source: "한국경제 IT", Category: "IT", Language: "ko"},

	// global tech news
	{URL: "https://techcrunch.com/feed/", Source: "TechCrunch", Category: "Tech", Language: "en"},
	{URL: "https://www.theverge.com/rss/index.xml", Source: "The Verge", Category: "Tech", Language: "en"},
	{URL: "https://venturebeat.com/category/ai/feed/", Source: "VentureBeat AI", Category: "AI", Language: "en"},
	{URL: "https://www.wired.com/feed/rss", Source: "WIRED", Category: "Tech", Language: "en"},
	{URL: "https://www.eetimes.com/feed/", Source: "EE Times", Category: "Electronics", Language: "en"},
	{URL: "https://spectrum.ieee.org/rss/fulltext", Source: "IEEE Spectrum", Category: "Engineering", Language: "en"},
	{URL: "https://www.technologyreview.com/feed/", Source: "MIT Tech Review", Category: "Tech", Language: "en"},
	{URL: "https://www.engadget.com/rss.xml", Source: "Engadget", Category: "Tech", Language: "en"},
	{URL: "https://arstechnica.com/feed/", Source: "Ars Technica", Category: "Tech", Language: "en"},
	{URL: "https://feeds.feedburner.com/oreilly/radar", Source: "O'Reilly Radar", Category: "Tech", Language: "en"},
}

// Feeds returns a copy of the full catalog
func Feeds() []domain.FeedDescriptor {
	res := make([]domain.FeedDescriptor, len(feeds))
	copy(res, feeds)
	return res
}

// Limit returns the first n feeds of list, or all of them if n <= 0 or n exceeds the list
func Limit(list []domain.FeedDescriptor, n int) []domain.FeedDescriptor {
	if n <= 0 || n >= len(list) {
		return list
	}
	return list[:n]
}
