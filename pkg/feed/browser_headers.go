package feed

import (
	"math/rand"
	"net/http"
)

// acceptLanguages contains common browser Accept-Language values for the catalog languages
var acceptLanguages = map[string][]string{
	"ko": {"ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7", "ko-KR,ko;q=0.9,en;q=0.8"},
	"en": {"en-US,en;q=0.9", "en-GB,en;q=0.9", "en-US,en;q=0.9,ko;q=0.8"},
}

const userAgent = "Mozilla/5.0 (compatible; newsnet/1.0; +https://github.com/umputun/newsnet)"

// addBrowserHeaders adds browser-like headers, some relays refuse bare clients
func addBrowserHeaders(req *http.Request, kind Kind, lang string) {
	req.Header.Set("User-Agent", userAgent)
	switch kind {
	case KindJSON, KindContents:
		req.Header.Set("Accept", "application/json,text/plain;q=0.9,*/*;q=0.5")
	default:
		req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.7,*/*;q=0.5")
	}
	req.Header.Set("Cache-Control", "no-cache")

	langs, ok := acceptLanguages[lang]
	if !ok {
		langs = acceptLanguages["en"]
	}
	req.Header.Set("Accept-Language", langs[rand.Intn(len(langs))]) //nolint:gosec // non-cryptographic randomness is fine for header variation
}
