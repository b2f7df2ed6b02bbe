package normalize

import (
	"net/url"
	"strings"
)

// tracking query parameters dropped from links
var dropParams = map[string]bool{
	"utm_source": true, "utm_medium": true, "utm_campaign": true, "utm_term": true, "utm_content": true, "utm_id": true,
	"gclid": true, "fbclid": true, "igshid": true, "spm": true, "ref": true, "ref_src": true, "cmpid": true,
}

// CanonicalLink normalizes an article link so the same article fetched through
// different feeds or backends dedupes. Non-http links are returned as is.
func CanonicalLink(link string) string {
	link = strings.TrimSpace(link)
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return link
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return link
	}

	u.Scheme = scheme
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""

	q := u.Query()
	for k := range q {
		if dropParams[strings.ToLower(k)] {
			q.Del(k)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
