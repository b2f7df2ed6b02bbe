// Package keyword extracts ranked domain keywords from article text using a bilingual
// lexicon, structural patterns and a relevance score.
package keyword

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// MaxKeywords is the max number of keywords returned for a text
	MaxKeywords = 12

	titleRegion = 100 // leading characters treated as the title
)

// patterns in extraction order: acronyms, CamelCase and iPhone-like brands,
// korean and english compound technical terms, numbers with units
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z]{2,5}\b`),
	regexp.MustCompile(`\b[A-Z][a-z]+[A-Z][A-Za-z0-9]*\b`),
	regexp.MustCompile(`\b[a-z]+[A-Z][A-Za-z0-9]*\b`),
	regexp.MustCompile(`[가-힣]{2,8}(?:기술|시스템|플랫폼|서비스|솔루션)`),
	regexp.MustCompile(`\b[A-Z][A-Za-z]+ (?:System|Platform|Service|Solution)s?\b`),
	regexp.MustCompile(`\b\d+[A-Za-z]{1,3}\b`),
}

// Extract returns up to MaxKeywords keywords found in text, highest score first.
// Equal scores keep the order keywords were found in.
func Extract(text string) []string {
	cands := Candidates(text)
	scores := make(map[string]int, len(cands))
	for _, c := range cands {
		scores[c] = Score(text, c)
	}
	sort.SliceStable(cands, func(i, j int) bool { return scores[cands[i]] > scores[cands[j]] })
	if len(cands) > MaxKeywords {
		cands = cands[:MaxKeywords]
	}
	return cands
}

// Candidates returns deduplicated keyword candidates in first-seen order:
// lexicon matches first, then pattern matches
func Candidates(text string) []string {
	lower := strings.ToLower(text)
	seen := map[string]bool{}
	res := []string{}
	add := func(c string) {
		c = strings.TrimSpace(c)
		lc := strings.ToLower(c)
		if utf8.RuneCountInString(c) < 2 || stopWords[lc] || seen[lc] {
			return
		}
		seen[lc] = true
		res = append(res, c)
	}

	for _, term := range lexicon {
		if strings.Contains(lower, strings.ToLower(term)) {
			add(term)
		}
	}
	for _, re := range patterns {
		for _, m := range re.FindAllString(text, -1) {
			add(m)
		}
	}
	return res
}

// Score rates candidate relevance for text: +3 if it shows up in the title region,
// +1 per occurrence, +1 for a length of 3..10 characters and +2 for high-value terms
func Score(text, candidate string) int {
	lower, lc := strings.ToLower(text), strings.ToLower(candidate)
	if lc == "" {
		return 0
	}

	score := strings.Count(lower, lc)
	if score == 0 {
		return 0
	}
	if idx := strings.Index(lower, lc); utf8.RuneCountInString(lower[:idx]) < titleRegion {
		score += 3
	}
	if l := utf8.RuneCountInString(candidate); l >= 3 && l <= 10 {
		score++
	}
	if highValue[lc] {
		score += 2
	}
	return score
}
