package domain

import "time"

// FailureKind classifies why a feed could not be fetched
type FailureKind string

// enum of failure kinds, used for diagnostics only
const (
	FailureNetwork FailureKind = "network"
	FailureTimeout FailureKind = "timeout"
	FailureBlocked FailureKind = "blocked"
	FailureStatus  FailureKind = "status"
	FailureParse   FailureKind = "parse"
	FailureEmpty   FailureKind = "empty"
)

// FeedFailure records the last failed attempt for a feed
type FeedFailure struct {
	Source  string      `json:"source"`
	URL     string      `json:"url"`
	Backend string      `json:"backend"`
	Kind    FailureKind `json:"kind"`
	Error   string      `json:"error"`
}

// CollectReport describes the outcome of a single collection cycle
type CollectReport struct {
	Started      time.Time     `json:"started"`
	Duration     time.Duration `json:"duration"`
	Feeds        int           `json:"feeds"`
	Succeeded    []string      `json:"succeeded"`
	Failed       []FeedFailure `json:"failed"`
	Collected    int           `json:"collected"`
	Duplicates   int           `json:"duplicates"`
	Placeholders int           `json:"placeholders"`
}
