package domain

// FeedDescriptor describes a remote news feed
type FeedDescriptor struct {
	URL      string `yaml:"url" json:"url"`
	Source   string `yaml:"source" json:"source"`
	Category string `yaml:"category" json:"category"`
	Language string `yaml:"language" json:"language"`
}

// RawItem is a single parsed feed entry before normalization
type RawItem struct {
	Title        string
	Link         string
	GUID         string
	PublishedRaw string
	Description  string
	Categories   []string
	Summary      string // pre-computed summary, set by the optional summarizer
}
