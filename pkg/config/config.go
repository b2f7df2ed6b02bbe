package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/umputun/newsnet/pkg/feed"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// MemoryDSN selects the in-process cache store instead of sqlite
const MemoryDSN = "memory"

// Config holds the application configuration
type Config struct {
	Cache struct {
		TTL          time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=30m,description=Cache time-to-live, refresh interval"`
		DSN          string        `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsnet.db?cache=shared&mode=rwc&_txlock=immediate,description=SQLite connection string or 'memory'"`
		MaxOpenConns int           `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=4,description=Maximum number of open connections"`
	} `yaml:"cache" json:"cache" jsonschema:"description=Article cache configuration"`

	Collect CollectConfig `yaml:"collect" json:"collect" jsonschema:"description=Collection cycle configuration"`

	Backends []feed.Backend `yaml:"backends" json:"backends" jsonschema:"description=Ordered fetch backends, first success wins"`

	Parser struct {
		XML string `yaml:"xml" json:"xml" jsonschema:"default=scan,enum=scan,enum=gofeed,description=XML feed parser"`
	} `yaml:"parser" json:"parser" jsonschema:"description=Feed parser configuration"`

	Summary SummaryConfig `yaml:"summary" json:"summary" jsonschema:"description=Optional LLM summaries"`

	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for generated RSS links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
}

// CollectConfig holds collection cycle settings
type CollectConfig struct {
	MaxFeeds     int           `yaml:"max_feeds" json:"max_feeds" jsonschema:"default=12,description=Feeds fetched by a manual collection (0 for all)"`
	RefreshFeeds int           `yaml:"refresh_feeds" json:"refresh_feeds" jsonschema:"default=6,description=Feeds fetched by a background refresh"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Timeout of a single fetch attempt"`
	MinArticles  int           `yaml:"min_articles" json:"min_articles" jsonschema:"default=3,description=Below this many articles placeholder content is added"`
	MaxWorkers   int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=8,minimum=1,description=Maximum concurrent feed fetches"`
}

// SummaryConfig holds LLM summarizer settings
type SummaryConfig struct {
	Enabled     bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Summarize articles with an LLM"`
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=200,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout per article"`
}

// Load reads configuration from a YAML file. Missing file means all defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	switch {
	case errors.Is(err, fs.ErrNotExist):
		lgr.Printf("[INFO] config file %q not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		// expand environment variables
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults applied
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

func (c *Config) setDefaults() {
	// cache
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 30 * time.Minute
	}
	if c.Cache.DSN == "" {
		c.Cache.DSN = "file:newsnet.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Cache.MaxOpenConns == 0 {
		c.Cache.MaxOpenConns = 4
	}

	// collect
	if c.Collect.MaxFeeds == 0 {
		c.Collect.MaxFeeds = 12
	}
	if c.Collect.RefreshFeeds == 0 {
		c.Collect.RefreshFeeds = 6
	}
	if c.Collect.Timeout == 0 {
		c.Collect.Timeout = 10 * time.Second
	}
	if c.Collect.MinArticles == 0 {
		c.Collect.MinArticles = 3
	}
	if c.Collect.MaxWorkers == 0 {
		c.Collect.MaxWorkers = 8
	}

	if len(c.Backends) == 0 {
		c.Backends = feed.DefaultBackends()
	}
	if c.Parser.XML == "" {
		c.Parser.XML = "scan"
	}

	// summary
	if c.Summary.Model == "" {
		c.Summary.Model = "gpt-4o-mini"
	}
	if c.Summary.Temperature == 0 {
		c.Summary.Temperature = 0.3
	}
	if c.Summary.MaxTokens == 0 {
		c.Summary.MaxTokens = 200
	}
	if c.Summary.Timeout == 0 {
		c.Summary.Timeout = 30 * time.Second
	}

	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Cache.TTL < time.Second {
		return fmt.Errorf("cache ttl must be at least 1 second")
	}

	if cfg.Collect.MaxFeeds < 0 || cfg.Collect.RefreshFeeds < 0 {
		return fmt.Errorf("collect max_feeds and refresh_feeds must be non-negative")
	}
	if cfg.Collect.Timeout < 100*time.Millisecond {
		return fmt.Errorf("collect timeout must be at least 100ms")
	}
	if cfg.Collect.MinArticles < 0 {
		return fmt.Errorf("collect min_articles must be non-negative")
	}
	if cfg.Collect.MaxWorkers < 1 {
		return fmt.Errorf("collect max_workers must be at least 1")
	}

	names := map[string]bool{}
	for _, b := range cfg.Backends {
		if err := b.Validate(); err != nil {
			return err
		}
		if names[b.Name] {
			return fmt.Errorf("duplicate backend name %q", b.Name)
		}
		names[b.Name] = true
	}

	if cfg.Parser.XML != "scan" && cfg.Parser.XML != "gofeed" {
		return fmt.Errorf("parser xml must be scan or gofeed, got %q", cfg.Parser.XML)
	}

	if cfg.Summary.Enabled {
		if cfg.Summary.Endpoint == "" {
			return fmt.Errorf("summary.endpoint is required when summary is enabled")
		}
		if cfg.Summary.Temperature < 0 || cfg.Summary.Temperature > 2 {
			return fmt.Errorf("summary.temperature must be between 0 and 2")
		}
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
