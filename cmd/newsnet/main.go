package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newsnet/pkg/cache"
	"github.com/umputun/newsnet/pkg/catalog"
	"github.com/umputun/newsnet/pkg/config"
	"github.com/umputun/newsnet/pkg/domain"
	"github.com/umputun/newsnet/pkg/engine"
	"github.com/umputun/newsnet/pkg/feed"
	"github.com/umputun/newsnet/pkg/scheduler"
	"github.com/umputun/newsnet/pkg/summary"
	"github.com/umputun/newsnet/server"
)

// Opts with all CLI options
type Opts struct {
	Config   string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen   string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	Once     bool   `long:"once" description:"collect once, print stats and exit"`
	MaxFeeds int    `long:"max-feeds" env:"MAX_FEEDS" default:"-1" description:"feeds per manual collection, overrides config (0 for all)"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	log.Printf("[INFO] starting newsnet version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts, os.Stdout)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and serves until ctx is canceled. With opts.Once it collects,
// prints stats to out and returns.
func run(ctx context.Context, opts Opts, out io.Writer) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.MaxFeeds >= 0 {
		cfg.Collect.MaxFeeds = opts.MaxFeeds
	}
	if cfg.Summary.APIKey != "" {
		setupLog(opts.Debug, opts.NoColor, cfg.Summary.APIKey)
	}

	store, closeStore, err := makeStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	feeds := catalog.Feeds()
	client := &http.Client{}
	gateway := feed.NewGateway(feed.GatewayParams{
		Client:    client,
		Backends:  cfg.Backends,
		XMLParser: feed.NewXMLParser(cfg.Parser.XML),
		Timeout:   cfg.Collect.Timeout,
	})

	params := engine.Params{
		Fetcher:     gateway,
		Cache:       cache.New(store, cfg.Cache.TTL, nil),
		Feeds:       feeds,
		MaxWorkers:  cfg.Collect.MaxWorkers,
		MinArticles: cfg.Collect.MinArticles,
	}
	if cfg.Summary.Enabled {
		log.Printf("[INFO] llm summaries enabled, model %s", cfg.Summary.Model)
		params.Summarizer = summary.NewOpenAI(cfg.Summary)
	}
	svc := engine.New(params)

	if svc.Load(ctx) {
		log.Printf("[INFO] cached articles restored, %d articles", svc.Stats().TotalArticles)
	}

	if opts.Once {
		return collectOnce(ctx, svc, cfg.Collect.MaxFeeds, out)
	}

	sched := scheduler.New(scheduler.Params{
		Engine:       svc,
		Interval:     cfg.Cache.TTL,
		RefreshFeeds: cfg.Collect.RefreshFeeds,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Params{
		Config:   cfg,
		Engine:   svc,
		Feeds:    feeds,
		BaseURL:  cfg.Server.BaseURL,
		MaxFeeds: cfg.Collect.MaxFeeds,
		Version:  revision,
		Debug:    opts.Debug,
	})
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// makeStore opens the configured cache store, in-memory for config.MemoryDSN
func makeStore(ctx context.Context, cfg *config.Config) (cache.Store, func(), error) {
	if cfg.Cache.DSN == config.MemoryDSN {
		log.Printf("[INFO] using in-memory cache store")
		return cache.NewMemoryStore(), func() {}, nil
	}

	store, err := cache.NewSQLiteStore(ctx, cache.SQLiteConfig{DSN: cfg.Cache.DSN, MaxOpenConns: cfg.Cache.MaxOpenConns})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cache store: %w", err)
	}
	closer := func() {
		if err := store.Close(); err != nil {
			log.Printf("[WARN] failed to close cache store: %v", err)
		}
	}
	return store, closer, nil
}

// collectOnce runs a single collection and prints the report with stats as JSON
func collectOnce(ctx context.Context, svc *engine.Service, maxFeeds int, out io.Writer) error {
	articles := svc.Collect(ctx, maxFeeds)
	res := struct {
		Articles int                  `json:"articles"`
		Stats    domain.Stats         `json:"stats"`
		Keywords []domain.KeywordStat `json:"top_keywords"`
		Report   domain.CollectReport `json:"report"`
	}{
		Articles: len(articles),
		Stats:    svc.Stats(),
		Keywords: svc.KeywordStats(),
		Report:   svc.LastReport(),
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
