package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsnet/pkg/domain"
	"github.com/umputun/newsnet/pkg/feed"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	engine    Engine
	feeds     []domain.FeedDescriptor
	generator *feed.Generator
	maxFeeds  int
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Engine is the news engine surface used by the handlers
type Engine interface {
	Collect(ctx context.Context, maxFeeds int) []domain.Article
	Articles(f domain.Filter) []domain.Article
	ToggleFavorite(ctx context.Context, id int64) bool
	Sources() []string
	Stats() domain.Stats
	KeywordStats() []domain.KeywordStat
	Network() domain.Network
	LastReport() domain.CollectReport
	Running() bool
	CacheValid(ctx context.Context) bool
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params for server
type Params struct {
	Config   ConfigProvider
	Engine   Engine
	Feeds    []domain.FeedDescriptor // catalog exported as OPML
	BaseURL  string                  // base of generated RSS links
	MaxFeeds int                     // default feeds count of manual collection
	Version  string
	Debug    bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:    p.Config,
		engine:    p.Engine,
		feeds:     p.Feeds,
		generator: feed.NewGenerator(p.BaseURL),
		maxFeeds:  p.MaxFeeds,
		version:   p.Version,
		debug:     p.Debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		// manual collection may take a while, fetch timeouts bound it
		WriteTimeout: 2 * timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsnet", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /articles", s.articlesHandler)
		r.HandleFunc("POST /articles/{id}/favorite", s.favoriteHandler)
		r.HandleFunc("POST /collect", s.collectHandler)
		r.HandleFunc("GET /keywords", s.keywordsHandler)
		r.HandleFunc("GET /network", s.networkHandler)
		r.HandleFunc("GET /sources", s.sourcesHandler)
		r.HandleFunc("GET /stats", s.statsHandler)
	})

	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /opml", s.opmlHandler)
}
