package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsnet/pkg/domain"
)

//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine

// Engine is the collection side of the news engine used by scheduler
type Engine interface {
	Collect(ctx context.Context, maxFeeds int) []domain.Article
	Running() bool
	CacheValid(ctx context.Context) bool
}

// Params for scheduler
type Params struct {
	Engine       Engine
	Interval     time.Duration // how often the cache is checked, usually the cache TTL
	RefreshFeeds int           // feeds per background refresh
}

// Scheduler refreshes articles in background whenever the cache becomes stale
type Scheduler struct {
	engine       Engine
	interval     time.Duration
	refreshFeeds int

	inflight atomic.Bool
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

// New makes a scheduler, Start should be called to run it
func New(p Params) *Scheduler {
	if p.Interval <= 0 {
		p.Interval = 30 * time.Minute
	}
	if p.RefreshFeeds <= 0 {
		p.RefreshFeeds = 6
	}
	return &Scheduler{engine: p.Engine, interval: p.Interval, refreshFeeds: p.RefreshFeeds}
}

// Start checks the cache right away and then on every interval tick. Doesn't block.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.refreshWorker(ctx)

	lgr.Printf("[INFO] scheduler started with interval %v, %d feeds per refresh", s.interval, s.refreshFeeds)
}

// Stop cancels the scheduler and waits for the running refresh, if any
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) refreshWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

// check triggers a refresh in background if the cache is stale and nothing is collecting yet
func (s *Scheduler) check(ctx context.Context) {
	if s.engine.Running() {
		lgr.Printf("[DEBUG] collection in progress, skip refresh check")
		return
	}
	if s.engine.CacheValid(ctx) {
		lgr.Printf("[DEBUG] cache is valid, nothing to refresh")
		return
	}
	if !s.inflight.CompareAndSwap(false, true) {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.inflight.Store(false)
		lgr.Printf("[INFO] cache is stale, refreshing %d feeds", s.refreshFeeds)
		res := s.engine.Collect(ctx, s.refreshFeeds)
		lgr.Printf("[INFO] background refresh completed, %d articles", len(res))
	}()
}
