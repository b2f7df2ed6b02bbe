package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/time/rate"

	"github.com/umputun/newsnet/pkg/domain"
)

const maxBodySize = 8 * 1024 * 1024

// Gateway fetches a single feed through an ordered chain of backends,
// the first backend producing at least one item wins
type Gateway struct {
	client   *http.Client
	backends []Backend
	limiters []*rate.Limiter
	xml      XMLParser
	timeout  time.Duration
}

// GatewayParams defines gateway dependencies and settings
type GatewayParams struct {
	Client    *http.Client  // shared http client, default client used if nil
	Backends  []Backend     // ordered fallback chain, DefaultBackends if empty
	XMLParser XMLParser     // parser for raw feed content, Scanner if nil
	Timeout   time.Duration // per-attempt timeout, 10s if zero
}

// Result of a feed fetch. Failure is set only if all backends failed.
type Result struct {
	Items   []domain.RawItem
	Backend string
	Failure *domain.FeedFailure
}

// attemptError is a failed attempt with its classification
type attemptError struct {
	kind domain.FailureKind
	err  error
}

func (e *attemptError) Error() string { return fmt.Sprintf("%s: %v", e.kind, e.err) }

// NewGateway makes a gateway with the given params
func NewGateway(p GatewayParams) *Gateway {
	if p.Client == nil {
		p.Client = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	if len(p.Backends) == 0 {
		p.Backends = DefaultBackends()
	}
	if p.XMLParser == nil {
		p.XMLParser = Scanner{}
	}
	if p.Timeout == 0 {
		p.Timeout = 10 * time.Second
	}

	limiters := make([]*rate.Limiter, len(p.Backends))
	for i, b := range p.Backends {
		if b.Rate > 0 {
			limiters[i] = rate.NewLimiter(rate.Limit(b.Rate), 1)
		}
	}

	return &Gateway{client: p.Client, backends: p.Backends, limiters: limiters, xml: p.XMLParser, timeout: p.Timeout}
}

// Fetch tries each backend in order and returns items from the first one yielding any.
// It never fails, on total failure the result has no items and the last attempt's failure.
func (g *Gateway) Fetch(ctx context.Context, fd domain.FeedDescriptor) Result {
	var last *attemptError
	var lastBackend string
	for i, b := range g.backends {
		if ctx.Err() != nil {
			last, lastBackend = &attemptError{kind: domain.FailureTimeout, err: ctx.Err()}, b.Name
			break
		}
		items, aerr := g.attempt(ctx, b, g.limiters[i], fd)
		if aerr == nil {
			lgr.Printf("[DEBUG] fetched %d items from %s via %s", len(items), fd.Source, b.Name)
			return Result{Items: items, Backend: b.Name}
		}
		lgr.Printf("[DEBUG] backend %s failed for %s: %v", b.Name, fd.Source, aerr)
		last, lastBackend = aerr, b.Name
	}

	if last == nil {
		last = &attemptError{kind: domain.FailureEmpty, err: errors.New("no backends")}
	}
	lgr.Printf("[WARN] all backends failed for %s (%s), last %s: %v", fd.Source, fd.URL, lastBackend, last.err)
	return Result{Failure: &domain.FeedFailure{
		Source:  fd.Source,
		URL:     fd.URL,
		Backend: lastBackend,
		Kind:    last.kind,
		Error:   last.err.Error(),
	}}
}

// attempt makes a single bounded request through backend b
func (g *Gateway) attempt(ctx context.Context, b Backend, lim *rate.Limiter, fd domain.FeedDescriptor) ([]domain.RawItem, *attemptError) {
	// limiter wait is not a part of the attempt's time budget
	if lim != nil {
		if err := lim.Wait(ctx); err != nil {
			return nil, &attemptError{kind: domain.FailureTimeout, err: fmt.Errorf("rate limit wait: %w", err)}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.requestURL(fd.URL), http.NoBody)
	if err != nil {
		return nil, &attemptError{kind: domain.FailureNetwork, err: fmt.Errorf("create request: %w", err)}
	}
	addBrowserHeaders(req, b.Kind, fd.Language)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &attemptError{kind: classifyErr(err), err: fmt.Errorf("fetch: %w", err)}
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return nil, &attemptError{kind: classifyStatus(resp.StatusCode), err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &attemptError{kind: classifyErr(err), err: fmt.Errorf("read body: %w", err)}
	}

	items, err := DecodePayload(b.Kind, body, g.xml, fd.Source)
	if err != nil {
		return nil, &attemptError{kind: domain.FailureParse, err: err}
	}
	if len(items) == 0 {
		return nil, &attemptError{kind: domain.FailureEmpty, err: errors.New("no items")}
	}
	return items, nil
}

func classifyErr(err error) domain.FailureKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.FailureTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return domain.FailureTimeout
	}
	return domain.FailureNetwork
}

func classifyStatus(code int) domain.FailureKind {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusProxyAuthRequired,
		http.StatusTooManyRequests, http.StatusUnavailableForLegalReasons:
		return domain.FailureBlocked
	default:
		return domain.FailureStatus
	}
}
