// Package imageurl resolves a displayable URL for a stored image by probing
// an ordered list of candidate strategies (preview, direct view, download),
// short-circuiting on the first reachable one.
package imageurl

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultProbeTimeout bounds each individual probe before the next strategy
// is tried.
const DefaultProbeTimeout = 3 * time.Second

// ErrNoReachableURL is returned when every strategy in the chain failed.
var ErrNoReachableURL = errors.New("no strategy produced a reachable image url")

// Strategy produces one candidate URL for a file id.
type Strategy struct {
	Name string
	URL  func(fileID string) string
}

type Prober struct {
	logger     *zap.Logger
	httpClient *http.Client
	strategies []Strategy
	timeout    time.Duration
}

func NewProber(strategies []Strategy, logger *zap.Logger) *Prober {
	return &Prober{
		logger:     logger,
		httpClient: &http.Client{},
		strategies: strategies,
		timeout:    DefaultProbeTimeout,
	}
}

// WithTimeout overrides the per-attempt probe timeout.
func (p *Prober) WithTimeout(timeout time.Duration) *Prober {
	p.timeout = timeout
	return p
}

// Resolve probes each strategy in order and returns the first URL that
// answers 2xx. Context cancellation aborts the remainder of the chain.
func (p *Prober) Resolve(ctx context.Context, fileID string) (string, error) {
	if fileID == "" {
		return "", ErrNoReachableURL
	}

	for _, strategy := range p.strategies {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		url := strategy.URL(fileID)
		if url == "" {
			continue
		}

		if p.probe(ctx, url) {
			return url, nil
		}

		p.logger.Sugar().Debugf("image strategy(%s) failed for file(%s), trying next", strategy.Name, fileID)
	}

	return "", ErrNoReachableURL
}

func (p *Prober) probe(ctx context.Context, url string) bool {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
