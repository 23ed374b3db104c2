package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"inventory-levels/core/inventory"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Client fetches documents from one upstream origin.
type Client struct {
	origin  string
	cfg     Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewClient creates a client for origin.
func NewClient(origin string, cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 3
	}
	openFor := time.Duration(cfg.BreakerOpenSeconds) * time.Second
	if openFor <= 0 {
		openFor = time.Minute
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        origin,
		MaxRequests: 1,
		Timeout:     openFor,
		// Requests abandoned by the caller say nothing about the origin's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCallerDone)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Upstream circuit breaker state changed",
				zap.String("origin", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Client{
		origin: origin,
		cfg:    cfg,
		http: &http.Client{
			Transport: transport,
			// Full feeds are large; the whole download may take several times the
			// header timeout.
			Timeout: 5 * timeoutDuration,
		},
		breaker: breaker,
	}
}

// errCallerDone marks failures caused by the caller's context ending mid-request.
var errCallerDone = errors.New("request abandoned")

// Origin returns the origin name the client reports errors for.
func (c *Client) Origin() string {
	return c.origin
}

// GetJSON fetches url and decodes the JSON body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		err := c.getJSON(ctx, url, v)
		if err != nil && ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", errCallerDone, err)
		}
		return nil, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return inventory.Unavailable(c.origin, fmt.Errorf("circuit breaker open: %w", err))
	}
	return err
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return inventory.Unavailable(c.origin, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.User != "" || c.cfg.Password != "" {
		req.SetBasicAuth(c.cfg.User, c.cfg.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return inventory.Unavailable(c.origin, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return inventory.Unavailable(c.origin, fmt.Errorf("status %d from %s", resp.StatusCode, url))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &inventory.MalformedRecordError{Origin: c.origin, Reason: "invalid JSON payload from " + url, Cause: err}
	}
	return nil
}
