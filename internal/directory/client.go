// Package directory implements the national directory gateway client. The
// wire format is a thin JSON surface; what matters to the lifecycle is the
// operation contract and the split between transport failures (retried via
// dead-letter) and directory rejections (not retried).
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"dict-bridge/internal/claims/ports"
	"dict-bridge/pkg/platform/circuit"
)

const (
	defaultTimeout = 10 * time.Second

	// probeEvery: while the circuit is open, one call in this many is let
	// through to test whether the directory recovered. The rest fail fast so
	// an outage drains the pipeline into dead-letters instead of burning the
	// full timeout per event.
	probeEvery = 10
)

// Client is the HTTP implementation of ports.DirectoryGateway.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *circuit.Breaker
	calls   atomic.Uint64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		if c != nil {
			client.http = c
		}
	}
}

// WithBreaker overrides the default circuit breaker.
func WithBreaker(b *circuit.Breaker) Option {
	return func(client *Client) {
		if b != nil {
			client.breaker = b
		}
	}
}

// New creates a gateway client. The client timeout bounds every call; a
// timeout surfaces as a transport-class error.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("directory base URL is required")
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		breaker: circuit.New("directory"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) OpenOwnership(ctx context.Context, req ports.DirectoryRequest) error {
	return c.post(ctx, "open-ownership", "/claims/ownership/open", req)
}

func (c *Client) ConfirmOwnership(ctx context.Context, req ports.DirectoryRequest) error {
	return c.post(ctx, "confirm-ownership", "/claims/ownership/confirm", req)
}

func (c *Client) CancelOwnership(ctx context.Context, req ports.DirectoryRequest) error {
	return c.post(ctx, "cancel-ownership", "/claims/ownership/cancel", req)
}

func (c *Client) DenyClaim(ctx context.Context, req ports.DirectoryRequest) error {
	return c.post(ctx, "deny-claim", "/claims/deny", req)
}

func (c *Client) OpenPortability(ctx context.Context, req ports.DirectoryRequest) error {
	return c.post(ctx, "open-portability", "/claims/portability/open", req)
}

func (c *Client) ConfirmPortability(ctx context.Context, req ports.DirectoryRequest) error {
	return c.post(ctx, "confirm-portability", "/claims/portability/confirm", req)
}

func (c *Client) CancelPortability(ctx context.Context, req ports.DirectoryRequest) error {
	return c.post(ctx, "cancel-portability", "/claims/portability/cancel", req)
}

type wirePayload struct {
	Participant string `json:"participant"`
	Key         string `json:"key"`
	Reason      string `json:"reason,omitempty"`
}

// post performs one gateway call and classifies the outcome. Connection
// errors, timeouts, and 5xx answers are transport-class; any other non-2xx
// answer is a rejection. Consecutive transport failures open the circuit;
// while open, only every probeEvery-th call reaches the wire.
func (c *Client) post(ctx context.Context, op, path string, req ports.DirectoryRequest) error {
	if c.breaker.IsOpen() && c.calls.Add(1)%probeEvery != 0 {
		return &ports.GatewayError{
			Kind: ports.GatewayTransport,
			Op:   op,
			Err:  fmt.Errorf("directory circuit open, call short-circuited"),
		}
	}

	err := c.do(ctx, op, path, req)
	if err != nil && ports.IsGatewayTransport(err) {
		c.breaker.RecordFailure()
	} else {
		// Rejections are valid directory answers: the wire works.
		c.breaker.RecordSuccess()
	}
	return err
}

func (c *Client) do(ctx context.Context, op, path string, req ports.DirectoryRequest) error {
	body, err := json.Marshal(wirePayload{
		Participant: req.Participant,
		Key:         req.Key,
		Reason:      string(req.Reason),
	})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", op, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return &ports.GatewayError{Kind: ports.GatewayTransport, Op: op, Err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500:
		return &ports.GatewayError{Kind: ports.GatewayTransport, Op: op, Status: resp.StatusCode}
	default:
		return &ports.GatewayError{Kind: ports.GatewayRejected, Op: op, Status: resp.StatusCode}
	}
}
