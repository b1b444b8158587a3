// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/Thangttq233/FYP2025-FE/internal/config"
	"github.com/Thangttq233/FYP2025-FE/internal/session"
)

// Client is the JSON transport to the storefront backend. It attaches the
// bearer token from the session store on every request except login, and runs
// the global session-expiry side effect on 401.
type Client struct {
	base    *url.URL
	http    *http.Client
	session *session.Store
	limiter *rate.Limiter
	log     *logrus.Logger
}

func NewClient(cfg config.APIConfig, sess *session.Store, log *logrus.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", cfg.BaseURL, err)
	}

	return &Client{
		base:    base,
		http:    &http.Client{Timeout: time.Duration(cfg.RequestTimeout) * time.Second},
		session: sess,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		log:     log,
	}, nil
}

// RequestOption tweaks a single request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	skipAuth bool
	query    url.Values
}

// WithoutAuth suppresses the Authorization header. Only the login call uses
// it; a 401 on such a request is a credential failure, not session expiry.
func WithoutAuth() RequestOption {
	return func(o *requestOptions) { o.skipAuth = true }
}

// WithQuery sets the request query string.
func WithQuery(q url.Values) RequestOption {
	return func(o *requestOptions) { o.query = q }
}

func (c *Client) Get(ctx context.Context, path string, out interface{}, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPut, path, body, out, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, opts ...RequestOption) error {
	options := requestOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.base.ResolveReference(&url.URL{Path: path})
	if options.query != nil {
		target.RawQuery = options.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	// The token is re-read from the session on every request; no stale copy
	// is ever cached on the client.
	if !options.skipAuth {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method":     method,
			"path":       path,
			"request_id": requestID,
		}).WithError(err).Warn("Request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     resp.StatusCode,
		"duration":   time.Since(start).Milliseconds(),
		"request_id": requestID,
	}).Debug("Request processed")

	if resp.StatusCode == http.StatusUnauthorized && !options.skipAuth {
		// Global side effect, idempotent under concurrent 401s.
		c.session.Expire()
		return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Message: decodeMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}

	return nil
}

func decodeMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}
