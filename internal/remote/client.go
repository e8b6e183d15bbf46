// Package remote is the typed client of the tour-booking REST service that
// owns every record shown in the dashboard.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bassista/tourdesk/internal/logger"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
)

const (
	defaultTimeout = 20 * time.Second
	maxBodyBytes   = 8 << 20
)

// Config holds remote client configuration.
type Config struct {
	// BaseURL is the root of the REST service, e.g. https://api.example.com.
	BaseURL string
	// Timeout bounds a single request. Defaults to 20s.
	Timeout time.Duration
	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
}

// Client talks to the tour-booking REST service. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the configured base URL.
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("remote: BaseURL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("remote: invalid BaseURL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: baseURL, http: httpClient}, nil
}

// BaseURL returns the normalized root URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, path string, q any) ([]byte, error) {
	if q != nil {
		values, err := query.Values(q)
		if err != nil {
			return nil, fmt.Errorf("encode query for %s: %w", path, err)
		}
		if encoded := values.Encode(); encoded != "" {
			path += "?" + encoded
		}
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, payload)
}

func (c *Client) put(ctx context.Context, path string, payload any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, payload)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil)
	return err
}

// do sends one request and returns the raw 2xx body. Non-2xx becomes *APIError.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	log := logger.WithComponent("remote").WithField("request_id", requestID)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debugf("%s %s failed after %v: %v", method, path, time.Since(start), err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	log.Debugf("%s %s -> %d in %v", method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, method, path, data)
	}
	return data, nil
}

func escape(segment string) string {
	return url.PathEscape(strings.TrimSpace(segment))
}
