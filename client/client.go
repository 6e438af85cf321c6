// Package client wraps the townbook backend API. Read operations degrade
// gracefully when the backend is unreachable, falling back to empty
// results or the static mockdata fixtures so UI code never crashes on
// backend unavailability; create-style mutations propagate their errors
// so callers can surface them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/townbook/client-go/config"
	"github.com/townbook/client-go/session"
)

// Client is a configured townbook API client. Construct with New; the
// zero value is not usable.
type Client struct {
	baseURL string
	http    *http.Client
	session session.Provider
	log     *logrus.Logger
}

type Option func(*Client)

// WithSession injects the credentials attached to outgoing requests.
func WithSession(provider session.Provider) Option {
	return func(c *Client) {
		if provider != nil {
			c.session = provider
		}
	}
}

func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// New builds a client for the given base URL. An empty baseURL selects
// the development default.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = config.DefaultAPIBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: config.RequestTimeout},
		session: session.Anonymous{},
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and decodes the JSON response. The bearer token
// is attached when the session has one; its absence is not an error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (interface{}, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	return c.send(req, method, path)
}

// doMultipart uploads one file as a multipart form request.
func (c *Client) doMultipart(ctx context.Context, path, field, filename string, r io.Reader) (interface{}, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("POST %s: read upload: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	return c.send(req, http.MethodPost, path)
}

func (c *Client) authorize(req *http.Request) {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) send(req *http.Request, method, path string) (interface{}, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var decoded interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return decoded, nil
}

// listPayload unwraps the response envelope for list endpoints. The
// backend answers with {data}, {success,data}, a named collection key or
// a bare array depending on the endpoint; keys are checked in the order
// that endpoint is known to emit them.
func listPayload(v interface{}, keys ...string) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		for _, key := range keys {
			if arr, ok := m[key].([]interface{}); ok {
				return arr
			}
		}
		return nil
	}
	if arr, ok := v.([]interface{}); ok {
		return arr
	}
	return nil
}

// objectPayload unwraps single-entity envelopes the same way. A listed
// key that is present but holds null (or any non-object) means the
// backend found nothing, not that the envelope itself is the entity.
func objectPayload(v interface{}, keys ...string) map[string]interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	for _, key := range keys {
		if inner, present := m[key]; present {
			obj, _ := inner.(map[string]interface{})
			return obj
		}
	}
	return m
}

// warn records a degraded call. Fallbacks are silent toward the caller,
// so the log line is the only trace of a backend failure.
func (c *Client) warn(endpoint string, err error) {
	c.log.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"error":    err.Error(),
	}).Warn("api call failed, using fallback")
}
