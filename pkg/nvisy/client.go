package nvisy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	contentTypeJSON        = "application/json"
	contentTypeOctetStream = "application/octet-stream"

	// uploadFieldName is the multipart form field carrying file content.
	uploadFieldName = "file"
)

// Client is a handle to the Nvisy API. It is safe for concurrent use and
// cheap to copy with Clone; all copies share one HTTP connection pool.
type Client struct {
	config *Config
	http   *http.Client
	logger hclog.Logger
}

// Compile-time checks that Client serves every resource family.
var (
	_ WorkspacesService   = (*Client)(nil)
	_ DocumentsService    = (*Client)(nil)
	_ FilesService        = (*Client)(nil)
	_ IntegrationsService = (*Client)(nil)
	_ WebhooksService     = (*Client)(nil)
	_ HealthService       = (*Client)(nil)
)

// NewClient creates a Client from a validated Config.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, newError(KindConfig, "client", errors.New("config is required"))
	}

	httpClient := cfg.HTTPClient()
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout()}
	}

	logger := cfg.Logger()
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("nvisy")
	logger.Debug("client created", cfg.LogArgs()...)

	return &Client{
		config: cfg,
		http:   httpClient,
		logger: logger,
	}, nil
}

// NewClientWithAPIKey creates a Client with the default base URL and timeout.
func NewClientWithAPIKey(apiKey string) (*Client, error) {
	cfg, err := NewConfig(apiKey)
	if err != nil {
		return nil, err
	}
	return NewClient(cfg)
}

// Clone returns a Client sharing this client's configuration and transport.
func (c *Client) Clone() *Client {
	clone := *c
	return &clone
}

// Config returns the client configuration.
func (c *Client) Config() *Config {
	return c.config
}

// NewRequest builds an authenticated request against the API. A non-nil
// body is encoded as JSON.
func (c *Client) NewRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, newError(KindSerialization, op(method, path),
				fmt.Errorf("failed to marshal request body: %w", err))
		}
		reader = bytes.NewReader(b)
		contentType = contentTypeJSON
	}
	return c.newRequest(ctx, method, path, query, reader, contentType)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u, err := url.Parse(strings.TrimRight(c.config.BaseURL(), "/") + path)
	if err != nil {
		return nil, newError(KindURLParse, op(method, path), err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, newError(KindURLParse, op(method, path),
			fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey())
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("User-Agent", c.config.UserAgent())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// Do executes req. Non-2xx responses are returned as a KindTransport error
// wrapping a *StatusError. Otherwise a non-nil v receives the decoded JSON
// body.
func (c *Client) Do(req *http.Request, v any) error {
	body, err := c.do(req)
	if err != nil {
		return err
	}
	return c.decode(req, body, v)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	opName := op(req.Method, req.URL.Path)
	start := time.Now()
	c.logger.Debug("sending request", "method", req.Method, "path", req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return nil, newError(KindTransport, opName, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindTransport, opName, fmt.Errorf("failed to read response: %w", err))
	}

	duration := time.Since(start)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("request returned error status",
			"method", req.Method, "path", req.URL.Path,
			"status", resp.StatusCode, "duration", duration)
		return nil, newError(KindTransport, opName, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Method:     req.Method,
			URL:        req.URL.String(),
			Message:    errorMessage(resp.StatusCode, body),
			Body:       body,
		})
	}

	c.logger.Debug("received response",
		"method", req.Method, "path", req.URL.Path,
		"status", resp.StatusCode, "duration", duration)
	return body, nil
}

func (c *Client) decode(req *http.Request, body []byte, v any) error {
	if v == nil {
		return nil
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return newError(KindSerialization, op(req.Method, req.URL.Path),
			errors.New("empty response body"))
	}
	if err := json.Unmarshal(body, v); err != nil {
		return newError(KindSerialization, op(req.Method, req.URL.Path),
			fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// errorMessage extracts the server's message from an error body.
func errorMessage(status int, body []byte) string {
	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.Error != "" {
			return apiErr.Error
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && len(text) <= 512 {
		return text
	}
	return http.StatusText(status)
}

// send issues a body-less request and decodes the JSON result into v.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, v any) error {
	req, err := c.NewRequest(ctx, method, path, query, nil)
	if err != nil {
		return err
	}
	return c.Do(req, v)
}

// sendJSON issues a request with a JSON body and decodes the result into v.
func (c *Client) sendJSON(ctx context.Context, method, path string, body, v any) error {
	req, err := c.NewRequest(ctx, method, path, nil, body)
	if err != nil {
		return err
	}
	return c.Do(req, v)
}

// sendBytes returns the raw response body.
func (c *Client) sendBytes(ctx context.Context, method, path string, body any) ([]byte, error) {
	req, err := c.NewRequest(ctx, method, path, nil, body)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// sendText returns the response body as a string.
func (c *Client) sendText(ctx context.Context, method, path string) (string, error) {
	b, err := c.sendBytes(ctx, method, path, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// sendDelete issues a DELETE and discards the response body.
func (c *Client) sendDelete(ctx context.Context, path string) error {
	return c.send(ctx, http.MethodDelete, path, nil, nil)
}

// sendOctetStream uploads raw bytes.
func (c *Client) sendOctetStream(ctx context.Context, method, path string, data []byte, v any) error {
	req, err := c.newRequest(ctx, method, path, nil, bytes.NewReader(data), contentTypeOctetStream)
	if err != nil {
		return err
	}
	return c.Do(req, v)
}

// sendMultipart uploads data as the single file field of a multipart form.
func (c *Client) sendMultipart(ctx context.Context, path, filename string, data []byte, v any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(uploadFieldName, filename)
	if err != nil {
		return newError(KindIO, op(http.MethodPost, path), fmt.Errorf("failed to create form file: %w", err))
	}
	if _, err := part.Write(data); err != nil {
		return newError(KindIO, op(http.MethodPost, path), fmt.Errorf("failed to write form file: %w", err))
	}
	if err := w.Close(); err != nil {
		return newError(KindIO, op(http.MethodPost, path), fmt.Errorf("failed to close form: %w", err))
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	return c.Do(req, v)
}

func op(method, path string) string {
	return method + " " + path
}
