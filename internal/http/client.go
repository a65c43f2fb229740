// Package http implements the transport used to talk to the Foreman API:
// verb wrappers with the fixed header set, basic authentication, status
// classification, and error-body translation.
package http

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/forgeops/foreman-go/pkg/foreman"
)

const defaultUserAgent = "foreman-go"

// Client issues requests against a single Foreman API root. Credentials
// and TLS policy are fixed at construction.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *retryablehttp.Client
	userAgent  string
	logger     foreman.Logger
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger receiving debug events.
func WithLogger(logger foreman.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout overrides the transport's default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithSkipTLSVerify disables certificate verification for this client
// only. Foreman deployments commonly run on self-signed certificates;
// the flag is an explicit per-client choice, never process-global.
func WithSkipTLSVerify(skip bool) Option {
	return func(c *Client) {
		if !skip {
			return
		}

		transport, ok := c.httpClient.HTTPClient.Transport.(*http.Transport)
		if !ok {
			transport = http.DefaultTransport.(*http.Transport).Clone()
			c.httpClient.HTTPClient.Transport = transport
		}

		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{} //nolint:gosec // MinVersion comes from the stdlib default
		}

		transport.TLSClientConfig.InsecureSkipVerify = true // #nosec G402 -- explicit per-client opt-out, see doc
	}
}

// NewClient creates a transport rooted at baseURL, authenticating every
// request with the given basic credentials.
func NewClient(baseURL, username, password string, opts ...Option) *Client {
	httpClient := retryablehttp.NewClient()
	// The API offers no idempotency guarantees across calls; failures
	// surface immediately instead of being retried. The passthrough
	// handler hands statuses the default retry policy considers
	// retryable (5xx, 429) back as plain responses so they reach the
	// status classification below instead of erroring out.
	httpClient.RetryMax = 0
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	httpClient.Logger = nil

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: httpClient,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response with the body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do executes the request and enforces the accepted status set. Any
// other status yields the Response alongside a *foreman.APIError built
// from the decoded error body. Transport and encoding failures are
// returned as wrapped plain errors.
func (c *Client) Do(ctx context.Context, req *Request, accepted ...int) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body interface{}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		body = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	// Every verb except GET carries the Content-Type header, DELETE
	// included even though it sends no body.
	if req.Method != http.MethodGet {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.username != "" || c.password != "" {
		httpReq.SetBasicAuth(c.username, c.password)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
		})
	}

	for _, status := range accepted {
		if httpResp.StatusCode == status {
			return resp, nil
		}
	}

	return resp, apiError(fullURL, httpResp.StatusCode, respBody)
}

// Get performs a GET request. Success requires status 200.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query}, http.StatusOK)
}

// Post performs a POST request. Success requires status 200 or 201.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body}, http.StatusOK, http.StatusCreated)
}

// Put performs a PUT request. Success requires status 200.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body}, http.StatusOK)
}

// Delete performs a DELETE request. Success requires status 200.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path}, http.StatusOK)
}

// apiError translates a non-success response into a *foreman.APIError.
func apiError(fullURL string, statusCode int, body []byte) error {
	var decoded map[string]interface{}

	err := json.Unmarshal(body, &decoded)
	if err != nil {
		return &foreman.APIError{
			URL:        fullURL,
			StatusCode: statusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	return &foreman.APIError{
		URL:        fullURL,
		StatusCode: statusCode,
		Message:    extractErrorMessage(decoded),
		Raw:        decoded,
	}
}

// extractErrorMessage pulls a readable message out of the server's
// {"error": {...}} envelope. Preference order: the "message" field,
// then the "full_messages" list joined with ", ", then the raw error
// object. The full_messages branch checks key presence directly; a
// missing key falls through to the raw object.
func extractErrorMessage(decoded map[string]interface{}) string {
	errObj, ok := decoded["error"].(map[string]interface{})
	if !ok {
		return renderRaw(decoded)
	}

	if message, ok := errObj["message"].(string); ok {
		return message
	}

	if raw, ok := errObj["full_messages"]; ok {
		if list, ok := raw.([]interface{}); ok {
			parts := make([]string, 0, len(list))
			for _, item := range list {
				parts = append(parts, fmt.Sprintf("%v", item))
			}

			return strings.Join(parts, ", ")
		}
	}

	return renderRaw(errObj)
}

// renderRaw renders a decoded JSON object with stable key order.
func renderRaw(obj map[string]interface{}) string {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", key, obj[key]))
	}

	return strings.Join(parts, ", ")
}
