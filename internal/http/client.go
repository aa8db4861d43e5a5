// Package http is the retrying HTTP transport behind payclient. It turns a
// payapi.RequestBuilder into a form-encoded request, authenticates it and
// decodes the JSON answer.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/payapi/internal/auth"
	"github.com/fivetwenty-io/payapi/internal/constants"
	"github.com/fivetwenty-io/payapi/pkg/payapi"
)

const (
	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeJSON = "application/json"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request is a raw API call. Query and Body are already encoded.
type Request struct {
	Method  string
	Path    string
	Query   string
	Body    string
	Headers map[string]string
}

// Response is a raw API answer.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// RequestID returns the identifier the server assigned to the call.
func (r *Response) RequestID() string {
	if r == nil || r.Headers == nil {
		return ""
	}

	return r.Headers.Get(constants.HeaderRequestID)
}

// Client sends requests with retries. It implements payapi.Client and
// payapi.AsyncClient and is safe for concurrent use.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	interceptors *payapi.InterceptorChain
	logger       Logger
	debug        bool
	userAgent    string
	apiVersion   string
	account      string
	inflight     chan struct{}
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig sets the retry count and the backoff bounds.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout bounds each attempt.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithAPIVersion pins the response schema version.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithAccount scopes every request to a connected account.
func WithAccount(account string) Option {
	return func(c *Client) {
		c.account = account
	}
}

// WithMaxConcurrency caps in-flight requests. Zero means no cap.
func WithMaxConcurrency(limit int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.inflight = make(chan struct{}, limit)
		}
	}
}

// WithRequestInterceptor runs interceptor before every attempt sequence.
func WithRequestInterceptor(interceptor payapi.RequestInterceptor) Option {
	return func(c *Client) {
		c.interceptors.AddRequestInterceptor(interceptor)
	}
}

// WithResponseInterceptor runs interceptor after every completed call.
func WithResponseInterceptor(interceptor payapi.ResponseInterceptor) Option {
	return func(c *Client) {
		c.interceptors.AddResponseInterceptor(interceptor)
	}
}

// NewClient creates a client for baseURL. keys may be nil for servers that
// need no authentication, such as test doubles.
func NewClient(baseURL string, keys auth.KeyProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.CheckRetry = checkRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      baseURL,
		httpClient:   retryClient,
		interceptors: payapi.NewInterceptorChain(),
		userAgent:    constants.DefaultUserAgent,
	}

	if keys != nil {
		client.interceptors.AddRequestInterceptor(payapi.AuthenticationInterceptor(keys.GetKey))
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.RequestLogHook = client.logRetry

	return client
}

// checkRetry follows the server's X-Should-Retry hint when present and the
// default policy (connection errors, 429, 5xx) otherwise.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if resp != nil {
		switch resp.Header.Get(constants.HeaderShouldRetry) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func (c *Client) logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 || c.logger == nil {
		return
	}

	c.logger.Warn("Retrying request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}

// Do sends req. A non-2xx answer returns both the response and a
// *payapi.APIError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	release, err := c.acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", payapi.ErrTransport, err)
	}
	defer release()

	intercepted := &payapi.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: c.headers(ctx, req),
		Body:    []byte(req.Body),
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	target := c.baseURL + req.Path
	if req.Query != "" {
		target += "?" + req.Query
	}

	var body interface{}
	if req.Method == http.MethodPost {
		body = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", payapi.ErrTransport, err)
	}

	httpReq.Header = intercepted.Headers

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    target,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &payapi.Response{Error: err})

		return nil, fmt.Errorf("%w: %s %s: %w", payapi.ErrTransport, req.Method, req.Path, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", payapi.ErrTransport, err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       data,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":     resp.StatusCode,
			"duration":   time.Since(start).String(),
			"request_id": resp.RequestID(),
		})
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &payapi.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	})
	if err != nil {
		return resp, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, payapi.ParseErrorResponse(resp.StatusCode, resp.RequestID(), resp.Body)
	}

	return resp, nil
}

func (c *Client) headers(ctx context.Context, req *Request) http.Header {
	headers := make(http.Header)
	headers.Set("Accept", contentTypeJSON)
	headers.Set("User-Agent", c.userAgent)

	if c.apiVersion != "" {
		headers.Set(constants.HeaderAPIVersion, c.apiVersion)
	}

	if c.account != "" {
		headers.Set(constants.HeaderAccount, c.account)
	}

	if req.Method == http.MethodPost {
		headers.Set("Content-Type", contentTypeForm)

		// Set once so that every retry carries the same key.
		key, ok := payapi.IdempotencyKeyFrom(ctx)
		if !ok {
			key = uuid.NewString()
		}

		headers.Set(constants.HeaderIdempotencyKey, key)
	}

	for name, value := range req.Headers {
		headers.Set(name, value)
	}

	return headers
}

func (c *Client) acquire(ctx context.Context) (func(), error) {
	if c.inflight == nil {
		return func() {}, nil
	}

	select {
	case c.inflight <- struct{}{}:
		return func() { <-c.inflight }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Get sends a GET with an encoded query string.
func (c *Client) Get(ctx context.Context, path, query string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends a POST with an encoded form body.
func (c *Client) Post(ctx context.Context, path, body string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Delete sends a DELETE.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Execute implements payapi.Client.
func (c *Client) Execute(ctx context.Context, req *payapi.RequestBuilder, out any) error {
	encoded, err := req.Encode()
	if err != nil {
		return err
	}

	resp, err := c.Do(ctx, &Request{
		Method: encoded.Method.String(),
		Path:   encoded.Path,
		Query:  encoded.Query,
		Body:   encoded.Body,
	})
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return fmt.Errorf("%w: %s %s: empty response body", payapi.ErrDecoding, encoded.Method, encoded.Path)
	}

	err = json.Unmarshal(resp.Body, out)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", payapi.ErrDecoding, encoded.Method, encoded.Path, err)
	}

	return nil
}

// ExecuteAsync implements payapi.AsyncClient.
func (c *Client) ExecuteAsync(ctx context.Context, req *payapi.RequestBuilder, out any) <-chan error {
	result := make(chan error, 1)

	go func() {
		defer close(result)

		result <- c.Execute(ctx, req, out)
	}()

	return result
}

// IsTransportError reports whether err happened before an HTTP answer was
// received.
func IsTransportError(err error) bool {
	return errors.Is(err, payapi.ErrTransport)
}
