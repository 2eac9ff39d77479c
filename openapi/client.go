package openapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a call when the client builds its own http.Client
const DefaultTimeout = 30 * time.Second

// ErrInvalidConfig indicates a client could not be built from its configuration
var ErrInvalidConfig = errors.New("openapi: invalid configuration")

// Doer sends one HTTP request. *http.Client satisfies it; tests and callers
// may inject any other transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Doer = (*http.Client)(nil)

// Client dispatches operations over an injected transport. It holds no
// mutable state after construction and is safe for concurrent use.
type Client struct {
	cfg      *Configuration
	doer     Doer
	timeout  time.Duration
	logger   zerolog.Logger
	debugLog *zerolog.Logger
	closer   io.Closer
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient injects the transport
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

// WithTimeout sets the timeout of the default http.Client. It has no effect
// on an injected transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for per-call debug logging
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client. The configuration is copied, so later changes to cfg
// do not affect the client. Enabling debug output with a sink that cannot be
// opened fails here rather than at call time.
func New(cfg *Configuration, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = NewConfiguration()
	}

	if cfg.baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}

	c := &Client{
		cfg:     cfg.clone(),
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.doer == nil {
		c.doer = &http.Client{Timeout: c.timeout}
	}

	sink, closer, err := c.cfg.openDebugSink()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if sink != nil {
		debugLog := zerolog.New(sink).With().Timestamp().Logger()
		c.debugLog = &debugLog
		c.closer = closer
	}

	return c, nil
}

// Config returns a copy of the client's configuration
func (c *Client) Config() *Configuration {
	return c.cfg.clone()
}

// Close releases the debug file, if the client opened one
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}

	return c.closer.Close()
}

// Result is a decoded response together with its metadata
type Result[T any] struct {
	Value      T
	StatusCode int
	Header     http.Header
}

// RateLimit reports the rate-limit headers of the response
func (r Result[T]) RateLimit() RateLimit {
	return ParseRateLimit(r.Header)
}

// NoContent is the result type of operations that return nothing
type NoContent = struct{}

// Call runs op and returns the decoded body.
func Call[T any](ctx context.Context, c *Client, op *Operation, params Params) (T, error) {
	result, err := CallWithHTTPInfo[T](ctx, c, op, params)
	return result.Value, err
}

// CallWithHTTPInfo runs op and returns the decoded body with the status code
// and response headers.
func CallWithHTTPInfo[T any](ctx context.Context, c *Client, op *Operation, params Params) (Result[T], error) {
	var result Result[T]

	req, err := BuildRequest(ctx, c.cfg, op, params)
	if err != nil {
		return result, err
	}

	status, header, body, err := c.send(op, req)
	if err != nil {
		return result, err
	}

	result.StatusCode = status
	result.Header = header

	spec := op.responseFor(status)

	if !isSuccess(status) {
		return result, &HTTPStatusError{
			Operation:  op.ID,
			URL:        req.URL.String(),
			StatusCode: status,
			Header:     header,
			Body:       body,
			Payload:    decodeErrorPayload(spec, body),
		}
	}

	if err := Deserialize(body, spec.Kind, &result.Value); err != nil {
		var zero T
		result.Value = zero

		return result, &DecodeError{
			Operation:  op.ID,
			StatusCode: status,
			Body:       body,
			Err:        err,
		}
	}

	return result, nil
}

func (c *Client) send(op *Operation, req *http.Request) (int, http.Header, []byte, error) {
	c.dumpRequest(op, req)

	start := time.Now()

	resp, err := c.doer.Do(req)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("operation", op.ID).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("API request failed")

		return 0, nil, nil, &TransportError{
			Operation: op.ID,
			Method:    req.Method,
			URL:       req.URL.String(),
			Err:       err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, &TransportError{
			Operation: op.ID,
			Method:    req.Method,
			URL:       req.URL.String(),
			Err:       fmt.Errorf("failed to read response body: %w", err),
		}
	}

	c.dumpResponse(op, resp, body)

	c.logger.Debug().
		Str("operation", op.ID).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("API request completed")

	return resp.StatusCode, resp.Header, body, nil
}

// decodeErrorPayload is best-effort: a body that does not match the declared
// error schema leaves the payload nil.
func decodeErrorPayload(spec ResponseSpec, body []byte) any {
	if spec.Model == nil {
		return nil
	}

	model := spec.Model()

	kind := spec.Kind
	if kind == BodyNone {
		kind = BodyJSON
	}

	if err := Deserialize(body, kind, model); err != nil {
		return nil
	}

	return model
}

func (c *Client) dumpRequest(op *Operation, req *http.Request) {
	if c.debugLog == nil {
		return
	}

	dump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		c.debugLog.Log().Err(err).Str("operation", op.ID).Msg("failed to dump request")
		return
	}

	c.debugLog.Log().Str("operation", op.ID).Str("request", string(dump)).Msg(">> request")
}

func (c *Client) dumpResponse(op *Operation, resp *http.Response, body []byte) {
	if c.debugLog == nil {
		return
	}

	dump, err := httputil.DumpResponse(resp, false)
	if err != nil {
		c.debugLog.Log().Err(err).Str("operation", op.ID).Msg("failed to dump response")
		return
	}

	c.debugLog.Log().
		Str("operation", op.ID).
		Str("response", string(dump)+string(body)).
		Msg("<< response")
}
