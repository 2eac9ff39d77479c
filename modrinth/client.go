package modrinth

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/s0up4200/modrinth-go/openapi"
)

const (
	// DefaultChunkSize is the number of ids sent per request by batch helpers
	DefaultChunkSize = 100
	// DefaultConcurrency bounds the requests a batch helper runs at once
	DefaultConcurrency = 4
)

// Client is the Modrinth API client. Operations are grouped by resource.
type Client struct {
	api    *openapi.Client
	logger zerolog.Logger

	chunkSize   int
	concurrency int

	Notifications *NotificationsService
	Users         *UsersService
	Projects      *ProjectsService
	Versions      *VersionsService
}

// Option configures the client
type Option func(*clientOptions)

type clientOptions struct {
	api         []openapi.Option
	logger      zerolog.Logger
	chunkSize   int
	concurrency int
}

// WithHTTPClient sets the transport used for every call
func WithHTTPClient(doer openapi.Doer) Option {
	return func(o *clientOptions) {
		o.api = append(o.api, openapi.WithHTTPClient(doer))
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.api = append(o.api, openapi.WithTimeout(timeout))
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithChunkSize sets how many ids batch helpers send per request
func WithChunkSize(size int) Option {
	return func(o *clientOptions) {
		if size > 0 {
			o.chunkSize = size
		}
	}
}

// WithConcurrency sets how many requests batch helpers run at once
func WithConcurrency(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// NewClient creates a Modrinth client. A nil cfg targets the production API
// without credentials.
func NewClient(cfg *openapi.Configuration, opts ...Option) (*Client, error) {
	options := clientOptions{
		logger:      zerolog.Nop(),
		chunkSize:   DefaultChunkSize,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&options)
	}

	api, err := openapi.New(cfg, append(options.api, openapi.WithLogger(options.logger))...)
	if err != nil {
		return nil, fmt.Errorf("failed to create modrinth client: %w", err)
	}

	c := &Client{
		api:         api,
		logger:      options.logger,
		chunkSize:   options.chunkSize,
		concurrency: options.concurrency,
	}
	c.Notifications = &NotificationsService{client: c}
	c.Users = &UsersService{client: c}
	c.Projects = &ProjectsService{client: c}
	c.Versions = &VersionsService{client: c}

	return c, nil
}

// Config returns a copy of the client configuration
func (c *Client) Config() *openapi.Configuration {
	return c.api.Config()
}

// Close releases resources held by the client, such as the debug file
func (c *Client) Close() error {
	return c.api.Close()
}

// TestConnection verifies the API is reachable and the token is accepted
func (c *Client) TestConnection(ctx context.Context) (*User, error) {
	user, err := c.Users.GetUserFromAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("connection test failed: %w", err)
	}

	c.logger.Debug().
		Str("user", user.Username).
		Str("id", user.ID).
		Msg("Successfully connected to Modrinth")

	return user, nil
}

func call[T any](ctx context.Context, c *Client, op *openapi.Operation, params openapi.Params) (T, error) {
	return openapi.Call[T](ctx, c.api, op, params)
}

func callWithHTTPInfo[T any](ctx context.Context, c *Client, op *openapi.Operation, params openapi.Params) (openapi.Result[T], error) {
	return openapi.CallWithHTTPInfo[T](ctx, c.api, op, params)
}

func callAsync[T any](ctx context.Context, c *Client, op *openapi.Operation, params openapi.Params) *openapi.Future[T] {
	return openapi.CallAsync[T](ctx, c.api, op, params)
}

func idParams(name, value string) openapi.Params {
	return openapi.Params{Path: map[string]any{name: value}}
}

func idsParams(ids []string) openapi.Params {
	return openapi.Params{Query: map[string]any{"ids": ids}}
}
