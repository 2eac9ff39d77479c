package openapi

import (
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
)

const (
	// DefaultBaseURL is the production Modrinth API, version 2
	DefaultBaseURL = "https://api.modrinth.com/v2"
	// DefaultUserAgent identifies this SDK when no user agent is configured
	DefaultUserAgent = "modrinth-go/dev"
)

// Configuration holds the connection settings shared by every call made
// through a Client. The client takes a copy at construction, so changes made
// through setters afterwards do not affect existing clients.
type Configuration struct {
	baseURL        string
	apiKeys        map[string]string
	apiKeyPrefixes map[string]string
	defaultHeaders map[string]string
	userAgent      string
	debug          bool
	debugFile      string
	debugSink      io.Writer
}

// ConfigOption configures a Configuration
type ConfigOption func(*Configuration)

// NewConfiguration creates a Configuration with production defaults
func NewConfiguration(opts ...ConfigOption) *Configuration {
	cfg := &Configuration{
		baseURL:        DefaultBaseURL,
		apiKeys:        make(map[string]string),
		apiKeyPrefixes: make(map[string]string),
		defaultHeaders: make(map[string]string),
		userAgent:      DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithBaseURL sets the API host including the version path
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Configuration) {
		c.SetBaseURL(baseURL)
	}
}

// WithAPIKey sets the key sent in the named header
func WithAPIKey(name, key string) ConfigOption {
	return func(c *Configuration) {
		c.SetAPIKey(name, key)
	}
}

// WithAPIKeyPrefix sets a scheme prefix (e.g. "Bearer") for the named key
func WithAPIKeyPrefix(name, prefix string) ConfigOption {
	return func(c *Configuration) {
		c.SetAPIKeyPrefix(name, prefix)
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(userAgent string) ConfigOption {
	return func(c *Configuration) {
		c.SetUserAgent(userAgent)
	}
}

// WithDefaultHeader adds a header sent on every request
func WithDefaultHeader(name, value string) ConfigOption {
	return func(c *Configuration) {
		if c.defaultHeaders == nil {
			c.defaultHeaders = make(map[string]string)
		}
		c.defaultHeaders[name] = value
	}
}

// WithDebug enables wire dumps to sink
func WithDebug(sink io.Writer) ConfigOption {
	return func(c *Configuration) {
		c.debug = true
		c.debugSink = sink
	}
}

// WithDebugFile enables wire dumps appended to the file at path
func WithDebugFile(path string) ConfigOption {
	return func(c *Configuration) {
		c.debug = true
		c.debugFile = path
	}
}

func (c *Configuration) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

func (c *Configuration) SetAPIKey(name, key string) {
	if key == "" {
		delete(c.apiKeys, name)
		return
	}
	if c.apiKeys == nil {
		c.apiKeys = make(map[string]string)
	}
	c.apiKeys[name] = key
}

func (c *Configuration) SetAPIKeyPrefix(name, prefix string) {
	if prefix == "" {
		delete(c.apiKeyPrefixes, name)
		return
	}
	if c.apiKeyPrefixes == nil {
		c.apiKeyPrefixes = make(map[string]string)
	}
	c.apiKeyPrefixes[name] = prefix
}

func (c *Configuration) SetUserAgent(userAgent string) {
	c.userAgent = userAgent
}

func (c *Configuration) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Configuration) BaseURL() string {
	return c.baseURL
}

func (c *Configuration) UserAgent() string {
	return c.userAgent
}

func (c *Configuration) Debug() bool {
	return c.debug
}

// APIKeyWithPrefix returns the header value for the named key, composing the
// configured prefix when there is one. It reports false when no key is set.
func (c *Configuration) APIKeyWithPrefix(name string) (string, bool) {
	key, ok := c.apiKeys[name]
	if !ok || key == "" {
		return "", false
	}

	if prefix := c.apiKeyPrefixes[name]; prefix != "" {
		return prefix + " " + key, true
	}

	return key, true
}

// clone returns a deep copy so clients never share mutable maps with callers
func (c *Configuration) clone() *Configuration {
	cp := *c
	cp.apiKeys = maps.Clone(c.apiKeys)
	cp.apiKeyPrefixes = maps.Clone(c.apiKeyPrefixes)
	cp.defaultHeaders = maps.Clone(c.defaultHeaders)

	return &cp
}

// openDebugSink resolves the debug writer. A debug file that cannot be opened
// is a configuration error, reported when the client is built.
func (c *Configuration) openDebugSink() (io.Writer, io.Closer, error) {
	if !c.debug {
		return nil, nil, nil
	}

	if c.debugSink != nil {
		return c.debugSink, nil, nil
	}

	if c.debugFile == "" {
		return os.Stderr, nil, nil
	}

	f, err := os.OpenFile(c.debugFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open the debug file %s: %w", c.debugFile, err)
	}

	return f, f, nil
}
