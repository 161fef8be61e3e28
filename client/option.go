package client

import (
	"net/http"
	"time"

	"github.com/viant/personnel/cache"
	"github.com/viant/personnel/format/text"
	"github.com/viant/personnel/transcode"
	"go.uber.org/zap"
)

// Transform rewrites a payload at the request or response boundary
type Transform func(value interface{}) interface{}

// Option represents client option
type Option func(c *Client)

// WithHTTPClient sets base http client, the client works on its own copy with a private cookie jar
// seeded with the base client cookies
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets http client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRequestTransform appends outgoing payload transform
func WithRequestTransform(transform Transform) Option {
	return func(c *Client) {
		if transform != nil {
			c.requestTransforms = append(c.requestTransforms, transform)
		}
	}
}

// WithResponseTransform appends incoming payload transform
func WithResponseTransform(transform Transform) Option {
	return func(c *Client) {
		if transform != nil {
			c.responseTransforms = append(c.responseTransforms, transform)
		}
	}
}

// WithCaseTranscoding rewrites outgoing keys into wire and incoming keys into local convention
func WithCaseTranscoding(wire, local text.CaseFormat) Option {
	return func(c *Client) {
		c.local = local
		outgoing := transcode.NewWalker(wire)
		incoming := transcode.NewWalker(local)
		c.requestTransforms = append(c.requestTransforms, outgoing.Walk)
		c.responseTransforms = append(c.responseTransforms, incoming.Walk)
	}
}

// WithLogger sets client logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithCache enables cache-aside for GET responses of the listed collections (i.e. /departments),
// other paths are never cached
func WithCache(adapter cache.Adapter, ttl time.Duration, collections ...string) Option {
	return func(c *Client) {
		if adapter == nil {
			return
		}
		c.cache = cache.New(adapter, ttl)
		for _, collection := range collections {
			c.cacheable = append(c.cacheable, collectionPath(collection))
		}
	}
}
