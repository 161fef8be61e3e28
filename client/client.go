package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/viant/personnel/cache"
	"github.com/viant/personnel/conv"
	"github.com/viant/personnel/format/text"
	"github.com/viant/personnel/payload"
	"github.com/viant/personnel/transcode"
	"github.com/viant/personnel/visitor"
	"go.uber.org/zap"
)

// DefaultBaseURL is the default directory service location
const DefaultBaseURL = "http://localhost:3333"

var converter = conv.NewConverter(conv.DefaultOptions())

// Client represents directory REST client, it is safe for concurrent use
type Client struct {
	baseURL            *url.URL
	httpClient         *http.Client
	timeout            time.Duration
	local              text.CaseFormat
	requestTransforms  []Transform
	responseTransforms []Transform
	cache              *cache.Cache
	cacheable          []string
	logger             *zap.Logger
}

// Response represents decoded response
type Response struct {
	StatusCode int
	Body       []byte
	Payload    interface{}
	Cached     bool
}

// Decode converts response payload into dest pointer
func (r *Response) Decode(dest interface{}) error {
	if r == nil || r.Payload == nil {
		return nil
	}
	if err := converter.Convert(r.Payload, dest); err != nil {
		return fmt.Errorf("failed to decode response into %T: %w", dest, err)
	}
	return nil
}

// New creates a client for the supplied base URL
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %v: %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %v: expected absolute URL", baseURL)
	}
	ret := &Client{baseURL: parsed, local: text.Local}
	for _, opt := range opts {
		opt(ret)
	}
	httpClient := &http.Client{}
	if ret.httpClient != nil {
		*httpClient = *ret.httpClient
	}
	ret.httpClient = httpClient
	if ret.timeout > 0 {
		ret.httpClient.Timeout = ret.timeout
	}
	jar, _ := cookiejar.New(nil)
	if ret.httpClient.Jar != nil {
		jar.SetCookies(parsed, ret.httpClient.Jar.Cookies(parsed))
	}
	ret.httpClient.Jar = jar
	if ret.logger == nil {
		ret.logger = Logger()
	}
	return ret, nil
}

// BaseURL returns client base URL
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Cookies returns session cookies held for the base URL
func (c *Client) Cookies() []*http.Cookie {
	return c.httpClient.Jar.Cookies(c.baseURL)
}

// SetCookies restores session cookies for the base URL
func (c *Client) SetCookies(cookies []*http.Cookie) {
	if len(cookies) == 0 {
		return
	}
	c.httpClient.Jar.SetCookies(c.baseURL, cookies)
}

// Get sends GET request and decodes response into dest when not nil
func (c *Client) Get(ctx context.Context, path string, dest interface{}) (*Response, error) {
	return c.send(ctx, http.MethodGet, path, nil, dest)
}

// Post sends POST request
func (c *Client) Post(ctx context.Context, path string, body interface{}, dest interface{}) (*Response, error) {
	return c.send(ctx, http.MethodPost, path, body, dest)
}

// Put sends PUT request
func (c *Client) Put(ctx context.Context, path string, body interface{}, dest interface{}) (*Response, error) {
	return c.send(ctx, http.MethodPut, path, body, dest)
}

// Delete sends DELETE request
func (c *Client) Delete(ctx context.Context, path string, dest interface{}) (*Response, error) {
	return c.send(ctx, http.MethodDelete, path, nil, dest)
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}, dest interface{}) (*Response, error) {
	response, err := c.Do(ctx, method, path, body)
	if err != nil {
		return response, err
	}
	if dest != nil {
		if err = response.Decode(dest); err != nil {
			return response, err
		}
	}
	return response, nil
}

// Do sends a request, body can be a struct, payload object, map or nil.
// Outgoing payload passes request transforms then gets encoded as JSON or multipart form data,
// incoming payload is decoded and passed through response transforms.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	started := time.Now()
	cacheKey := c.cacheKey(path)
	if method == http.MethodGet && c.isCacheable(path) {
		if response, ok := c.loadCached(ctx, cacheKey); ok {
			c.logger.Debug("request",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", response.StatusCode),
				zap.Bool("cached", true))
			return response, nil
		}
	}

	requestBody, err := c.encode(body)
	if err != nil {
		return nil, err
	}
	request, err := http.NewRequestWithContext(ctx, method, c.url(path), requestBody.Reader())
	if err != nil {
		return nil, fmt.Errorf("failed to create request %v %v: %w", method, path, err)
	}
	request.Header.Set("Accept", transcode.ContentTypeJSON)
	if requestBody.Len() > 0 {
		request.Header.Set("Content-Type", requestBody.ContentType)
	}

	httpResponse, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err))
		return nil, err
	}
	defer httpResponse.Body.Close()
	data, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response %v %v: %w", method, path, err)
	}
	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", httpResponse.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
		zap.Bool("multipart", requestBody.Multipart),
		zap.Bool("cached", false))

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: httpResponse.StatusCode,
			Status:     httpResponse.Status,
			Body:       bytes.TrimSpace(data),
		}
	}
	response, err := c.decode(httpResponse.StatusCode, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode response %v %v: %w", method, path, err)
	}
	if c.isCacheable(path) {
		c.updateCache(ctx, method, path, cacheKey, response)
	}
	return response, nil
}

// Invalidate removes cached responses of the supplied collection paths and their items
func (c *Client) Invalidate(ctx context.Context, paths ...string) error {
	if c.cache == nil {
		return nil
	}
	for _, path := range paths {
		if err := c.cache.InvalidatePrefix(ctx, c.cacheKey(path)); err != nil {
			return err
		}
	}
	return nil
}

// ClearCache removes all cached responses of the client base URL
func (c *Client) ClearCache(ctx context.Context) error {
	if c.cache == nil {
		return nil
	}
	return c.cache.InvalidatePrefix(ctx, c.cacheKey("/"))
}

// cacheKey returns GET cache key scoped to the base URL
func (c *Client) cacheKey(path string) string {
	return cache.Key(http.MethodGet, c.url(path))
}

// isCacheable returns true if path belongs to a cacheable collection
func (c *Client) isCacheable(path string) bool {
	if c.cache == nil {
		return false
	}
	collection := collectionPath(path)
	for _, candidate := range c.cacheable {
		if collection == candidate {
			return true
		}
	}
	return false
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL.String() + path
}

func (c *Client) encode(body interface{}) (*transcode.Body, error) {
	if body == nil {
		return transcode.Encode(nil)
	}
	value := body
	if visitor.IsStruct(body) {
		object, err := payload.FromStruct(body, c.local)
		if err != nil {
			return nil, err
		}
		value = object
	}
	for _, transform := range c.requestTransforms {
		value = transform(value)
	}
	return transcode.Encode(value)
}

func (c *Client) decode(statusCode int, data []byte) (*Response, error) {
	response := &Response{StatusCode: statusCode, Body: data}
	if len(bytes.TrimSpace(data)) == 0 {
		return response, nil
	}
	value, err := payload.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	for _, transform := range c.responseTransforms {
		value = transform(value)
	}
	response.Payload = value
	return response, nil
}

func (c *Client) loadCached(ctx context.Context, key string) (*Response, bool) {
	entry, err := c.cache.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			c.logger.Warn("cache load failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	response, err := c.decode(entry.Status, entry.Body)
	if err != nil {
		c.logger.Warn("cached entry decode failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	response.Cached = true
	return response, true
}

func (c *Client) updateCache(ctx context.Context, method, path, key string, response *Response) {
	var err error
	switch method {
	case http.MethodGet:
		err = c.cache.Store(ctx, key, &cache.Entry{Status: response.StatusCode, Body: response.Body})
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		err = c.Invalidate(ctx, collectionPath(path))
	}
	if err != nil {
		c.logger.Warn("cache update failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
	}
}

// collectionPath returns the first path segment, i.e. /employees for /employees/3
func collectionPath(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if index := strings.IndexAny(trimmed, "/?"); index != -1 {
		trimmed = trimmed[:index]
	}
	return "/" + trimmed
}
