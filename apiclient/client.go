package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	apperrors "github.com/jrsteele09/hostel-admin/internal/errors"
	"github.com/jrsteele09/hostel-admin/storage"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/singleflight"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderXSRFToken = "X-XSRF-TOKEN"
	CookieXSRFToken = "XSRF-TOKEN"

	// CSRFBootstrapPath is served at the backend origin, outside the API prefix.
	CSRFBootstrapPath = "/sanctum/csrf-cookie"

	DefaultTimeout = 30 * time.Second
)

// apiSuffixes are stripped from the base URL to find the backend origin.
var apiSuffixes = []string{"/api/v1", "/api/v2", "/api"}

// Requester is what the domain services need from the client.
type Requester interface {
	// Do sends the request and decodes the envelope's data field into out
	Do(ctx context.Context, method, path string, opts RequestOptions, out any) error

	// DoRaw sends the request and decodes the whole response body into out
	DoRaw(ctx context.Context, method, path string, opts RequestOptions, out any) error
}

// RequestOptions carries the optional parts of a request.
type RequestOptions struct {
	Query url.Values
	Body  any
}

// Config holds the client's connection settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the shared HTTP client. It attaches credentials read from storage
// and a CSRF token to outgoing requests, and classifies failures. Create one
// per process and hand it to every service.
type Client struct {
	http    *resty.Client
	baseURL *url.URL
	csrfURL string
	jar     http.CookieJar
	store   *storage.Accessor
	logger  zerolog.Logger

	csrfLock  sync.RWMutex
	csrfToken string
	csrfGroup singleflight.Group
}

var _ Requester = (*Client)(nil)

// Option modifies the Client during construction.
type Option func(*Client)

// WithLogger routes the client's classification logs to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTransport replaces the HTTP transport (primarily for testing).
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.http.SetTransport(rt)
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.http.SetHeader("User-Agent", userAgent)
	}
}

// New builds a Client. store may be nil or hold no backend, in which case no
// credentials are ever attached.
func New(cfg Config, store *storage.Accessor, options ...Option) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "[apiclient.New] invalid base URL")
	}
	if (baseURL.Scheme != "http" && baseURL.Scheme != "https") || baseURL.Host == "" {
		return nil, errors.Wrapf(apperrors.ErrInvalidRequest, "[apiclient.New] base URL %q must be an absolute http(s) URL", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.Wrap(err, "[apiclient.New] cookiejar.New")
	}

	c := &Client{
		http:    resty.New(),
		baseURL: baseURL,
		csrfURL: backendOrigin(baseURL) + CSRFBootstrapPath,
		jar:     jar,
		store:   store,
		logger:  log.Logger,
	}

	c.http.
		SetBaseURL(baseURL.String()).
		SetTimeout(timeout).
		SetCookieJar(jar).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	for _, opt := range options {
		opt(c)
	}

	c.http.SetLogger(restyLogger{logger: c.logger})
	c.http.OnBeforeRequest(c.beforeRequest)
	c.http.OnAfterResponse(c.afterResponse)
	c.http.OnError(c.onError)

	return c, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Do implements Requester.
func (c *Client) Do(ctx context.Context, method, path string, opts RequestOptions, out any) error {
	body, err := c.execute(ctx, method, path, opts)
	if err != nil {
		return err
	}
	return decodeEnvelope(body, out)
}

// DoRaw implements Requester.
func (c *Client) DoRaw(ctx context.Context, method, path string, opts RequestOptions, out any) error {
	body, err := c.execute(ctx, method, path, opts)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "[Client.DoRaw] decode %s %s", method, path)
	}
	return nil
}

// Download issues a GET and returns the raw body, for non-JSON exports.
func (c *Client) Download(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.execute(ctx, http.MethodGet, path, RequestOptions{Query: query})
}

func (c *Client) execute(ctx context.Context, method, path string, opts RequestOptions) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if len(opts.Query) > 0 {
		req.SetQueryParamsFromValues(opts.Query)
	}
	if opts.Body != nil {
		req.SetBody(opts.Body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, classifyTransportError(method, path, err)
	}
	if resp.IsError() {
		return nil, newHTTPError(method, path, resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}

func decodeEnvelope(body []byte, out any) error {
	if len(body) == 0 {
		return nil
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errors.Wrap(err, "[decodeEnvelope] response is not a json envelope")
	}
	if env.Success != nil && !*env.Success {
		return &BackendError{Message: env.Message, Errors: flattenErrors(env.Errors)}
	}
	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return errors.New("[decodeEnvelope] response envelope has no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "[decodeEnvelope] decode data")
	}
	return nil
}

// backendOrigin strips the API prefix from the base URL, leaving the origin
// plus any deployment sub-path.
func backendOrigin(baseURL *url.URL) string {
	path := strings.TrimRight(baseURL.Path, "/")
	for _, suffix := range apiSuffixes {
		if strings.HasSuffix(path, suffix) {
			path = strings.TrimSuffix(path, suffix)
			break
		}
	}
	return baseURL.Scheme + "://" + baseURL.Host + path
}

type restyLogger struct {
	logger zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}
