// Package xendit is a client for the Xendit payment REST API.
//
// Every operation issues exactly one HTTP request and returns the reply as a
// Result whose Body is the raw response text. Go errors are reserved for
// failures on this side of the wire: bad input, encoding, transport. A non-2xx
// reply is not an error; inspect Result.OK or Result.Err.
package xendit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/okian/xendit/internal/jsoncodec"
	"github.com/okian/xendit/pkg/logger"
	"github.com/okian/xendit/pkg/metrics"
)

// Client defaults.
const (
	DefaultBaseURL = "https://api.xendit.co"
	DefaultTimeout = 30 * time.Second

	userAgent  = "okian-xendit-go"
	tracerName = "github.com/okian/xendit/internal/xendit"

	// noUserID is what for-user-id carries when no sub-account is given.
	noUserID = "None"
)

// Credentials authenticate the client.
type Credentials struct {
	SecretKey string
}

// String keeps the secret out of formatted output.
func (c Credentials) String() string {
	return "Credentials{SecretKey:" + logger.Mask(c.SecretKey) + "}"
}

// GoString keeps the secret out of %#v output.
func (c Credentials) GoString() string {
	return c.String()
}

// Client talks to the Xendit API. It is safe for concurrent use; connections
// are pooled by the underlying http.Client.
type Client struct {
	baseURL   string
	creds     Credentials
	http      *http.Client
	timeout   time.Duration
	forUserID string

	log     logger.Logger
	metrics *metrics.Manager
	tracer  trace.Tracer
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the pooled default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request. Zero or negative leaves only the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithForUserID sets the sub-account used when a call passes an empty for-user-id.
func WithForUserID(id string) Option {
	return func(c *Client) {
		c.forUserID = id
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics sets the metrics manager. The default is metrics.Default().
func WithMetrics(m *metrics.Manager) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracer sets the tracer. The default comes from the global otel provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// New creates a Client.
func New(creds Credentials, opts ...Option) (*Client, error) {
	if strings.TrimSpace(creds.SecretKey) == "" {
		return nil, ErrMissingSecretKey
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		creds:   creds,
		http:    &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()},
		timeout: DefaultTimeout,
		log:     logger.Nop(),
		metrics: metrics.Default(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.baseURL)
	}
	return c, nil
}

// call describes one request.
type call struct {
	endpoint string
	method   string
	path     string
	body     any
}

type response struct {
	status int
	header http.Header
	body   []byte
}

// send performs c and wraps the reply as a Result of T.
func send[T any](ctx context.Context, c *Client, cl call) (*Result[T], error) {
	resp, err := c.do(ctx, cl)
	if err != nil {
		return nil, err
	}
	return &Result[T]{StatusCode: resp.status, Header: resp.header, Body: resp.body}, nil
}

func (c *Client) do(ctx context.Context, cl call) (*response, error) {
	ctx, span := c.tracer.Start(ctx, "xendit."+cl.endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", cl.method),
			attribute.String("url.path", cl.path),
		),
	)
	defer span.End()

	requestID := uuid.NewString()
	fields := []logger.Field{
		logger.String("request_id", requestID),
		logger.String("endpoint", cl.endpoint),
		logger.String("method", cl.method),
		logger.String("path", cl.path),
	}

	var body io.Reader
	if cl.body != nil {
		b, err := jsoncodec.Marshal(cl.body)
		if err != nil {
			c.metrics.RecordError(cl.endpoint, metrics.ErrorTypeEncode)
			span.RecordError(err)
			span.SetStatus(codes.Error, "encode")
			return nil, fmt.Errorf("%w: %s: %w", ErrEncode, cl.endpoint, err)
		}
		body = bytes.NewReader(b)
		fields = append(fields, logger.Int("request_bytes", len(b)))
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequest, cl.method, cl.path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.SetBasicAuth(c.creds.SecretKey, "")

	c.log.Debug(ctx, "xendit request", fields...)

	start := time.Now()
	done := c.metrics.TrackInFlight()
	res, err := c.http.Do(req)
	done()
	if err != nil {
		c.metrics.RecordError(cl.endpoint, metrics.ErrorTypeTransport)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		c.log.Error(ctx, "xendit request failed", append(fields, logger.Error(err))...)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequest, cl.method, cl.path, err)
	}
	defer func() { _ = res.Body.Close() }()

	data, err := io.ReadAll(res.Body)
	took := time.Since(start)
	if err != nil {
		c.metrics.RecordError(cl.endpoint, metrics.ErrorTypeTransport)
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		c.log.Error(ctx, "xendit response read failed", append(fields, logger.Error(err))...)
		return nil, fmt.Errorf("%w: %s %s: read body: %w", ErrRequest, cl.method, cl.path, err)
	}

	c.metrics.RecordRequest(cl.endpoint, cl.method, res.StatusCode, took, len(data))
	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

	fields = append(fields,
		logger.Int("status", res.StatusCode),
		logger.Duration("took", took),
		logger.Int("response_bytes", len(data)),
	)
	if errType := metrics.ErrorType(res.StatusCode); errType != "" {
		c.metrics.RecordError(cl.endpoint, errType)
		span.SetStatus(codes.Error, http.StatusText(res.StatusCode))
		c.log.Warn(ctx, "xendit returned an error status", fields...)
	} else {
		c.log.Debug(ctx, "xendit response", fields...)
	}

	return &response{status: res.StatusCode, header: res.Header, body: data}, nil
}

// userQuery renders the for-user-id query value, falling back to the
// client default and then to noUserID.
func (c *Client) userQuery(forUserID string) string {
	if forUserID == "" {
		forUserID = c.forUserID
	}
	if forUserID == "" {
		return noUserID
	}
	return url.QueryEscape(forUserID)
}

// pathID escapes an identifier for use as a path segment.
func pathID(endpoint, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingID, endpoint)
	}
	return url.PathEscape(id), nil
}
