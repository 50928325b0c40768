// Package formrelay delivers contact form submissions to the hosted form
// endpoint that forwards them to the consultancy inbox.
package formrelay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/mjkconsultancy/site/internal/contactform"
	"github.com/mjkconsultancy/site/internal/platform/timeouts"
)

const tracerName = "github.com/mjkconsultancy/site/internal/formrelay"

// DefaultEndpoint returns the hosted AJAX endpoint for an inbox address.
func DefaultEndpoint(email string) string {
	return "https://formsubmit.co/ajax/" + strings.TrimSpace(email)
}

// Config configures a Client.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// StatusError reports a non-2xx answer from the endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("form relay answered %d %s", e.Code, http.StatusText(e.Code))
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying transport client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTracerProvider overrides the global tracer provider for both the
// send span and the instrumented transport.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		if provider != nil {
			c.provider = provider
		}
	}
}

// Client posts form data as JSON.
type Client struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
	provider   trace.TracerProvider
	tracer     trace.Tracer
	rest       *resty.Client
}

var _ contactform.Relay = (*Client)(nil)

// New validates cfg and builds a Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New("form relay endpoint is required")
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse form relay endpoint: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("form relay endpoint %q must be an absolute http(s) URL", endpoint)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.RelayRequest
	}

	c := &Client{
		endpoint: endpoint,
		timeout:  timeout,
		provider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.tracer = c.provider.Tracer(tracerName)
	c.rest = resty.NewWithClient(c.instrumentedClient())
	c.rest.
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return c, nil
}

// instrumentedClient copies the configured client and wraps its transport so
// every POST carries a client span and a traceparent header.
func (c *Client) instrumentedClient() *http.Client {
	var client http.Client
	if c.httpClient != nil {
		client = *c.httpClient
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	client.Transport = otelhttp.NewTransport(base,
		otelhttp.WithTracerProvider(c.provider),
		otelhttp.WithPropagators(propagation.TraceContext{}),
	)
	return &client
}

// Endpoint returns the URL submissions are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Send posts data once. A 2xx answer is the only affirmative outcome.
func (c *Client) Send(ctx context.Context, data contactform.FormData) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	ctx, span := c.tracer.Start(ctx, "formrelay.Send", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("http.request.method", http.MethodPost))

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(data).
		Post(c.endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return fmt.Errorf("post form relay: %w", err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode()))
	if !resp.IsSuccess() {
		statusErr := &StatusError{Code: resp.StatusCode()}
		span.SetStatus(codes.Error, statusErr.Error())
		return statusErr
	}
	return nil
}
