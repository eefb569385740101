package bnet

import (
	"context"
	"io"
	"net/http"

	"github.com/advdv/bfetch"
	"github.com/carlmjohnson/requests"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// NewHTTPTransport creates an HTTP RoundTripper instrumented with OpenTelemetry tracing.
// The TracerProvider and Propagator are explicitly injected to avoid global state.
func NewHTTPTransport(tp trace.TracerProvider, prop propagation.TextMapPropagator) http.RoundTripper {
	return otelhttp.NewTransport(http.DefaultTransport,
		otelhttp.WithTracerProvider(tp),
		otelhttp.WithPropagators(prop),
	)
}

// NewHTTPClient creates an *http.Client that uses the instrumented transport and the configured timeout.
func NewHTTPClient(t http.RoundTripper, env Environment) *http.Client {
	return &http.Client{Transport: t, Timeout: env.httpTimeout()}
}

// Transport implements bfetch.Transport on top of an *http.Client. The request fields it understands are "method",
// "headers" and "body"; all others are ignored. The status code is never treated as an error, use
// bfetch.RejectIfUnsuccessful for that.
type Transport struct {
	client *http.Client
}

// NewTransport creates a transport that sends requests through client.
func NewTransport(client *http.Client) *Transport {
	return &Transport{client: client}
}

// Fetch implements bfetch.Transport. The response carries "status", "statusText", "headers", "url" and the full
// "body" as []byte.
func (t *Transport) Fetch(ctx context.Context, url string, req bfetch.Request) (bfetch.Response, error) {
	rb, err := newRequestBuilder(t.client, url, req)
	if err != nil {
		return nil, err
	}

	var resp bfetch.Response
	err = rb.
		Handle(func(res *http.Response) error {
			body, err := io.ReadAll(res.Body)
			if err != nil {
				return err
			}

			resp = bfetch.Response{
				"status":     res.StatusCode,
				"statusText": http.StatusText(res.StatusCode),
				"headers":    flattenHeader(res.Header),
				"url":        res.Request.URL.String(),
				"body":       body,
			}
			return nil
		}).
		Fetch(ctx)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

var _ bfetch.Transport = &Transport{}

// newRequestBuilder maps a reduced request onto a [requests.Builder].
func newRequestBuilder(client *http.Client, url string, req bfetch.Request) (*requests.Builder, error) {
	headers, ok := req.LookupHeaders()
	if !ok {
		return nil, errors.Newf("bnet: unsupported request headers of type %T", req["headers"])
	}

	rb := requests.New().
		Client(client).
		BaseURL(url).
		AddValidator(nil) // status handling is left to the response reducers

	if method, ok := req["method"].(string); ok && method != "" {
		rb.Method(method)
	}

	switch body := req["body"].(type) {
	case nil:
	case string:
		rb.BodyBytes([]byte(body))
	case []byte:
		rb.BodyBytes(body)
	case io.Reader:
		rb.BodyReader(body)
	default:
		rb.Body(requests.BodyJSON(body))
		if !hasHeader(headers, "Content-Type") {
			rb.ContentType("application/json")
		}
	}

	for name, value := range headers {
		rb.Header(name, value)
	}

	return rb, nil
}

func hasHeader(h bfetch.Headers, name string) bool {
	for k := range h {
		if http.CanonicalHeaderKey(k) == name {
			return true
		}
	}
	return false
}

// flattenHeader keeps the first value of every header.
func flattenHeader(h http.Header) bfetch.Headers {
	out := make(bfetch.Headers, len(h))
	for name := range h {
		out[name] = h.Get(name)
	}
	return out
}
