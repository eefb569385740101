package bfetch

import (
	"context"
	"slices"

	"github.com/samber/lo"
)

// Transport performs the actual network call for a fully reduced request. It is the only place where a fetch
// touches the outside world and it is called exactly once per fetch.
type Transport interface {
	Fetch(ctx context.Context, url string, req Request) (Response, error)
}

// TransportFunc allow casting a function to implement [Transport].
type TransportFunc func(context.Context, string, Request) (Response, error)

// Fetch implements the [Transport] interface.
func (f TransportFunc) Fetch(ctx context.Context, url string, req Request) (Response, error) {
	return f(ctx, url, req)
}

// FetchFunc is the signature of a configured fetch, as returned by [CreateFetch].
type FetchFunc func(ctx context.Context, url string, opts Request) (Response, error)

// Config configures a [Client]. Both reducer chains are empty by default and entirely independent of each other.
type Config struct {
	RequestReducers  []Reducer[Request]
	ResponseReducers []Reducer[Response]

	// Logger is informed about failures before they are returned. Optional.
	Logger Logger
}

// Client sequences the request reducers, the transport and the response reducers. It only holds configuration
// that is never modified after construction so it is safe for concurrent use.
type Client struct {
	transport Transport
	requests  Chain[Request]
	responses Chain[Response]
	logs      Logger
}

// NewClient inits a client around the transport. The reducer slices are copied so the caller may re-use them.
func NewClient(t Transport, cfg Config) *Client {
	if t == nil {
		panic("bfetch: transport must not be nil")
	}

	logs := cfg.Logger
	if logs == nil {
		logs = nopLogger{}
	}

	return &Client{
		transport: t,
		requests:  slices.Clone(cfg.RequestReducers),
		responses: slices.Clone(cfg.ResponseReducers),
		logs:      logs,
	}
}

// CreateFetch returns the client's fetch as a plain function.
func CreateFetch(t Transport, cfg Config) FetchFunc {
	return NewClient(t, cfg).Fetch
}

// Fetch builds the initial request from a shallow copy of opts with "url" set to url, runs it through the request
// reducers, calls the transport with the reduced request and runs the response through the response reducers.
// The url argument always wins over a "url" key in opts. Any error, from a reducer or the transport, is returned
// unchanged and skips everything after it.
func (c *Client) Fetch(ctx context.Context, url string, opts Request) (Response, error) {
	req, err := c.requests.Run(ctx, Request(lo.Assign(opts, Request{"url": url})))
	if err != nil {
		c.logs.LogFetchError(StageRequest, url, err)
		return nil, err
	}

	resp, err := c.transport.Fetch(ctx, req.URL(), req)
	if err != nil {
		c.logs.LogFetchError(StageTransport, req.URL(), err)
		return nil, err
	}

	resp, err = c.responses.Run(ctx, resp)
	if err != nil {
		c.logs.LogFetchError(StageResponse, req.URL(), err)
		return nil, err
	}

	return resp, nil
}
