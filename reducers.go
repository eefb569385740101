package bfetch

import (
	"context"
	"strings"

	"github.com/samber/lo"
)

// PrependHost returns a request reducer that turns the absolute path in the request's url into a full url by
// prepending host. A single trailing slash on host is dropped so the result never contains "//" at the seam.
// Requests whose url does not start with "/" fail with a [*ReducerError].
func PrependHost(host string) Reducer[Request] {
	host = strings.TrimSuffix(host, "/")

	return ReducerFunc[Request](func(_ context.Context, req Request) (Request, error) {
		path := req.URL()
		if !strings.HasPrefix(path, "/") {
			return nil, NewReducerError("prependHost() requires an absolute path", Payload{"request": req})
		}

		return req.With("url", host+path), nil
	})
}

// HeaderProvider supplies headers for [AddHeaders].
type HeaderProvider interface {
	ProvideHeaders(ctx context.Context) (Headers, error)
}

// ProvideHeaders implements [HeaderProvider] with a static set of headers.
func (h Headers) ProvideHeaders(context.Context) (Headers, error) { return h, nil }

// HeadersFunc allow casting a function to implement [HeaderProvider]. It is called for every request so it may
// return fresh values each time, for example a short-lived token.
type HeadersFunc func(ctx context.Context) (Headers, error)

// ProvideHeaders implements the [HeaderProvider] interface.
func (f HeadersFunc) ProvideHeaders(ctx context.Context) (Headers, error) { return f(ctx) }

// AddHeaders returns a request reducer that adds the provided headers to the request. Headers already present on
// the request take precedence, the provided ones only fill in what is missing. Requests whose headers are of a type
// [Request.LookupHeaders] does not recognize fail with a [*ReducerError] instead of losing them.
func AddHeaders(p HeaderProvider) Reducer[Request] {
	return ReducerFunc[Request](func(ctx context.Context, req Request) (Request, error) {
		own, ok := req.LookupHeaders()
		if !ok {
			return nil, NewReducerError("addHeaders() requires string headers", Payload{"request": req})
		}

		defaults, err := p.ProvideHeaders(ctx)
		if err != nil {
			return nil, err
		}

		return req.With("headers", Headers(lo.Assign(defaults, own))), nil
	})
}

// ProcessBody returns a request reducer that replaces the request body with the result of fn. Requests without a
// body are returned as-is and fn is not called.
func ProcessBody(fn func(ctx context.Context, body any) (any, error)) Reducer[Request] {
	return ReducerFunc[Request](func(ctx context.Context, req Request) (Request, error) {
		body, ok := req.Body()
		if !ok {
			return req, nil
		}

		processed, err := fn(ctx, body)
		if err != nil {
			return nil, err
		}

		return req.With("body", processed), nil
	})
}

// RejectIfUnsuccessful is a response reducer that lets responses with a status in [200, 400) pass unchanged and
// fails all others with a [*ReducerError]. Use it as ReducerFunc[Response](RejectIfUnsuccessful).
func RejectIfUnsuccessful(_ context.Context, resp Response) (Response, error) {
	if status := resp.Status(); status < 200 || status >= 400 {
		return nil, NewReducerError("Response is not successful", Payload{"response": resp})
	}

	return resp, nil
}
