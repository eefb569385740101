// Package example implements example reducers in an outside package.
package example

import (
	"context"
	"log/slog"

	"github.com/advdv/bfetch"
)

// LogRequest provides an example for a request reducer that logs the request and passes it on unchanged.
func LogRequest(logs *slog.Logger) bfetch.Reducer[bfetch.Request] {
	return bfetch.ReducerFunc[bfetch.Request](func(ctx context.Context, req bfetch.Request) (bfetch.Request, error) {
		method, _ := req["method"].(string)
		logs.InfoContext(ctx, "fetching", slog.String("method", method), slog.String("url", req.URL()))

		return req, nil
	})
}

// Trace appends name to the "trace" field of the request, which makes reducer order visible in tests.
func Trace(name string) bfetch.Reducer[bfetch.Request] {
	return bfetch.ReducerFunc[bfetch.Request](func(_ context.Context, req bfetch.Request) (bfetch.Request, error) {
		trace, _ := req["trace"].(string)
		return req.With("trace", trace+name), nil
	})
}
