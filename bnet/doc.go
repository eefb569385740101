// Package bnet provides a batteries-included setup for running bfetch clients over net/http.
//
// # Overview
//
// bnet takes care of the boilerplate around a [bfetch.Client]: environment parsing, structured logging,
// OpenTelemetry tracing of outbound requests, secrets for authentication headers and lifecycle management with
// fx. A complete application can be created in a single call:
//
//	bnet.NewApp[bnet.BaseEnvironment](func(lc fx.Lifecycle, fetch bfetch.FetchFunc) {
//	    lc.Append(fx.StartHook(func(ctx context.Context) error {
//	        _, err := fetch(ctx, "/health", nil)
//	        return err
//	    }))
//	}, bnet.WithConfig(bfetch.Config{
//	    RequestReducers: []bfetch.Reducer[bfetch.Request]{
//	        bfetch.AddHeaders(bfetch.Headers{"Accept": "application/json"}),
//	    },
//	})).Run()
//
// # Environment Configuration
//
// Define your environment by embedding [BaseEnvironment]:
//
//	type Env struct {
//	    bnet.BaseEnvironment
//	    APIVersion string `env:"API_VERSION" envDefault:"v1"`
//	}
//
// BaseEnvironment provides the following environment variables:
//
//	| Variable               | Required | Default | Description                                          |
//	|------------------------|----------|---------|------------------------------------------------------|
//	| BF_SERVICE_NAME        | Yes      | -       | Service name for logging and tracing                 |
//	| BF_BASE_URL            | No       | -       | Host prepended to every path (bfetch.PrependHost)    |
//	| BF_LOG_LEVEL           | No       | info    | Log level (debug, info, warn, error)                 |
//	| BF_OTEL_EXPORTER       | No       | stdout  | Trace exporter: "stdout", "xrayudp" or "none"        |
//	| BF_REJECT_UNSUCCESSFUL | No       | false   | Fail responses outside of [200, 400)                 |
//	| BF_HTTP_TIMEOUT        | No       | 0s      | Timeout of a single transport call, 0 disables it    |
//	| AWS_REGION             | No       | -       | Region of the Secrets Manager client                 |
//
// # Transport
//
// [Transport] implements bfetch.Transport with github.com/carlmjohnson/requests on top of an *http.Client whose
// RoundTripper is instrumented with otelhttp. The request's "method", "headers" and "body" are sent; string and
// []byte bodies are sent as-is, io.Reader bodies are streamed and anything else is encoded as JSON. The response
// holds "status", "statusText", "headers", "url" and the raw "body". Status codes are never errors at this level.
//
// # Reducers
//
// Next to the reducers of package bfetch, bnet provides:
//
//   - [ExtractJSON] replaces a JSON response body with the value at a gjson path
//   - [SecretHeader] is a header provider for bfetch.AddHeaders backed by a [SecretReader]
//
// Use [WithAWSSecrets] to get an AWS Secrets Manager backed [SecretReader] injected, and provide a
// bfetch.Config that depends on it with [WithFx].
//
// # Testing
//
// Package bnettest builds the same dependency graph with fxtest and sets test defaults for the environment.
package bnet
