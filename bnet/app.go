package bnet

import (
	"context"
	"net/http"
	"slices"

	"github.com/advdv/bfetch"
	"github.com/aws/aws-sdk-go-v2/aws"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// App wraps an fx.App for lifecycle management.
type App struct {
	app *fx.App
}

// AppConfig holds configuration for the app.
type AppConfig struct {
	FxOptions []fx.Option
}

// Option configures the App.
type Option func(*AppConfig)

// WithConfig supplies the reducer configuration of the fetch client. Reducers derived from the environment
// (BF_BASE_URL, BF_REJECT_UNSUCCESSFUL) are added around the ones given here.
//
// Configurations that depend on other injected values can be provided with fx instead:
//
//	bnet.WithFx(fx.Provide(func(sr bnet.SecretReader) bfetch.Config {
//	    return bfetch.Config{RequestReducers: []bfetch.Reducer[bfetch.Request]{
//	        bfetch.AddHeaders(bnet.SecretHeader(sr, "Authorization", "api-token")),
//	    }}
//	}))
func WithConfig(cfg bfetch.Config) Option {
	return func(c *AppConfig) {
		c.FxOptions = append(c.FxOptions, fx.Supply(cfg))
	}
}

// WithAWSSecrets provides an AWS config and a SecretReader backed by AWS Secrets Manager.
func WithAWSSecrets() Option {
	return func(c *AppConfig) {
		c.FxOptions = append(c.FxOptions,
			fx.Provide(provideAWSConfig),
			fx.Provide(func(cfg aws.Config) (SecretReader, error) {
				return NewAWSSecretReader(cfg)
			}),
		)
	}
}

// WithFx adds fx options for dependency injection.
func WithFx(fxOpts ...fx.Option) Option {
	return func(c *AppConfig) {
		c.FxOptions = append(c.FxOptions, fxOpts...)
	}
}

// FetchClientParams holds the dependencies for creating the fetch client.
type FetchClientParams struct {
	fx.In

	Env       Environment
	Transport bfetch.Transport
	Logger    *zap.Logger
	Config    bfetch.Config `optional:"true"`
}

// NewFetchClient creates the bfetch client from the supplied configuration and the environment. BF_BASE_URL
// becomes the first request reducer, BF_REJECT_UNSUCCESSFUL the last response reducer. Failures are logged with
// zap unless the configuration has its own logger.
func NewFetchClient(params FetchClientParams) *bfetch.Client {
	cfg := params.Config

	if base := params.Env.baseURL(); base != "" {
		cfg.RequestReducers = append([]bfetch.Reducer[bfetch.Request]{bfetch.PrependHost(base)}, cfg.RequestReducers...)
	}

	if params.Env.rejectUnsuccessful() {
		cfg.ResponseReducers = append(slices.Clone(cfg.ResponseReducers),
			bfetch.ReducerFunc[bfetch.Response](bfetch.RejectIfUnsuccessful))
	}

	if cfg.Logger == nil {
		cfg.Logger = NewFetchLogger(params.Logger)
	}

	return bfetch.NewClient(params.Transport, cfg)
}

// FxOptions returns the fx options that make up a bnet app: environment, logging, tracing, the instrumented HTTP
// transport and the fetch client, followed by the invoke function and any user options.
func FxOptions[E Environment](invoke any, opts ...Option) []fx.Option {
	var cfg AppConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	baseOpts := make([]fx.Option, 0, 12+len(cfg.FxOptions))
	baseOpts = append(baseOpts, []fx.Option{
		fx.NopLogger,
		fx.Provide(ParseEnv[E]()),
		fx.Provide(func(e E) Environment { return e }),
		fx.Provide(func(e E) (*zap.Logger, error) { return NewLogger(e) }),
		fx.Provide(NewTracerProvider),
		fx.Provide(NewPropagator),
		fx.Provide(NewHTTPTransport),
		fx.Provide(NewHTTPClient),
		fx.Provide(func(c *http.Client) bfetch.Transport { return NewTransport(c) }),
		fx.Provide(NewFetchClient),
		fx.Provide(func(c *bfetch.Client) bfetch.FetchFunc { return c.Fetch }),
		fx.Invoke(invoke),
	}...)

	return append(baseOpts, cfg.FxOptions...)
}

// NewApp creates a batteries-included app around a bfetch client.
//
// The invoke function can request any types that are provided via fx options,
// typically *bfetch.Client or bfetch.FetchFunc.
//
// Example:
//
//	bnet.NewApp[Env](func(lc fx.Lifecycle, fetch bfetch.FetchFunc) {
//	    lc.Append(fx.StartHook(func(ctx context.Context) error {
//	        _, err := fetch(ctx, "/health", nil)
//	        return err
//	    }))
//	}, bnet.WithConfig(cfg)).Run()
func NewApp[E Environment](invoke any, opts ...Option) *App {
	return &App{
		app: fx.New(FxOptions[E](invoke, opts...)...),
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() {
	a.app.Run()
}

// Start starts the application with the given context.
func (a *App) Start(ctx context.Context) error {
	if err := a.app.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), a.app.StopTimeout())
	defer cancel()

	return a.app.Stop(stopCtx)
}
