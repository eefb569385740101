// Package bnettest provides test helpers for bnet applications.
//
// It constructs the identical DI graph as [bnet.NewApp] but uses
// [fxtest.App] which fails the test immediately on DI errors.
//
// Example:
//
//	bnettest.SetBaseEnv(t).BaseURL(srv.URL)
//	app := bnettest.New[bnet.BaseEnvironment](t, func(c *bfetch.Client) { client = c })
//	app.RequireStart()
//	t.Cleanup(app.RequireStop)
package bnettest

import (
	"testing"

	"github.com/advdv/bfetch/bnet"
	"go.uber.org/fx/fxtest"
)

// App embeds *fxtest.App for testing bnet applications.
type App struct {
	*fxtest.App
}

// New creates a test app with the same DI graph as [bnet.NewApp].
func New[E bnet.Environment](t testing.TB, invoke any, opts ...bnet.Option) *App {
	return &App{App: fxtest.New(t, bnet.FxOptions[E](invoke, opts...)...)}
}
