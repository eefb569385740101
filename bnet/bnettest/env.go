package bnettest

import (
	"strconv"
	"testing"
	"time"
)

// Env provides a chainable builder for setting [bnet.BaseEnvironment] env vars
// via t.Setenv. Create one with [SetBaseEnv].
type Env struct {
	t testing.TB
}

// SetBaseEnv sets all [bnet.BaseEnvironment] env vars to sensible test defaults.
//
// Defaults:
//   - BF_SERVICE_NAME: "test"
//   - BF_LOG_LEVEL: "error"
//   - BF_OTEL_EXPORTER: "none"
//   - BF_BASE_URL: ""
//   - BF_REJECT_UNSUCCESSFUL: "false"
//   - BF_HTTP_TIMEOUT: "5s"
//   - AWS_REGION: "us-east-1"
//   - AWS_ACCESS_KEY_ID: "test"
//   - AWS_SECRET_ACCESS_KEY: "test"
//
// Use the returned [Env] to override individual values:
//
//	bnettest.SetBaseEnv(t).BaseURL(srv.URL).RejectUnsuccessful(true)
func SetBaseEnv(t testing.TB) *Env {
	t.Helper()
	t.Setenv("BF_SERVICE_NAME", "test")
	t.Setenv("BF_LOG_LEVEL", "error")
	t.Setenv("BF_OTEL_EXPORTER", "none")
	t.Setenv("BF_BASE_URL", "")
	t.Setenv("BF_REJECT_UNSUCCESSFUL", "false")
	t.Setenv("BF_HTTP_TIMEOUT", "5s")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	return &Env{t: t}
}

// ServiceName overrides BF_SERVICE_NAME.
func (e *Env) ServiceName(name string) *Env {
	e.t.Helper()
	e.t.Setenv("BF_SERVICE_NAME", name)
	return e
}

// BaseURL overrides BF_BASE_URL.
func (e *Env) BaseURL(url string) *Env {
	e.t.Helper()
	e.t.Setenv("BF_BASE_URL", url)
	return e
}

// RejectUnsuccessful overrides BF_REJECT_UNSUCCESSFUL.
func (e *Env) RejectUnsuccessful(v bool) *Env {
	e.t.Helper()
	e.t.Setenv("BF_REJECT_UNSUCCESSFUL", strconv.FormatBool(v))
	return e
}

// HTTPTimeout overrides BF_HTTP_TIMEOUT.
func (e *Env) HTTPTimeout(d time.Duration) *Env {
	e.t.Helper()
	e.t.Setenv("BF_HTTP_TIMEOUT", d.String())
	return e
}
