package bfetch

import (
	"log"
	"sync/atomic"
	"testing"
)

// Stage identifies the step of a fetch that failed.
type Stage int

const (
	StageRequest   Stage = iota + 1 // request reducers
	StageTransport                  // transport call
	StageResponse                   // response reducers
)

func (s Stage) String() string {
	switch s {
	case StageRequest:
		return "request"
	case StageTransport:
		return "transport"
	case StageResponse:
		return "response"
	default:
		return "unknown"
	}
}

// Logger can be implemented to get informed about failed fetches. The error is reported before it is returned to
// the caller unchanged, so a Logger must not hold on to it for mutation.
type Logger interface {
	LogFetchError(stage Stage, url string, err error)
}

type nopLogger struct{}

func (nopLogger) LogFetchError(Stage, string, error) {}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogFetchError(stage Stage, url string, err error) {
	l.Logger.Printf("bfetch: %s stage of %q failed: %s", stage, url, err)
}

func NewStdLogger(l *log.Logger) Logger {
	return stdLogger{l}
}

type TestLogger struct {
	tb testing.TB

	NumRequestErrors   int64
	NumTransportErrors int64
	NumResponseErrors  int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogFetchError(stage Stage, url string, err error) {
	switch stage {
	case StageRequest:
		atomic.AddInt64(&l.NumRequestErrors, 1)
	case StageTransport:
		atomic.AddInt64(&l.NumTransportErrors, 1)
	case StageResponse:
		atomic.AddInt64(&l.NumResponseErrors, 1)
	}

	l.tb.Logf("bfetch: %s stage of %q failed: %s", stage, url, err)
}

var _ Logger = &TestLogger{}
