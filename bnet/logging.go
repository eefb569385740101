package bnet

import (
	"github.com/advdv/bfetch"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger configured from the environment.
// BF_LOG_LEVEL controls the level (debug, info, warn, error).
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build(zap.Fields(zap.String("service", env.serviceName())))
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogFetchError(stage bfetch.Stage, url string, err error) {
	l.Logger.Warn("fetch failed",
		zap.Stringer("stage", stage),
		zap.String("url", url),
		zap.Error(err))
}

// NewFetchLogger adapts a zap logger to the bfetch.Logger interface.
func NewFetchLogger(l *zap.Logger) bfetch.Logger {
	return zapLogger{l.Named("bfetch")}
}
