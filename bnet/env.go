package bnet

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must implement.
// Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	serviceName() string
	baseURL() string
	logLevel() zapcore.Level
	otelExporter() string
	rejectUnsuccessful() bool
	httpTimeout() time.Duration
	awsRegion() string
}

// BaseEnvironment contains the environment variables bnet understands.
// Embed this in your custom environment struct.
type BaseEnvironment struct {
	ServiceName string        `env:"BF_SERVICE_NAME,required"`
	LogLevel    zapcore.Level `env:"BF_LOG_LEVEL" envDefault:"info"`
	// BaseURL is prepended to every fetched path when set, see bfetch.PrependHost.
	BaseURL      string `env:"BF_BASE_URL"`
	OtelExporter string `env:"BF_OTEL_EXPORTER" envDefault:"stdout"`
	// RejectUnsuccessful appends bfetch.RejectIfUnsuccessful as the last response reducer.
	RejectUnsuccessful bool `env:"BF_REJECT_UNSUCCESSFUL" envDefault:"false"`
	// HTTPTimeout bounds a whole transport call. Zero means no timeout.
	HTTPTimeout time.Duration `env:"BF_HTTP_TIMEOUT" envDefault:"0s"`
	AWSRegion   string        `env:"AWS_REGION"`
}

func (e BaseEnvironment) serviceName() string {
	return e.ServiceName
}

func (e BaseEnvironment) baseURL() string {
	return e.BaseURL
}

func (e BaseEnvironment) logLevel() zapcore.Level {
	return e.LogLevel
}

func (e BaseEnvironment) otelExporter() string {
	return e.OtelExporter
}

func (e BaseEnvironment) rejectUnsuccessful() bool {
	return e.RejectUnsuccessful
}

func (e BaseEnvironment) httpTimeout() time.Duration {
	return e.HTTPTimeout
}

func (e BaseEnvironment) awsRegion() string {
	return e.AWSRegion
}

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}
		return e, nil
	}
}
