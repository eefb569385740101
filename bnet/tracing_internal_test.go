package bnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/propagators/aws/xray"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx/fxtest"
)

func TestNewExporter(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		exp, err := newExporter(t.Context(), "stdout")
		require.NoError(t, err)
		assert.NotNil(t, exp)
	})

	t.Run("empty defaults to stdout", func(t *testing.T) {
		exp, err := newExporter(t.Context(), "")
		require.NoError(t, err)
		assert.NotNil(t, exp)
	})

	t.Run("none", func(t *testing.T) {
		exp, err := newExporter(t.Context(), "none")
		require.NoError(t, err)
		assert.Nil(t, exp)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := newExporter(t.Context(), "jaeger")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unsupported BF_OTEL_EXPORTER: "jaeger"`)
	})
}

func TestNewPropagator(t *testing.T) {
	assert.IsType(t, xray.Propagator{}, NewPropagator(testEnv{otelExp: "xrayudp"}))

	fields := NewPropagator(testEnv{otelExp: "stdout"}).Fields()
	assert.Contains(t, fields, "traceparent")
	assert.Contains(t, fields, "baggage")
}

func TestNewTracerProvider(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	tp, err := NewTracerProvider(lc, testEnv{otelExp: "none"})
	require.NoError(t, err)
	assert.IsType(t, &sdktrace.TracerProvider{}, tp)

	lc.RequireStart()
	lc.RequireStop()
}
