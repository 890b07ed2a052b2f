package telemetry

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracing_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	tr, err := NewTracing(context.Background())
	require.NoError(t, err)
	assert.False(t, tr.Enabled())
	assert.NotNil(t, tr.Provider())
	assert.NoError(t, tr.Shutdown(context.Background()))

	var nilTracing *Tracing
	assert.False(t, nilTracing.Enabled())
	assert.NotNil(t, nilTracing.Provider())
}

func TestTracing_EnabledWithEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	t.Setenv("OTEL_SERVICE_NAME", "lucid-test")

	tr, err := NewTracing(context.Background())
	require.NoError(t, err)
	assert.True(t, tr.Enabled())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, tr.Shutdown(ctx))
}

func TestMetricsServer_ServesRegistry(t *testing.T) {
	reg := NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "lucid_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	srv := NewMetricsServer("127.0.0.1:0", reg)
	require.NoError(t, srv.Start())
	defer srv.Stop(context.Background())

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "lucid_test_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetricsServer_BindError(t *testing.T) {
	first := NewMetricsServer("127.0.0.1:0", NewRegistry())
	require.NoError(t, first.Start())
	defer first.Stop(context.Background())

	second := NewMetricsServer(first.Addr(), NewRegistry())
	assert.Error(t, second.Start())
}
