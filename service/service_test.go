package service

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freePort reserves an ephemeral port and releases it for the server
// under test to claim.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func errorsTotalHasLabel(t *testing.T, substr string) bool {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "test262_errors_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if strings.Contains(l.GetValue(), substr) {
					return true
				}
			}
		}
	}
	return false
}

func TestNewAppliesDefaults(t *testing.T) {
	svc := New(Config{})
	assert.Equal(t, "0.0.0.0:8080", svc.healthzEndpoint())
	assert.Equal(t, "0.0.0.0:7300", svc.metricsEndpoint())
}

func TestNewRespectsConfiguredAddresses(t *testing.T) {
	svc := New(Config{
		HealthzAddr: "127.0.0.1",
		HealthzPort: 18080,
		MetricsAddr: "10.0.0.1",
		MetricsPort: 19300,
	})
	assert.Equal(t, "127.0.0.1:18080", svc.healthzEndpoint())
	assert.Equal(t, "10.0.0.1:19300", svc.metricsEndpoint())
}

func TestHealthzHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	(&HealthzServer{}).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestMetricsServerServesPrometheus(t *testing.T) {
	port := freePort(t)
	svc := New(Config{
		HealthzAddr: "127.0.0.1",
		HealthzPort: freePort(t),
		MetricsAddr: "127.0.0.1",
		MetricsPort: port,
	})
	svc.Start(context.Background())
	defer svc.Shutdown()

	url := fmt.Sprintf("http://127.0.0.1:%d/metrics", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 10*time.Millisecond)
}

func TestHealthzBindFailureRecordedUnderHealthzLabel(t *testing.T) {
	// Occupy a port so the healthz server cannot bind it.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	taken := ln.Addr().(*net.TCPAddr).Port

	svc := New(Config{
		HealthzAddr: "127.0.0.1",
		HealthzPort: taken,
		MetricsAddr: "127.0.0.1",
		MetricsPort: freePort(t),
	})
	svc.Start(context.Background())
	defer svc.Shutdown()

	require.Eventually(t, func() bool {
		return errorsTotalHasLabel(t, "error starting healthz server")
	}, 3*time.Second, 10*time.Millisecond)
}
