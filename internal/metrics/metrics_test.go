package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Recorder(t *testing.T) {
	m := New()

	m.ObserveLookup("ok", 20*time.Millisecond)
	m.ObserveLookup("ok", 30*time.Millisecond)
	m.ObserveLookup("absent", time.Millisecond)
	m.ObserveEstimate("good")

	if got := testutil.ToFloat64(m.LookupsTotal.WithLabelValues("ok")); got != 2 {
		t.Errorf("ok lookups = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.LookupsTotal.WithLabelValues("absent")); got != 1 {
		t.Errorf("absent lookups = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.EstimatesTotal.WithLabelValues("good")); got != 1 {
		t.Errorf("good estimates = %v, want 1", got)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.Init("test")
	m.ObserveRequest(http.MethodGet, "/api/v1/tiers", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	out := string(body)

	for _, want := range []string{
		`ytworth_application_info{version="test"} 1`,
		`ytworth_http_requests_total{method="GET",path="/api/v1/tiers",status_code="200"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
