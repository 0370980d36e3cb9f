package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInMemoryRecorder(t *testing.T) {
	t.Parallel()

	rec := NewInMemory()
	rec.RecordRequest(Request{Type: "POST", Name: "/api/v1/users", ResponseTime: 10 * time.Millisecond})
	rec.RecordRequest(Request{Type: "POST", Name: "/api/v1/users", ResponseTime: 30 * time.Millisecond, Err: errors.New("boom")})
	rec.RecordRequest(Request{Type: TypeGRPC, Name: "CreateUser", ResponseTime: 20 * time.Millisecond})

	snap := rec.Snapshot()
	if snap.Requests != 3 || snap.Failures != 1 {
		t.Errorf("Snapshot() = %+v, want 3 requests and 1 failure", snap)
	}
	if snap.ByName["POST /api/v1/users"] != 2 {
		t.Errorf("ByName = %v", snap.ByName)
	}
	if got := rec.MeanResponseTime(); got != 20*time.Millisecond {
		t.Errorf("MeanResponseTime() = %v, want 20ms", got)
	}
	if got := len(rec.Events()); got != 3 {
		t.Errorf("len(Events()) = %d, want 3", got)
	}
}

func TestMulti(t *testing.T) {
	t.Parallel()

	a, b := NewInMemory(), NewInMemory()
	rec := Multi(a, nil, b, NewNoop())
	rec.RecordRequest(Request{Type: "GET", Name: "/api/v1/accounts"})

	if a.Snapshot().Requests != 1 || b.Snapshot().Requests != 1 {
		t.Error("Multi() did not fan out to every recorder")
	}
}

func TestPrometheusRecorder(t *testing.T) {
	t.Parallel()

	rec := NewPrometheus()
	rec.RecordRequest(Request{Type: "GET", Name: "/api/v1/accounts", ResponseTime: time.Millisecond, ResponseLength: 512})
	rec.RecordRequest(Request{Type: "GET", Name: "/api/v1/accounts", Err: errors.New("timeout")})

	if got := testutil.ToFloat64(rec.requests.WithLabelValues("GET", "/api/v1/accounts", "success")); got != 1 {
		t.Errorf("success counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rec.requests.WithLabelValues("GET", "/api/v1/accounts", "failure")); got != 1 {
		t.Errorf("failure counter = %v, want 1", got)
	}

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), "gatewayperf_load_requests_total") {
		t.Errorf("metrics output missing request counter:\n%s", body)
	}
}
