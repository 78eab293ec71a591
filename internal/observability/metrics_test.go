package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yungbote/neurobridge-tutorials/internal/platform/logger"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.WriteHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("scrape status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	return rec.Body.String()
}

func TestObserveTutorialExposition(t *testing.T) {
	m := NewMetrics()
	m.ObserveTutorial("styling", "styling", 8, 2*time.Millisecond)
	m.ObserveTutorial("styling", "styling", 8, 3*time.Millisecond)
	m.ObserveTutorial("mobile", "mobile-react-native", 6, time.Millisecond)

	out := scrape(t, m)
	for _, want := range []string{
		`nb_tutorials_generated_total{category="styling",provider="styling"} 2`,
		`nb_tutorials_generated_total{category="mobile",provider="mobile-react-native"} 1`,
		`nb_tutorial_sections_rendered_total{category="styling"} 16`,
		`nb_tutorial_generate_duration_seconds_count{category="styling"} 2`,
		`nb_tutorial_generate_duration_seconds_bucket{category="mobile",le="+Inf"} 1`,
		"# TYPE nb_api_inflight_requests gauge",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("exposition missing %q:\n%s", want, out)
		}
	}
}

func TestObserveAPICountsServerErrors(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("GET", "/api/tutorials/:languageId", "200", time.Millisecond)
	m.ObserveAPI("GET", "/api/tutorials/:languageId", "500", time.Millisecond)
	m.ObserveAPI("", "", "", 0)

	if got := testutil.ToFloat64(m.apiReqTotal); got != 3 {
		t.Fatalf("unexpected total: got=%v want=3", got)
	}
	if got := testutil.ToFloat64(m.apiReqError); got != 1 {
		t.Fatalf("unexpected errors: got=%v want=1", got)
	}
	if got := testutil.ToFloat64(m.apiRequests.WithLabelValues("UNKNOWN", "unknown", "0")); got != 1 {
		t.Fatalf("defaults not applied to blank labels: got=%v", got)
	}
}

func TestInflightGauge(t *testing.T) {
	m := NewMetrics()
	m.ApiInflightInc()
	m.ApiInflightInc()
	m.ApiInflightDec()
	if got := testutil.ToFloat64(m.apiInflight); got != 1 {
		t.Fatalf("unexpected inflight: got=%v want=1", got)
	}
}

func TestBatchAndCatalogGauges(t *testing.T) {
	m := NewMetrics()
	m.ObserveBatch(3, "ok")
	m.ObserveBatch(60, "rejected")
	m.SetCatalog(27, true)

	if got := testutil.ToFloat64(m.batchRequests.WithLabelValues("rejected")); got != 1 {
		t.Fatalf("rejected batches: got=%v want=1", got)
	}
	if got := testutil.ToFloat64(m.catalogFallback); got != 1 {
		t.Fatalf("fallback gauge: got=%v want=1", got)
	}
	m.SetCatalog(27, false)
	if got := testutil.ToFloat64(m.catalogFallback); got != 0 {
		t.Fatalf("fallback gauge: got=%v want=0", got)
	}
	if got := testutil.ToFloat64(m.catalogProviders); got != 27 {
		t.Fatalf("providers gauge: got=%v want=27", got)
	}
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ObserveTutorial("general", "general", 1, time.Millisecond)
	m.ObserveBatch(2, "ok")
	m.SetCatalog(27, false)

	rec := httptest.NewRecorder()
	m.WriteHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusServiceUnavailable)
	}
	if addr, err := m.StartServer(context.Background(), nil, "127.0.0.1:0"); addr != nil || err != nil {
		t.Fatalf("nil metrics should not listen: addr=%v err=%v", addr, err)
	}
}

func TestStartServerServesExposition(t *testing.T) {
	m := NewMetrics()
	m.ObserveTutorial("devops", "devops", 4, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if addr, err := m.StartServer(ctx, logger.Nop(), "  "); addr != nil || err != nil {
		t.Fatalf("blank addr should not listen: addr=%v err=%v", addr, err)
	}

	addr, err := m.StartServer(ctx, logger.Nop(), "127.0.0.1:0")
	if err != nil {
		t.Fatalf("StartServer: %v", err)
	}
	resp, err := http.Get("http://" + addr.String() + "/metrics")
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got=%d want=%d", resp.StatusCode, http.StatusOK)
	}
	if want := `nb_tutorials_generated_total{category="devops",provider="devops"} 1`; !strings.Contains(string(body), want) {
		t.Fatalf("exposition missing %q:\n%s", want, body)
	}
}

func TestStartServerRejectsBadAddr(t *testing.T) {
	m := NewMetrics()
	if _, err := m.StartServer(context.Background(), nil, "not-a-host:-1"); err == nil {
		t.Fatalf("expected listen error")
	}
}
