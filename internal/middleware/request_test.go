package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vibewealth/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" {
		t.Fatalf("expected generated request id")
	}
	if rr.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("expected response header %q, got %q", seen, rr.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "abc-123" {
		t.Fatalf("expected caller id to be kept, got %q", seen)
	}
}

func TestRequestLoggerFields(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := RequestID(RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/goals", nil))

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatalf("expected a log entry")
	}
	if entry.Level != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", entry.Level)
	}
	if entry.Data["status"] != http.StatusTeapot || entry.Data["path"] != "/goals" || entry.Data["method"] != http.MethodPost {
		t.Fatalf("unexpected fields: %v", entry.Data)
	}
	if entry.Data["request_id"] == "" {
		t.Fatalf("expected request id field")
	}
}

func TestRequestLoggerWarnsOnServerError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.WarnLevel {
		t.Fatalf("expected warn entry")
	}
}

func TestHTTPMetricsUsesRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(HTTPMetrics)
	router.Put("/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {})

	before := testutil.CollectAndCount(metrics.HTTPLatency)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/accounts/41", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/accounts/42", nil))
	after := testutil.CollectAndCount(metrics.HTTPLatency)
	if after-before != 1 {
		t.Fatalf("expected one new series for the route pattern, got %d", after-before)
	}
}
