package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LavaJover/football-team-service/internal/infrastructure/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRequestLoggerAssignsID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var seenID string
	r := chi.NewRouter()
	r.Use(RequestLogger(logger, nil))
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		LoggerFromContext(r.Context()).Info("inside")
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	header := rec.Header().Get(RequestIDHeader)
	if header == "" || header != seenID {
		t.Fatalf("expected request id in header and context, got %q / %q", header, seenID)
	}
	if !strings.Contains(buf.String(), `"request_id":"`+header+`"`) {
		t.Fatalf("log lines missing request id: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"status":418`) {
		t.Fatalf("completion log missing status: %s", buf.String())
	}
}

func TestRequestLoggerKeepsValidIncomingID(t *testing.T) {
	h := RequestLogger(slog.Default(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected incoming id to be kept, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "bad id with spaces")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got == "bad id with spaces" || got == "" {
		t.Fatalf("expected invalid id to be replaced, got %q", got)
	}
}

func TestRequestLoggerRecordsRoutePattern(t *testing.T) {
	m := metrics.NewTeamMetrics(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(RequestLogger(slog.Default(), m))
	r.Get("/api/equipes/{acronym}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/equipes/OGCN", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/equipes/PSG", nil))

	got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("/api/equipes/{acronym}", http.MethodGet, "404"))
	if got != 2 {
		t.Fatalf("expected 2 requests under the route pattern, got %v", got)
	}
}

func TestLoggerFromContextFallback(t *testing.T) {
	if LoggerFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()) == nil {
		t.Fatal("expected default logger")
	}
}
