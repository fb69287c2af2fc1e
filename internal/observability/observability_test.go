package observability

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newRouter(logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RequestLogger(logger), RequestMetricsMiddleware())
	r.GET("/charts/:id", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFrom(c))
	})
	r.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newRouter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated", "", false},
		{"propagated", "abc-123", true},
		{"oversized", strings.Repeat("x", 200), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/charts/1", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == "" {
				t.Fatal("response has no request id")
			}
			if got != w.Body.String() {
				t.Errorf("handler saw %q, response header %q", w.Body.String(), got)
			}
			if (got == tt.incoming) != tt.keep {
				t.Errorf("request id = %q, incoming %q, keep %v", got, tt.incoming, tt.keep)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(slog.New(slog.NewTextHandler(&buf, nil)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	line := buf.String()
	for _, want := range []string{"level=ERROR", "msg=http_request", "path=/boom", "status=500", "request_id="} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q does not contain %q", line, want)
		}
	}
}

func TestRequestMetricsMiddleware(t *testing.T) {
	r := newRouter(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	counter := httpRequests.WithLabelValues(http.MethodGet, "/charts/:id", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/charts/"+id, nil))
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("requests_total for the route template grew by %v, want 3", got)
	}
}

func TestRecordChart(t *testing.T) {
	counter := charts.WithLabelValues("PLACIDUS", "false")
	before := testutil.ToFloat64(counter)

	RecordChart("PLACIDUS", false)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("charts_total grew by %v, want 1", got)
	}
}

type fakeCache struct{ hits, misses uint64 }

func (f *fakeCache) Hits() uint64   { return f.hits }
func (f *fakeCache) Misses() uint64 { return f.misses }
func (f *fakeCache) Len() int       { return 7 }

func TestRegisterCache(t *testing.T) {
	cache := &fakeCache{hits: 5, misses: 2}
	RegisterCache(cache)
	cache.hits = 9

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	want := map[string]float64{
		"starluck_ephemeris_cache_hits_total":   9,
		"starluck_ephemeris_cache_misses_total": 2,
		"starluck_ephemeris_cache_entries":      7,
	}
	for _, mf := range families {
		expected, ok := want[mf.GetName()]
		if !ok {
			continue
		}
		m := mf.GetMetric()[0]
		got := m.GetCounter().GetValue()
		if m.GetGauge() != nil {
			got = m.GetGauge().GetValue()
		}
		if got != expected {
			t.Errorf("%s = %v, want %v", mf.GetName(), got, expected)
		}
		delete(want, mf.GetName())
	}
	for name := range want {
		t.Errorf("metric %s not exported", name)
	}
}
