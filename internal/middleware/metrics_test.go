package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"noteshub/internal/metrics"
)

// counterValue sums all samples of a counter family in the registry.
func counterValue(t *testing.T, m *metrics.Metrics, family string) float64 {
	t.Helper()
	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	var total float64
	for _, f := range families {
		if f.GetName() != family {
			continue
		}
		for _, mf := range f.GetMetric() {
			total += mf.GetCounter().GetValue()
		}
	}
	return total
}

func TestMetricsMiddleware(t *testing.T) {
	t.Run("records requests with chi route pattern", func(t *testing.T) {
		m := metrics.NewMetrics("test", "go1.25.0")

		r := chi.NewRouter()
		r.Use(Metrics(m))
		r.Get("/{locale}/posts/{slug}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		for _, path := range []string{"/en/posts/grep-basics", "/vi/posts/sorting-algorithms"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			r.ServeHTTP(httptest.NewRecorder(), req)
		}

		if got := counterValue(t, m, "noteshub_http_requests_total"); got != 2 {
			t.Errorf("requests counted = %v, want 2", got)
		}

		// Both paths should share the single route pattern label.
		families, err := m.Registry.Gather()
		if err != nil {
			t.Fatalf("Gather: %v", err)
		}
		for _, f := range families {
			if f.GetName() != "noteshub_http_requests_total" {
				continue
			}
			if n := len(f.GetMetric()); n != 1 {
				t.Errorf("expected 1 label combination for shared route pattern, got %d", n)
			}
			for _, mf := range f.GetMetric() {
				for _, lp := range mf.GetLabel() {
					if lp.GetName() == "route" && lp.GetValue() != "/{locale}/posts/{slug}" {
						t.Errorf("route label = %q, want pattern", lp.GetValue())
					}
				}
			}
		}
	})

	t.Run("captures error statuses", func(t *testing.T) {
		m := metrics.NewMetrics("test", "go1.25.0")

		r := chi.NewRouter()
		r.Use(Metrics(m))
		r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusNotFound)
		})

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		r.ServeHTTP(httptest.NewRecorder(), req)

		families, err := m.Registry.Gather()
		if err != nil {
			t.Fatalf("Gather: %v", err)
		}
		found := false
		for _, f := range families {
			if f.GetName() != "noteshub_http_requests_total" {
				continue
			}
			for _, mf := range f.GetMetric() {
				for _, lp := range mf.GetLabel() {
					if lp.GetName() == "status" && lp.GetValue() == "404" {
						found = true
					}
				}
			}
		}
		if !found {
			t.Error("404 status label not recorded")
		}
	})

	t.Run("works outside a chi router", func(t *testing.T) {
		m := metrics.NewMetrics("test", "go1.25.0")

		handler := Metrics(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/plain", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if got := counterValue(t, m, "noteshub_http_requests_total"); got != 1 {
			t.Errorf("requests counted = %v, want 1", got)
		}
	})
}
