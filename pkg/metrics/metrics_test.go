package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)

	m.RegisterCounter("signup_requests_total", "Total number of signup requests received")
	m.IncCounter("signup_requests_total")
	m.IncCounter("signup_requests_total")
	m.AddCounter("signup_requests_total", 3)

	got := testutil.ToFloat64(m.counters["signup_requests_total"])
	if got != 5 {
		t.Errorf("counter value = %v, want 5", got)
	}
}

func TestMetrics_UnregisteredNamesAreIgnored(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)

	// Neither call should panic or register anything implicitly.
	m.IncCounter("never_registered_total")
	m.ObserveHistogram("never_registered_seconds", 0.5)

	if len(m.counters) != 0 || len(m.histograms) != 0 {
		t.Errorf("unregistered metric names must not create collectors")
	}
}

func TestMetrics_Histogram(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)

	m.RegisterHistogram("login_duration_seconds", "Duration of login requests in seconds",
		[]float64{0.1, 0.5, 1})
	m.ObserveHistogram("login_duration_seconds", 0.3)
	m.ObserveHistogram("login_duration_seconds", 0.7)

	count := testutil.CollectAndCount(m.histograms["login_duration_seconds"])
	if count != 1 {
		t.Errorf("histogram collector count = %d, want 1", count)
	}
}

func TestMetrics_CounterVec(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)

	m.RegisterCounterVec("requests_total", "Total requests by route", []string{"route"})
	m.IncCounterVec("requests_total", "/blogs")
	m.IncCounterVec("requests_total", "/blogs")
	m.IncCounterVec("requests_total", "/users")

	got := testutil.ToFloat64(m.counterVecs["requests_total"].WithLabelValues("/blogs"))
	if got != 2 {
		t.Errorf("counter vec value = %v, want 2", got)
	}
}

func TestMetrics_GetRegistry(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)
	if m.GetRegistry() == nil {
		t.Errorf("GetRegistry() returned nil")
	}
}
