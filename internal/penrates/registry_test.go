package penrates

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestUnconfiguredUsesDefault(t *testing.T) {
	Configure("", 0)

	if got := WeeklyRate(); got != DefaultWeeklyRate {
		t.Fatalf("expected default weekly rate %v, got %v", DefaultWeeklyRate, got)
	}
	want := DefaultWeeklyRate * 52
	if got := AnnualAmount(); math.Abs(got-want) > 0.001 {
		t.Fatalf("expected annual amount %v, got %v", want, got)
	}
}

func TestFetchAndCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/state-pension/current" {
			http.NotFound(w, r)
			return
		}
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tax_year":"2023-24","weekly_rate":221.20}`))
	}))
	defer srv.Close()

	Configure(srv.URL, time.Second)
	defer Configure("", 0)

	if got := WeeklyRate(); got != 221.20 {
		t.Fatalf("expected weekly rate 221.20, got %v", got)
	}
	if got := WeeklyRate(); got != 221.20 {
		t.Fatalf("expected cached weekly rate 221.20, got %v", got)
	}
	if calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls)
	}
}

func TestFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	Configure(srv.URL, time.Second)
	defer Configure("", 0)

	if got := WeeklyRate(); got != DefaultWeeklyRate {
		t.Fatalf("expected fallback to default, got %v", got)
	}
}

func TestFallbackOnBadRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tax_year":"2023-24","weekly_rate":0}`))
	}))
	defer srv.Close()

	Configure(srv.URL, time.Second)
	defer Configure("", 0)

	if got := WeeklyRate(); got != DefaultWeeklyRate {
		t.Fatalf("expected fallback on non-positive rate, got %v", got)
	}
}
