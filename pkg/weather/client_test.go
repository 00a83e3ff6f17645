package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/current" {
			t.Errorf("Expected path /v1/current, got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("lat"); got != "48.2082" {
			t.Errorf("Expected lat=48.2082, got %s", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("Expected api_key=test-key, got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"temp_c": 21.5, "humidity": 60, "condition": "clear"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithAPIKey("test-key"))

	obs, err := client.Current(context.Background(), 48.2082, 16.3738)
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if obs.TempC != 21.5 {
		t.Errorf("Expected TempC=21.5, got %.1f", obs.TempC)
	}
	if obs.Humidity != 60 {
		t.Errorf("Expected Humidity=60, got %.1f", obs.Humidity)
	}
}

func TestClientForecasts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/forecast/hourly":
			if got := r.URL.Query().Get("hours"); got != "24" {
				t.Errorf("Expected hours=24, got %s", got)
			}
			w.Write([]byte(`[{"temp_c": 18, "precip_prob": 40}]`))
		case "/v1/forecast/daily":
			if got := r.URL.Query().Get("days"); got != "5" {
				t.Errorf("Expected days=5, got %s", got)
			}
			w.Write([]byte(`[{"temp_max_c": 25, "temp_min_c": 12}]`))
		default:
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	hourly, err := client.HourlyForecast(ctx, 48.2, 16.4, 24)
	if err != nil {
		t.Fatalf("HourlyForecast failed: %v", err)
	}
	if len(hourly) != 1 || hourly[0].PrecipProb != 40 {
		t.Errorf("Expected one hourly point with precip_prob=40, got %+v", hourly)
	}

	daily, err := client.DailyForecast(ctx, 48.2, 16.4, 5)
	if err != nil {
		t.Fatalf("DailyForecast failed: %v", err)
	}
	if len(daily) != 1 || daily[0].TempMaxC != 25 {
		t.Errorf("Expected one daily point with temp_max_c=25, got %+v", daily)
	}
}

func TestClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	if _, err := client.Current(context.Background(), 48.2, 16.4); err == nil {
		t.Fatal("Expected error for a 429 response")
	}
}
