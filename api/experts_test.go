package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"log/slog"

	"github.com/wisdomconnect/wisdom-connect/api"
	"github.com/wisdomconnect/wisdom-connect/internal/config"
	"github.com/wisdomconnect/wisdom-connect/internal/store"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	api.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	cfg := &config.Config{
		Environment:         "test",
		EstimatedReviewTime: "48 hours",
		Waitlist:            config.WaitlistConfig{SocialProofBase: 247, EstimatedLaunch: "30 days"},
	}
	st := store.New(context.Background(), store.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	handler := api.SetupRoutes(cfg, "test", "unknown", st)
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		_ = st.Close()
	})
	return srv
}

func getJSON(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer res.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return res.StatusCode, body
}

func postJSON(t *testing.T, url string, payload any) (int, map[string]any) {
	t.Helper()
	b, _ := json.Marshal(payload)
	res, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer res.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return res.StatusCode, body
}

func itoa(i int64) string {
	return strconv.FormatInt(i, 10)
}

func TestSearchExpertsNoFilters(t *testing.T) {
	srv := setupServer(t)

	status, body := getJSON(t, srv.URL+"/api/experts")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["success"] != true {
		t.Fatalf("expected success envelope, got %v", body)
	}
	if int(body["total"].(float64)) != 4 {
		t.Fatalf("expected 4 seed experts, got %v", body["total"])
	}
	experts := body["experts"].([]any)
	// insertion order preserved
	for i, want := range []float64{1, 2, 3, 4} {
		got := experts[i].(map[string]any)["id"].(float64)
		if got != want {
			t.Fatalf("expected id %v at index %d, got %v", want, i, got)
		}
	}
	if _, ok := body["timestamp"].(string); !ok {
		t.Fatalf("missing timestamp in %v", body)
	}
}

func TestSearchExpertsFilters(t *testing.T) {
	srv := setupServer(t)

	cases := []struct {
		name  string
		query string
		want  int
	}{
		{name: "Industry", query: "industry=tech", want: 1},
		{name: "Experience", query: "experience=executive", want: 2},
		{name: "ExperienceNoSubstring", query: "experience=exec", want: 0},
		{name: "BudgetRange", query: "budget=2000-3000", want: 3},
		{name: "BudgetExcludesAbove", query: "budget=2000-3400", want: 3},
		// "ai" also matches "Supply Chain" and "Regulatory Affairs"
		{name: "KeywordsCaseInsensitive", query: "keywords=ai", want: 3},
		{name: "KeywordsSingleSkill", query: "keywords=lean", want: 1},
		{name: "Combined", query: "industry=finance&budget=3000-4000", want: 1},
		{name: "CombinedEmpty", query: "industry=finance&experience=veteran", want: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, body := getJSON(t, srv.URL+"/api/experts?"+c.query)
			if status != http.StatusOK {
				t.Fatalf("expected 200, got %d", status)
			}
			if got := int(body["total"].(float64)); got != c.want {
				t.Fatalf("query %q: expected %d results, got %d", c.query, c.want, got)
			}
		})
	}
}

func TestGetExpert(t *testing.T) {
	srv := setupServer(t)

	status, body := getJSON(t, srv.URL+"/api/experts/1")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	expert := body["expert"].(map[string]any)
	if expert["name"] != "Dr. Sarah Chen" {
		t.Fatalf("unexpected expert: %v", expert)
	}

	status, body = getJSON(t, srv.URL+"/api/experts/999")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", status)
	}
	if body["success"] != false || body["error"] == "" {
		t.Fatalf("expected failure envelope, got %v", body)
	}

	status, _ = getJSON(t, srv.URL+"/api/experts/abc")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for non-numeric id, got %d", status)
	}
}

func TestConnectExpert(t *testing.T) {
	srv := setupServer(t)

	status, body := postJSON(t, srv.URL+"/api/expert/connect", map[string]any{"expertId": 2})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, body)
	}
	if !strings.HasPrefix(body["connectionId"].(string), "CONN_") {
		t.Fatalf("unexpected connection code: %v", body["connectionId"])
	}
	expert := body["expert"].(map[string]any)
	if expert["name"] != "Robert Williams" || expert["industry"] != "Manufacturing" {
		t.Fatalf("expert identity not echoed: %v", expert)
	}

	status, _ = postJSON(t, srv.URL+"/api/expert/connect", map[string]any{"expertId": 999})
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown expert, got %d", status)
	}

	status, _ = postJSON(t, srv.URL+"/api/expert/connect", map[string]any{})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 without expert id, got %d", status)
	}
}
