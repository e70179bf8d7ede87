package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wisdomconnect/wisdom-connect/api"
	"github.com/wisdomconnect/wisdom-connect/pkg/repository/mock"
)

// repository failures must surface as 500 envelopes with the internal
// message suppressed outside development mode
func TestInternalErrorSuppression(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.ExpertRepo.Err = errors.New("disk on fire")
	h := api.NewExpertsHandler(mocks.ExpertRepo, nil)

	api.SetDevelopmentMode(false)
	w := httptest.NewRecorder()
	h.Search(w, httptest.NewRequest(http.MethodGet, "/api/experts", nil))
	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}
	var body map[string]any
	_ = json.NewDecoder(res.Body).Decode(&body)
	if strings.Contains(body["error"].(string), "disk on fire") {
		t.Fatalf("internal message leaked: %v", body["error"])
	}

	api.SetDevelopmentMode(true)
	defer api.SetDevelopmentMode(false)
	w2 := httptest.NewRecorder()
	h.Search(w2, httptest.NewRequest(http.MethodGet, "/api/experts", nil))
	res2 := w2.Result()
	defer res2.Body.Close()
	var body2 map[string]any
	_ = json.NewDecoder(res2.Body).Decode(&body2)
	if !strings.Contains(body2["error"].(string), "disk on fire") {
		t.Fatalf("expected internal message in development mode, got %v", body2["error"])
	}
}

func TestFeedbackRepoFailure(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.FeedbackRepo.SubmitErr = errors.New("write failed")
	h := api.NewFeedbackHandler(mocks.FeedbackRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/feedback/client", strings.NewReader(`{"rating":5}`))
	h.Client(w, req)
	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 when repo fails, got %d", res.StatusCode)
	}
	var body map[string]any
	_ = json.NewDecoder(res.Body).Decode(&body)
	if body["success"] != false {
		t.Fatalf("expected failure envelope, got %v", body)
	}
}
