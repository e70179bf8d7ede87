package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/wisdomconnect/wisdom-connect/pkg/models"
	"github.com/wisdomconnect/wisdom-connect/pkg/repository"
)

type ExpertsHandler struct {
	expertRepo     repository.ExpertRepo
	connectionRepo repository.ConnectionRepo
}

func NewExpertsHandler(er repository.ExpertRepo, cr repository.ConnectionRepo) *ExpertsHandler {
	return &ExpertsHandler{expertRepo: er, connectionRepo: cr}
}

// Search filters the directory by the optional industry, experience,
// budget and keywords query parameters.
func (h *ExpertsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.ExpertFilter{
		Industry:   q.Get("industry"),
		Experience: q.Get("experience"),
		Budget:     q.Get("budget"),
		Keywords:   q.Get("keywords"),
	}

	experts, err := h.expertRepo.SearchExperts(r.Context(), f)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"success":   true,
		"experts":   experts,
		"total":     len(experts),
		"timestamp": nowStamp(),
	}, http.StatusOK)
}

func (h *ExpertsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, "Expert not found", http.StatusNotFound)
		return
	}

	expert, err := h.expertRepo.GetExpert(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, map[string]any{"success": true, "expert": expert}, http.StatusOK)
}

type connectRequest struct {
	ExpertID int64 `json:"expertId"`
}

// Connect records a request to be introduced to an expert and echoes the
// expert's public identity back.
func (h *ExpertsHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	conn := models.Connection{
		ExpertID:  req.ExpertID,
		UserAgent: r.UserAgent(),
		IP:        r.RemoteAddr,
	}
	expert, err := h.connectionRepo.RequestConnection(r.Context(), &conn)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"success":      true,
		"message":      "Connection request sent successfully! 💫",
		"connectionId": conn.ConnectionID,
		"expert": map[string]any{
			"id":       expert.ID,
			"name":     expert.Name,
			"industry": expert.Industry,
		},
		"timestamp": nowStamp(),
	}, http.StatusOK)
}
