package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/wisdomconnect/wisdom-connect/pkg/models"
	"github.com/wisdomconnect/wisdom-connect/pkg/repository"
)

type ApplicationsHandler struct {
	appRepo    repository.ApplicationRepo
	reviewTime string
}

func NewApplicationsHandler(ar repository.ApplicationRepo, reviewTime string) *ApplicationsHandler {
	return &ApplicationsHandler{appRepo: ar, reviewTime: reviewTime}
}

type applicationRequest struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Experience   string   `json:"experience"`
	Industry     string   `json:"industry"`
	Rate         int      `json:"rate"`
	Skills       []string `json:"skills,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	LinkedIn     string   `json:"linkedin,omitempty"`
	Availability string   `json:"availability,omitempty"`
}

func (h *ApplicationsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	app := models.Application{
		Name:         req.Name,
		Title:        req.Title,
		Experience:   req.Experience,
		Industry:     req.Industry,
		Rate:         req.Rate,
		Skills:       req.Skills,
		Bio:          req.Bio,
		LinkedIn:     req.LinkedIn,
		Availability: req.Availability,
		UserAgent:    r.UserAgent(),
		IP:           r.RemoteAddr,
	}
	if err := h.appRepo.SubmitApplication(r.Context(), &app); err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"success":             true,
		"message":             "Application submitted successfully! 🎯",
		"applicationId":       app.ApplicationID,
		"estimatedReviewTime": h.reviewTime,
		"timestamp":           nowStamp(),
	}, http.StatusOK)
}

// List is the admin view over all submitted applications.
func (h *ApplicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.appRepo.ListApplications(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"success":      true,
		"applications": apps,
		"total":        len(apps),
	}, http.StatusOK)
}

// Approve promotes a pending application into a new directory entry.
func (h *ApplicationsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, "Application not found", http.StatusNotFound)
		return
	}

	expert, app, err := h.appRepo.ApproveApplication(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"success":     true,
		"message":     "Application approved successfully! 🎉",
		"expert":      expert,
		"application": app,
	}, http.StatusOK)
}
