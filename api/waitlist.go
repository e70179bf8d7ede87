package api

import (
	"encoding/json"
	"net/http"

	"github.com/wisdomconnect/wisdom-connect/pkg/models"
	"github.com/wisdomconnect/wisdom-connect/pkg/repository"
)

type WaitlistHandler struct {
	waitlistRepo    repository.WaitlistRepo
	estimatedLaunch string
}

func NewWaitlistHandler(wr repository.WaitlistRepo, estimatedLaunch string) *WaitlistHandler {
	return &WaitlistHandler{waitlistRepo: wr, estimatedLaunch: estimatedLaunch}
}

type waitlistRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Challenge       string `json:"challenge,omitempty"`
	PreferredExpert string `json:"preferredExpert,omitempty"`
	Source          string `json:"source,omitempty"`
}

// Join signs a visitor up for early access. The returned position is a
// display-only number, not a real queue rank.
func (h *WaitlistHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req waitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	entry := models.WaitlistEntry{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Challenge:       req.Challenge,
		PreferredExpert: req.PreferredExpert,
		Source:          req.Source,
		UserAgent:       r.UserAgent(),
		IP:              r.RemoteAddr,
	}
	position, err := h.waitlistRepo.JoinWaitlist(r.Context(), &entry)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"success":         true,
		"message":         "Welcome to the revolution! 🚀",
		"waitlistId":      entry.WaitlistID,
		"position":        position,
		"estimatedLaunch": h.estimatedLaunch,
		"timestamp":       nowStamp(),
	}, http.StatusOK)
}

func (h *WaitlistHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.waitlistRepo.WaitlistStats(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"success":   true,
		"stats":     stats,
		"timestamp": nowStamp(),
	}, http.StatusOK)
}
