package api

import (
	"encoding/json"
	"net/http"

	"github.com/wisdomconnect/wisdom-connect/pkg/models"
	"github.com/wisdomconnect/wisdom-connect/pkg/repository"
)

type FeedbackHandler struct {
	feedbackRepo repository.FeedbackRepo
}

func NewFeedbackHandler(fr repository.FeedbackRepo) *FeedbackHandler {
	return &FeedbackHandler{feedbackRepo: fr}
}

type feedbackRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback,omitempty"`
	Concerns string `json:"concerns,omitempty"`
	Features string `json:"features,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

func (h *FeedbackHandler) submit(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	store func(r *http.Request, fb *models.Feedback) error,
) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	fb := models.Feedback{
		Rating:    req.Rating,
		Feedback:  req.Feedback,
		Concerns:  req.Concerns,
		Features:  req.Features,
		LinkedIn:  req.LinkedIn,
		UserAgent: r.UserAgent(),
		IP:        r.RemoteAddr,
	}
	if err := store(r, &fb); err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"success":    true,
		"message":    message,
		"feedbackId": fb.ID,
		"timestamp":  nowStamp(),
	}, http.StatusOK)
}

func (h *FeedbackHandler) Client(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "Thank you for your feedback! 🎉", func(r *http.Request, fb *models.Feedback) error {
		return h.feedbackRepo.SubmitClientFeedback(r.Context(), fb)
	})
}

func (h *FeedbackHandler) Expert(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, "Your expert insights are invaluable! 🙏", func(r *http.Request, fb *models.Feedback) error {
		return h.feedbackRepo.SubmitExpertFeedback(r.Context(), fb)
	})
}

// List is the admin view over both feedback collections.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	client, expert, err := h.feedbackRepo.ListFeedback(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"success":        true,
		"clientFeedback": client,
		"expertFeedback": expert,
		"totalClient":    len(client),
		"totalExpert":    len(expert),
	}, http.StatusOK)
}
