package api

import (
	"fmt"
	"net/http"

	"github.com/wisdomconnect/wisdom-connect/pkg/repository"
)

type SystemHandler struct {
	environment string
	expertRepo  repository.ExpertRepo
}

func NewSystemHandler(environment string, er repository.ExpertRepo) *SystemHandler {
	return &SystemHandler{environment: environment, expertRepo: er}
}

func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":      "healthy",
		"timestamp":   nowStamp(),
		"environment": h.environment,
	}, http.StatusOK)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","buildTime":"%s"}`, version, buildTime)
	}
}

// StatsHandler serves the platform-wide aggregate numbers.
func (h *SystemHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.expertRepo.PlatformStats(r.Context())
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
