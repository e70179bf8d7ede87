package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/wisdomconnect/wisdom-connect/pkg/repository"
)

// All responses use the {success: bool, ...} envelope. Failure payloads
// carry an "error" message; internal errors are reported generically
// unless development mode is on.

var devMode bool

// SetDevelopmentMode controls whether internal error messages are exposed
// to callers on 500 responses.
func SetDevelopmentMode(on bool) {
	devMode = on
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, map[string]any{"success": false, "error": msg}, status)
}

// writeFailure maps repository errors onto HTTP statuses: validation and
// conflict are 400, missing entities 404, everything else 500.
func writeFailure(w http.ResponseWriter, err error) {
	var ve *repository.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrExpertNotFound):
		writeError(w, "Expert not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrApplicationNotFound):
		writeError(w, "Application not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrAlreadyProcessed):
		writeError(w, "Application already processed", http.StatusBadRequest)
	default:
		logger.Error("internal error", slog.Any("err", err))
		msg := "Something went wrong!"
		if devMode {
			msg = err.Error()
		}
		writeError(w, msg, http.StatusInternalServerError)
	}
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
