package api

import (
	"github.com/gorilla/mux"
	"github.com/wisdomconnect/wisdom-connect/internal/config"
	"github.com/wisdomconnect/wisdom-connect/internal/store"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, st *store.Store) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers; the store implements every repository interface
	systemHandler := NewSystemHandler(cfg.Environment, st)
	expertsHandler := NewExpertsHandler(st, st)
	applicationsHandler := NewApplicationsHandler(st, cfg.EstimatedReviewTime)
	feedbackHandler := NewFeedbackHandler(st)
	waitlistHandler := NewWaitlistHandler(st, cfg.Waitlist.EstimatedLaunch)

	// System endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Directory
	api.HandleFunc("/experts", expertsHandler.Search).Methods("GET")
	api.HandleFunc("/experts/{id}", expertsHandler.Get).Methods("GET")
	api.HandleFunc("/expert/connect", expertsHandler.Connect).Methods("POST")

	// Intake
	api.HandleFunc("/expert/application", applicationsHandler.Submit).Methods("POST")
	api.HandleFunc("/feedback/client", feedbackHandler.Client).Methods("POST")
	api.HandleFunc("/feedback/expert", feedbackHandler.Expert).Methods("POST")
	api.HandleFunc("/waitlist", waitlistHandler.Join).Methods("POST")

	// Stats
	api.HandleFunc("/waitlist/stats", waitlistHandler.Stats).Methods("GET")
	api.HandleFunc("/stats", systemHandler.StatsHandler).Methods("GET")

	// Admin endpoints
	api.HandleFunc("/admin/applications", applicationsHandler.List).Methods("GET")
	api.HandleFunc("/admin/applications/{id}/approve", applicationsHandler.Approve).Methods("POST")
	api.HandleFunc("/admin/feedback", feedbackHandler.List).Methods("GET")

	return r
}
