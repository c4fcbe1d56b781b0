package app

import (
	"net/http"

	"github.com/akademos/schedulebot/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all HTTP endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	webhook := r.PathPrefix("/webhook").Subrouter()
	webhook.Use(SignatureValidator(cfg.Platform.ChannelSecret))
	webhook.HandleFunc("", deps.WebhookHandler.Receive).Methods("POST")

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
}
