package bot

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// WebhookHandler receives platform event batches over HTTP and feeds
// them to the dispatcher.
type WebhookHandler struct {
	dispatcher *Dispatcher
}

func NewWebhookHandler(dispatcher *Dispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher}
}

func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Events []WebhookEvent `json:"events"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid webhook body", http.StatusBadRequest)
		return
	}

	// The platform retries the whole batch on non-200, so individual
	// event failures are logged and swallowed.
	for _, evt := range body.Events {
		if err := h.dispatcher.Dispatch(r.Context(), evt); err != nil {
			log.Errorf("failed to handle webhook event: %v", err)
		}
	}

	w.WriteHeader(http.StatusOK)
}
