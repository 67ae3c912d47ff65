package http

import (
	"encoding/json"
	"log"
	"net/http"

	"guidance-service/internal/app"
	"guidance-service/internal/domain"
)

// HistoryHandler serves a user's saved assessment outcomes.
type HistoryHandler struct {
	service *app.AssessmentService
}

func NewHistoryHandler(service *app.AssessmentService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "missing userId", http.StatusBadRequest)
		return
	}

	entries, err := h.service.History(r.Context(), userID)
	if err != nil {
		log.Printf("listing history for user %s: %v", userID, err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entries)
}
