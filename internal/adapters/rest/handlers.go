package rest

import (
	"encoding/json"
	"net/http"

	"housing-watcher-service/internal/core/usecase"
)

// SubscribersHandler - операторская ручка: подписать чат можно не только
// командой бота, но и напрямую по HTTP.
type SubscribersHandler struct {
	subscribeUC *usecase.SubscribeUseCase
}

func NewSubscribersHandler(subscribeUC *usecase.SubscribeUseCase) *SubscribersHandler {
	return &SubscribersHandler{subscribeUC: subscribeUC}
}

func (h *SubscribersHandler) AddSubscriber(w http.ResponseWriter, r *http.Request) {
	var req AddSubscriberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "AddSubscriberHandler: invalid request body")
		return
	}
	if req.ChatID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "AddSubscriberHandler: chat_id is required")
		return
	}

	if err := h.subscribeUC.Execute(r.Context(), req.ChatID); err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "AddSubscriberHandler: failed to register subscriber")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(AddSubscriberResponse{ChatID: req.ChatID, Status: "subscribed"})
}

func (h *SubscribersHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}
