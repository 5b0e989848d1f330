package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"housing-watcher-service/internal/core/usecase"
)

type fakeStore struct {
	subscribers []int64
}

func (s *fakeStore) ListSeenURLs(ctx context.Context) (map[string]struct{}, error) { return nil, nil }
func (s *fakeStore) MarkSeen(ctx context.Context, urls []string) error             { return nil }
func (s *fakeStore) ListSubscribers(ctx context.Context) ([]int64, error) {
	return s.subscribers, nil
}
func (s *fakeStore) AddSubscriber(ctx context.Context, chatID int64) error {
	s.subscribers = append(s.subscribers, chatID)
	return nil
}

func newHandler(store *fakeStore) *SubscribersHandler {
	return NewSubscribersHandler(usecase.NewSubscribeUseCase(store))
}

func TestAddSubscriber(t *testing.T) {
	store := &fakeStore{}
	handler := newHandler(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscribers", strings.NewReader(`{"chat_id": 42}`))
	rec := httptest.NewRecorder()
	handler.AddSubscriber(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var resp AddSubscriberResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ChatID != 42 || resp.Status != "subscribed" {
		t.Errorf("unexpected response: %+v", resp)
	}

	if len(store.subscribers) != 1 || store.subscribers[0] != 42 {
		t.Errorf("store subscribers = %v, want [42]", store.subscribers)
	}
}

func TestAddSubscriberRejectsBadBody(t *testing.T) {
	handler := newHandler(&fakeStore{})

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"chat_id": `},
		{"missing chat_id", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/subscribers", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.AddSubscriber(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	handler := newHandler(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	handler.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status field = %q, want ok", resp.Status)
	}
}
