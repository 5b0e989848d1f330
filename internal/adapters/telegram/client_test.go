package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendTextAndLocation(t *testing.T) {
	var gotPaths []string
	var gotMessage sendMessageRequest
	var gotLocation sendLocationRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		switch r.URL.Path {
		case "/bottest-token/sendMessage":
			json.NewDecoder(r.Body).Decode(&gotMessage)
		case "/bottest-token/sendLocation":
			json.NewDecoder(r.Body).Decode(&gotLocation)
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token")
	if err != nil {
		t.Fatalf("failed to build client: %v", err)
	}

	if err := client.SendText(context.Background(), 42, "New property: https://example.org/1"); err != nil {
		t.Fatalf("SendText failed: %v", err)
	}
	if err := client.SendLocation(context.Background(), 42, 4.45, 51.91); err != nil {
		t.Fatalf("SendLocation failed: %v", err)
	}

	if len(gotPaths) != 2 {
		t.Fatalf("got %d requests, want 2", len(gotPaths))
	}
	if gotMessage.ChatID != 42 || gotMessage.Text != "New property: https://example.org/1" {
		t.Errorf("unexpected sendMessage payload: %+v", gotMessage)
	}
	if gotLocation.ChatID != 42 || gotLocation.Longitude != 4.45 || gotLocation.Latitude != 51.91 {
		t.Errorf("unexpected sendLocation payload: %+v", gotLocation)
	}
}

func TestSendTextNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"description":"Forbidden: bot was blocked"}`, http.StatusForbidden)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token")
	if err != nil {
		t.Fatalf("failed to build client: %v", err)
	}

	if err := client.SendText(context.Background(), 42, "hello"); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestNewClientRequiresToken(t *testing.T) {
	if _, err := NewClient("https://api.telegram.org", ""); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestGetUpdates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottest-token/getUpdates" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req getUpdatesRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Offset != 7 {
			t.Errorf("offset = %d, want 7", req.Offset)
		}
		w.Write([]byte(`{"ok":true,"result":[{"update_id":8,"message":{"chat":{"id":42},"text":"/subscribe"}}]}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token")
	if err != nil {
		t.Fatalf("failed to build client: %v", err)
	}

	updates, err := client.getUpdates(context.Background(), 7, 0)
	if err != nil {
		t.Fatalf("getUpdates failed: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("got %d updates, want 1", len(updates))
	}
	if updates[0].UpdateID != 8 || updates[0].Message == nil || updates[0].Message.Chat.ID != 42 {
		t.Errorf("unexpected update: %+v", updates[0])
	}
	if updates[0].Message.Text != "/subscribe" {
		t.Errorf("text = %q, want /subscribe", updates[0].Message.Text)
	}
}
