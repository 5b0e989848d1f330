package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"housing-watcher-service/internal/contextkeys"
	"housing-watcher-service/internal/core/port"
)

// Client - тонкая обертка над Telegram Bot API.
// Таймаут клиента выбран с запасом под long polling getUpdates.
type Client struct {
	apiBaseURL string
	token      string
	httpClient *http.Client
}

// NewClient - конструктор. apiBaseURL переопределяется в тестах.
func NewClient(apiBaseURL, token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	return &Client{
		apiBaseURL: strings.TrimSuffix(apiBaseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.apiBaseURL, c.token, method)
}

// call - внутренний хелпер для выполнения запросов к Bot API
func (c *Client) call(ctx context.Context, method string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram API %s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API %s returned non-success status code %d: %s", method, resp.StatusCode, string(bodyBytes))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", method, err)
		}
	}

	return nil
}

func (c *Client) SendText(ctx context.Context, chatID int64, text string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "TelegramClient"})

	err := c.call(ctx, "sendMessage", sendMessageRequest{ChatID: chatID, Text: text}, nil)
	if err != nil {
		return err
	}

	logger.Debug("Sent text message", port.Fields{"chat_id": chatID})
	return nil
}

func (c *Client) SendLocation(ctx context.Context, chatID int64, longitude, latitude float64) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "TelegramClient"})

	err := c.call(ctx, "sendLocation", sendLocationRequest{ChatID: chatID, Longitude: longitude, Latitude: latitude}, nil)
	if err != nil {
		return err
	}

	logger.Debug("Sent location message", port.Fields{"chat_id": chatID})
	return nil
}

// getUpdates выполняет long polling и возвращает новые апдейты.
func (c *Client) getUpdates(ctx context.Context, offset int64, timeoutSeconds int) ([]update, error) {
	var resp getUpdatesResponse
	err := c.call(ctx, "getUpdates", getUpdatesRequest{Offset: offset, Timeout: timeoutSeconds}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, fmt.Errorf("telegram API getUpdates returned ok=false")
	}

	return resp.Result, nil
}
