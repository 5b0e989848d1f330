package telegram

import (
	"context"
	"strings"
	"sync"
	"time"

	"housing-watcher-service/internal/contextkeys"
	"housing-watcher-service/internal/core/port"
	"housing-watcher-service/internal/core/usecase"
)

const (
	longPollTimeoutSeconds = 30
	pollRetryDelay         = 5 * time.Second
)

const helpText = "Commands:\n/subscribe - get notified about new listings"

// Poller слушает команды бота через getUpdates long polling.
// Вебхуки не используются: сервис живет за NAT и не имеет публичного URL.
type Poller struct {
	client    *Client
	subscribe *usecase.SubscribeUseCase

	quit      chan struct{}
	closeOnce sync.Once
}

// NewPoller - конструктор
func NewPoller(client *Client, subscribe *usecase.SubscribeUseCase) *Poller {
	return &Poller{
		client:    client,
		subscribe: subscribe,
		quit:      make(chan struct{}),
	}
}

// Start блокирует до отмены контекста или вызова Close.
// Ошибка одного цикла опроса не роняет поллер.
func (p *Poller) Start(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "TelegramPoller"})
	logger.Info("Starting bot command polling", nil)

	var offset int64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.quit:
			logger.Info("Bot command polling stopped", nil)
			return nil
		default:
		}

		updates, err := p.client.getUpdates(ctx, offset, longPollTimeoutSeconds)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error("Failed to poll updates, retrying", err, nil)
			select {
			case <-time.After(pollRetryDelay):
			case <-ctx.Done():
				return ctx.Err()
			case <-p.quit:
				logger.Info("Bot command polling stopped", nil)
				return nil
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			if u.Message == nil {
				continue
			}
			p.handleCommand(ctx, u.Message.Chat.ID, strings.TrimSpace(u.Message.Text))
		}
	}
}

func (p *Poller) handleCommand(ctx context.Context, chatID int64, text string) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "TelegramPoller",
		"chat_id":   chatID,
	})

	var reply string
	switch text {
	case "/start":
		reply = helpText
	case "/subscribe":
		if err := p.subscribe.Execute(ctx, chatID); err != nil {
			reply = "Something went wrong, please try again later."
		} else {
			reply = "Subscribed! New listings will show up here."
		}
	default:
		// не команда, молчим
		return
	}

	if err := p.client.SendText(ctx, chatID, reply); err != nil {
		logger.Error("Failed to reply to bot command", err, port.Fields{"command": text})
	}
}

func (p *Poller) Close() error {
	p.closeOnce.Do(func() {
		close(p.quit)
	})
	return nil
}
