package usecase

import (
	"context"
	"fmt"

	"housing-watcher-service/internal/contextkeys"
	"housing-watcher-service/internal/core/port"
)

// SubscribeUseCase регистрирует чат как получателя уведомлений.
type SubscribeUseCase struct {
	store port.DedupStorePort
}

func NewSubscribeUseCase(store port.DedupStorePort) *SubscribeUseCase {
	return &SubscribeUseCase{store: store}
}

// Execute - основной метод. Повторная подписка того же чата не ошибка.
func (uc *SubscribeUseCase) Execute(ctx context.Context, chatID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "Subscribe",
		"chat_id":  chatID,
	})

	if err := uc.store.AddSubscriber(ctx, chatID); err != nil {
		ucLogger.Error("Could not register subscriber", err, nil)
		return fmt.Errorf("could not register subscriber: %w", err)
	}

	ucLogger.Info("Subscriber registered", nil)
	return nil
}
