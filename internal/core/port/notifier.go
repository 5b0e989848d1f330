package port

import "context"

// NotifierPort определяет контракт доставки уведомлений подписчику.
// Обе операции независимо фоллибельны: ошибка по одной паре
// подписчик/объявление не прерывает рассылку остальным.
type NotifierPort interface {
	SendText(ctx context.Context, chatID int64, text string) error

	SendLocation(ctx context.Context, chatID int64, longitude, latitude float64) error
}
