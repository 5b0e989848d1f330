package port

import "context"

// DedupStorePort определяет контракт долговременного хранилища:
// множество уже обработанных URL объявлений и список подписчиков.
// Оба множества только растут, записи никогда не удаляются.
type DedupStorePort interface {
	// ListSeenURLs возвращает все URL, о которых уже отчитывались.
	ListSeenURLs(ctx context.Context) (map[string]struct{}, error)

	// MarkSeen дописывает пачку URL. Повторная запись того же URL не ошибка.
	MarkSeen(ctx context.Context, urls []string) error

	// ListSubscribers возвращает идентификаторы чатов активных подписчиков.
	ListSubscribers(ctx context.Context) ([]int64, error)

	// AddSubscriber регистрирует нового подписчика (идемпотентно).
	AddSubscriber(ctx context.Context, chatID int64) error
}
