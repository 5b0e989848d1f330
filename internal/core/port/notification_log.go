package port

import (
	"context"

	"housing-watcher-service/internal/core/domain"
)

// NotificationLogPort - журнал разосланных объявлений (для операторских
// запросов). Запись best-effort: ошибка логируется и не влияет на цикл.
type NotificationLogPort interface {
	RecordNotified(ctx context.Context, listing domain.FullListing) error
}
