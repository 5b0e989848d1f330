package rotterdamwonenfetcher

import (
	"context"

	"housing-watcher-service/internal/core/domain"
)

// ScrapeDetail пока не извлекает координаты со страницы деталей:
// карта сайта грузится скриптом, и атрибутов с координатами в HTML нет.
// Нулевые координаты лежат вне любого региона, так что такие объявления
// отбрасываются гео-фильтром, а не проходят его молча.
// TODO: вытащить координаты из JSON, который сайт передает виджету карты.
func (a *RotterdamWonenFetcherAdapter) ScrapeDetail(ctx context.Context, partial domain.PartialListing) (domain.FullListing, error) {
	return domain.FullListing{PartialListing: partial, Location: domain.Location{}}, nil
}
