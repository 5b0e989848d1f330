package port

import (
	"context"

	"housing-watcher-service/internal/core/domain"
)

// SiteScraperPort определяет контракт адаптера одного сайта с объявлениями.
// Пайплайн написан один раз против этого интерфейса и не знает, какой
// именно сайт за ним стоит.
type SiteScraperPort interface {
	// Name возвращает короткое имя сайта ("pararius", "verra", ...).
	Name() string

	// ListListings загружает страницу поиска сайта (сайт сам сортирует
	// по новизне) и возвращает по одному результату на карточку, в порядке
	// сайта. Одна сломанная карточка - ошибка всего вызова.
	ListListings(ctx context.Context) ([]domain.ScrapeResult, error)

	// ScrapeDetail загружает страницу конкретного объявления и извлекает
	// координаты. Возвращает domain.ErrDetailUnsupported, если у сайта
	// нет страницы деталей.
	ScrapeDetail(ctx context.Context, partial domain.PartialListing) (domain.FullListing, error)
}

// ToFull возвращает полное объявление для любого результата: если координаты
// уже известны, отдает их без сетевого запроса, иначе делегирует адаптеру.
func ToFull(ctx context.Context, scraper SiteScraperPort, result domain.ScrapeResult) (domain.FullListing, error) {
	if full, ok := result.AsFull(); ok {
		return full, nil
	}
	return scraper.ScrapeDetail(ctx, result.PartialListing)
}
