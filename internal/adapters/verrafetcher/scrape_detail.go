package verrafetcher

import (
	"context"

	"housing-watcher-service/internal/core/domain"
)

// ScrapeDetail не поддерживается: координаты приходят сразу из JSON-ручки,
// отдельной страницы деталей у адаптера нет.
func (a *VerraFetcherAdapter) ScrapeDetail(ctx context.Context, partial domain.PartialListing) (domain.FullListing, error) {
	return domain.FullListing{}, domain.ErrDetailUnsupported
}
