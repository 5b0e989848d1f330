package rotterdamwonenfetcher

import (
	"fmt"

	"housing-watcher-service/internal/adapters/sitefetcher"
	"housing-watcher-service/internal/constants"

	"github.com/gocolly/colly/v2"
)

// RotterdamWonenFetcherAdapter отвечает за все взаимодействия с rotterdamwonen.
// Сайт кладет данные карточки в data-атрибуты, ссылки уже абсолютные.
type RotterdamWonenFetcherAdapter struct {
	// один родительский коллектор, который разделяет лимиты
	collector *colly.Collector
	searchURL string
}

// NewRotterdamWonenFetcherAdapter - конструктор
func NewRotterdamWonenFetcherAdapter(searchURL string) (*RotterdamWonenFetcherAdapter, error) {
	c, err := sitefetcher.NewCollector(searchURL)
	if err != nil {
		return nil, fmt.Errorf("rotterdamwonen adapter: %w", err)
	}

	return &RotterdamWonenFetcherAdapter{
		collector: c,
		searchURL: searchURL,
	}, nil
}

func (a *RotterdamWonenFetcherAdapter) Name() string {
	return constants.SiteRotterdamWonen
}
