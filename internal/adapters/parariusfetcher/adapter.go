package parariusfetcher

import (
	"fmt"

	"housing-watcher-service/internal/adapters/sitefetcher"
	"housing-watcher-service/internal/constants"

	"github.com/gocolly/colly/v2"
)

// ParariusFetcherAdapter отвечает за все взаимодействия с pararius.
// Страница поиска живет на www.pararius.com, а ссылки деталей резолвятся
// против pararius.com, поэтому разрешены оба хоста.
type ParariusFetcherAdapter struct {
	// один родительский коллектор, который разделяет лимиты
	collector *colly.Collector
	searchURL string
	baseURL   string
}

// NewParariusFetcherAdapter - конструктор
func NewParariusFetcherAdapter(searchURL, baseURL string) (*ParariusFetcherAdapter, error) {
	c, err := sitefetcher.NewCollector(searchURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("pararius adapter: %w", err)
	}

	return &ParariusFetcherAdapter{
		collector: c,
		searchURL: searchURL,
		baseURL:   baseURL,
	}, nil
}

func (a *ParariusFetcherAdapter) Name() string {
	return constants.SitePararius
}
