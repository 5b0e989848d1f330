package ikwilhurenfetcher

import (
	"fmt"

	"housing-watcher-service/internal/adapters/sitefetcher"
	"housing-watcher-service/internal/constants"

	"github.com/gocolly/colly/v2"
)

// IkwilhurenFetcherAdapter отвечает за все взаимодействия с ikwilhuren
type IkwilhurenFetcherAdapter struct {
	// один родительский коллектор, который разделяет лимиты
	collector *colly.Collector
	searchURL string
	baseURL   string
}

// NewIkwilhurenFetcherAdapter - конструктор
func NewIkwilhurenFetcherAdapter(searchURL, baseURL string) (*IkwilhurenFetcherAdapter, error) {
	c, err := sitefetcher.NewCollector(searchURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("ikwilhuren adapter: %w", err)
	}

	return &IkwilhurenFetcherAdapter{
		collector: c,
		searchURL: searchURL,
		baseURL:   baseURL,
	}, nil
}

func (a *IkwilhurenFetcherAdapter) Name() string {
	return constants.SiteIkwilhuren
}
