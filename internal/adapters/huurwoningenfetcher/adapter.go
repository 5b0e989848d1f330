package huurwoningenfetcher

import (
	"fmt"

	"housing-watcher-service/internal/adapters/sitefetcher"
	"housing-watcher-service/internal/constants"

	"github.com/gocolly/colly/v2"
)

// HuurwoningenFetcherAdapter отвечает за все взаимодействия с huurwoningen
type HuurwoningenFetcherAdapter struct {
	// один родительский коллектор, который разделяет лимиты
	collector *colly.Collector
	searchURL string
	baseURL   string
}

// NewHuurwoningenFetcherAdapter - конструктор
func NewHuurwoningenFetcherAdapter(searchURL, baseURL string) (*HuurwoningenFetcherAdapter, error) {
	c, err := sitefetcher.NewCollector(searchURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("huurwoningen adapter: %w", err)
	}

	return &HuurwoningenFetcherAdapter{
		collector: c,
		searchURL: searchURL,
		baseURL:   baseURL,
	}, nil
}

func (a *HuurwoningenFetcherAdapter) Name() string {
	return constants.SiteHuurwoningen
}
