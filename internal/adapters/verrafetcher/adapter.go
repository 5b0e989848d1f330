package verrafetcher

import (
	_ "embed"
	"fmt"

	"housing-watcher-service/internal/adapters/sitefetcher"
	"housing-watcher-service/internal/constants"

	"github.com/gocolly/colly/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var listingsSchemaJSON string

// Схема ответа API: сайт не версионирует этот endpoint, поэтому
// несовпадение формата ловим валидацией до разбора.
var listingsSchema = jsonschema.MustCompileString("verra-listings.json", listingsSchemaJSON)

// VerraFetcherAdapter отвечает за все взаимодействия с verra.
// Сайт отдает объявления JSON-ручкой вместе с координатами, так что
// страница деталей не нужна.
type VerraFetcherAdapter struct {
	// один родительский коллектор, который разделяет лимиты
	collector   *colly.Collector
	listingsURL string
	baseURL     string
}

// NewVerraFetcherAdapter - конструктор
func NewVerraFetcherAdapter(listingsURL, baseURL string) (*VerraFetcherAdapter, error) {
	c, err := sitefetcher.NewCollector(listingsURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("verra adapter: %w", err)
	}

	return &VerraFetcherAdapter{
		collector:   c,
		listingsURL: listingsURL,
		baseURL:     baseURL,
	}, nil
}

func (a *VerraFetcherAdapter) Name() string {
	return constants.SiteVerra
}
