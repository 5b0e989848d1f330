package rotterdamwonenfetcher

import (
	"context"

	"housing-watcher-service/internal/adapters/sitefetcher"
	"housing-watcher-service/internal/contextkeys"
	"housing-watcher-service/internal/core/domain"
	"housing-watcher-service/internal/core/port"

	"github.com/gocolly/colly/v2"
)

func (a *RotterdamWonenFetcherAdapter) ListListings(ctx context.Context) ([]domain.ScrapeResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "RotterdamWonenFetcherAdapter(ListListings)"})

	// наследует лимиты, но имеет свои собственные обработчики
	collector := a.collector.Clone()

	var results []domain.ScrapeResult
	var scrapeErr error

	collector.OnRequest(func(r *colly.Request) {
		logger.Debug("Making request to search page", port.Fields{"url": r.URL.String()})
	})

	collector.OnHTML("div.property-list-item", func(e *colly.HTMLElement) {
		if scrapeErr != nil {
			return
		}

		// заголовок опционален, остальные атрибуты обязательны
		title := e.Attr("data-title")

		rawPrice := e.Attr("data-price")
		if rawPrice == "" {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "price"}
			return
		}
		price, err := sitefetcher.ParseEuroAmount(rawPrice)
		if err != nil {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "price", Err: err}
			return
		}

		listingURL := e.Attr("data-link")
		if listingURL == "" {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "link"}
			return
		}

		// порядок meta-элементов может поплыть, если сайт добавит новые;
		// пока площадь стабильно первая
		rawArea := e.DOM.Find(".property-meta-item.first-item > .property-meta-number").First().Text()
		area, err := sitefetcher.ParseArea(rawArea)
		if err != nil {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "area", Err: err}
			return
		}

		results = append(results, domain.PartialResult(domain.PartialListing{
			Title: title,
			Price: price,
			Area:  area,
			URL:   listingURL,
		}))
	})

	collector.OnError(func(r *colly.Response, err error) {
		scrapeErr = &domain.FetchError{URL: r.Request.URL.String(), StatusCode: r.StatusCode, Err: err}
	})

	if err := collector.Visit(a.searchURL); err != nil {
		return nil, &domain.FetchError{URL: a.searchURL, Err: err}
	}
	collector.Wait()

	if scrapeErr != nil {
		return nil, scrapeErr
	}

	logger.Info("Finished scraping search page", port.Fields{"listings_found": len(results)})
	return results, nil
}
