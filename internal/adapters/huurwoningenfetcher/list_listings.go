package huurwoningenfetcher

import (
	"context"
	"strings"

	"housing-watcher-service/internal/adapters/sitefetcher"
	"housing-watcher-service/internal/contextkeys"
	"housing-watcher-service/internal/core/domain"
	"housing-watcher-service/internal/core/port"

	"github.com/gocolly/colly/v2"
)

func (a *HuurwoningenFetcherAdapter) ListListings(ctx context.Context) ([]domain.ScrapeResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "HuurwoningenFetcherAdapter(ListListings)"})

	// наследует лимиты, но имеет свои собственные обработчики
	collector := a.collector.Clone()

	var results []domain.ScrapeResult
	var scrapeErr error

	collector.OnRequest(func(r *colly.Request) {
		logger.Debug("Making request to search page", port.Fields{"url": r.URL.String()})
	})

	collector.OnHTML("li.search-list__item--listing", func(e *colly.HTMLElement) {
		if scrapeErr != nil {
			return
		}

		// цена вида "€ 1.650 per maand", между знаком евро и суммой стоит NBSP
		rawPrice := strings.TrimSpace(e.DOM.Find("div.listing-search-item__price").First().Text())
		if rawPrice == "" {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "price"}
			return
		}
		price, err := sitefetcher.ParseEuroAmount(rawPrice)
		if err != nil {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "price", Err: err}
			return
		}

		titleLink := e.DOM.Find("a.listing-search-item__link--title").First()
		if titleLink.Length() == 0 {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "title link"}
			return
		}
		href, ok := titleLink.Attr("href")
		if !ok {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "title href"}
			return
		}
		listingURL, err := sitefetcher.AbsoluteURL(a.baseURL, href)
		if err != nil {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "title href", Err: err}
			return
		}

		rawArea := e.DOM.Find("li.illustrated-features__item--surface-area").First().Text()
		area, err := sitefetcher.ParseArea(rawArea)
		if err != nil {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "area", Err: err}
			return
		}

		// сайт не отдает адрес в карточке, поэтому заголовок пустой
		results = append(results, domain.PartialResult(domain.PartialListing{
			Title: "",
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
