package ikwilhurenfetcher

import (
	"context"
	"strings"

	"housing-watcher-service/internal/adapters/sitefetcher"
	"housing-watcher-service/internal/contextkeys"
	"housing-watcher-service/internal/core/domain"
	"housing-watcher-service/internal/core/port"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// areaNextToPrice достает площадь из соседнего span того же родителя,
// что и элемент цены: отдельного класса у площади на карточке нет.
func areaNextToPrice(price *goquery.Selection) string {
	return price.Parent().Find("span:nth-child(2)").First().Text()
}

func (a *IkwilhurenFetcherAdapter) ListListings(ctx context.Context) ([]domain.ScrapeResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "IkwilhurenFetcherAdapter(ListListings)"})

	// наследует лимиты, но имеет свои собственные обработчики
	collector := a.collector.Clone()

	var results []domain.ScrapeResult
	var scrapeErr error

	collector.OnRequest(func(r *colly.Request) {
		logger.Debug("Making request to search page", port.Fields{"url": r.URL.String()})
	})

	collector.OnHTML(".card-woning", func(e *colly.HTMLElement) {
		if scrapeErr != nil {
			return
		}

		titleLink := e.DOM.Find(".card-title a").First()
		if titleLink.Length() == 0 {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "title link"}
			return
		}
		title := strings.TrimSpace(titleLink.Text())

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

		// цена вида "€ 1.650,- per maand"
		priceElement := e.DOM.Find(".fw-bold").First()
		if priceElement.Length() == 0 {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "price"}
			return
		}
		price, err := sitefetcher.ParseEuroAmount(priceElement.Text())
		if err != nil {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "price", Err: err}
			return
		}

		area, err := sitefetcher.ParseArea(areaNextToPrice(priceElement))
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
