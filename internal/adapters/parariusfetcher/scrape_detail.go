package parariusfetcher

import (
	"context"
	"strconv"

	"housing-watcher-service/internal/contextkeys"
	"housing-watcher-service/internal/core/domain"
	"housing-watcher-service/internal/core/port"

	"github.com/gocolly/colly/v2"
)

func (a *ParariusFetcherAdapter) ScrapeDetail(ctx context.Context, partial domain.PartialListing) (domain.FullListing, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "ParariusFetcherAdapter(ScrapeDetail)"})

	collector := a.collector.Clone()

	var location *domain.Location
	var scrapeErr error

	// карта на странице деталей несет координаты в data-атрибутах
	collector.OnHTML("wc-detail-map", func(e *colly.HTMLElement) {
		if scrapeErr != nil || location != nil {
			return
		}

		longitude, err := strconv.ParseFloat(e.Attr("data-longitude"), 64)
		if err != nil {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "longitude", Err: err}
			return
		}
		latitude, err := strconv.ParseFloat(e.Attr("data-latitude"), 64)
		if err != nil {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "latitude", Err: err}
			return
		}

		location = &domain.Location{Longitude: longitude, Latitude: latitude}
	})

	collector.OnError(func(r *colly.Response, err error) {
		scrapeErr = &domain.FetchError{URL: r.Request.URL.String(), StatusCode: r.StatusCode, Err: err}
	})

	if err := collector.Visit(partial.URL); err != nil {
		return domain.FullListing{}, &domain.FetchError{URL: partial.URL, Err: err}
	}
	collector.Wait()

	if scrapeErr != nil {
		return domain.FullListing{}, scrapeErr
	}
	if location == nil {
		return domain.FullListing{}, &domain.ParseError{Site: a.Name(), Field: "map element"}
	}

	logger.Debug("Scraped detail page", port.Fields{"url": partial.URL})
	return domain.FullListing{PartialListing: partial, Location: *location}, nil
}
