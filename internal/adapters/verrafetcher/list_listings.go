package verrafetcher

import (
	"context"
	"encoding/json"
	"fmt"

	"housing-watcher-service/internal/contextkeys"
	"housing-watcher-service/internal/core/domain"
	"housing-watcher-service/internal/core/port"

	"github.com/gocolly/colly/v2"
)

// Статус, под которым сайт показывает еще не сданные объявления
const statusAvailable = "Beschikbaar"

type verraListing struct {
	Address   string  `json:"address"`
	Price     int     `json:"rentalsPrice"`
	Area      int     `json:"livingSurface"`
	IsRentals bool    `json:"isRentals"`
	Status    string  `json:"status"`
	URL       string  `json:"url"`
	Longitude float64 `json:"lng"`
	Latitude  float64 `json:"lat"`
}

func (a *VerraFetcherAdapter) ListListings(ctx context.Context) ([]domain.ScrapeResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "VerraFetcherAdapter(ListListings)"})

	// наследует лимиты, но имеет свои собственные обработчики
	collector := a.collector.Clone()

	var results []domain.ScrapeResult
	var scrapeErr error

	collector.OnRequest(func(r *colly.Request) {
		logger.Debug("Making request to listings API", port.Fields{"url": r.URL.String()})
	})

	collector.OnResponse(func(r *colly.Response) {
		// сначала прогоняем ответ через схему, чтобы смена формата API
		// была видна как ошибка валидации, а не как нули в полях
		var payload interface{}
		if err := json.Unmarshal(r.Body, &payload); err != nil {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "payload", Err: err}
			return
		}
		if err := listingsSchema.Validate(payload); err != nil {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "payload schema", Err: err}
			return
		}

		var listings []verraListing
		if err := json.Unmarshal(r.Body, &listings); err != nil {
			scrapeErr = &domain.ParseError{Site: a.Name(), Field: "payload", Err: err}
			return
		}

		for _, listing := range listings {
			// API отдает и продажу, и уже сданное жилье
			if !listing.IsRentals || listing.Status != statusAvailable {
				continue
			}

			results = append(results, domain.FullResult(domain.FullListing{
				PartialListing: domain.PartialListing{
					Title: listing.Address,
					Price: listing.Price,
					Area:  listing.Area,
					URL:   fmt.Sprintf("%s%s/", a.baseURL, listing.URL),
				},
				Location: domain.Location{Longitude: listing.Longitude, Latitude: listing.Latitude},
			}))
		}
	})

	collector.OnError(func(r *colly.Response, err error) {
		scrapeErr = &domain.FetchError{URL: r.Request.URL.String(), StatusCode: r.StatusCode, Err: err}
	})

	if err := collector.Visit(a.listingsURL); err != nil {
		return nil, &domain.FetchError{URL: a.listingsURL, Err: err}
	}
	collector.Wait()

	if scrapeErr != nil {
		return nil, scrapeErr
	}

	logger.Info("Finished fetching listings API", port.Fields{"listings_found": len(results)})
	return results, nil
}
