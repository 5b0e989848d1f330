package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"housing-watcher-service/internal/adapters/huurwoningenfetcher"
	"housing-watcher-service/internal/adapters/ikwilhurenfetcher"
	"housing-watcher-service/internal/adapters/parariusfetcher"
	"housing-watcher-service/internal/adapters/rotterdamwonenfetcher"
	"housing-watcher-service/internal/adapters/verrafetcher"
	"housing-watcher-service/internal/constants"
	"housing-watcher-service/internal/core/port"
)

// Утилита для отладки адаптеров: забирает страницу поиска сайта,
// обогащает первое объявление координатами и печатает результат.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <pararius|huurwoningen|ikwilhuren|rotterdamwonen|verra>\n", os.Args[0])
		os.Exit(2)
	}

	scraper, err := buildScraper(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to build scraper: %v", err)
	}

	ctx := context.Background()

	results, err := scraper.ListListings(ctx)
	if err != nil {
		log.Fatalf("Failed to list listings: %v", err)
	}
	if len(results) == 0 {
		log.Fatal("No listings found")
	}

	full, err := port.ToFull(ctx, scraper, results[0])
	if err != nil {
		log.Fatalf("Failed to scrape listing details: %v", err)
	}

	fmt.Printf("%+v\n", full)
}

func buildScraper(site string) (port.SiteScraperPort, error) {
	switch site {
	case constants.SitePararius:
		return parariusfetcher.NewParariusFetcherAdapter(constants.ParariusSearchURL, constants.ParariusBaseURL)
	case constants.SiteHuurwoningen:
		return huurwoningenfetcher.NewHuurwoningenFetcherAdapter(constants.HuurwoningenSearchURL, constants.HuurwoningenBaseURL)
	case constants.SiteIkwilhuren:
		return ikwilhurenfetcher.NewIkwilhurenFetcherAdapter(constants.IkwilhurenSearchURL, constants.IkwilhurenBaseURL)
	case constants.SiteRotterdamWonen:
		return rotterdamwonenfetcher.NewRotterdamWonenFetcherAdapter(constants.RotterdamWonenSearchURL)
	case constants.SiteVerra:
		return verrafetcher.NewVerraFetcherAdapter(constants.VerraListingsURL, constants.VerraBaseURL)
	default:
		return nil, fmt.Errorf("unknown site %q", site)
	}
}
