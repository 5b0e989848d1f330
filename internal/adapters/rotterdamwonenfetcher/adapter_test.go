package rotterdamwonenfetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"housing-watcher-service/internal/core/domain"
)

func TestListListings(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// сайт кладет данные карточки в data-атрибуты, ссылка абсолютная
		fmt.Fprintf(w, `<html><body>
<div class="property-list-item" data-title="Woning Charloisse Lagedijk" data-price="€ 1250" data-link="%s/woning/42/">
  <div class="property-meta-item first-item"><span class="property-meta-number">70</span></div>
</div>
</body></html>`, server.URL)
	}))
	defer server.Close()

	adapter, err := NewRotterdamWonenFetcherAdapter(server.URL + "/aanbod/?sortby=date-desc")
	if err != nil {
		t.Fatalf("failed to build adapter: %v", err)
	}

	results, err := adapter.ListListings(context.Background())
	if err != nil {
		t.Fatalf("ListListings failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	got := results[0]
	if got.Title != "Woning Charloisse Lagedijk" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Price != 1250 {
		t.Errorf("price = %d, want 1250", got.Price)
	}
	if got.Area != 70 {
		t.Errorf("area = %d, want 70", got.Area)
	}
	if want := server.URL + "/woning/42/"; got.URL != want {
		t.Errorf("url = %q, want %q", got.URL, want)
	}
}

func TestScrapeDetailReturnsZeroLocation(t *testing.T) {
	adapter, err := NewRotterdamWonenFetcherAdapter("https://www.rotterdamwonen.nl/aanbod/")
	if err != nil {
		t.Fatalf("failed to build adapter: %v", err)
	}

	partial := domain.PartialListing{Title: "Woning", Price: 1250, Area: 70, URL: "https://www.rotterdamwonen.nl/woning/42/"}
	full, err := adapter.ScrapeDetail(context.Background(), partial)
	if err != nil {
		t.Fatalf("ScrapeDetail failed: %v", err)
	}
	if full.PartialListing != partial {
		t.Errorf("partial fields changed: %+v", full.PartialListing)
	}
	// без координат объявление отсеется гео-фильтром, а не пройдет молча
	if full.Location != (domain.Location{}) {
		t.Errorf("location = %+v, want zero", full.Location)
	}
}
