package parariusfetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"housing-watcher-service/internal/adapters/sitefetcher"
	"housing-watcher-service/internal/core/domain"
)

const searchPage = `<html><body>
<section class="listing-search-item--for-rent">
  <a class="listing-search-item__link--title" href="/apartment-for-rent/rotterdam/abc">Flat Schiedamseweg 42</a>
  <div class="listing-search-item__price">€1,650 per month</div>
  <ul><li class="illustrated-features__item--surface-area">60 m²</li></ul>
</section>
<section class="listing-search-item--for-rent">
  <a class="listing-search-item__link--title" href="/apartment-for-rent/rotterdam/def">House Coolsingel 1</a>
  <div class="listing-search-item__price">Price on request</div>
  <ul><li class="illustrated-features__item--surface-area">120 m²</li></ul>
</section>
</body></html>`

const detailPage = `<html><body>
<wc-detail-map data-longitude="4.45" data-latitude="51.91"></wc-detail-map>
</body></html>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/apartments/rotterdam", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchPage))
	})
	mux.HandleFunc("/apartment-for-rent/rotterdam/abc", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(detailPage))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestListListings(t *testing.T) {
	server := newTestServer(t)

	adapter, err := NewParariusFetcherAdapter(server.URL+"/apartments/rotterdam", server.URL)
	if err != nil {
		t.Fatalf("failed to build adapter: %v", err)
	}

	results, err := adapter.ListListings(context.Background())
	if err != nil {
		t.Fatalf("ListListings failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	first := results[0]
	if first.IsFull() {
		t.Error("search page results must be partial")
	}
	// адрес начинается после типа жилья
	if first.Title != "Schiedamseweg 42" {
		t.Errorf("title = %q, want %q", first.Title, "Schiedamseweg 42")
	}
	if first.Price != 1650 {
		t.Errorf("price = %d, want 1650", first.Price)
	}
	if first.Area != 60 {
		t.Errorf("area = %d, want 60", first.Area)
	}
	if want := server.URL + "/apartment-for-rent/rotterdam/abc"; first.URL != want {
		t.Errorf("url = %q, want %q", first.URL, want)
	}

	// "Price on request" превращается в сигнальное значение
	if results[1].Price != sitefetcher.PriceOnRequestSentinel {
		t.Errorf("price on request = %d, want %d", results[1].Price, sitefetcher.PriceOnRequestSentinel)
	}
}

func TestScrapeDetail(t *testing.T) {
	server := newTestServer(t)

	adapter, err := NewParariusFetcherAdapter(server.URL+"/apartments/rotterdam", server.URL)
	if err != nil {
		t.Fatalf("failed to build adapter: %v", err)
	}

	partial := domain.PartialListing{
		Title: "Schiedamseweg 42",
		Price: 1650,
		Area:  60,
		URL:   server.URL + "/apartment-for-rent/rotterdam/abc",
	}

	full, err := adapter.ScrapeDetail(context.Background(), partial)
	if err != nil {
		t.Fatalf("ScrapeDetail failed: %v", err)
	}
	if full.PartialListing != partial {
		t.Errorf("detail scraping must keep the partial fields intact: %+v", full.PartialListing)
	}
	if full.Location.Longitude != 4.45 || full.Location.Latitude != 51.91 {
		t.Errorf("location = %+v, want (4.45, 51.91)", full.Location)
	}
}

func TestListListingsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	adapter, err := NewParariusFetcherAdapter(server.URL+"/apartments/rotterdam", server.URL)
	if err != nil {
		t.Fatalf("failed to build adapter: %v", err)
	}

	_, err = adapter.ListListings(context.Background())
	if err == nil {
		t.Fatal("expected error for a non-2xx search page")
	}
	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("expected FetchError, got %T: %v", err, err)
	}
}

func TestScrapeDetailMissingMap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>no map here</p></body></html>"))
	}))
	defer server.Close()

	adapter, err := NewParariusFetcherAdapter(server.URL+"/apartments/rotterdam", server.URL)
	if err != nil {
		t.Fatalf("failed to build adapter: %v", err)
	}

	_, err = adapter.ScrapeDetail(context.Background(), domain.PartialListing{URL: server.URL + "/whatever"})
	if err == nil {
		t.Fatal("expected error when the detail page has no map element")
	}
	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected ParseError, got %T: %v", err, err)
	}
}
