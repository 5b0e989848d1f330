package ikwilhurenfetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"housing-watcher-service/internal/core/domain"
)

const searchPage = `<html><body>
<div class="card-woning">
  <div class="card-title"><a href="/woning/rotterdam-straatnaam-1">Straatnaam 1</a></div>
  <div><span class="fw-bold">€ 1.450,- per maand</span><span>75 m²</span></div>
</div>
</body></html>`

const detailPage = `<html><body>
<div id="maplibre-object" data-lng="4.47" data-lat="51.92"></div>
</body></html>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/aanbod/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchPage))
	})
	mux.HandleFunc("/woning/rotterdam-straatnaam-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(detailPage))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestListListings(t *testing.T) {
	server := newTestServer(t)

	adapter, err := NewIkwilhurenFetcherAdapter(server.URL+"/aanbod/?sort=aanbodDESC", server.URL)
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
	if got.Title != "Straatnaam 1" {
		t.Errorf("title = %q, want %q", got.Title, "Straatnaam 1")
	}
	if got.Price != 1450 {
		t.Errorf("price = %d, want 1450", got.Price)
	}
	// площадь берется из соседнего span того же родителя, что и цена
	if got.Area != 75 {
		t.Errorf("area = %d, want 75", got.Area)
	}
	if want := server.URL + "/woning/rotterdam-straatnaam-1"; got.URL != want {
		t.Errorf("url = %q, want %q", got.URL, want)
	}
}

func TestScrapeDetail(t *testing.T) {
	server := newTestServer(t)

	adapter, err := NewIkwilhurenFetcherAdapter(server.URL+"/aanbod/?sort=aanbodDESC", server.URL)
	if err != nil {
		t.Fatalf("failed to build adapter: %v", err)
	}

	partial := domain.PartialListing{Title: "Straatnaam 1", Price: 1450, Area: 75, URL: server.URL + "/woning/rotterdam-straatnaam-1"}
	full, err := adapter.ScrapeDetail(context.Background(), partial)
	if err != nil {
		t.Fatalf("ScrapeDetail failed: %v", err)
	}
	if full.Location.Longitude != 4.47 || full.Location.Latitude != 51.92 {
		t.Errorf("location = %+v, want (4.47, 51.92)", full.Location)
	}
}
