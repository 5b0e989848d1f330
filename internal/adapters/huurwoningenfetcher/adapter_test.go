package huurwoningenfetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Между знаком евро и суммой стоит NBSP, как на реальной странице
const searchPage = "<html><body>" +
	"<li class=\"search-list__item--listing\">" +
	"<a class=\"listing-search-item__link--title\" href=\"/huren/rotterdam/kamer-123/\">Kamer</a>" +
	"<div class=\"listing-search-item__price\">€ 1.650 per maand</div>" +
	"<ul><li class=\"illustrated-features__item--surface-area\">82 m²</li></ul>" +
	"</li>" +
	"</body></html>"

func TestListListings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchPage))
	}))
	defer server.Close()

	adapter, err := NewHuurwoningenFetcherAdapter(server.URL+"/in/rotterdam/", server.URL)
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
	// сайт не отдает адрес в карточке
	if got.Title != "" {
		t.Errorf("title = %q, want empty", got.Title)
	}
	if got.Price != 1650 {
		t.Errorf("price = %d, want 1650", got.Price)
	}
	if got.Area != 82 {
		t.Errorf("area = %d, want 82", got.Area)
	}
	if want := server.URL + "/huren/rotterdam/kamer-123/"; got.URL != want {
		t.Errorf("url = %q, want %q", got.URL, want)
	}
}
