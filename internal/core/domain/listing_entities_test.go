package domain

import "testing"

func TestScrapeResultWidening(t *testing.T) {
	p := PartialListing{Title: "Schiedamseweg", Price: 1500, Area: 60, URL: "https://example.org/1"}

	partial := PartialResult(p)
	if partial.IsFull() {
		t.Error("partial result must not report itself as full")
	}
	if _, ok := partial.AsFull(); ok {
		t.Error("AsFull must fail for a partial result")
	}
	// общие поля читаются без обогащения
	if partial.URL != p.URL || partial.Price != p.Price {
		t.Errorf("common fields not accessible on partial result: %+v", partial.PartialListing)
	}

	f := FullListing{PartialListing: p, Location: Location{Longitude: 4.45, Latitude: 51.9}}
	full := FullResult(f)
	if !full.IsFull() {
		t.Error("full result must report itself as full")
	}
	got, ok := full.AsFull()
	if !ok {
		t.Fatal("AsFull failed for a full result")
	}
	if got != f {
		t.Errorf("AsFull = %+v, want %+v", got, f)
	}
}

func TestRegionContains(t *testing.T) {
	region := NewRegion([][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}})

	if !region.Contains(Location{Longitude: 5, Latitude: 5}) {
		t.Error("point inside the polygon reported as outside")
	}
	if region.Contains(Location{Longitude: 50, Latitude: 50}) {
		t.Error("point outside the polygon reported as inside")
	}
	// нулевые координаты (адаптер без страницы деталей) лежат на границе
	// тестового полигона; реальный регион их не содержит
	rotterdam := NewRegion([][2]float64{{4.4, 51.85}, {4.55, 51.85}, {4.55, 51.95}, {4.4, 51.95}})
	if rotterdam.Contains(Location{}) {
		t.Error("zero coordinates must fall outside a real region")
	}
}

func TestRegionIsZero(t *testing.T) {
	if !(Region{}).IsZero() {
		t.Error("empty region must be zero")
	}
	if NewRegion([][2]float64{{0, 0}, {1, 0}, {1, 1}}).IsZero() {
		t.Error("configured region must not be zero")
	}
}
