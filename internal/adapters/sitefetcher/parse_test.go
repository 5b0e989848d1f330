package sitefetcher

import "testing"

func TestParseEuroAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"€1,650 per month", 1650},
		{"€ 1.650 per maand", 1650}, // NBSP после знака евро
		{"€ 1.650,- p/m", 1650},
		{"€ 950", 950},
		{"1250", 1250},
	}

	for _, tt := range tests {
		got, err := ParseEuroAmount(tt.raw)
		if err != nil {
			t.Errorf("ParseEuroAmount(%q) failed: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEuroAmount(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}

	if _, err := ParseEuroAmount("per month"); err == nil {
		t.Error("expected error for a string without digits")
	}
}

func TestParseArea(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"60 m²", 60},
		{"  82 m²  ", 82},
		{"45", 45},
	}

	for _, tt := range tests {
		got, err := ParseArea(tt.raw)
		if err != nil {
			t.Errorf("ParseArea(%q) failed: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseArea(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}

	if _, err := ParseArea(""); err == nil {
		t.Error("expected error for empty area")
	}
	if _, err := ParseArea("unknown m²"); err == nil {
		t.Error("expected error for non-numeric area")
	}
}

func TestAbsoluteURL(t *testing.T) {
	got, err := AbsoluteURL("https://pararius.com", "/apartment-for-rent/rotterdam/123")
	if err != nil {
		t.Fatalf("AbsoluteURL failed: %v", err)
	}
	if want := "https://pararius.com/apartment-for-rent/rotterdam/123"; got != want {
		t.Errorf("AbsoluteURL = %q, want %q", got, want)
	}

	// уже абсолютные ссылки не трогаем
	abs := "https://www.rotterdamwonen.nl/woning/42/"
	got, err = AbsoluteURL("https://example.org", abs)
	if err != nil {
		t.Fatalf("AbsoluteURL failed: %v", err)
	}
	if got != abs {
		t.Errorf("AbsoluteURL rewrote an absolute URL: %q", got)
	}
}
