package sitefetcher

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PriceOnRequestSentinel подставляется вместо цены для объявлений
// "цена по запросу": такие объявления сортируются в конец под любым
// ценовым фильтром, вместо того чтобы ронять парсинг.
const PriceOnRequestSentinel = 9999

// ParseEuroAmount выдирает целую сумму из строк вида "€1,650 per month",
// "€ 1.650 per maand" (с NBSP после знака евро) или "€ 1.650,- p/m":
// берется первое поле с цифрами, разделители тысяч и хвост ",-" срезаются.
func ParseEuroAmount(raw string) (int, error) {
	for _, field := range strings.Fields(raw) {
		if !strings.ContainsAny(field, "0123456789") {
			continue
		}
		cleaned := strings.NewReplacer("€", "", ".", "", ",", "", "-", "").Replace(field)
		value, err := strconv.Atoi(cleaned)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
		}
		return value, nil
	}
	return 0, fmt.Errorf("no numeric amount in %q", raw)
}

// ParseArea разбирает площадь вида "60 m²" или "60": суффикс юнита
// срезается, берется первое поле.
func ParseArea(raw string) (int, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), " m²")
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return 0, fmt.Errorf("no area value in %q", raw)
	}
	value, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("invalid area %q: %w", raw, err)
	}
	return value, nil
}

// AbsoluteURL разрешает относительный href карточки против origin сайта.
// Уже абсолютные ссылки возвращаются как есть.
func AbsoluteURL(base, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("invalid href %q: %w", href, err)
	}
	if ref.IsAbs() {
		return href, nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	return baseURL.ResolveReference(ref).String(), nil
}
