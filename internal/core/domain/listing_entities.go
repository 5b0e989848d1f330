package domain

// PartialListing - это данные объявления, которые сайт отдает прямо на
// странице поиска: без координат, но с ценой и площадью.
// URL стабилен для конкретного объявления и используется как ключ дедупликации.
type PartialListing struct {
	Title string
	Price int // в евро, 9999 = "цена по запросу"
	Area  int // в квадратных метрах
	URL   string
}

// Location - координаты объявления (WGS84).
type Location struct {
	Longitude float64
	Latitude  float64
}

// FullListing - объявление, обогащенное координатами со страницы деталей
// (или сразу из ответа сайта, если сайт отдает координаты в поиске).
type FullListing struct {
	PartialListing
	Location Location
}

// ScrapeResult - результат парсинга одной карточки объявления.
// Либо Partial (координат еще нет), либо Full (координаты уже известны).
// Общие поля (title/price/area/url) читаются в любом случае через
// встроенный PartialListing; координаты доступны только через AsFull.
type ScrapeResult struct {
	PartialListing
	location *Location
}

// PartialResult оборачивает объявление без координат.
func PartialResult(p PartialListing) ScrapeResult {
	return ScrapeResult{PartialListing: p}
}

// FullResult оборачивает объявление, у которого координаты уже известны.
func FullResult(f FullListing) ScrapeResult {
	loc := f.Location
	return ScrapeResult{PartialListing: f.PartialListing, location: &loc}
}

// IsFull сообщает, известны ли координаты без дополнительного запроса.
func (r ScrapeResult) IsFull() bool {
	return r.location != nil
}

// AsFull возвращает полное объявление, если координаты уже известны.
func (r ScrapeResult) AsFull() (FullListing, bool) {
	if r.location == nil {
		return FullListing{}, false
	}
	return FullListing{PartialListing: r.PartialListing, Location: *r.location}, true
}
