package constants

// Имена поддерживаемых сайтов (значения для WATCH_SITES).
const (
	SitePararius       = "pararius"
	SiteHuurwoningen   = "huurwoningen"
	SiteIkwilhuren     = "ikwilhuren"
	SiteRotterdamWonen = "rotterdamwonen"
	SiteVerra          = "verra"
)

// Страницы поиска. Каждый URL уже отсортирован сайтом по новизне,
// пайплайн порядок не меняет.
const (
	ParariusSearchURL       = "https://www.pararius.com/apartments/rotterdam"
	HuurwoningenSearchURL   = "https://www.huurwoningen.nl/in/rotterdam/?sort=published_at&direction=desc"
	IkwilhurenSearchURL     = "https://ikwilhuren.nu/aanbod/?sort=aanbodDESC"
	RotterdamWonenSearchURL = "https://www.rotterdamwonen.nl/aanbod/?sortby=date-desc"
	VerraListingsURL        = "https://www.verra.nl/nl/realtime-listings/consumer"
)

// Базовые origin'ы для разрешения относительных ссылок из карточек.
const (
	ParariusBaseURL     = "https://pararius.com"
	HuurwoningenBaseURL = "https://www.huurwoningen.nl"
	IkwilhurenBaseURL   = "https://ikwilhuren.nu"
	VerraBaseURL        = "https://www.verra.nl"
)

// Пороговые значения фильтра по умолчанию (переопределяются через env).
const (
	DefaultPriceCeiling = 1650 // принимаем строго дешевле
	DefaultAreaFloor    = 55   // принимаем от этой площади включительно
)
