package sitefetcher

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

const requestTimeout = 30 * time.Second

// NewCollector создает родительский коллектор для одного сайта.
// Разрешенные домены выводятся из переданных URL (страница поиска и origin
// для ссылок деталей могут жить на разных хостах, например pararius.com и
// www.pararius.com). Клоны коллектора наследуют лимиты и расширения.
func NewCollector(siteURLs ...string) (*colly.Collector, error) {
	domains := make([]string, 0, len(siteURLs))
	seen := make(map[string]struct{})
	for _, raw := range siteURLs {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("sitefetcher: invalid site URL %q: %w", raw, err)
		}
		host := u.Hostname()
		if host == "" {
			return nil, fmt.Errorf("sitefetcher: site URL %q has no host", raw)
		}
		if _, ok := seen[host]; ok {
			continue
		}
		seen[host] = struct{}{}
		domains = append(domains, host)
	}

	c := colly.NewCollector(colly.AllowedDomains(domains...), colly.AllowURLRevisit())

	// Эти правила наследуются всеми клонами коллектора
	err := c.Limit(&colly.LimitRule{
		DomainGlob: "*",

		// Параллелизм на уровне HTTP-запросов
		Parallelism: 1,

		// задержка от 0 до 3 секунд после завершения предыдущего
		RandomDelay: 3 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("sitefetcher: failed to set limit rule: %w", err)
	}

	// Зависший запрос не должен блокировать цикл навсегда
	c.SetRequestTimeout(requestTimeout)

	extensions.RandomUserAgent(c) // На каждый запрос подставляется User-Agent реального браузера
	extensions.Referer(c)         // Автоматически подставляет заголовок Referer, имитируя навигацию

	return c, nil
}
