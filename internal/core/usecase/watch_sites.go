package usecase

import (
	"context"
	"time"

	"housing-watcher-service/internal/contextkeys"
	"housing-watcher-service/internal/core/port"

	"github.com/google/uuid"
)

// WatchSitesUseCase - процесс-долгожитель: прогоняет цикл по всем сайтам,
// спит и повторяет. Циклы не перекрываются, следующий старт отсчитывается
// от завершения предыдущего прохода.
type WatchSitesUseCase struct {
	cycle    *ScrapeCycleUseCase
	scrapers []port.SiteScraperPort
	interval time.Duration
}

func NewWatchSitesUseCase(cycle *ScrapeCycleUseCase, scrapers []port.SiteScraperPort, interval time.Duration) *WatchSitesUseCase {
	return &WatchSitesUseCase{
		cycle:    cycle,
		scrapers: scrapers,
		interval: interval,
	}
}

// Run блокирует до отмены контекста. Ошибка цикла одного сайта логируется
// и не мешает остальным сайтам и следующим проходам.
func (uc *WatchSitesUseCase) Run(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx)
	logger.Info("Starting site watch loop", port.Fields{
		"sites":    len(uc.scrapers),
		"interval": uc.interval.String(),
	})

	for {
		for _, scraper := range uc.scrapers {
			// каждый цикл получает свой trace_id для сквозной корреляции логов
			cycleID := uuid.New().String()
			cycleLogger := logger.WithFields(port.Fields{
				"site":     scraper.Name(),
				"trace_id": cycleID,
			})
			cycleCtx := contextkeys.ContextWithLogger(ctx, cycleLogger)
			cycleCtx = contextkeys.ContextWithTraceID(cycleCtx, cycleID)

			if err := uc.cycle.Execute(cycleCtx, scraper); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				cycleLogger.Error("Scrape cycle failed", err, nil)
			}
		}

		select {
		case <-time.After(uc.interval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
