package usecase

import (
	"context"
	"fmt"
	"time"

	"housing-watcher-service/internal/contextkeys"
	"housing-watcher-service/internal/core/domain"
	"housing-watcher-service/internal/core/port"
)

// ScrapeCycleConfig - пороги фильтра и политика обогащения одного цикла.
type ScrapeCycleConfig struct {
	PriceCeiling int           // принимаем строго дешевле
	AreaFloor    int           // принимаем от этой площади включительно
	Region       domain.Region // объявления вне региона молча отбрасываются
	DetailDelay  time.Duration // пауза вежливости перед каждым запросом деталей
}

// ScrapeCycleUseCase прогоняет один цикл для одного сайта:
// Listing -> Diffing -> Filtering -> Enriching -> Notifying -> Committing.
// Durable-состояние меняется один раз, в самом конце, так что упавший
// цикл просто повторит те же объявления в следующий раз.
type ScrapeCycleUseCase struct {
	store     port.DedupStorePort
	notifier  port.NotifierPort
	notifyLog port.NotificationLogPort
	cfg       ScrapeCycleConfig
}

func NewScrapeCycleUseCase(store port.DedupStorePort,
	notifier port.NotifierPort,
	notifyLog port.NotificationLogPort,
	cfg ScrapeCycleConfig) *ScrapeCycleUseCase {
	return &ScrapeCycleUseCase{
		store:     store,
		notifier:  notifier,
		notifyLog: notifyLog,
		cfg:       cfg,
	}
}

// Execute - основной метод
func (uc *ScrapeCycleUseCase) Execute(ctx context.Context, scraper port.SiteScraperPort) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ScrapeCycle",
		"site":     scraper.Name(),
	})

	// 1. Свежая страница поиска, в порядке сайта
	results, err := scraper.ListListings(ctx)
	if err != nil {
		return fmt.Errorf("could not list listings: %w", err)
	}

	// 2. Diff против уже виденных URL
	seen, err := uc.store.ListSeenURLs(ctx)
	if err != nil {
		return fmt.Errorf("could not list seen URLs: %w", err)
	}

	var newResults []domain.ScrapeResult
	for _, result := range results {
		if _, ok := seen[result.URL]; !ok {
			newResults = append(newResults, result)
		}
	}
	if len(newResults) == 0 {
		ucLogger.Info("No new listings", port.Fields{"listings_total": len(results)})
		return nil
	}

	newURLs := make([]string, 0, len(newResults))
	for _, result := range newResults {
		newURLs = append(newURLs, result.URL)
	}

	subscribers, err := uc.store.ListSubscribers(ctx)
	if err != nil {
		return fmt.Errorf("could not list subscribers: %w", err)
	}

	// Некому рассылать: обогащение пропускаем целиком, но весь diff
	// все равно фиксируем, иначе объявления накопятся до первой подписки
	if len(subscribers) == 0 {
		ucLogger.Info("No subscribers, skipping enrichment", port.Fields{"new_listings": len(newResults)})
		if err := uc.store.MarkSeen(ctx, newURLs); err != nil {
			return fmt.Errorf("could not mark listings as seen: %w", err)
		}
		return nil
	}

	// 3. Фильтр по цене и площади. Отфильтрованное не обогащается,
	// но остается в newURLs для коммита
	var candidates []domain.ScrapeResult
	for _, result := range newResults {
		if result.Price < uc.cfg.PriceCeiling && result.Area >= uc.cfg.AreaFloor {
			candidates = append(candidates, result)
		}
	}
	ucLogger.Info("Diffed and filtered listings", port.Fields{
		"new_listings": len(newResults),
		"candidates":   len(candidates),
	})

	// 4. Последовательное обогащение координатами + гео-фильтр.
	// Ошибка деталей прерывает цикл до коммита: объявления не теряются,
	// их переберет следующий цикл
	var accepted []domain.FullListing
	for _, result := range candidates {
		if !result.IsFull() {
			select {
			case <-time.After(uc.cfg.DetailDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		full, err := port.ToFull(ctx, scraper, result)
		if err != nil {
			return fmt.Errorf("could not enrich listing %s: %w", result.URL, err)
		}

		if !uc.cfg.Region.Contains(full.Location) {
			ucLogger.Debug("Listing outside region, dropped", port.Fields{"url": full.URL})
			continue
		}
		accepted = append(accepted, full)
	}

	// 5. Best-effort рассылка: ошибка одной пары подписчик/объявление
	// логируется и не трогает остальных
	for _, listing := range accepted {
		for _, chatID := range subscribers {
			if err := uc.notifier.SendText(ctx, chatID, fmt.Sprintf("New property: %s", listing.URL)); err != nil {
				ucLogger.Error("Failed to send text notification", err, port.Fields{"chat_id": chatID, "url": listing.URL})
			}
			if err := uc.notifier.SendLocation(ctx, chatID, listing.Location.Longitude, listing.Location.Latitude); err != nil {
				ucLogger.Error("Failed to send location notification", err, port.Fields{"chat_id": chatID, "url": listing.URL})
			}
		}

		if err := uc.notifyLog.RecordNotified(ctx, listing); err != nil {
			ucLogger.Error("Failed to record notified listing", err, port.Fields{"url": listing.URL})
		}
	}

	// 6. Единственная мутация durable-состояния: фиксируем весь diff,
	// включая объявления, не прошедшие фильтр
	if err := uc.store.MarkSeen(ctx, newURLs); err != nil {
		return fmt.Errorf("could not mark listings as seen: %w", err)
	}

	ucLogger.Info("Scrape cycle finished", port.Fields{
		"notified_listings": len(accepted),
		"committed_urls":    len(newURLs),
	})
	return nil
}
