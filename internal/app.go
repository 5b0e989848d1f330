package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"housing-watcher-service/internal/adapters/huurwoningenfetcher"
	"housing-watcher-service/internal/adapters/ikwilhurenfetcher"
	logger_adapter "housing-watcher-service/internal/adapters/logger"
	"housing-watcher-service/internal/adapters/parariusfetcher"
	postgres_adapter "housing-watcher-service/internal/adapters/postgres"
	"housing-watcher-service/internal/adapters/rest"
	"housing-watcher-service/internal/adapters/rotterdamwonenfetcher"
	"housing-watcher-service/internal/adapters/telegram"
	"housing-watcher-service/internal/adapters/verrafetcher"
	"housing-watcher-service/internal/configs"
	"housing-watcher-service/internal/constants"
	"housing-watcher-service/internal/contextkeys"
	"housing-watcher-service/internal/core/domain"
	"housing-watcher-service/internal/core/port"
	"housing-watcher-service/internal/core/usecase"
	pgclient "housing-watcher-service/pkg/postgres"

	fluentlogger "housing-watcher-service/pkg/fluent_logger"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config *configs.AppConfig

	apiServer *rest.Server
	watchUC   *usecase.WatchSitesUseCase
	poller    *telegram.Poller

	pool         *pgxpool.Pool
	baseLogger   port.LoggerPort
	logger       port.LoggerPort
	fluentClient *fluent.Fluent
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. ПОДКЛЮЧЕНИЕ К БД ---
	pool, err := pgclient.NewClient(context.Background(), pgclient.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to database", err, nil)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	appLogger.Info("Database connection pool initialized", nil)

	dedupStore := postgres_adapter.NewPostgresDedupStoreAdapter(pool)
	notifyLog := postgres_adapter.NewPostgresNotificationLogAdapter(pool)

	// --- 3. ВНЕШНИЕ АДАПТЕРЫ ---
	telegramClient, err := telegram.NewClient(appConfig.Telegram.APIBaseURL, appConfig.Telegram.Token)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}

	scrapers, err := buildScrapers(appConfig.Watch.Sites)
	if err != nil {
		pool.Close()
		return nil, err
	}
	appLogger.Info("Site scrapers initialized", port.Fields{"sites": appConfig.Watch.Sites})

	// --- 4. USE CASES ---
	subscribeUseCase := usecase.NewSubscribeUseCase(dedupStore)
	scrapeCycleUseCase := usecase.NewScrapeCycleUseCase(dedupStore, telegramClient, notifyLog, usecase.ScrapeCycleConfig{
		PriceCeiling: appConfig.Watch.PriceCeiling,
		AreaFloor:    appConfig.Watch.AreaFloor,
		Region:       domain.NewRegion(appConfig.Watch.RegionPolygon),
		DetailDelay:  appConfig.Watch.DetailDelay,
	})
	watchUseCase := usecase.NewWatchSitesUseCase(scrapeCycleUseCase, scrapers, appConfig.Watch.Interval)

	appLogger.Info("All use cases initialized", nil)

	poller := telegram.NewPoller(telegramClient, subscribeUseCase)

	apiHandlers := rest.NewSubscribersHandler(subscribeUseCase)
	apiServer := rest.NewServer(appConfig.HTTPPort, baseLogger, apiHandlers)

	application := &App{
		config:       appConfig,
		apiServer:    apiServer,
		watchUC:      watchUseCase,
		poller:       poller,
		pool:         pool,
		baseLogger:   baseLogger,
		logger:       appLogger,
		fluentClient: fluentClient,
	}

	return application, nil
}

// buildScrapers собирает адаптеры для включенных в конфигурации сайтов
func buildScrapers(sites []string) ([]port.SiteScraperPort, error) {
	scrapers := make([]port.SiteScraperPort, 0, len(sites))
	for _, site := range sites {
		switch site {
		case constants.SitePararius:
			s, err := parariusfetcher.NewParariusFetcherAdapter(constants.ParariusSearchURL, constants.ParariusBaseURL)
			if err != nil {
				return nil, err
			}
			scrapers = append(scrapers, s)
		case constants.SiteHuurwoningen:
			s, err := huurwoningenfetcher.NewHuurwoningenFetcherAdapter(constants.HuurwoningenSearchURL, constants.HuurwoningenBaseURL)
			if err != nil {
				return nil, err
			}
			scrapers = append(scrapers, s)
		case constants.SiteIkwilhuren:
			s, err := ikwilhurenfetcher.NewIkwilhurenFetcherAdapter(constants.IkwilhurenSearchURL, constants.IkwilhurenBaseURL)
			if err != nil {
				return nil, err
			}
			scrapers = append(scrapers, s)
		case constants.SiteRotterdamWonen:
			s, err := rotterdamwonenfetcher.NewRotterdamWonenFetcherAdapter(constants.RotterdamWonenSearchURL)
			if err != nil {
				return nil, err
			}
			scrapers = append(scrapers, s)
		case constants.SiteVerra:
			s, err := verrafetcher.NewVerraFetcherAdapter(constants.VerraListingsURL, constants.VerraBaseURL)
			if err != nil {
				return nil, err
			}
			scrapers = append(scrapers, s)
		default:
			return nil, fmt.Errorf("unknown site in WATCH_SITES: %q", site)
		}
	}
	if len(scrapers) == 0 {
		return nil, fmt.Errorf("WATCH_SITES resolved to an empty scraper list")
	}
	return scrapers, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())
	appCtx = contextkeys.ContextWithLogger(appCtx, a.baseLogger)

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.poller != nil {
			if err := a.poller.Close(); err != nil {
				a.logger.Error("Error during poller shutdown", err, nil)
			}
		}

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.pool != nil {
			a.pool.Close()
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	componentErrors := make(chan error, 3)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.HTTPPort})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			componentErrors <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	go func() {
		if err := a.watchUC.Run(appCtx); err != nil && appCtx.Err() == nil {
			componentErrors <- fmt.Errorf("site watch loop failed: %w", err)
		}
	}()

	go func() {
		if err := a.poller.Start(appCtx); err != nil && appCtx.Err() == nil {
			componentErrors <- fmt.Errorf("telegram poller failed: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or component error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-componentErrors:
		a.logger.Error("Component failed, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
