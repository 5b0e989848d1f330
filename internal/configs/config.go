package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"housing-watcher-service/internal/constants"

	"github.com/joho/godotenv"
)

// DBconfig хранит конфигурацию для БД
type DBconfig struct {
	URL string
}

// TelegramConfig хранит конфигурацию Telegram-бота
type TelegramConfig struct {
	Token      string
	APIBaseURL string
}

type StdoutLogConfig struct {
	Level string // По умолчанию DEBUG
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string // По умолчанию INFO
}

// WatchConfig - настройки цикла наблюдения за сайтами
type WatchConfig struct {
	Sites         []string      // какие адаптеры включены
	Interval      time.Duration // пауза между циклами
	DetailDelay   time.Duration // вежливая пауза перед каждым запросом деталей
	PriceCeiling  int           // принимаем строго дешевле
	AreaFloor     int           // принимаем от этой площади включительно
	RegionPolygon [][2]float64  // желаемый район (lon,lat)
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	HTTPPort     string
	Database     DBconfig
	Telegram     TelegramConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
	Watch        WatchConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		// .env не обязателен: в контейнере все приходит через окружение
		log.Printf("Info: could not load .env file (path: %v): %v\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "housing-watcher-service")
	cfg.HTTPPort = getEnvAsString("HTTP_PORT", "8080")

	// Читаем DATABASE URL
	cfg.Database.URL = os.Getenv("DATABASE_URL")
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg.Telegram.Token = os.Getenv("TELEGRAM_BOT_TOKEN")
	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is required")
	}
	cfg.Telegram.APIBaseURL = getEnvAsString("TELEGRAM_API_URL", "https://api.telegram.org")

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	cfg.Watch.Sites = splitCSV(getEnvAsString("WATCH_SITES", constants.SitePararius))
	cfg.Watch.Interval = time.Duration(getEnvAsInt("POLL_INTERVAL_SECONDS", 300)) * time.Second
	cfg.Watch.DetailDelay = time.Duration(getEnvAsInt("DETAIL_DELAY_SECONDS", 2)) * time.Second
	cfg.Watch.PriceCeiling = getEnvAsInt("PRICE_CEILING", constants.DefaultPriceCeiling)
	cfg.Watch.AreaFloor = getEnvAsInt("AREA_FLOOR", constants.DefaultAreaFloor)

	cfg.Watch.RegionPolygon = constants.DefaultRegionPolygon
	if raw := os.Getenv("REGION_POLYGON"); raw != "" {
		polygon, err := parsePolygon(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REGION_POLYGON: %w", err)
		}
		cfg.Watch.RegionPolygon = polygon
	}

	return cfg, nil
}

// parsePolygon разбирает строку вида "lon,lat;lon,lat;...".
func parsePolygon(raw string) ([][2]float64, error) {
	pairs := strings.Split(raw, ";")
	if len(pairs) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 points, got %d", len(pairs))
	}

	polygon := make([][2]float64, 0, len(pairs))
	for _, pair := range pairs {
		parts := strings.Split(strings.TrimSpace(pair), ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("point %q must be 'lon,lat'", pair)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude in %q: %w", pair, err)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude in %q: %w", pair, err)
		}
		polygon = append(polygon, [2]float64{lon, lat})
	}
	return polygon, nil
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// getEnvAsString читает переменную окружения как строку или возвращает значение по умолчанию
func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию
// Логирует ошибку, если переменная есть, но не может быть преобразована в int
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
