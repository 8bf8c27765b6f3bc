package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config конфигурация приложения из окружения / .env файла
type Config struct {
	APIBaseURL     string // корень API встреч
	Environment    string // development / production
	UserID         string // пользователь, чей календарь отображаем
	View           string // day / week / month
	OutputPath     string // куда писать PNG
	RefreshMinutes int    // период фонового обновления, 0 = разовый запуск
}

// Load загружает конфигурацию. .env файл опционален — если его нет,
// читаем напрямую из переменных окружения.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		Environment: os.Getenv("ENV"),
		UserID:      os.Getenv("USER_ID"),
		View:        os.Getenv("VIEW"),
		OutputPath:  os.Getenv("OUTPUT_PATH"),
	}

	// Дефолтные значения
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:5231/api"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.View == "" {
		cfg.View = "week"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "calendar.png"
	}

	if raw := os.Getenv("REFRESH_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("REFRESH_MINUTES must be a number: %w", err)
		}
		cfg.RefreshMinutes = minutes
	}

	// Обязательные поля
	if cfg.UserID == "" {
		return nil, fmt.Errorf("USER_ID is required but not set")
	}

	return cfg, nil
}
