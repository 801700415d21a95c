package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName            string
	Port               string
	Env                string
	Debug              bool
	BackendURL         string
	ItemsPageSize      int
	CategoriesPageSize int
	SessionTTLMin      int
	// Add more fields as needed
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:            envOr("APP_NAME", "Kyuna Admin"),
			Port:               os.Getenv("PORT"),
			Env:                os.Getenv("APP_ENV"),
			Debug:              os.Getenv("DEBUG") == "true",
			BackendURL:         envOr("BACKEND_URL", "http://localhost:5000/api"),
			ItemsPageSize:      envIntOr("ITEMS_PAGE_SIZE", 15),
			CategoriesPageSize: envIntOr("CATEGORIES_PAGE_SIZE", 100),
			SessionTTLMin:      envIntOr("SESSION_TTL_MIN", 720),
		}
	})
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
