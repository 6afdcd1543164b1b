package config

import (
	"os"
	"strings"
)

// Config carries everything the service reads from the environment.
// It is built once in main and passed down explicitly; nothing below main
// reads ambient globals.
type Config struct {
	Addr         string
	MenuURL      string
	POSAPIKey    string
	CacheDir     string
	AssetDir     string
	AssetBaseURL string
	AllowOrigins []string
}

const (
	defaultMenuURL = "http://localhost:5055/public/menu"
	defaultAddr    = ":8000"
)

func Load() Config {
	return Config{
		Addr:         getenv("ADDR", defaultAddr),
		MenuURL:      getenv("MENU_URL", defaultMenuURL),
		POSAPIKey:    os.Getenv("POS_API_KEY"),
		CacheDir:     getenv("CACHE_DIR", ".cache"),
		AssetDir:     getenv("ASSET_DIR", "assets"),
		AssetBaseURL: getenv("ASSET_BASE_URL", "/assets"),
		AllowOrigins: splitList(getenv(
			"ALLOW_ORIGINS",
			"http://localhost:3000,http://localhost:5173",
		)),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
