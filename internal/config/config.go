package config

import (
	"net/http"
	"os"
	"strconv"
)

type Config struct {
	Catalog CatalogConfig `json:"catalog"`
	Storage StorageConfig `json:"storage"`
}

// CatalogConfig controls the remote catalog client. HTTPClient is injectable
// for tests; leave nil for the default retrying client.
type CatalogConfig struct {
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	HTTPClient     *http.Client
}

type StorageConfig struct {
	DataDir string `json:"data_dir"`
}

func Load() (*Config, error) {
	config := &Config{
		Catalog: CatalogConfig{
			BaseURL:        os.Getenv("CATALOG_BASE_URL"),
			TimeoutSeconds: getEnvInt("CATALOG_TIMEOUT_SECONDS", 20),
		},
		Storage: StorageConfig{
			DataDir: getEnvOrDefault("SHAKER_DATA_DIR", "data"),
		},
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
