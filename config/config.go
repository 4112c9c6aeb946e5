package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the tool's settings, read from the environment with an
// optional .env file.
type Config struct {
	// APIBaseURL is the remote service root every request is relative to.
	APIBaseURL string
	// AssetBaseURL prefixes relative image paths in the detail view.
	AssetBaseURL string
	// TokenDBPath is the sqlite file the bearer token is persisted in.
	TokenDBPath string
	// RequestTimeout bounds each HTTP exchange.
	RequestTimeout time.Duration
}

func Load() Config {
	_ = godotenv.Load()
	env := environMap()

	return Config{
		APIBaseURL:     GetString(env, "PORTFOLIO_API_URL", "https://camel-sweet-lionfish.ngrok-free.app/api"),
		AssetBaseURL:   GetString(env, "PORTFOLIO_ASSET_URL", "https://camel-sweet-lionfish.ngrok-free.app"),
		TokenDBPath:    GetString(env, "PORTFOLIO_TOKEN_DB", "portfolioadmin.db"),
		RequestTimeout: time.Duration(GetInt(env, "PORTFOLIO_TIMEOUT_SECONDS", 60)) * time.Second,
	}
}

func environMap() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
