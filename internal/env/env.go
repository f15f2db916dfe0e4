package env

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func GetString(key, fallback string) string {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return val
}

func GetInt(key string, fallback int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	valInt, err := strconv.Atoi(val)

	if err != nil {
		return fallback
	}
	return valInt
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}

// IsProduction reports whether the process runs in production mode.
// NODE_ENV is honoured so existing deployments keep working.
func IsProduction() bool {
	mode := GetString("APP_ENV", "")
	if mode == "" {
		mode = GetString("NODE_ENV", "")
	}
	return strings.EqualFold(strings.TrimSpace(mode), "production")
}
