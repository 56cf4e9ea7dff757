package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "8083"
	DefaultBackendURL     = "http://localhost:8080"
	DefaultBackendTimeout = 15 * time.Second
	DefaultRoomCacheTTL   = 30 * time.Minute
	DefaultRefreshSpec    = "@every 5m"
)

// Config is the gateway's environment
type Config struct {
	Port           string
	BackendURL     string
	BackendTimeout time.Duration
	RedisAddr      string
	RedisUser      string
	RedisPassword  string
	RoomCacheTTL   time.Duration
	RefreshSpec    string
	LogLevel       string
	AllowedOrigins []string
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using the process environment: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func getEnvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getEnvDuration reads a whole number of units, e.g. BACKEND_TIMEOUT=15
func getEnvDuration(key string, unit, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return time.Duration(n) * unit
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Load reads the configuration from the environment. Call LoadEnv first
// to pick up a .env file.
func Load() Config {
	refresh, set := os.LookupEnv("REFRESH_SPEC")
	if !set {
		refresh = DefaultRefreshSpec
	}

	return Config{
		Port:           getEnvDefault("PORT", DefaultPort),
		BackendURL:     strings.TrimRight(getEnvDefault("BACKEND_URL", DefaultBackendURL), "/"),
		BackendTimeout: getEnvDuration("BACKEND_TIMEOUT", time.Second, DefaultBackendTimeout),
		RedisAddr:      GetEnv("REDIS_ADDR"),
		RedisUser:      GetEnv("REDIS_USER"),
		RedisPassword:  GetEnv("REDIS_PASSWORD"),
		RoomCacheTTL:   getEnvDuration("ROOM_CACHE_TTL", time.Minute, DefaultRoomCacheTTL),
		RefreshSpec:    strings.TrimSpace(refresh),
		LogLevel:       getEnvDefault("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(GetEnv("ALLOWED_ORIGINS")),
	}
}
