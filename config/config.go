package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"

	defaultSQLiteDSN = "restaurant.db"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	DB       DBConfig
	HTTP     HTTPConfig
}

type DBConfig struct {
	Driver string
	// URL is DATABASE_URL as given; empty when unset.
	URL  string
	Name string
}

type HTTPConfig struct {
	AllowOrigins   []string
	RateLimitRPS   float64
	RateLimitBurst int
	// SecurityHeaders are added to every response.
	SecurityHeaders map[string]string
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8000"),
		GinMode:  getEnv("GIN_MODE", ""),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DB: DBConfig{
			Driver: strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			URL:    os.Getenv("DATABASE_URL"),
			Name:   os.Getenv("DATABASE_NAME"),
		},
		HTTP: HTTPConfig{
			AllowOrigins:    splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
			RateLimitRPS:    getFloat("RATE_LIMIT_RPS", 50),
			RateLimitBurst:  getInt("RATE_LIMIT_BURST", 100),
			SecurityHeaders: securityHeaders(),
		},
	}
}

// DSN is the connection string handed to the driver.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	if c.Driver == DriverSQLite {
		return defaultSQLiteDSN
	}
	return ""
}

// securityHeaders builds the response header set. HSTS is only sent when
// HSTS_MAX_AGE is positive.
func securityHeaders() map[string]string {
	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        getEnv("FRAME_OPTIONS", "DENY"),
		"Referrer-Policy":        getEnv("REFERRER_POLICY", "strict-origin-when-cross-origin"),
	}
	if maxAge := getInt("HSTS_MAX_AGE", 0); maxAge > 0 {
		headers["Strict-Transport-Security"] = fmt.Sprintf("max-age=%d; includeSubDomains", maxAge)
	}
	return headers
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
