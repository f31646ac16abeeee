package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl           string
	ServerPort      string
	SessionRedisURL string
	SessionTTLHours int

	// CORSAllowedOrigins vazio libera qualquer Origin (deploy interno
	// padrão); preenchido, só as origens listadas recebem credenciais.
	CORSAllowedOrigins []string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBUrl:              getEnv("DATABASE_URL", "file:field_assets.db"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		SessionRedisURL:    getEnv("SESSION_REDIS_URL", ""),
		SessionTTLHours:    getEnvInt("SESSION_TTL_HOURS", 24),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
	}
}

func getEnvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}

	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
