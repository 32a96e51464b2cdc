package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	StorageDriver   string
	SQLitePath      string
	MySQLDSN        string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	MongoURI        string
	MongoDB         string
	MongoCollection string

	SimulateLatency bool
	LogLevel        string
	LogFile         string

	SeedEmail    string
	SeedPassword string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		StorageDriver:   getEnv("STORAGE_DRIVER", "sqlite"),
		SQLitePath:      getEnv("SQLITE_PATH", "data/taskflow.db"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/taskflow?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "taskflow"),
		MongoCollection: getEnv("MONGO_COLLECTION", "slots"),
		SimulateLatency: getEnvBool("SIMULATE_LATENCY", true),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
		SeedEmail:       getEnv("SEED_EMAIL", "demo@taskflow.dev"),
		SeedPassword:    getEnv("SEED_PASSWORD", "demo123"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
