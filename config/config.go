package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Port       string
	UploadDir  string
	// Bounds for the underlying sql.DB connection pool
	DBMaxOpenConns int
	DBMaxIdleConns int
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBHost:         getenvOrDefault("DB_HOST", "localhost"),
		DBPort:         getenvOrDefault("DB_PORT", "5432"),
		DBUser:         getenvOrDefault("DB_USER", "postgres"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getenvOrDefault("DB_NAME", "proyecto"),
		Port:           getenvOrDefault("PORT", "8080"),
		UploadDir:      getenvOrDefault("UPLOAD_DIR", "./uploads"),
		DBMaxOpenConns: getenvOrDefaultInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getenvOrDefaultInt("DB_MAX_IDLE_CONNS", 5),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
