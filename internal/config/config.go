package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	CSVSource     string // path or URL of the scraped shops dataset
	CacheTTL      time.Duration
	MaxDistanceKM float64
}

// Load reads configuration from the environment, with a .env file as an
// optional overlay for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	port = ":" + strings.TrimPrefix(port, ":")

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/shops.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	csvSource := os.Getenv("CSV_SOURCE")
	if csvSource == "" {
		csvSource = "./data/shops.csv"
	}

	cacheTTL := 5 * time.Minute
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			log.Printf("Warning: invalid CACHE_TTL %q, using default", raw)
		} else {
			cacheTTL = ttl
		}
	}

	maxDistance := 5.0
	if raw := os.Getenv("MAX_DISTANCE_KM"); raw != "" {
		km, err := strconv.ParseFloat(raw, 64)
		if err != nil || km <= 0 {
			log.Printf("Warning: invalid MAX_DISTANCE_KM %q, using default", raw)
		} else {
			maxDistance = km
		}
	}

	return &Config{
		Port:          port,
		DBPath:        dbPath,
		JWTSecret:     jwtSecret,
		CSVSource:     csvSource,
		CacheTTL:      cacheTTL,
		MaxDistanceKM: maxDistance,
	}
}
