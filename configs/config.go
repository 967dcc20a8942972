package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURI    string
	MongoDBName string
	JWTSecret   string
	TMDBAPIKey  string
}

// Load reads the environment once at startup. The resulting Config is
// passed by reference to every constructor that needs it.
func Load() *Config {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGO_DB_NAME", "movie_review"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TMDBAPIKey:  os.Getenv("TMDB_API_KEY"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("🔥 JWT_SECRET must be set")
	}
	if cfg.TMDBAPIKey == "" {
		log.Println("Warning: TMDB_API_KEY not set, movie catalog routes will fail")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
