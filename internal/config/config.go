package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DatabaseURL string
	ServerPort  string
	LogLevel    string

	JWTSecret []byte

	KafkaAddress string

	ESURL      string
	ESUser     string
	ESPassword string

	RedisAddr     string
	RedisPassword string
}

func must(v string, name string) string {
	if v == "" {
		log.Fatalf("missing required env %s", name)
	}
	return v
}

func getenvDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return &Config{
		DatabaseURL: must(os.Getenv("DATABASE_URL"), "DATABASE_URL"),
		ServerPort:  getenvDefault("SERVER_PORT", "8080"),
		LogLevel:    getenvDefault("LOG_LEVEL", "info"),

		JWTSecret: []byte(must(os.Getenv("JWT_SECRET"), "JWT_SECRET")),

		KafkaAddress: os.Getenv("KAFKA_ADDRESS"),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
}
