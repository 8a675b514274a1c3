package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB            *sql.DB
	Port          string
	JWTSecret     string
	OverdueCron   string
	OverdueAfter  int // days past creation before a pending fee turns overdue
	AllowedOrigin string
}

var AppConfig *Config

// Load reads .env (if present) plus environment variables, opens the
// database pool and verifies connectivity.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnvInt("DB_PORT", 5432)
	user := getEnv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getEnv("DB_NAME", "tuition_plus")
	sslmode := getEnv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatalf("Cannot establish database connection to %s:%d/%s: %v", host, port, dbname, err)
	}

	AppConfig = &Config{
		DB:            db,
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "tuition-plus-dev-secret"),
		OverdueCron:   getEnv("OVERDUE_CRON", "0 2 * * *"),
		OverdueAfter:  getEnvInt("OVERDUE_AFTER_DAYS", 30),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
