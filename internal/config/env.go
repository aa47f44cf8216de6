package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	DataDir        string
	UsersFile      string
	TrainsFile     string
	SessionFile    string
	SessionSecret  string
	PaymentTimeout time.Duration
	NoColor        bool
}

func LoadEnv() Env {
	// .env is optional for local runs
	_ = godotenv.Load()

	dataDir := getEnv("APP_DATA_DIR", "data")

	return Env{
		DataDir:        dataDir,
		UsersFile:      getEnv("USERS_FILE", filepath.Join(dataDir, "users.json")),
		TrainsFile:     getEnv("TRAINS_FILE", filepath.Join(dataDir, "trains.json")),
		SessionFile:    getEnv("SESSION_FILE", filepath.Join(dataDir, "session.jwt")),
		SessionSecret:  getEnv("SESSION_SECRET", "railbook-local-secret-change-me"),
		PaymentTimeout: getDuration("PAYMENT_TIMEOUT", 5*time.Minute),
		NoColor:        strings.TrimSpace(os.Getenv("NO_COLOR")) != "",
	}
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
