package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is everything the catalog tools read from the environment.
type Config struct {
	Database Database
	Log      Log
}

// Log configures the rotating application log.
type Log struct {
	File       string // empty logs to stderr
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Load reads envFile (".env" when empty) if it exists, then the environment.
func Load(envFile string) Config {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		logrus.WithField("file", envFile).Debug("no env file found, relying on env vars")
	}

	return Config{
		Database: Database{
			Driver:     getEnv("DB_DRIVER", DriverPGX),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "password"),
			Name:       getEnv("DB_NAME", "protoroute"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			TimeZone:   getEnv("DB_TIMEZONE", "UTC"),
			SQLitePath: getEnv("SQLITE_PATH", "protoroute.db"),
			LogLevel:   getEnv("DB_LOG_LEVEL", "warn"),
		},
		Log: Log{
			File:       getEnv("LOG_FILE", "./logs/app.log"),
			Level:      getEnv("LOG_LEVEL", "info"),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 7),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("ignoring malformed integer setting")
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("ignoring malformed boolean setting")
		return defaultValue
	}
	return b
}
