package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for a collection import run.
type Config struct {
	SourceDir            string
	CatalogPath          string
	RootFolder           string
	InitialChangeCounter int64 // 0 derives the seed from the catalog
	LogLevel             slog.Level
	LogFormat            string
	FatalExitCode        int
	CheckExifDates       bool
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or one of its parents, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		SourceDir:   getEnv("SOURCE_DIR", ""),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		RootFolder:  getEnv("ROOT_FOLDER", ""),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	level, err := ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	counter, err := strconv.ParseInt(getEnv("INITIAL_CHANGE_COUNTER", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("INITIAL_CHANGE_COUNTER must be a valid integer: %w", err)
	}
	cfg.InitialChangeCounter = counter

	exitCode, err := strconv.Atoi(getEnv("FATAL_EXIT_CODE", "1"))
	if err != nil {
		return nil, fmt.Errorf("FATAL_EXIT_CODE must be a valid integer: %w", err)
	}
	cfg.FatalExitCode = exitCode

	checkExif, err := strconv.ParseBool(getEnv("CHECK_EXIF_DATES", "false"))
	if err != nil {
		return nil, fmt.Errorf("CHECK_EXIF_DATES must be a boolean: %w", err)
	}
	cfg.CheckExifDates = checkExif

	return cfg, nil
}

// Validate checks required fields and value ranges. It is separate from Load
// so command-line flags can override environment values first.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("SOURCE_DIR is required")
	}
	info, err := os.Stat(c.SourceDir)
	if err != nil {
		return fmt.Errorf("SOURCE_DIR is not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("SOURCE_DIR must be a directory: %s", c.SourceDir)
	}

	if c.CatalogPath == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if _, err := os.Stat(c.CatalogPath); err != nil {
		return fmt.Errorf("CATALOG_PATH is not accessible: %w", err)
	}

	if c.RootFolder == "" {
		return fmt.Errorf("ROOT_FOLDER is required")
	}
	if c.InitialChangeCounter < 0 {
		return fmt.Errorf("INITIAL_CHANGE_COUNTER must not be negative")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	// 126 and above are reserved by shells
	if c.FatalExitCode < 0 || c.FatalExitCode > 125 {
		return fmt.Errorf("FATAL_EXIT_CODE must be between 0 and 125")
	}
	return nil
}

// loadDotEnv loads .env from the working directory, then walks up a few
// parents looking for one. Missing files are ignored.
func loadDotEnv() {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

// ParseLevel parses a log level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	return level, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
