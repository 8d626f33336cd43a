/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/nscaledev/chargepoint-e2e/test/logger"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type TestConfig struct {
	BaseURL           string
	UIBaseURL         string
	RequestTimeout    time.Duration
	TestTimeout       time.Duration
	PollInterval      time.Duration
	SkipIntegration   bool
	StartStub         bool
	Headless          bool
	SlowMo            time.Duration
	Screenshots       bool
	ExpectedTitle     string
	LogLevel          logger.Level
	LogColors         bool
	LogTimestamps     bool
	LogRequests       bool
	LogResponses      bool
	ValidateResponses bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Every value has a default suitable for a local run, so only malformed
// values are errors.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	logLevel, err := logger.ParseLevel(getStringWithDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("%w: LOG_LEVEL: %w", ErrInvalidConfig, err)
	}

	config := &TestConfig{
		BaseURL:           getStringWithDefault("API_BASE_URL", "http://localhost:3001"),
		UIBaseURL:         getStringWithDefault("UI_BASE_URL", "http://localhost:3000"),
		RequestTimeout:    getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:       getDurationWithDefault("TEST_TIMEOUT", 5*time.Second),
		PollInterval:      getDurationWithDefault("POLL_INTERVAL", 100*time.Millisecond),
		SkipIntegration:   getBoolWithDefault("SKIP_INTEGRATION", false),
		StartStub:         getBoolWithDefault("START_STUB", false),
		Headless:          getBoolWithDefault("HEADLESS", true),
		SlowMo:            getDurationWithDefault("SLOW_MO", 0),
		Screenshots:       getBoolWithDefault("SCREENSHOTS", true),
		ExpectedTitle:     getStringWithDefault("EXPECTED_TITLE", "React App"),
		LogLevel:          logLevel,
		LogColors:         getBoolWithDefault("LOG_COLORS", true),
		LogTimestamps:     getBoolWithDefault("LOG_TIMESTAMPS", true),
		LogRequests:       getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:      getBoolWithDefault("LOG_RESPONSES", false),
		ValidateResponses: getBoolWithDefault("VALIDATE_RESPONSES", false),
	}

	if err := validateURLs(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoggerConfig returns the diagnostic logger configuration from the LOG_* variables.
func (c *TestConfig) LoggerConfig() logger.Config {
	return logger.Config{
		MinLevel:       c.LogLevel,
		ShowTimestamps: c.LogTimestamps,
		UseColors:      c.LogColors,
	}
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/<suite>/suites directory
		"../../../.env", // From test/contracts/consumer/<service> directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Load does not override variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateURLs checks the service addresses are absolute URLs.
func validateURLs(config *TestConfig) error {
	urls := map[string]string{
		"API_BASE_URL": config.BaseURL,
		"UI_BASE_URL":  config.UIBaseURL,
	}

	for envVar, value := range urls {
		u, err := url.ParseRequestURI(value)
		if err != nil || u.Host == "" {
			return fmt.Errorf("%w: %s must be an absolute URL, got %q", ErrInvalidConfig, envVar, value)
		}
	}

	return nil
}
