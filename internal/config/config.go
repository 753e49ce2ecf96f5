package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIURL is the Concero faucet API base
	DefaultAPIURL = "https://api.concero.io"

	// DefaultAddressFile is read from the working directory
	DefaultAddressFile = "address.txt"
)

// ClaimerConfig holds configuration for the claim loop
type ClaimerConfig struct {
	AddressFile string
	APIURL      string
	LogLevel    string
}

// ServerConfig holds configuration for the stub faucet server
type ServerConfig struct {
	Port     string
	LogLevel string

	// Redis (optional, in-memory cooldowns when empty)
	RedisURL string

	CooldownHours int
	ResponseDelay time.Duration
}

// LoadClaimer loads claimer configuration from environment variables
func LoadClaimer() (*ClaimerConfig, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	config := &ClaimerConfig{
		AddressFile: getEnv("ADDRESS_FILE", DefaultAddressFile),
		APIURL:      getEnv("FAUCET_API_URL", DefaultAPIURL),
		// JSON log lines would tear the countdown line apart, keep quiet by default
		LogLevel: getEnv("LOG_LEVEL", "warn"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if all required configuration is present
func (c *ClaimerConfig) Validate() error {
	if c.AddressFile == "" {
		return fmt.Errorf("ADDRESS_FILE is required")
	}
	if c.APIURL == "" {
		return fmt.Errorf("FAUCET_API_URL is required")
	}
	return nil
}

// LoadServer loads stub server configuration from environment variables
func LoadServer() (*ServerConfig, error) {
	_ = godotenv.Load()

	config := &ServerConfig{
		Port:          getEnv("PORT", "3000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RedisURL:      getEnv("REDIS_URL", ""),
		CooldownHours: getEnvAsInt("COOLDOWN_HOURS", 24),
		ResponseDelay: time.Duration(getEnvAsInt("RESPONSE_DELAY_MS", 0)) * time.Millisecond,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.CooldownHours < 0 {
		return fmt.Errorf("COOLDOWN_HOURS must not be negative")
	}
	if c.ResponseDelay < 0 {
		return fmt.Errorf("RESPONSE_DELAY_MS must not be negative")
	}
	return nil
}

// Cooldown returns the per (address, chain) cooldown
func (c *ServerConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownHours) * time.Hour
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
