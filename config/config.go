// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"fmt"     // Error wrapping
	"strconv" // Strict number parsing
	"strings" // For env key normalisation

	"github.com/go-playground/validator/v10" // Struct validation
	_ "github.com/joho/godotenv/autoload"    // Loads .env into the process env if present
	"github.com/knadh/koanf/providers/env"   // Environment provider for koanf
	"github.com/knadh/koanf/v2"              // Config store
)

// EnvPrefix is stripped from every recognised environment variable.
const EnvPrefix = "EMPLOYEE_"

type Config struct { // Config struct holds all configuration values
	DBPath          string  `validate:"required"`                                 // Path to the SQLite database file
	Addr            string  `validate:"required,hostname_port"`                   // Listen address of the HTTP service
	LogLevel        string  `validate:"oneof=trace debug info warn error"`        // zerolog level name
	GinMode         string  `validate:"oneof=debug release test"`                 // gin.SetMode value
	RateLimit       float64 `validate:"gte=0"`                                    // Requests per second, 0 (default) disables the limiter
	RateBurst       int     `validate:"gte=1"`                                    // Token bucket size
	MQTTBroker      string  `validate:"omitempty,url"`                            // Broker address, empty disables events
	MQTTClientID    string  `validate:"required_with=MQTTBroker"`                 // Client ID used when connecting
	MQTTTopicPrefix string  `validate:"required_with=MQTTBroker,excludesall=+#"` // Prepended to every event topic
}

// Load reads config from EMPLOYEE_* environment variables (and .env) or uses defaults.
// The defaults reproduce the fixed literals the service always ran with.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix)) // EMPLOYEE_DB_PATH -> db_path
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{
		DBPath:          getString(k, "db_path", "employee.db"),
		Addr:            getString(k, "addr", "0.0.0.0:8000"),
		LogLevel:        getString(k, "log_level", "info"),
		GinMode:         getString(k, "gin_mode", "release"),
		MQTTBroker:      getString(k, "mqtt_broker", ""),
		MQTTClientID:    getString(k, "mqtt_client_id", "employee-store"),
		MQTTTopicPrefix: getString(k, "mqtt_topic_prefix", "employees"),
	}

	// Limiting is opt-in; without it every request is served
	if cfg.RateLimit, err = getFloat(k, "rate_limit", 0); err != nil {
		return nil, err
	}
	if cfg.RateBurst, err = getInt(k, "rate_burst", 50); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags of c.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getString(k *koanf.Koanf, key, fallback string) string { // Helper to get a value or fallback
	if value := k.String(key); value != "" { // If set and non-empty, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getFloat(k *koanf.Koanf, key string, fallback float64) (float64, error) { // Unset or empty uses fallback, garbage is an error
	raw := k.String(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s %q: not a number", EnvPrefix, strings.ToUpper(key), raw)
	}
	return value, nil
}

func getInt(k *koanf.Koanf, key string, fallback int) (int, error) {
	raw := k.String(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s %q: not an integer", EnvPrefix, strings.ToUpper(key), raw)
	}
	return value, nil
}
