package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source types.
const (
	SourceTypeJSON     = "json"
	SourceTypePostgres = "postgres"
)

// Report modes.
const (
	ModePrices        = "prices"
	ModeRentals       = "rentals"
	ModeModifications = "rental_modifications"
)

// Config represents the application configuration
type Config struct {
	Source    SourceConfig    `yaml:"source"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// SourceConfig selects where the dataset is loaded from
type SourceConfig struct {
	Type     string         `yaml:"type"` // "json" or "postgres"
	Path     string         `yaml:"path"` // dataset file for the json source
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// OutputConfig contains report sink settings
type OutputConfig struct {
	Path   string `yaml:"path"`
	Mode   string `yaml:"mode"` // "prices", "rentals" or "rental_modifications"
	Pretty bool   `yaml:"pretty"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	BillingExport string `yaml:"billing_export"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Source
	if val := os.Getenv("SOURCE_TYPE"); val != "" {
		c.Source.Type = val
	}
	if val := os.Getenv("DATASET_PATH"); val != "" {
		c.Source.Path = val
	}

	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Source.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Source.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Source.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Source.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Source.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Source.Database.SSLMode = val
	}

	// Output
	if val := os.Getenv("REPORT_PATH"); val != "" {
		c.Output.Path = val
	}
	if val := os.Getenv("REPORT_MODE"); val != "" {
		c.Output.Mode = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Source defaults and validation
	if c.Source.Type == "" {
		c.Source.Type = SourceTypeJSON
	}
	switch c.Source.Type {
	case SourceTypeJSON:
		if c.Source.Path == "" {
			c.Source.Path = "./data.json"
		}
	case SourceTypePostgres:
		if c.Source.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Source.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Source.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	default:
		return fmt.Errorf("invalid source type: %s", c.Source.Type)
	}

	// Output defaults and validation
	if c.Output.Path == "" {
		c.Output.Path = "./output.json"
	}
	if c.Output.Mode == "" {
		c.Output.Mode = ModeModifications
	}
	switch c.Output.Mode {
	case ModePrices, ModeRentals, ModeModifications:
	default:
		return fmt.Errorf("invalid report mode: %s", c.Output.Mode)
	}

	// Scheduler defaults
	if c.Scheduler.BillingExport == "" {
		c.Scheduler.BillingExport = "0 0 2 * * *" // 2 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Source.Database.User,
		c.Source.Database.Password,
		c.Source.Database.Host,
		c.Source.Database.Port,
		c.Source.Database.Database,
		c.Source.Database.SSLMode,
	)
}
