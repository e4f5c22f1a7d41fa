package config

import (
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the distance reporter.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Source: The fixed dataset backend (csv, postgres).
// - Dataset: Path to the CSV dataset used when no count is given.
// - Format: The report layout (table, plain).
// - Seed: Seed for random mode, 0 picks a fresh one.
// - MetricsFile: Optional path for the Prometheus textfile export.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env         string         `yaml:"env"`          // Env is the current environment: local, dev, prod.
	Source      string         `yaml:"source"`       // Source is the fixed dataset backend.
	Dataset     string         `yaml:"dataset"`      // Dataset is the CSV dataset path.
	Format      string         `yaml:"format"`       // Format is the report layout.
	Seed        uint64         `yaml:"seed"`         // Seed for random point generation.
	MetricsFile string         `yaml:"metrics_file"` // MetricsFile receives metrics after the run.
	Database    PostgresConfig `yaml:"postgres"`     // Database holds the postgres database configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Name     string `yaml:"db_name"`                     // Name is the name of the database.
	Limit    int    `yaml:"limit"`                       // Limit is the maximum number of locations read.
}

// MustLoad loads the configuration from the environment (and an optional .env
// file) and returns a Config struct. It panics on malformed numeric values.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GEODIST")
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("source", "csv")
	v.SetDefault("dataset", "places.csv")
	v.SetDefault("format", "table")
	v.SetDefault("seed", "0")
	v.SetDefault("db_limit", "1000")
	v.SetDefault("metrics_file", "")

	_ = v.BindEnv("db.host", "DB_HOST")
	_ = v.BindEnv("db.port", "DB_PORT")
	_ = v.BindEnv("db.user", "DB_USERNAME")
	_ = v.BindEnv("db.password", "DB_PASSWORD")
	_ = v.BindEnv("db.name", "DB_NAME")
	v.SetDefault("db.port", "5432")

	seed, err := strconv.ParseUint(v.GetString("seed"), 10, 64)
	if err != nil {
		panic("failed to parse seed from configuration, must be a non-negative integer")
	}

	limit, err := strconv.Atoi(v.GetString("db_limit"))
	if err != nil {
		panic("failed to parse database row limit from configuration, must be an integer types")
	}

	return &Config{
		Env:         v.GetString("env"),
		Source:      v.GetString("source"),
		Dataset:     v.GetString("dataset"),
		Format:      v.GetString("format"),
		Seed:        seed,
		MetricsFile: v.GetString("metrics_file"),
		Database: PostgresConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Name:     v.GetString("db.name"),
			Limit:    limit,
		},
	}
}
