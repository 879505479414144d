package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV"`
	Port         int    `envconfig:"PORT" default:"8080"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`

	DynamoDB struct {
		Region       string `envconfig:"REGION" validate:"required"`
		MoviesTable  string `envconfig:"TABLE_NAME" validate:"required"`
		CastTable    string `envconfig:"CAST_TABLE_NAME" validate:"required"`
		Endpoint     string `envconfig:"DDB_ENDPOINT" validate:"omitempty,url"`
		AccessKey    string `envconfig:"DDB_ACCESS_KEY"`
		SecretKey    string `envconfig:"DDB_SECRET_KEY"`
		SessionToken string `envconfig:"DDB_SESSION_TOKEN"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}

// Validate checks the settings every entrypoint needs to reach the tables.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) IsLocal() bool {
	return c.AppEnv == "" || c.AppEnv == "local"
}
