// Package config loads ticketctl settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. TICKETDESK_API_KEY.
const Prefix = "TICKETDESK"

// Fields map to variables by splitting their names on word boundaries, so
// TestOnConnect reads TICKETDESK_TEST_ON_CONNECT. Explicit envconfig tags are
// avoided because envconfig falls back to the unprefixed name (USER, DOMAIN).
type Config struct {
	APIKey        string        `split_words:"true"`
	User          string        `split_words:"true"`
	Domain        string        `split_words:"true"`
	Suffix        string        `split_words:"true" default:".json"`
	TestOnConnect bool          `split_words:"true" default:"false"`
	Timeout       time.Duration `split_words:"true" default:"10s"`
	LogLevel      string        `split_words:"true" default:"info"`
}

// Load reads an optional .env file from each of envFiles and then populates
// Config from the environment. Variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		// missing files are fine
		_ = godotenv.Load(f)
	}

	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	return c, nil
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New(Prefix + "_API_KEY is required")
	}
	if c.User == "" {
		return errors.New(Prefix + "_USER is required")
	}
	if c.Domain == "" {
		return errors.New(Prefix + "_DOMAIN is required")
	}
	if c.Timeout <= 0 {
		return errors.New(Prefix + "_TIMEOUT must be positive")
	}
	return nil
}
