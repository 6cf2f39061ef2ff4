package sixpack

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds Session settings that can come from the environment.
type Config struct {
	BaseURL      string `env:"SIXPACK_BASE_URL" envDefault:"http://localhost:5000" validate:"required,url"`
	CookiePrefix string `env:"SIXPACK_COOKIE_PREFIX" envDefault:"sixpack" validate:"required"`
	TimeoutMS    int    `env:"SIXPACK_TIMEOUT_MS" envDefault:"500" validate:"gt=0"`
	// ClientID pins the visitor identifier, mostly useful for server-side
	// jobs acting on behalf of a known visitor.
	ClientID string `env:"SIXPACK_CLIENT_ID"`
}

// DefaultConfig returns the defaults shared by all sixpack clients.
func DefaultConfig() Config {
	return Config{
		BaseURL:      "http://localhost:5000",
		CookiePrefix: "sixpack",
		TimeoutMS:    500,
	}
}

// Timeout returns TimeoutMS as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the config. Errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig loads the given .env files (the default .env when none are
// named; missing files are ignored), then parses SIXPACK_* variables over
// the defaults and validates the result. Variables already present in the
// process environment win over .env values.
func LoadConfig(files ...string) (Config, error) {
	// The .env file is optional
	_ = godotenv.Load(files...)

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
