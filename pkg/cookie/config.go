package cookie

import (
	"net/http"
	"strings"
)

// Config holds cookie manager configuration.
// HttpOnly defaults to false: browser-side sixpack clients read the same
// visitor cookie from JavaScript.
type Config struct {
	Secrets  string        `env:"COOKIE_SECRETS" envDefault:""`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"false"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
}

// parseSecrets splits the comma-separated secrets string.
func (c Config) parseSecrets() []string {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))

	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s != "" {
			secrets = append(secrets, s)
		}
	}

	return secrets
}

// NewFromConfig creates a new Manager from the provided Config.
// Extra options are applied after the config values.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	configOpts = append(configOpts, WithSecure(cfg.Secure), WithHTTPOnly(cfg.HttpOnly))
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	configOpts = append(configOpts, opts...)

	return New(cfg.parseSecrets(), configOpts...)
}
