package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Youdao credential fields. The API URL is optional and falls back to
	// the documented default endpoint when blank.
	YoudaoAppKey    string `envconfig:"YOUDAO_APP_KEY" default:""`
	YoudaoAppSecret string `envconfig:"YOUDAO_APP_SECRET" default:""`
	YoudaoAPIURL    string `envconfig:"YOUDAO_API_URL" default:""`

	// TranslatorRanking is the confidence score stamped on produced matches.
	TranslatorRanking float64 `envconfig:"TRANSLATOR_RANKING" default:"1.0"`
	DefaultTranslator string  `envconfig:"DEFAULT_TRANSLATOR" default:"youdao"`

	// DatabaseURL enables the optional run-history store when set.
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`

	// APITokenHash is a bcrypt hash; when set, the HTTP API requires a
	// matching bearer token.
	APITokenHash       string `envconfig:"API_TOKEN_HASH" default:""`
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.TranslatorRanking <= 0 {
		return fmt.Errorf("TRANSLATOR_RANKING must be > 0")
	}
	if apiURL := strings.TrimSpace(c.YoudaoAPIURL); apiURL != "" {
		parsed, err := url.Parse(apiURL)
		if err != nil || parsed.Scheme == "" || strings.TrimSpace(parsed.Host) == "" {
			return fmt.Errorf("YOUDAO_API_URL must be an absolute URL")
		}
	}
	if strings.TrimSpace(c.DefaultTranslator) == "" {
		return fmt.Errorf("DEFAULT_TRANSLATOR is required")
	}
	return nil
}

// HasCredentials reports whether both credential fields are present. The
// translator reports its own diagnostic when they are missing; this lets
// surfaces warn up front instead.
func (c *Config) HasCredentials() bool {
	if c == nil {
		return false
	}
	return strings.TrimSpace(c.YoudaoAppKey) != "" && strings.TrimSpace(c.YoudaoAppSecret) != ""
}

func (c *Config) HistoryEnabled() bool {
	return c != nil && strings.TrimSpace(c.DatabaseURL) != ""
}

func (c *Config) CORSAllowedOriginsList() []string {
	if c == nil {
		return nil
	}

	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		if _, exists := seen[origin]; exists {
			continue
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}
	return origins
}
