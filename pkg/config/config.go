package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every storefront environment variable.
const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	API      APIConfig
	Checkout CheckoutConfig
	State    StateConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	if err := cfg.State.ensureDir(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOREFRONT_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOREFRONT_LOG_WARN_STACK" default:"false"`
	LogFile      string `envconfig:"STOREFRONT_LOG_FILE"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type APIConfig struct {
	BaseURL        string        `envconfig:"STOREFRONT_API_URL" default:"http://localhost:3000/api/store"`
	RequestTimeout time.Duration `envconfig:"STOREFRONT_API_TIMEOUT" default:"15s"`
	RevalidateTTL  time.Duration `envconfig:"STOREFRONT_API_REVALIDATE_TTL" default:"60s"`
}

func (a APIConfig) validate() error {
	parsed, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base url %q: %w", a.BaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("api base url %q must use http or https", a.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("api base url %q is missing a host", a.BaseURL)
	}
	if a.RequestTimeout <= 0 {
		return fmt.Errorf("api request timeout must be positive")
	}
	return nil
}

type CheckoutConfig struct {
	PaymentDelay   time.Duration `envconfig:"STOREFRONT_PAYMENT_DELAY" default:"2s"`
	PaymentGateway string        `envconfig:"STOREFRONT_PAYMENT_GATEWAY" default:"simulation"`
}

type StateConfig struct {
	Dir string `envconfig:"STOREFRONT_STATE_DIR"`
}

// CredentialsPath returns the file that backs the persisted session.
func (s StateConfig) CredentialsPath() string {
	return filepath.Join(s.Dir, "credentials.json")
}

func (s *StateConfig) ensureDir() error {
	if s.Dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolving state dir: %w", err)
		}
		s.Dir = filepath.Join(base, "fp-store-front")
	}
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return fmt.Errorf("creating state dir %s: %w", s.Dir, err)
	}
	return nil
}
