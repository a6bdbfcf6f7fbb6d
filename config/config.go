package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config is loaded once at startup: defaults, then the optional YAML file
// named by CONFIG_FILE, then environment variable overrides.
type Config struct {
	ListenAddr   string `yaml:"listen_addr" default:":8080"`
	JWTSecret    string `yaml:"jwt_secret"`
	TaxRate      string `yaml:"tax_rate" default:"0.075"`
	ShippingFee  string `yaml:"shipping_fee" default:"500"`
	StoreBackend string `yaml:"store_backend" default:"memory"`
	BoltPath     string `yaml:"bolt_path" default:"storefront.db"`
	RedisAddr    string `yaml:"redis_addr"`
	CatalogPath  string `yaml:"catalog_path"`

	// Identity provider credentials, env-only.
	FirebaseCredentialsJSON string `yaml:"-"`
	FirebaseProjectID       string `yaml:"-"`

	taxRate     decimal.Decimal
	shippingFee decimal.Decimal
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	overrideEnv(&cfg.ListenAddr, "LISTEN_ADDR")
	overrideEnv(&cfg.JWTSecret, "JWT_SECRET")
	overrideEnv(&cfg.TaxRate, "TAX_RATE")
	overrideEnv(&cfg.ShippingFee, "SHIPPING_FEE")
	overrideEnv(&cfg.StoreBackend, "STORE_BACKEND")
	overrideEnv(&cfg.BoltPath, "BOLT_PATH")
	overrideEnv(&cfg.RedisAddr, "REDIS_ADDR")
	overrideEnv(&cfg.CatalogPath, "CATALOG_PATH")
	cfg.FirebaseCredentialsJSON = os.Getenv("FIREBASE_CREDENTIALS_JSON")
	cfg.FirebaseProjectID = os.Getenv("FIREBASE_PROJECT_ID")

	var err error
	cfg.taxRate, err = decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return nil, fmt.Errorf("invalid tax_rate %q: %w", cfg.TaxRate, err)
	}
	if cfg.taxRate.IsNegative() {
		return nil, fmt.Errorf("tax_rate must not be negative")
	}
	cfg.shippingFee, err = decimal.NewFromString(cfg.ShippingFee)
	if err != nil {
		return nil, fmt.Errorf("invalid shipping_fee %q: %w", cfg.ShippingFee, err)
	}
	if cfg.shippingFee.IsNegative() {
		return nil, fmt.Errorf("shipping_fee must not be negative")
	}
	return cfg, nil
}

func (c *Config) TaxRateDecimal() decimal.Decimal     { return c.taxRate }
func (c *Config) ShippingFeeDecimal() decimal.Decimal { return c.shippingFee }

func overrideEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
