package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// The private key itself is not part of Config: it is read from
// TRON_PRIVATE_KEY (or the keystore) by the key manager on first use.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	TronGridURL    string        `envconfig:"TRONGRID_URL" default:"https://api.trongrid.io"`
	TronGridAPIKey string        `envconfig:"TRONGRID_API_KEY"`
	TronScanURL    string        `envconfig:"TRONSCAN_URL" default:"https://apilist.tronscanapi.com"`
	TronScanAPIKey string        `envconfig:"TRONSCAN_API_KEY"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	RateLimit      int           `envconfig:"RATE_LIMIT_PER_SECOND" default:"10"`

	USDTContract string `envconfig:"USDT_CONTRACT" default:"TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"`

	KeystorePath string `envconfig:"TRON_KEYSTORE_PATH"`

	// Aliases maps names to addresses: TRON_ALIASES=alice:T...,bob:T...
	Aliases map[string]string `envconfig:"TRON_ALIASES"`

	SafetyCheck bool `envconfig:"SAFETY_CHECK" default:"true"`

	// PayCooldown is the minimum time between two transfers, 0 disables it
	PayCooldown time.Duration `envconfig:"PAY_COOLDOWN" default:"0s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.RateLimit <= 0 {
		return nil, errors.New("RATE_LIMIT_PER_SECOND must be positive")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("REQUEST_TIMEOUT must be positive")
	}
	if cfg.PayCooldown < 0 {
		return nil, errors.New("PAY_COOLDOWN cannot be negative")
	}
	return cfg, nil
}

// UseKeystore reports whether the key should be read from the encrypted keystore
func (c *Config) UseKeystore() bool {
	return c.KeystorePath != ""
}

// PromptForPassword prompts the user for the keystore password in the terminal.
// The password is read without echoing. Caller must zero the returned slice.
func PromptForPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}
