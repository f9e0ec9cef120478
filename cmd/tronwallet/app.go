package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/AlexZinkM/tron-wallet/internal/address"
	"github.com/AlexZinkM/tron-wallet/internal/addressbook"
	"github.com/AlexZinkM/tron-wallet/internal/client"
	"github.com/AlexZinkM/tron-wallet/internal/config"
	"github.com/AlexZinkM/tron-wallet/internal/keys"
	"github.com/AlexZinkM/tron-wallet/internal/metrics"
	"github.com/AlexZinkM/tron-wallet/tron"
)

// app is the fully wired wallet
type app struct {
	svc      *tron.Service
	keys     *keys.Manager
	registry *prometheus.Registry
}

func newApp(cfg *config.Config, log *zap.Logger) (*app, error) {
	usdt, err := address.Parse(cfg.USDTContract)
	if err != nil {
		return nil, fmt.Errorf("USDT_CONTRACT: %w", err)
	}
	book, err := addressbook.NewStatic(cfg.Aliases)
	if err != nil {
		return nil, fmt.Errorf("TRON_ALIASES: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	grid := client.NewTronGridClient(client.Options{
		BaseURL:   cfg.TronGridURL,
		APIKey:    cfg.TronGridAPIKey,
		Timeout:   cfg.RequestTimeout,
		RateLimit: cfg.RateLimit,
	}, usdt)

	var risk tron.RiskChecker
	if cfg.SafetyCheck {
		risk = client.NewTronScanClient(client.Options{
			BaseURL:   cfg.TronScanURL,
			APIKey:    cfg.TronScanAPIKey,
			Timeout:   cfg.RequestTimeout,
			RateLimit: cfg.RateLimit,
		})
	} else {
		log.Warn("recipient safety check disabled")
	}

	manager := keys.NewManager(keySource(cfg))

	svc := tron.NewService(tron.Deps{
		Ledger:    grid,
		Endpoint:  grid,
		Signer:    manager,
		Risk:      risk,
		Aliases:   book,
		Resources: grid,
		Chain:     grid,
		USDT:      usdt,
		Cooldown:  cfg.PayCooldown,
		Logger:    log,
		Metrics:   metrics.New(registry),
	})

	return &app{svc: svc, keys: manager, registry: registry}, nil
}

// keySource picks the keystore when configured, the environment otherwise
func keySource(cfg *config.Config) keys.SecretSource {
	if cfg.UseKeystore() {
		return keys.KeystoreSource{
			Path: cfg.KeystorePath,
			Password: func() ([]byte, error) {
				return config.PromptForPassword("Keystore password: ")
			},
		}
	}
	return keys.EnvSource{Name: keys.DefaultEnvVar}
}
