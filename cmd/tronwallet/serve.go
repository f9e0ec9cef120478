package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlexZinkM/tron-wallet/internal/api"
	"github.com/AlexZinkM/tron-wallet/internal/handler"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer log.Sync()

		a, err := newApp(cfg, log)
		if err != nil {
			return err
		}

		// Load the key up front so a keystore password is asked before serving
		if err := a.keys.Load(); err != nil {
			log.Warn("signing key not available, transfers will fail", zap.Error(err))
		} else if addr, err := a.keys.Address(); err == nil {
			log.Info("wallet loaded", zap.String("address", addr.String()))
		}

		router := api.SetupRouter(handler.NewTronHandler(a.svc, log), a.registry)
		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()

		color.Green("Server starting on :%s", cfg.Port)
		color.Cyan("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
		log.Info("http server started", zap.String("port", cfg.Port))

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
