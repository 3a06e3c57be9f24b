package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/AlexZinkM/stellar-donate/docs"
	"github.com/AlexZinkM/stellar-donate/internal/api"
	"github.com/AlexZinkM/stellar-donate/internal/config"
	"github.com/AlexZinkM/stellar-donate/internal/handler"
	"github.com/AlexZinkM/stellar-donate/internal/wallet"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  "Prompts for the keystore password, connects automatically once the keystore file appears and serves the HTTP API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			log := logrus.StandardLogger()

			if err := config.PromptForPassword(); err != nil {
				return err
			}

			ctrl, err := newController(cfg)
			if err != nil {
				return err
			}
			if err := ctrl.Watch(wallet.NewFileEventSource(cfg.WalletFilePath, log)); err != nil {
				return err
			}
			defer ctrl.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr: ":" + config.GetPort(),
				Handler: api.SetupRouter(handler.NewStellarHandler(ctrl), api.Options{
					FaucetPerMinute: cfg.FaucetPerMinute,
					Logger:          log,
					Context:         ctx,
				}),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()
			log.WithFields(logrus.Fields{
				"port":    cfg.Port,
				"horizon": cfg.HorizonURL,
				"wallet":  cfg.WalletFilePath,
			}).Info("server started, swagger UI at /swagger/index.html")

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server failed: %w", err)
			case <-ctx.Done():
			}

			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
