package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AlexZinkM/stellar-donate/internal/client"
	"github.com/AlexZinkM/stellar-donate/internal/config"
	"github.com/AlexZinkM/stellar-donate/internal/wallet"
	"github.com/AlexZinkM/stellar-donate/stellar"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "stellar-donate",
		Short:        "Stellar test network donation service",
		Long:         "Connects a local keystore wallet, funds test accounts, quotes and sends path-payment donations on the Stellar test network.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			return config.SetupLogger(config.Get())
		},
	}

	root.AddCommand(
		newServeCmd(),
		newKeypairCmd(),
		newFundCmd(),
		newQuoteCmd(),
		newDonateCmd(),
		newTrustCmd(),
		newWalletCmd(),
	)
	return root
}

// newController wires the Horizon, faucet and keystore clients from cfg.
// The keystore password is read from memory only when the wallet is used.
func newController(cfg *config.Config) (*stellar.Controller, error) {
	settings, err := stellar.SettingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	horizon := client.NewHorizonClient(cfg.HorizonURL, cfg.HTTPTimeout)
	faucet := client.NewFaucetClient(cfg.FaucetURL, cfg.HTTPTimeout)
	provider := wallet.NewKeystoreProvider(cfg.WalletFilePath, config.GetWalletPasswordBytes)

	return stellar.New(horizon, provider, faucet, settings, stellar.WithLogger(logrus.StandardLogger()))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to print result: %w", err)
	}
	return nil
}
