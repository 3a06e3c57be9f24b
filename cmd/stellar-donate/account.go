package main

import (
	"fmt"

	"github.com/AlexZinkM/stellar-donate/internal/config"

	"github.com/spf13/cobra"
)

func newKeypairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keypair",
		Short: "Generate a random demonstration keypair",
		Long:  "Generates a throwaway keypair for use as a donation destination. Nothing is saved.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := newController(config.Get())
			if err != nil {
				return err
			}

			kp, err := ctrl.GenerateKeypair()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), kp)
		},
	}
}

func newFundCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "fund <address>",
		Short:   "Fund a test account from the faucet",
		Example: "  stellar-donate fund GABC...",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := newController(config.Get())
			if err != nil {
				return err
			}

			if err := ctrl.FundAccount(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "faucet request sent for", args[0])
			return nil
		},
	}
}
