package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/stellar-donate/internal/config"
	"github.com/AlexZinkM/stellar-donate/internal/model"
	"github.com/AlexZinkM/stellar-donate/internal/wallet"

	"github.com/spf13/cobra"
)

var (
	errNotConnected = errors.New("wallet connection declined")
	errNotSubmitted = errors.New("transaction was not submitted, see log for details")
)

func newQuoteCmd() *cobra.Command {
	var asset, issuer string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote the cost of a donation in the source asset",
		Example: `  stellar-donate quote
  stellar-donate quote --asset USDC --issuer GBBD...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := newController(config.Get())
			if err != nil {
				return err
			}

			quote, err := ctrl.QueryConversion(cmd.Context(), asset, issuer)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), model.ConversionResponse{
				Quote:     quote,
				Rate:      quote.RateDisplay(),
				Deduction: quote.DeductionDisplay(),
			})
		},
	}
	cmd.Flags().StringVar(&asset, "asset", "", "source asset code, empty or XLM for native")
	cmd.Flags().StringVar(&issuer, "issuer", "", "source asset issuer")
	return cmd
}

func newDonateCmd() *cobra.Command {
	var asset, issuer string
	var quote bool

	cmd := &cobra.Command{
		Use:   "donate <destination>",
		Short: "Send a donation signed by the keystore wallet",
		Long:  "Asks to connect the keystore wallet, optionally quotes a conversion path and sends the donation as a path payment.",
		Example: `  stellar-donate donate GDEST...
  stellar-donate donate GDEST... --asset USDC --issuer GBBD... --quote=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.PromptForPassword(); err != nil {
				return err
			}
			ctrl, err := newController(config.Get())
			if err != nil {
				return err
			}

			ok, err := ctrl.Connect(cmd.Context(), wallet.TerminalPrompter{In: os.Stdin, Out: os.Stderr})
			if err != nil {
				return err
			}
			if !ok {
				return errNotConnected
			}

			if quote {
				q, err := ctrl.QueryConversion(cmd.Context(), asset, issuer)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), q.RateDisplay())
				fmt.Fprintln(cmd.ErrOrStderr(), q.DeductionDisplay())
			}

			res := ctrl.Donate(cmd.Context(), args[0], asset, issuer)
			if res == nil {
				return errNotSubmitted
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&asset, "asset", "", "source asset code, empty or XLM for native")
	cmd.Flags().StringVar(&issuer, "issuer", "", "source asset issuer")
	cmd.Flags().BoolVar(&quote, "quote", true, "find a conversion path before sending")
	return cmd
}

func newTrustCmd() *cobra.Command {
	var asset, issuer string

	cmd := &cobra.Command{
		Use:     "trust <account>",
		Short:   "Add a trustline to an account",
		Long:    "Adds a trustline to the account, signed with its secret key. The secret is read from the terminal without echo.",
		Example: "  stellar-donate trust GABC... --asset USDC --issuer GBBD...",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := newController(config.Get())
			if err != nil {
				return err
			}
			if target := ctrl.Settings().TargetAsset; asset == "" && issuer == "" {
				asset, issuer = target.Code, target.Issuer
			}

			secret, err := config.ReadPassword("Secret key: ")
			if err != nil {
				return err
			}
			defer clear(secret)

			res := ctrl.ChangeTrust(cmd.Context(), args[0], string(secret), asset, issuer)
			if res == nil {
				return errNotSubmitted
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&asset, "asset", "", "asset code (default: donation asset)")
	cmd.Flags().StringVar(&issuer, "issuer", "", "asset issuer (default: donation asset issuer)")
	return cmd
}
