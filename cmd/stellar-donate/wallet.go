package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/AlexZinkM/stellar-donate/internal/config"
	"github.com/AlexZinkM/stellar-donate/internal/crypto"
	"github.com/AlexZinkM/stellar-donate/internal/model"
	"github.com/AlexZinkM/stellar-donate/stellar"

	"github.com/spf13/cobra"
)

var errPasswordMismatch = errors.New("passwords do not match")

func newWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the keystore wallet",
	}
	cmd.AddCommand(newWalletInitCmd(), newWalletRekeyCmd())
	return cmd
}

func newWalletInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a new keystore wallet",
		Long:  "Generates a new keypair and saves it to the .cwt keystore at WALLET_FILE_PATH. An existing file is never overwritten.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readNewPassword("Wallet password: ")
			if err != nil {
				return err
			}
			defer clear(password)

			path := config.GetWalletFilePath()
			address, err := stellar.GenerateWallet(path, password)
			if err != nil {
				if stellar.IsFileExistsError(err) {
					return fmt.Errorf("%w (remove it or set WALLET_FILE_PATH)", err)
				}
				return err
			}

			return printJSON(cmd.OutOrStdout(), model.GenerateWalletResponse{
				Success: true,
				Message: "Wallet generated successfully",
				Address: address,
			})
		},
	}
}

func newWalletRekeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rekey",
		Short: "Change the keystore password",
		Long:  "Decrypts the keystore with the current password and encrypts it again with a new password, fresh salt and nonce.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.GetWalletFilePath()

			oldPassword, err := config.ReadPassword("Current password: ")
			if err != nil {
				return err
			}
			defer clear(oldPassword)

			newPassword, err := readNewPassword("New password: ")
			if err != nil {
				return err
			}
			defer clear(newPassword)

			if err := crypto.ReencryptWallet(path, oldPassword, newPassword); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "keystore re-encrypted:", path)
			return nil
		},
	}
}

// readNewPassword reads a password twice and checks both entries match
func readNewPassword(prompt string) ([]byte, error) {
	password, err := config.ReadPassword(prompt)
	if err != nil {
		return nil, err
	}
	confirm, err := config.ReadPassword("Repeat password: ")
	if err != nil {
		clear(password)
		return nil, err
	}
	defer clear(confirm)

	if !bytes.Equal(password, confirm) {
		clear(password)
		return nil, errPasswordMismatch
	}
	return password, nil
}
