package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AlexZinkM/tron-wallet/internal/config"
	"github.com/AlexZinkM/tron-wallet/internal/crypto"
	"github.com/AlexZinkM/tron-wallet/internal/keys"
)

var keystoreCmd = &cobra.Command{
	Use:   "keystore",
	Short: "Manage the encrypted keystore",
}

var keystoreImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Encrypt a hex private key into a new keystore file",
	Long: `Prompts for a 64-character hex private key and a password, then writes an
scrypt + AES-GCM encrypted keystore. Existing non-empty files are never overwritten.
Point TRON_KEYSTORE_PATH at the file to use it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		secret, err := config.PromptForPassword("Private key (hex): ")
		if err != nil {
			return err
		}
		defer clear(secret)

		privateKey, err := keys.ParsePrivateKeyHex(string(secret), "private key")
		if err != nil {
			return err
		}
		defer clear(privateKey)

		addr, err := keys.DeriveAddress(privateKey)
		if err != nil {
			return err
		}

		password, err := config.PromptForPassword("New keystore password: ")
		if err != nil {
			return err
		}
		defer clear(password)

		confirm, err := config.PromptForPassword("Repeat password: ")
		if err != nil {
			return err
		}
		defer clear(confirm)

		if !bytes.Equal(password, confirm) {
			return errors.New("passwords do not match")
		}

		if err := crypto.EncryptKeystore(args[0], addr.String(), privateKey, password); err != nil {
			return fmt.Errorf("failed to write keystore: %w", err)
		}

		color.Green("✓ Keystore written to %s", args[0])
		color.Cyan("Address: %s", addr)
		return nil
	},
}

var keystoreAddressCmd = &cobra.Command{
	Use:   "address <file>",
	Short: "Print the address stored in a keystore without decrypting it",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		addr, err := crypto.ReadKeystoreAddress(args[0])
		if err != nil {
			return err
		}
		fmt.Println(addr)
		return nil
	},
}

func init() {
	keystoreCmd.AddCommand(keystoreImportCmd, keystoreAddressCmd)
	rootCmd.AddCommand(keystoreCmd)
}
