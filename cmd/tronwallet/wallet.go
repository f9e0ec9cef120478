package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show the configured address and balances",
	Args:  cobra.NoArgs,
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

		info, err := a.svc.WalletInfo(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(info)
		}

		color.Cyan("Address: %s", info.Address)
		fmt.Printf("TRX:     %s\n", info.TRXBalance)
		fmt.Printf("USDT:    %s\n", info.USDTBalance)
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance [address|alias]",
	Short: "Show TRX and USDT balance of an address",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer log.Sync()

		a, err := newApp(cfg, log)
		if err != nil {
			return err
		}

		var target string
		if len(args) == 1 {
			target = args[0]
		}
		balance, err := a.svc.Balance(cmd.Context(), target)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(balance)
		}
		fmt.Println(balance.Summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(walletCmd, balanceCmd)
}
