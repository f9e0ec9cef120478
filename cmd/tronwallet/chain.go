package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AlexZinkM/tron-wallet/tron"
)

var statusCmd = &cobra.Command{
	Use:   "status <txid>",
	Short: "Show whether a transaction landed and how it executed",
	Args:  cobra.ExactArgs(1),
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

		status, err := a.svc.TransactionStatus(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(status)
		}

		switch status.Status {
		case tron.TxStatusSuccess:
			color.Green("✓ %s", status.Summary)
		case tron.TxStatusFailed:
			color.Red("✗ %s", status.Summary)
		default:
			color.Yellow("? %s", status.Summary)
		}
		return nil
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show the latest block",
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

		network, err := a.svc.NetworkStatus(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(network)
		}
		fmt.Println(network.Summary)
		return nil
	},
}

var gasCmd = &cobra.Command{
	Use:   "gas",
	Short: "Show current energy and bandwidth prices",
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

		gas, err := a.svc.GasParameters(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(gas)
		}
		fmt.Println(gas.Summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd, networkCmd, gasCmd)
}
