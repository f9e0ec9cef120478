package main

import (
	"github.com/spf13/cobra"

	"github.com/AlexZinkM/tron-wallet/internal/model"
)

var transferToken string

var transferCmd = &cobra.Command{
	Use:   "transfer <to> <amount>",
	Short: "Send USDT (default) or TRX",
	Long: `Resolve the recipient, check it against the malicious address database,
verify the balance covers amount and fees, then sign and broadcast.

<to> is an address or a configured alias. <amount> is a decimal in whole
units, e.g. 10.5`,
	Args: cobra.ExactArgs(2),
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

		res := a.svc.Transfer(cmd.Context(), model.TransferRequest{
			To:     args[0],
			Amount: args[1],
			Token:  transferToken,
		})
		return printTransfer(res)
	},
}

func init() {
	transferCmd.Flags().StringVarP(&transferToken, "token", "t", "USDT", "token to send: USDT or TRX")
	rootCmd.AddCommand(transferCmd)
}
