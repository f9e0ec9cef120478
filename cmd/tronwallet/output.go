package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/AlexZinkM/tron-wallet/internal/model"
	"github.com/AlexZinkM/tron-wallet/tron"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTransfer renders a transfer result and reports whether it succeeded
func printTransfer(res *model.TransferResult) error {
	if jsonOutput {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		switch res.State {
		case tron.StateDone:
			color.Green("✓ %s", res.Summary)
		case tron.StateBlocked:
			color.Red("✗ %s", res.Summary)
			for _, reason := range res.Reasons {
				color.Red("  - %s", reason)
			}
		default:
			color.Red("✗ %s", res.Summary)
			for _, pe := range res.Errors {
				color.Red("  - %s (required %s, available %s)", pe.Message, pe.Required, pe.Available)
			}
			if res.RejectCode != "" {
				color.Red("  node: %s %s", res.RejectCode, res.RejectMessage)
			}
			if res.ErrorCode == tron.CodeBroadcastUnreachable && res.TxID != "" {
				color.Yellow("  Check it with: tronwallet status %s", res.TxID)
			}
			if res.Suggestion != "" {
				color.Yellow("  Did you mean %q?", res.Suggestion)
			}
		}
		for _, w := range res.Warnings {
			color.Yellow("! %s", w)
		}
	}

	if res.State != tron.StateDone {
		return fmt.Errorf("transfer %s", res.State)
	}
	return nil
}
