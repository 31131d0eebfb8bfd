package main

import (
	"fmt"

	"github.com/ruminaider/kvedit/internal/commands"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate parameter files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			result, err := commands.Validate(path)
			if err != nil {
				return err
			}
			if result.Valid {
				fmt.Printf("%s %s (%s)\n", okColor("✓"), path, countLabel(result.Keys))
			} else {
				fmt.Printf("%s %s: %s\n", failColor("✗"), path, validateMessage(result))
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files invalid", failed, len(args))
		}
		return nil
	},
}

func validateMessage(r *commands.ValidateResult) string {
	if r.Detail != "" {
		return fmt.Sprintf("%s (%s)", r.Message, r.Detail)
	}
	return r.Message
}

func countLabel(n int) string {
	if n == 1 {
		return "1 parameter"
	}
	return fmt.Sprintf("%d parameters", n)
}
