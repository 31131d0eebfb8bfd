package main

import (
	"fmt"

	"github.com/ruminaider/kvedit/internal/commands"
	"github.com/ruminaider/kvedit/internal/recordfile"
	"github.com/spf13/cobra"
)

var convertTo string

var convertCmd = &cobra.Command{
	Use:   "convert <src> <dst>",
	Short: "Convert a parameter file between JSON, YAML and TOML",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var format recordfile.Format
		if convertTo != "" {
			f, err := recordfile.ParseFormat(convertTo)
			if err != nil {
				return err
			}
			format = f
		}

		result, err := commands.Convert(args[0], args[1], format, cfg.IndentString())
		if err != nil {
			return err
		}

		fmt.Printf("%s Converted %s to %s (%s)\n", okColor("✓"), result.From, result.To, countLabel(result.Keys))
		if result.DroppedNulls > 0 {
			fmt.Printf("%s %d null value(s) dropped: %s has no null\n", warnColor("!"), result.DroppedNulls, result.To)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target format (json, yaml, toml); detected from dst by default")
}
