package main

import (
	"fmt"

	"github.com/ruminaider/kvedit/internal/commands"
	"github.com/spf13/cobra"
)

var formatCheck bool

var formatCmd = &cobra.Command{
	Use:   "format <file>...",
	Short: "Rewrite parameter files in canonical form",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		changed := 0
		for _, path := range args {
			result, err := commands.Format(path, cfg.IndentString(), formatCheck)
			if err != nil {
				return err
			}
			if !result.Changed {
				continue
			}
			changed++
			if formatCheck {
				fmt.Printf("%s %s would be reformatted\n", warnColor("!"), path)
			} else {
				fmt.Printf("%s %s\n", okColor("✓"), path)
			}
		}

		if formatCheck && changed > 0 {
			return fmt.Errorf("%d of %d files need formatting", changed, len(args))
		}
		return nil
	},
}

func init() {
	formatCmd.Flags().BoolVar(&formatCheck, "check", false, "report files that would change without writing them")
}
