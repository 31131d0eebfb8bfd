package main

import (
	"fmt"

	"github.com/ruminaider/kvedit/internal/changes"
	"github.com/ruminaider/kvedit/internal/commands"
	"github.com/spf13/cobra"
)

var patchDryRun bool

var patchCmd = &cobra.Command{
	Use:   "patch <file> <patch-file>",
	Short: "Apply a JSON Patch or JSON merge patch to a parameter file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.Patch(args[0], args[1], cfg.IndentString(), patchDryRun)
		if err != nil {
			return err
		}

		fmt.Println(changes.Summary(result.Changes))
		fmt.Print(renderChanges(result.Changes))
		if patchDryRun && len(result.Changes) > 0 {
			fmt.Println(mutedColor("(dry run, file not written)"))
		}
		return nil
	},
}

func init() {
	patchCmd.Flags().BoolVar(&patchDryRun, "dry-run", false, "show the changes without writing the file")
}
