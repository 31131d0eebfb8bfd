package main

import (
	"fmt"

	"github.com/ruminaider/kvedit/internal/commands"
	"github.com/spf13/cobra"
)

var diffPatch bool

var diffCmd = &cobra.Command{
	Use:   "diff <before> <after>",
	Short: "Compare two parameter files",
	Long: "Compare two parameter files, which may be in different formats. " +
		"With --patch, print a JSON merge patch that turns before into after.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.Diff(args[0], args[1], cfg.IndentString())
		if err != nil {
			return err
		}

		if diffPatch {
			fmt.Println(string(result.Patch))
			return nil
		}

		fmt.Println(result.Summary)
		if len(result.Changes) > 0 {
			fmt.Println()
			fmt.Print(renderDiff(result.Text))
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffPatch, "patch", false, "print a JSON merge patch instead of a diff")
}
