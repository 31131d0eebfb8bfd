package main

import (
	"fmt"

	"github.com/ruminaider/kvedit/internal/commands"
	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the parameter tree of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.Show(args[0], kvtree.ProviderByName(cfg.IDs))
		if err != nil {
			return err
		}
		if result.Count == 0 {
			fmt.Println("No parameters")
			return nil
		}
		fmt.Print(renderRows(result.Rows))
		return nil
	},
}
