package main

import (
	"fmt"

	"github.com/ruminaider/kvedit/internal/commands"
	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check that a file survives the tree editor unchanged",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.Check(args[0], kvtree.ProviderByName(cfg.IDs))
		if err != nil {
			return err
		}

		if result.Lossless {
			fmt.Printf("%s %s: %d nodes, round trip is lossless\n", okColor("✓"), result.Path, result.Nodes)
		} else {
			fmt.Printf("%s %s: round trip changes the record\n", failColor("✗"), result.Path)
			fmt.Print(renderChanges(result.Changes))
		}

		if len(result.RawLeaves) > 0 {
			fmt.Println()
			fmt.Println(warnColor("NOT EDITABLE NODE BY NODE (nested arrays)"))
			for _, p := range result.RawLeaves {
				fmt.Printf("  %s\n", p)
			}
		}

		if !result.Lossless {
			return fmt.Errorf("%s does not round-trip", result.Path)
		}
		return nil
	},
}
