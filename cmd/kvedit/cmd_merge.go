package main

import (
	"fmt"

	"github.com/ruminaider/kvedit/internal/commands"
	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/ruminaider/kvedit/internal/record"
	"github.com/spf13/cobra"
)

var mergeOut string

var mergeCmd = &cobra.Command{
	Use:   "merge <base> <local> <remote>",
	Short: "Three-way merge of parameter files",
	Long: "Merge the changes local and remote made to base. The result is written " +
		"to -o, or printed as JSON, only when no key conflicts.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.Merge(args[0], args[1], args[2], mergeOut, cfg.IndentString())
		if err != nil {
			return err
		}

		if len(result.Conflicts) > 0 {
			fmt.Println(failColor("CONFLICTS"))
			for _, c := range result.Conflicts {
				fmt.Printf("  %s: local %s, remote %s\n", keyColor(c.Key),
					conflictSide(c.LocalValue, c.LocalRemoved), conflictSide(c.RemoteValue, c.RemoteRemoved))
			}
			return fmt.Errorf("%d conflicting key(s), nothing written", len(result.Conflicts))
		}

		if mergeOut == "" {
			text, err := record.Indent(result.Record, cfg.IndentString())
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		}
		fmt.Printf("%s Merged into %s (%s)\n", okColor("✓"), mergeOut, countLabel(len(result.Record)))
		return nil
	},
}

func conflictSide(v any, removed bool) string {
	if removed {
		return removedColor("removed")
	}
	return kvtree.Stringify(v)
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOut, "output", "o", "", "write the merged record to this file")
}
