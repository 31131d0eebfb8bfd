package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/kvedit/internal/commands"
	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/spf13/cobra"
)

var (
	addKey   string
	addType  string
	addValue string
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Add a parameter to a file",
	Long: "Add a root parameter to a file, or replace the value of an existing one. " +
		"Without --key on a terminal, the parameter is asked for interactively.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if addKey == "" {
			if !term.IsTerminal(os.Stdin.Fd()) {
				return errors.New("--key is required when stdin is not a terminal")
			}
			if err := promptParameter(); err != nil {
				return err
			}
		}

		result, err := commands.Add(args[0], commands.AddOptions{
			Key:    addKey,
			Type:   kvtree.ValueType(addType),
			Value:  addValue,
			Indent: cfg.IndentString(),
			IDs:    kvtree.ProviderByName(cfg.IDs),
			Logger: logger,
		})
		if err != nil {
			return err
		}

		verb := "Added"
		if result.Replaced {
			verb = "Updated"
		}
		shown, err := json.Marshal(result.Value)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s %s = %s\n", okColor("✓"), verb, keyColor(addKey), shown)
		return nil
	},
}

// promptParameter asks for the key, type and value with a form.
func promptParameter() error {
	typeOptions := make([]huh.Option[string], 0, len(kvtree.AllTypes))
	for _, t := range kvtree.AllTypes {
		typeOptions = append(typeOptions, huh.NewOption(string(t), string(t)))
	}
	if addType == "" {
		addType = string(kvtree.TypeString)
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Parameter name:").
				Value(&addKey).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name must not be blank")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Type:").
				Options(typeOptions...).
				Value(&addType),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Value:").
				Value(&addValue),
		).WithHideFunc(func() bool {
			t := kvtree.ValueType(addType)
			return t.IsContainer() || t == kvtree.TypeNull
		}),
	).Run()
	if err != nil {
		return fmt.Errorf("reading parameter: %w", err)
	}
	return nil
}

func init() {
	addCmd.Flags().StringVar(&addKey, "key", "", "parameter name")
	addCmd.Flags().StringVar(&addType, "type", "", "value type (string, number, boolean, null, object, array)")
	addCmd.Flags().StringVar(&addValue, "value", "", "value, converted to the type")
}
