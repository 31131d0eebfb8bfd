package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/kvedit/cmd/kvedit/tui"
	"github.com/ruminaider/kvedit/internal/editor"
	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/ruminaider/kvedit/internal/record"
	"github.com/ruminaider/kvedit/internal/recordfile"
	"github.com/spf13/cobra"
)

var (
	editMode    string
	editLogFile string
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Edit a parameter file in the terminal",
	Long: "Open a parameter file in the terminal editor. Tab switches between the " +
		"tree view and the raw JSON draft; Ctrl+S saves and Esc cancels.",
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(os.Stdin.Fd()) {
		return errors.New("edit needs a terminal; use add, patch or convert in scripts")
	}

	path := args[0]
	format, err := recordfile.DetectFormat(path)
	if err != nil {
		return err
	}
	rec, err := recordfile.Read(path)
	if err != nil {
		return err
	}

	tuiLogger, closeLog, err := editLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	indent := cfg.IndentString()
	session := editor.NewSession(func(r record.Record) error {
		return recordfile.Write(path, r, format, indent)
	})
	session.Open(rec)

	mode := cfg.DefaultMode
	if editMode != "" {
		mode = editMode
	}
	ed := editor.New(rec, session.Edit,
		editor.WithIDs(kvtree.ProviderByName(cfg.IDs)),
		editor.WithIndent(indent),
		editor.WithMode(editor.ParseMode(mode)),
		editor.WithLogger(tuiLogger),
	)

	model := tui.NewModel(ed, session, filepath.Base(path))
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running editor: %w", err)
	}

	if m, ok := finalModel.(tui.Model); ok && m.Saved {
		fmt.Printf("%s Saved %s (%s)\n", okColor("✓"), path, countLabel(len(session.Committed())))
	}
	return nil
}

// editLogger logs to --log-file while the editor owns the screen, and
// discards otherwise.
func editLogger() (*slog.Logger, func(), error) {
	if editLogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := openLogFile(editLogFile)
	if err != nil {
		return nil, nil, err
	}
	return setupLogger(f, logLevel), func() { f.Close() }, nil
}

func init() {
	editCmd.Flags().StringVar(&editMode, "mode", "", "start in visual or json mode (default from config)")
	editCmd.Flags().StringVar(&editLogFile, "log-file", "", "write logs here while the editor runs")
}
