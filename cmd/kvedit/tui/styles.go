package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorPeach    = lipgloss.Color(flavor.Peach().Hex)
	colorTeal     = lipgloss.Color(flavor.Teal().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Tab bar styles.
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 1).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface0).
				Padding(0, 1)

	// TabBarStyle is the background strip for the tab bar row.
	TabBarStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Padding(0, 1)

	// TitleStyle renders the file name at the right of the tab bar.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Italic(true)
)

// Tree view styles.
var (
	// CursorRowStyle highlights the row under the cursor.
	CursorRowStyle = lipgloss.NewStyle().
			Background(colorSurface1).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	// EmptyKeyStyle marks a node whose key is blank and will not be saved.
	EmptyKeyStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true)

	TypeStyle = lipgloss.NewStyle().
			Foreground(colorMauve)

	StringValueStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	NumberValueStyle = lipgloss.NewStyle().
				Foreground(colorPeach)

	BoolValueStyle = lipgloss.NewStyle().
			Foreground(colorTeal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)
)

// JSON pane styles.
var (
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1)

	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	ValidBadgeStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorGreen).
			Padding(0, 1)

	ErrorBadgeStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorRed).
			Padding(0, 1)
)

// Status bar styles.
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)

	StatusBarDirtyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0)

	StatusBarErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorSurface0).
				Bold(true)
)

// Overlay styles.
var (
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(1, 2)

	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	OverlayButtonActiveStyle = lipgloss.NewStyle().
					Foreground(colorBase).
					Background(colorBlue).
					Padding(0, 2)

	OverlayButtonInactiveStyle = lipgloss.NewStyle().
					Foreground(colorText).
					Background(colorSurface1).
					Padding(0, 2)

	OverlayChoiceCursorStyle = lipgloss.NewStyle().
					Foreground(colorBlue).
					Bold(true)

	OverlayHintStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0)
)
