// Package output renders the engines' structured results as terminal
// text. Styling adapts to light and dark themes and degrades to plain
// text when stdout is not a terminal.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Color definitions using AdaptiveColor for automatic light/dark mode
// switching
var (
	FileColor = lipgloss.AdaptiveColor{
		Light: "#6F42C1", // Purple
		Dark:  "#B48EFF",
	}

	LineNumberColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	InsertColor = lipgloss.AdaptiveColor{
		Light: "#28A745",
		Dark:  "#4CDD76",
	}

	DeleteColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529",
		Dark:  "#F8F9FA",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#A0A8B0",
	}
)

var (
	FileStyle       = lipgloss.NewStyle().Foreground(FileColor)
	LineNumberStyle = lipgloss.NewStyle().Foreground(LineNumberColor)
	InsertStyle     = lipgloss.NewStyle().Foreground(InsertColor)
	DeleteStyle     = lipgloss.NewStyle().Foreground(DeleteColor)
	HeadingStyle    = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true)
	MutedStyle      = lipgloss.NewStyle().Foreground(MutedColor)
)

// styleOverride mirrors the YAML shape users may provide to retheme
// the output.
type styleOverride struct {
	Foreground string `yaml:"foreground,omitempty"`
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
}

// LoadStylesFromFile applies user style overrides from a YAML file
// keyed by style name (file, lineNumber, insert, delete, heading,
// muted).
func LoadStylesFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var overrides map[string]styleOverride
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return err
	}

	for name, def := range overrides {
		style := lipgloss.NewStyle().Bold(def.Bold).Italic(def.Italic)
		if def.Foreground != "" {
			style = style.Foreground(lipgloss.Color(def.Foreground))
		}
		switch name {
		case "file":
			FileStyle = style
		case "lineNumber":
			LineNumberStyle = style
		case "insert":
			InsertStyle = style
		case "delete":
			DeleteStyle = style
		case "heading":
			HeadingStyle = style
		case "muted":
			MutedStyle = style
		}
	}
	return nil
}

// ColorEnabled decides whether styled output should be produced,
// honoring the color mode from config (auto, always, never).
func ColorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return false
		}
		return termenv.DefaultOutput().ColorProfile() != termenv.Ascii
	}
}
