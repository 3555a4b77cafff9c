package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	ColorGreen   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorYellow  = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorRed     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
)

var (
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	styleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	styleWarn    = lipgloss.NewStyle().Foreground(ColorYellow)
	styleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
)

// Debug enables per-path operation logs. Set once from the root command.
var Debug bool

// interactive is true when stdout is a terminal; styling and the spinner
// are disabled when output is piped or redirected.
var interactive = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func render(st lipgloss.Style, s string) string {
	if !interactive {
		return s
	}
	return st.Render(s)
}

// ─── Output helpers ──────────────────────────────────────────────────────────

// Headerf prints a bold section header.
func Headerf(format string, args ...any) {
	fmt.Println(render(styleHeader, fmt.Sprintf(format, args...)))
}

// Printf prints an unstyled line.
func Printf(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// Mutedf prints a dimmed informational line.
func Mutedf(format string, args ...any) {
	fmt.Println(render(styleMuted, fmt.Sprintf(format, args...)))
}

// Warnf prints a warning line. Warnings never abort the run.
func Warnf(format string, args ...any) {
	fmt.Println(render(styleWarn, "  ! "+fmt.Sprintf(format, args...)))
}

// Successf prints a success line.
func Successf(format string, args ...any) {
	fmt.Println(render(styleSuccess, "  ✓ "+fmt.Sprintf(format, args...)))
}

// Debugf prints a detailed operation log line when --debug is set.
func Debugf(format string, args ...any) {
	if !Debug {
		return
	}
	fmt.Println(render(styleMuted, "  · "+fmt.Sprintf(format, args...)))
}
