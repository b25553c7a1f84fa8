package ui

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc()
)

// Template Specific Colors
var (
	FiletypeColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	TokenColor    = color.New(color.FgYellow).SprintFunc()
	PathColor     = color.New(color.FgMagenta).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConfigureColor turns colour off when diagnostics are not going to a terminal
// or NO_COLOR is set.
func ConfigureColor(f *os.File) {
	if _, ok := os.LookupEnv("NO_COLOR"); ok || !IsTerminal(f) {
		color.NoColor = true
	}
}
