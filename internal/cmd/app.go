// Package cmd implements the palcfg command-line interface.
package cmd

import (
	"io"
	"os"

	"palcfg/internal/config"
	"palcfg/internal/configservice"
	"palcfg/internal/labels"
	"palcfg/internal/tui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// App holds application state shared across commands.
type App struct {
	Store    *config.Store
	Settings configservice.Settings
	Fs       afero.Fs
	Labels   *labels.Labels
	Log      logrus.FieldLogger
	Out      io.Writer
	Err      io.Writer
	JSON     bool // output in JSON format

	// RunEditor shows the interactive editor and reports how it was closed.
	RunEditor func(tui.Model) (tui.Result, error)
}

// Path returns the settings file the app operates on.
func (a *App) Path() string {
	return a.Settings.Path
}

// SuccessColor returns the string wrapped in green ANSI codes if stdout is a terminal,
// otherwise returns the string unchanged.
func (a *App) SuccessColor(s string) string {
	if f, ok := a.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[32m" + s + "\033[0m"
	}
	return s
}

// WarnColor returns the string wrapped in orange ANSI codes if stdout is a terminal,
// otherwise returns the string unchanged.
func (a *App) WarnColor(s string) string {
	if f, ok := a.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[38;5;214m" + s + "\033[0m"
	}
	return s
}
