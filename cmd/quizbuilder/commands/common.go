package commands

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/quizbuilder/internal/config"
	"github.com/alecthomas/kong"
)

// Global context passed to subcommands: resolved configuration plus the
// flags every command cares about.
type Global struct {
	Config     *config.Config
	ConfigPath string
	Verbose    bool
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"quizbuilder.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Compile yaml question banks into a quiz manifest"`
	Validate ValidateCmd `cmd:"" help:"Validate quiz content without building"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
	History  HistoryCmd  `cmd:"" help:"Show recent build records"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// firstNonEmpty resolves a setting with flag-over-config priority.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
