package main

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/quizbuilder/cmd/quizbuilder/commands"
	"git.home.luguber.info/inful/quizbuilder/internal/config"
	qerrors "git.home.luguber.info/inful/quizbuilder/internal/errors"
	"git.home.luguber.info/inful/quizbuilder/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	cli := commands.CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("quizbuilder"),
		kong.Description("Compile yaml question banks into quiz manifests with a navigation tree."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, qerrors.FormatError(err))
		os.Exit(qerrors.ExitCodeFor(err))
	}

	global := &commands.Global{
		Config:     cfg,
		ConfigPath: cli.Config,
		Verbose:    cli.Verbose,
	}

	if err := ctx.Run(global); err != nil {
		fmt.Fprintln(os.Stderr, qerrors.FormatError(err))
		os.Exit(qerrors.ExitCodeFor(err))
	}
}
