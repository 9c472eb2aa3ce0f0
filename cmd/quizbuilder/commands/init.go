package commands

import (
	"fmt"

	"git.home.luguber.info/inful/quizbuilder/internal/config"
)

// InitCmd writes a starter configuration file.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(global *Global) error {
	if err := config.WriteStarter(global.ConfigPath, i.Force); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", global.ConfigPath)
	return nil
}
