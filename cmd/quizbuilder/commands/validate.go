package commands

import (
	"fmt"

	"git.home.luguber.info/inful/quizbuilder/internal/loader"
)

// ValidateCmd checks the quiz corpus without writing anything.
type ValidateCmd struct {
	Input string `short:"i" help:"Path to a quiz directory" placeholder:"DIR"`
}

func (v *ValidateCmd) Run(global *Global) error {
	input := firstNonEmpty(v.Input, global.Config.Input)

	files, err := loader.LoadDir(input)
	if err != nil {
		return err
	}

	fmt.Printf("Validation passed: %d questions in %d topics under %s\n",
		loader.QuestionCount(files), len(files), input)
	return nil
}
