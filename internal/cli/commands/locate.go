package commands

import (
	"fmt"

	"specpath/internal/config"
	"specpath/internal/resolver"
	"specpath/internal/ui"

	"github.com/spf13/cobra"
)

// LocateCommand handles the locate command
type LocateCommand struct {
	config    *config.Config
	source    *corpusSource
	formatter *ui.Formatter
}

// NewLocateCommand creates a new LocateCommand
func NewLocateCommand(cfg *config.Config, source *corpusSource, formatter *ui.Formatter) *LocateCommand {
	return &LocateCommand{
		config:    cfg,
		source:    source,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *LocateCommand) Execute(cmd *cobra.Command, args []string) error {
	suite, testCase := args[0], args[1]

	corpus, err := lc.source.load(false)
	if err != nil {
		return err
	}

	res, ok := resolver.New(corpus).LocateDeclaration(suite, testCase)
	lc.formatter.PrintLocation(res)
	if !ok {
		cmd.SilenceUsage = true
		return fmt.Errorf("%w: %q › %q", resolver.ErrNotFound, suite, testCase)
	}
	return nil
}
