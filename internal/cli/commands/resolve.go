package commands

import (
	"fmt"

	"specpath/internal/config"
	"specpath/internal/report"
	"specpath/internal/resolver"
	"specpath/internal/storage"
	"specpath/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ResolveCommand handles the resolve command
type ResolveCommand struct {
	config    *config.Config
	source    *corpusSource
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewResolveCommand creates a new ResolveCommand
func NewResolveCommand(cfg *config.Config, source *corpusSource, st storage.Storage, formatter *ui.Formatter) *ResolveCommand {
	return &ResolveCommand{
		config:    cfg,
		source:    source,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *ResolveCommand) Execute(cmd *cobra.Command, args []string) error {
	failed, err := report.Load(args[0])
	if err != nil {
		return err
	}
	if len(failed) == 0 {
		color.Green("✓ No failed tests in %s", args[0])
		return nil
	}

	corpus, err := rc.source.load(true)
	if err != nil {
		return err
	}

	resolutions := resolver.New(corpus).ResolveAll(failed)

	if out := rc.config.Flags.OutputFile; out != "" {
		if err := rc.storage.SaveResolutions(out, resolutions); err != nil {
			return fmt.Errorf("failed to save resolutions: %w", err)
		}
	}

	rc.formatter.PrintResolutions(resolutions)
	return nil
}
