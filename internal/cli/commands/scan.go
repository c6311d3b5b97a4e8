package commands

import (
	"fmt"

	"specpath/internal/config"
	"specpath/internal/domain"
	"specpath/internal/storage"
	"specpath/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ScanCommand handles the scan command
type ScanCommand struct {
	config    *config.Config
	source    *corpusSource
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(cfg *config.Config, source *corpusSource, st storage.Storage, formatter *ui.Formatter) *ScanCommand {
	return &ScanCommand{
		config:    cfg,
		source:    source,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *ScanCommand) Execute(cmd *cobra.Command, args []string) error {
	corpus, err := sc.source.scan(true)
	if err != nil {
		return err
	}

	if len(corpus) == 0 {
		color.Yellow("No test files found")
		return nil
	}

	sc.formatter.PrintCorpus(corpus, sc.config.Flags.TestCases)

	meta := domain.NewIndexMeta(corpus, sc.config.GetPattern(), sc.config.Encoding)
	if sc.config.Flags.IndexFile != "" {
		if err := sc.storage.SaveCorpus(corpus, meta); err != nil {
			return err
		}
		color.Green("\nIndex saved to %s", sc.config.GetIndexPath())
	}

	fmt.Println()
	sc.formatter.PrintIndexStats(meta)
	return nil
}
