package commands

import (
	"specpath/internal/ui"

	"github.com/spf13/cobra"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	source *corpusSource
	viewer ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(source *corpusSource, viewer ui.Viewer) *BrowseCommand {
	return &BrowseCommand{
		source: source,
		viewer: viewer,
	}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	corpus, err := bc.source.load(true)
	if err != nil {
		return err
	}

	return bc.viewer.View(corpus)
}
