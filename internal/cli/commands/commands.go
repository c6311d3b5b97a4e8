package commands

import (
	"fmt"
	"log/slog"
	"os"

	"specpath/internal/cli"
	"specpath/internal/config"
	"specpath/internal/discovery"
	"specpath/internal/domain"
	"specpath/internal/logging"
	"specpath/internal/parser"
	"specpath/internal/storage"
	"specpath/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Scan    *ScanCommand
	Locate  *LocateCommand
	Resolve *ResolveCommand
	Browse  *BrowseCommand

	logLevel *slog.LevelVar
}

// corpusSource builds the corpus a command works on: a fresh scan, or a
// saved snapshot when an index file was given.
type corpusSource struct {
	config    *config.Config
	extractor *parser.Extractor
	filter    *discovery.Filter
	storage   storage.Storage
}

// scan runs the extractor with a progress bar and applies the name filter
func (s *corpusSource) scan(showProgress bool) (domain.Corpus, error) {
	if showProgress {
		s.extractor.SetProgress(ui.NewProgressBar())
		defer s.extractor.SetProgress(nil)
	}

	corpus, err := s.extractor.Scan(s.config.GetPattern(), s.config.Encoding)
	if err != nil {
		return nil, err
	}
	return s.filterCorpus(corpus), nil
}

// load returns the saved snapshot if an index file was given, otherwise scans
func (s *corpusSource) load(showProgress bool) (domain.Corpus, error) {
	if s.config.Flags.IndexFile == "" {
		return s.scan(showProgress)
	}
	output, err := s.storage.LoadCorpus()
	if err != nil {
		return nil, err
	}
	return s.filterCorpus(output.Files), nil
}

func (s *corpusSource) filterCorpus(corpus domain.Corpus) domain.Corpus {
	if s.config.Flags.NameFilter == "" {
		return corpus
	}
	kept := s.filter.FilterByName(corpus.Paths(), s.config.Flags.NameFilter)
	filtered := make(domain.Corpus, len(kept))
	for _, path := range kept {
		filtered[path] = corpus[path]
	}
	return filtered
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	logLevel := new(slog.LevelVar)
	logLevel.Set(logging.LevelFromString(cfg.LogLevel))
	logger := logging.NewLogger(os.Stderr, logLevel)

	// Initialize dependencies
	discoverer := discovery.NewGlobDiscoverer(cfg.ProjectPath, cfg.PathsToIgnore)
	reader := discovery.NewFileReader()
	extractor := parser.NewExtractor(discoverer, reader, logger)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	browser := ui.NewCorpusBrowser(cfg)

	source := &corpusSource{
		config:    cfg,
		extractor: extractor,
		filter:    discovery.NewFilter(),
		storage:   jsonStorage,
	}

	return &Commands{
		Scan:     NewScanCommand(cfg, source, jsonStorage, formatter),
		Locate:   NewLocateCommand(cfg, source, formatter),
		Resolve:  NewResolveCommand(cfg, source, jsonStorage, formatter),
		Browse:   NewBrowseCommand(source, browser),
		logLevel: logLevel,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Update config with flags after parsing
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		c.logLevel.Set(logging.LevelFromString(cfg.LogLevel))
		return nil
	}

	rootCmd.PersistentFlags().StringVarP(&flags.Pattern, "pattern", "p", "", fmt.Sprintf("Glob pattern of test files (default %q)", cfg.Pattern))
	rootCmd.PersistentFlags().StringVarP(&flags.Encoding, "encoding", "e", "", fmt.Sprintf("Encoding of test files (default %q)", cfg.Encoding))
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Diagnostics level: debug, info, warn, error, silent")
	rootCmd.PersistentFlags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. '*login.spec.js' or '*cart*')")

	// Scan command
	scanCmd := &cobra.Command{
		Use:     "scan",
		Short:   "Scan test files and list their suites and cases",
		Long:    "Discover test files, extract describe/it labels in document order and print the index",
		Args:    cobra.NoArgs,
		RunE:    c.Scan.Execute,
		PreRunE: applyFlags,
	}
	scanCmd.Flags().BoolVarP(&flags.TestCases, "cases", "c", false, "List suite and case declarations instead of files only")
	scanCmd.Flags().StringVarP(&flags.IndexFile, "out", "o", "", "Save the index as JSON to this file")
	rootCmd.AddCommand(scanCmd)

	// Locate command
	locateCmd := &cobra.Command{
		Use:     "locate SUITE CASE",
		Short:   "Find the file that declares a test",
		Long:    "Print path:line of the test file whose describe labels contain SUITE and whose it labels contain CASE",
		Args:    cobra.ExactArgs(2),
		RunE:    c.Locate.Execute,
		PreRunE: applyFlags,
	}
	locateCmd.Flags().StringVarP(&flags.IndexFile, "index", "i", "", "Query a saved index instead of scanning")
	rootCmd.AddCommand(locateCmd)

	// Resolve command
	resolveCmd := &cobra.Command{
		Use:     "resolve REPORT",
		Short:   "Map failed tests from a report back to their files",
		Long:    "Read failed tests from a JSON report ([{\"suite\":...,\"case\":...}]) or a JUnit XML file and locate each one",
		Args:    cobra.ExactArgs(1),
		RunE:    c.Resolve.Execute,
		PreRunE: applyFlags,
	}
	resolveCmd.Flags().StringVarP(&flags.IndexFile, "index", "i", "", "Query a saved index instead of scanning")
	resolveCmd.Flags().StringVarP(&flags.OutputFile, "out", "o", "", "Write resolutions as JSON to this file")
	rootCmd.AddCommand(resolveCmd)

	// Browse command
	browseCmd := &cobra.Command{
		Use:     "browse",
		Short:   "Browse scanned test files interactively",
		Long:    "Display the scanned index in an interactive viewer",
		Args:    cobra.NoArgs,
		RunE:    c.Browse.Execute,
		PreRunE: applyFlags,
	}
	browseCmd.Flags().StringVarP(&flags.IndexFile, "index", "i", "", "Browse a saved index instead of scanning")
	rootCmd.AddCommand(browseCmd)
}
