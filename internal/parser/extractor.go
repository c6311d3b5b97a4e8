package parser

import (
	"context"
	"fmt"
	"log/slog"

	"specpath/internal/discovery"
	"specpath/internal/domain"
)

// Progress receives per-file scan progress
type Progress interface {
	Start(total int)
	Update(parsed, failed int)
	Finish()
}

// Extractor builds a Corpus from the test files matching a pattern
type Extractor struct {
	discoverer discovery.Discoverer
	reader     discovery.Reader
	logger     *slog.Logger
	progress   Progress
}

// NewExtractor creates a new Extractor
func NewExtractor(discoverer discovery.Discoverer, reader discovery.Reader, logger *slog.Logger) *Extractor {
	return &Extractor{
		discoverer: discoverer,
		reader:     reader,
		logger:     logger,
	}
}

// SetProgress sets the progress reporter for subsequent scans
func (e *Extractor) SetProgress(progress Progress) {
	e.progress = progress
}

// Scan discovers the files matching pattern, reads each with encoding and
// extracts its labels. Only a discovery failure is returned as an error;
// unreadable files are logged and left out of the corpus.
func (e *Extractor) Scan(pattern, encoding string) (domain.Corpus, error) {
	files, err := e.discoverer.Discover(pattern)
	if err != nil {
		return nil, fmt.Errorf("discover test files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("discover test files: %w: %s", discovery.ErrNoFiles, pattern)
	}

	corpus := make(domain.Corpus, len(files))
	var parsed, failed int
	if e.progress != nil {
		e.progress.Start(len(files))
	}
	for _, path := range files {
		text, err := e.reader.ReadText(path, encoding)
		if err != nil {
			e.logger.Warn("skipping unreadable test file", "path", path, "error", err)
			failed++
		} else {
			corpus[path] = e.extract(path, text)
			parsed++
		}
		if e.progress != nil {
			e.progress.Update(parsed, failed)
		}
	}
	if e.progress != nil {
		e.progress.Finish()
	}

	e.logger.Debug("scan finished", "pattern", pattern, "files", len(files), "parsed", parsed, "failed", failed)
	return corpus, nil
}

// extract runs the label scanner over one file, logging what it tolerated.
// A panic while scanning degrades to an empty record.
func (e *Extractor) extract(path, text string) (record domain.TestFileRecord) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("label extraction failed", "path", path, "panic", r)
			record = domain.NewTestFileRecord()
		}
	}()

	record, anomalies := ExtractLabels(text)
	for _, a := range anomalies {
		level := slog.LevelWarn
		if a.Reason == ReasonDynamicLabel {
			level = slog.LevelDebug
		}
		e.logger.Log(context.Background(), level, "label extraction anomaly", "path", path, "line", a.Line, "anomaly", string(a.Reason))
	}
	return record
}
