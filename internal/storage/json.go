package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"specpath/internal/domain"
)

// SaveCorpus writes the corpus and its metadata to the index file.
func (s *JSONStorage) SaveCorpus(corpus domain.Corpus, meta domain.IndexMeta) error {
	if meta.Timestamp == "" {
		meta.Timestamp = time.Now().Format(time.RFC3339)
	}
	return writeJSON(s.cfg.GetIndexPath(), domain.IndexOutput{Meta: meta, Files: corpus})
}

// LoadCorpus reads a corpus snapshot from the index file.
func (s *JSONStorage) LoadCorpus() (*domain.IndexOutput, error) {
	path := s.cfg.GetIndexPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index file: %w", err)
	}
	var output domain.IndexOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	if output.Files == nil {
		output.Files = domain.Corpus{}
	}
	return &output, nil
}

// SaveResolutions writes resolution results to path.
func (s *JSONStorage) SaveResolutions(path string, resolutions []domain.Resolution) error {
	return writeJSON(path, resolutions)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
