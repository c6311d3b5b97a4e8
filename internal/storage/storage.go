package storage

import (
	"specpath/internal/config"
	"specpath/internal/domain"
)

// Storage persists corpus snapshots and resolution results
type Storage interface {
	SaveCorpus(corpus domain.Corpus, meta domain.IndexMeta) error
	LoadCorpus() (*domain.IndexOutput, error)
	// SaveResolutions writes batch resolution results to path.
	SaveResolutions(path string, resolutions []domain.Resolution) error
}

// JSONStorage stores snapshots in a JSON file at the configured index path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's index path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
