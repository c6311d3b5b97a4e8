package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specpath/internal/config"
	"specpath/internal/domain"
)

func newTestStorage(t *testing.T) (*JSONStorage, *config.Config) {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return NewJSONStorage(cfg), cfg
}

func TestJSONStorage_CorpusSnapshot(t *testing.T) {
	st, cfg := newTestStorage(t)

	corpus := domain.Corpus{
		"a.spec.js": {
			Describe: []string{`\'quoted\'`},
			It:       []string{"case"},
			Declarations: []domain.Declaration{
				{Kind: domain.KindSuite, Label: `\'quoted\'`, Line: 1},
				{Kind: domain.KindCase, Label: "case", Modifier: "skip", Line: 2, Offset: 30},
			},
		},
		"empty.spec.js": domain.NewTestFileRecord(),
	}
	meta := domain.NewIndexMeta(corpus, "**/*.spec.js", "utf-8")
	assert.Equal(t, 2, meta.Files)
	assert.Equal(t, 1, meta.Suites)
	assert.Equal(t, 1, meta.Cases)

	require.NoError(t, st.SaveCorpus(corpus, meta))
	assert.FileExists(t, filepath.Join(cfg.ProjectPath, config.DefaultIndexFile))

	loaded, err := st.LoadCorpus()
	require.NoError(t, err)
	assert.Equal(t, corpus, loaded.Files)
	assert.Equal(t, "**/*.spec.js", loaded.Meta.Pattern)
	assert.NotEmpty(t, loaded.Meta.Timestamp)
}

func TestJSONStorage_LoadCorpusErrors(t *testing.T) {
	st, cfg := newTestStorage(t)

	_, err := st.LoadCorpus()
	assert.Error(t, err, "missing index")

	require.NoError(t, os.WriteFile(cfg.GetIndexPath(), []byte("{not json"), 0644))
	_, err = st.LoadCorpus()
	assert.Error(t, err, "corrupt index")
}

func TestJSONStorage_SaveResolutions(t *testing.T) {
	st, cfg := newTestStorage(t)
	path := filepath.Join(cfg.ProjectPath, "out", "resolved.json")

	resolutions := []domain.Resolution{
		{Suite: "s1", Case: "d1", Path: "t1.spec.js", Line: 3, Found: true},
		{Suite: "s7", Case: "d7"},
	}
	require.NoError(t, st.SaveResolutions(path, resolutions))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded []domain.Resolution
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, resolutions, decoded)
}
