package commands

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specpath/internal/cli"
	"specpath/internal/config"
	"specpath/internal/discovery"
	"specpath/internal/domain"
	"specpath/internal/resolver"
)

func setupProject(t *testing.T) string {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	root := t.TempDir()
	files := map[string]string{
		"test/login.spec.js": "describe('login', () => {\n  it('works', () => {})\n})\n",
		"test/cart.spec.js":  "describe('cart', () => {\n  describe('totals', () => {\n    it.skip('adds tax', () => {})\n  })\n})\n",
		"src/app.js":         "module.exports = {}\n",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func newRoot(root string, args ...string) *cobra.Command {
	cfg := config.New()
	cfg.ProjectPath = root
	cfg.Pattern = "**/*.spec.js"
	cfg.LogLevel = "silent"

	rootCmd := &cobra.Command{Use: "specpath", SilenceUsage: true, SilenceErrors: true}
	var flags cli.Flags
	NewCommands(cfg).Register(rootCmd, &flags, cfg)
	rootCmd.SetArgs(args)
	return rootCmd
}

func TestLocateCommand(t *testing.T) {
	root := setupProject(t)

	t.Run("found", func(t *testing.T) {
		require.NoError(t, newRoot(root, "locate", "cart", "adds tax").Execute())
	})

	t.Run("not found", func(t *testing.T) {
		err := newRoot(root, "locate", "login", "adds tax").Execute()
		require.Error(t, err)
		assert.True(t, errors.Is(err, resolver.ErrNotFound))
	})

	t.Run("no matching files", func(t *testing.T) {
		err := newRoot(root, "locate", "-p", "**/*.coffee", "a", "b").Execute()
		assert.Error(t, err)
	})
}

func TestScanAndLocateFromIndex(t *testing.T) {
	root := setupProject(t)
	index := filepath.Join(root, "index.json")

	require.NoError(t, newRoot(root, "scan", "--cases", "--out", index).Execute())
	assert.FileExists(t, index)

	require.NoError(t, newRoot(root, "locate", "--index", index, "login", "works").Execute())
}

func TestResolveCommand(t *testing.T) {
	root := setupProject(t)
	reportPath := filepath.Join(root, "failed.json")
	outPath := filepath.Join(root, "resolved.json")
	require.NoError(t, os.WriteFile(reportPath, []byte(`[{"suite":"cart","case":"adds tax"},{"suite":"x","case":"y"}]`), 0644))

	require.NoError(t, newRoot(root, "resolve", reportPath, "--out", outPath).Execute())
	assert.FileExists(t, outPath)
}

func TestCorpusSource_NameFilter(t *testing.T) {
	cfg := config.New()
	cfg.Flags.NameFilter = "*cart*"
	source := &corpusSource{config: cfg, filter: discovery.NewFilter()}

	filtered := source.filterCorpus(domain.Corpus{
		"test/cart.spec.js":  domain.NewTestFileRecord(),
		"test/login.spec.js": domain.NewTestFileRecord(),
	})
	assert.Len(t, filtered, 1)
	assert.Contains(t, filtered, "test/cart.spec.js")
}
