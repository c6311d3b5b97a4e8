package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"
	ignore "github.com/sabhiram/go-gitignore"
)

// ErrNoFiles is returned when a pattern matches no test file
var ErrNoFiles = errors.New("no test files matched")

// Discoverer finds the test files matching a pattern
type Discoverer interface {
	Discover(pattern string) ([]string, error)
}

// GlobDiscoverer expands glob patterns (with ** and {a,b} support) and drops
// files under ignored directories or matched by the project's .gitignore.
type GlobDiscoverer struct {
	root      string
	skipDirs  map[string]bool
	gitignore *ignore.GitIgnore
}

// NewGlobDiscoverer creates a GlobDiscoverer for the project rooted at root
func NewGlobDiscoverer(root string, skipDirs []string) *GlobDiscoverer {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &GlobDiscoverer{
		root:      filepath.Clean(root),
		skipDirs:  skipMap,
		gitignore: loadGitignore(root),
	}
}

// loadGitignore loads .gitignore from root if it exists
func loadGitignore(root string) *ignore.GitIgnore {
	gitignorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err != nil {
		return nil
	}
	gitignore, err := ignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		return nil
	}
	return gitignore
}

// Discover returns the regular files matching pattern, sorted
func (d *GlobDiscoverer) Discover(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	var files []string
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if d.ignored(path) {
			continue
		}
		files = append(files, path)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, pattern)
	}

	sort.Strings(files)
	return files, nil
}

func (d *GlobDiscoverer) ignored(path string) bool {
	rel := path
	if r, err := filepath.Rel(d.root, path); err == nil && !strings.HasPrefix(r, "..") {
		rel = r
	}
	rel = filepath.ToSlash(rel)

	parts := strings.Split(rel, "/")
	for _, part := range parts[:len(parts)-1] {
		if d.skipDirs[part] {
			return true
		}
	}

	return d.gitignore != nil && d.gitignore.MatchesPath(rel)
}
