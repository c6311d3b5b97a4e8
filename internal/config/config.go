package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	Pattern     string
	Encoding    string

	// Diagnostics
	LogLevel string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Pattern    string
	Encoding   string
	LogLevel   string
	NameFilter string
	TestCases  bool
	IndexFile  string
	OutputFile string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath: DefaultProjectPath,
		Pattern:     DefaultPattern,
		Encoding:    DefaultEncoding,
		LogLevel:    DefaultLogLevel,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config with defaults, then applies the dotenv file (if it
// exists) and the process environment. Variables already set in the
// environment win over the dotenv file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := New()
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvProjectPath); v != "" {
		c.ProjectPath = v
	}
	if v := os.Getenv(EnvPattern); v != "" {
		c.Pattern = v
	}
	if v := os.Getenv(EnvEncoding); v != "" {
		c.Encoding = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvIgnore); v != "" {
		var dirs []string
		for _, dir := range strings.Split(v, ",") {
			if dir = strings.TrimSpace(dir); dir != "" {
				dirs = append(dirs, dir)
			}
		}
		c.PathsToIgnore = dirs
	}
}

// ApplyFlags stores the flags and lets the non-empty ones override config values
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Pattern != "" {
		c.Pattern = flags.Pattern
	}
	if flags.Encoding != "" {
		c.Encoding = flags.Encoding
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
}

// GetPattern returns the discovery pattern. Relative patterns are resolved
// against the project path.
func (c *Config) GetPattern() string {
	if filepath.IsAbs(c.Pattern) || c.ProjectPath == "" || c.ProjectPath == "." {
		return c.Pattern
	}
	return filepath.Join(c.ProjectPath, c.Pattern)
}

// GetIndexPath returns the path of the corpus snapshot, using the flag if provided
func (c *Config) GetIndexPath() string {
	if c.Flags.IndexFile != "" {
		return c.Flags.IndexFile
	}
	return filepath.Join(c.ProjectPath, DefaultIndexFile)
}
