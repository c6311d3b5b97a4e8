package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultPattern is the default glob used to discover test files
	DefaultPattern = "**/*.spec.{js,ts}"
	// DefaultEncoding is the default encoding of test files
	DefaultEncoding = "utf-8"
	// DefaultLogLevel is the default diagnostics level
	DefaultLogLevel = "warn"
	// DefaultIndexFile is the default file a corpus snapshot is written to
	DefaultIndexFile = "specpath-index.json"
	// DefaultEnvFile is the dotenv file read on startup when present
	DefaultEnvFile = ".env"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for tests
var DefaultPathsToIgnore = []string{
	"node_modules",
	".git",
	"dist",
	"coverage",
}

// Environment variables read by Load
const (
	EnvPattern     = "SPECPATH_PATTERN"
	EnvEncoding    = "SPECPATH_ENCODING"
	EnvLogLevel    = "SPECPATH_LOG_LEVEL"
	EnvProjectPath = "SPECPATH_PROJECT_PATH"
	EnvIgnore      = "SPECPATH_IGNORE"
)
