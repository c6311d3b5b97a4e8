package cli

import "specpath/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Pattern:    f.Pattern,
		Encoding:   f.Encoding,
		LogLevel:   f.LogLevel,
		NameFilter: f.NameFilter,
		TestCases:  f.TestCases,
		IndexFile:  f.IndexFile,
		OutputFile: f.OutputFile,
	}
}
