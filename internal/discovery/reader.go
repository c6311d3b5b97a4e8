package discovery

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// Reader returns the text content of a file
type Reader interface {
	ReadText(path, encoding string) (string, error)
}

// FileReader reads files from disk and decodes them from the named encoding
// ("utf-8", "latin1", "windows-1252", "utf-16le", ...).
type FileReader struct{}

// NewFileReader creates a new FileReader
func NewFileReader() *FileReader {
	return &FileReader{}
}

// ReadText reads the whole file at path and decodes it to a UTF-8 string
func (r *FileReader) ReadText(path, encoding string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}

	if isUTF8(encoding) {
		return string(content), nil
	}

	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return "", fmt.Errorf("unsupported encoding %q: %w", encoding, err)
	}
	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", fmt.Errorf("decode %s as %s: %w", path, encoding, err)
	}
	return string(decoded), nil
}

func isUTF8(encoding string) bool {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}
