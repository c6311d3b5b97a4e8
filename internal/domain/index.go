package domain

// IndexMeta contains metadata about a saved corpus snapshot
type IndexMeta struct {
	Pattern   string `json:"pattern"`
	Encoding  string `json:"encoding"`
	Files     int    `json:"files"`
	Suites    int    `json:"suites"`
	Cases     int    `json:"cases"`
	Timestamp string `json:"timestamp"`
}

// IndexOutput is the complete structure of a saved corpus snapshot
type IndexOutput struct {
	Meta  IndexMeta `json:"meta"`
	Files Corpus    `json:"files"`
}

// NewIndexMeta counts the labels of corpus
func NewIndexMeta(corpus Corpus, pattern, encoding string) IndexMeta {
	meta := IndexMeta{Pattern: pattern, Encoding: encoding, Files: len(corpus)}
	for _, record := range corpus {
		meta.Suites += len(record.Describe)
		meta.Cases += len(record.It)
	}
	return meta
}
