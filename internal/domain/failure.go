package domain

// FailedTest is a failed test taken from a test-run report
type FailedTest struct {
	Suite string `json:"suite"`
	Case  string `json:"case"`
}

// Resolution is the outcome of mapping a failed test back to its file
type Resolution struct {
	Suite string `json:"suite"`
	Case  string `json:"case"`
	Path  string `json:"path,omitempty"`
	Line  int    `json:"line,omitempty"`
	Found bool   `json:"found"`
}
