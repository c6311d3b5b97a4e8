package report

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"specpath/internal/domain"
)

// Load reads the failed tests of a test-run report. Files ending in .xml
// are read as JUnit XML, everything else as a JSON array of
// {"suite": ..., "case": ...} objects.
func Load(path string) ([]domain.FailedTest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".xml") {
		return ParseJUnit(data)
	}
	return ParseJSON(data)
}

// ParseJSON parses a JSON array of failed tests
func ParseJSON(data []byte) ([]domain.FailedTest, error) {
	var failed []domain.FailedTest
	if err := json.Unmarshal(data, &failed); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return failed, nil
}

type junitNode struct {
	Name      string      `xml:"name,attr"`
	Suites    []junitNode `xml:"testsuite"`
	TestCases []junitCase `xml:"testcase"`
}

type junitCase struct {
	ClassName string    `xml:"classname,attr"`
	Name      string    `xml:"name,attr"`
	Failures  []xmlText `xml:"failure"`
	Errors    []xmlText `xml:"error"`
}

type xmlText struct {
	Message string `xml:"message,attr"`
}

// ParseJUnit returns the failed and errored test cases of a JUnit XML
// report. The root may be <testsuites> or a single <testsuite>. A case's
// suite label is its classname, or the enclosing suite name when empty.
func ParseJUnit(data []byte) ([]domain.FailedTest, error) {
	var root junitNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse junit report: %w", err)
	}

	var failed []domain.FailedTest
	collectFailures(root, &failed)
	return failed, nil
}

func collectFailures(node junitNode, failed *[]domain.FailedTest) {
	for _, tc := range node.TestCases {
		if len(tc.Failures) == 0 && len(tc.Errors) == 0 {
			continue
		}
		suite := tc.ClassName
		if suite == "" {
			suite = node.Name
		}
		*failed = append(*failed, domain.FailedTest{Suite: suite, Case: tc.Name})
	}
	for _, child := range node.Suites {
		collectFailures(child, failed)
	}
}
