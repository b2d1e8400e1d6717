// Package resultfile loads YAML test-result documents and turns them into
// report suites.
package resultfile

import (
	"fmt"
	"os"
	"time"

	"github.com/bgricker/junitreport"
	"gopkg.in/yaml.v3"
)

// Statuses accepted for a case entry.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFailure = "failure"
	StatusSkipped = "skipped"
)

// Document is the root of a result file.
type Document struct {
	Suites []Suite `yaml:"suites"`
}

// Suite describes one test suite entry.
type Suite struct {
	Name       string     `yaml:"name"`
	Timestamp  string     `yaml:"timestamp"`
	SystemOut  string     `yaml:"system_out"`
	SystemErr  string     `yaml:"system_err"`
	Properties []Property `yaml:"properties"`
	Cases      []Case     `yaml:"cases"`
}

// Property is a name/value pair attached to a suite.
type Property struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Case describes one test case entry.
type Case struct {
	Name      string `yaml:"name"`
	Status    string `yaml:"status"`
	Duration  string `yaml:"duration"`
	Type      string `yaml:"type"`
	Message   string `yaml:"message"`
	Trace     string `yaml:"trace"`
	Classname string `yaml:"classname"`
	File      string `yaml:"file"`
	SystemOut string `yaml:"system_out"`
	SystemErr string `yaml:"system_err"`
}

// Load reads and parses the result document at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read results %q: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse results %q: %w", path, err)
	}
	return doc, nil
}

// Build validates the document and assembles the suites in file order.
// Suite ids are not assigned here; the report builder does that.
func (d Document) Build() ([]junitreport.TestSuite, error) {
	suites := make([]junitreport.TestSuite, 0, len(d.Suites))
	for _, s := range d.Suites {
		built, err := buildSuite(s)
		if err != nil {
			return nil, err
		}
		suites = append(suites, built)
	}
	return suites, nil
}

func buildSuite(s Suite) (junitreport.TestSuite, error) {
	if s.Name == "" {
		return junitreport.TestSuite{}, fmt.Errorf("suite with no name")
	}

	b := junitreport.NewTestSuiteBuilder(s.Name)

	if s.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, s.Timestamp)
		if err != nil {
			return junitreport.TestSuite{}, fmt.Errorf("suite %q: parse timestamp %q: %w", s.Name, s.Timestamp, err)
		}
		b.SetTimestamp(ts)
	}
	if s.SystemOut != "" {
		b.SetSystemOut(s.SystemOut)
	}
	if s.SystemErr != "" {
		b.SetSystemErr(s.SystemErr)
	}
	for _, p := range s.Properties {
		b.AddProperty(p.Name, p.Value)
	}

	for _, c := range s.Cases {
		tc, err := buildCase(s.Name, c)
		if err != nil {
			return junitreport.TestSuite{}, err
		}
		b.AddTestCase(tc)
	}

	return b.Build()
}

func buildCase(suite string, c Case) (junitreport.TestCase, error) {
	if c.Name == "" {
		return junitreport.TestCase{}, fmt.Errorf("suite %q: case with no name", suite)
	}

	duration, err := parseDuration(c.Duration)
	if err != nil {
		return junitreport.TestCase{}, fmt.Errorf("suite %q, case %q: %w", suite, c.Name, err)
	}

	var b *junitreport.TestCaseBuilder
	switch c.Status {
	case StatusSuccess, "":
		b = junitreport.Success(c.Name, duration)
	case StatusError:
		b = junitreport.Error(c.Name, duration, c.Type, c.Message)
	case StatusFailure:
		b = junitreport.Failure(c.Name, duration, c.Type, c.Message)
	case StatusSkipped:
		b = junitreport.Skipped(c.Name, duration)
	default:
		return junitreport.TestCase{}, fmt.Errorf("suite %q, case %q: unknown status %q", suite, c.Name, c.Status)
	}

	if c.Status != StatusError && c.Status != StatusFailure {
		if c.Type != "" || c.Message != "" || c.Trace != "" {
			return junitreport.TestCase{}, fmt.Errorf("suite %q, case %q: type, message and trace require an error or failure status", suite, c.Name)
		}
	}

	if c.Trace != "" {
		b.SetTrace(c.Trace)
	}
	if c.Classname != "" {
		b.SetClassname(c.Classname)
	}
	if c.File != "" {
		b.SetFilepath(c.File)
	}
	if c.SystemOut != "" {
		b.SetSystemOut(c.SystemOut)
	}
	if c.SystemErr != "" {
		b.SetSystemErr(c.SystemErr)
	}

	return b.Build()
}

func parseDuration(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", raw)
	}
	return d, nil
}
