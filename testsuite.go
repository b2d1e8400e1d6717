package junitreport

import (
	"fmt"
	"time"
)

// Property is a name/value pair attached to a test suite.
type Property struct {
	Name  string
	Value string
}

// TestSuite is a named group of test cases with aggregate statistics. The
// aggregates are computed once at build time from the contained cases, so a
// built suite can never disagree with its contents.
type TestSuite struct {
	name       string
	id         int
	timestamp  time.Time
	properties []Property
	cases      []TestCase
	systemOut  string
	systemErr  string

	tests    int
	errors   int
	failures int
	skipped  int
	time     time.Duration
}

// Name returns the suite name.
func (s TestSuite) Name() string { return s.name }

// ID returns the identifier assigned when the suite was added to a report.
// Suites not yet owned by a report carry 0.
func (s TestSuite) ID() int { return s.id }

// Timestamp returns when the suite ran. The zero time means unset.
func (s TestSuite) Timestamp() time.Time { return s.timestamp }

// Properties returns a copy of the suite properties in insertion order.
func (s TestSuite) Properties() []Property {
	return append([]Property(nil), s.properties...)
}

// TestCases returns a copy of the contained cases in insertion order.
func (s TestSuite) TestCases() []TestCase {
	return append([]TestCase(nil), s.cases...)
}

// SystemOut returns the suite level standard output, empty when unset.
func (s TestSuite) SystemOut() string { return s.systemOut }

// SystemErr returns the suite level standard error, empty when unset.
func (s TestSuite) SystemErr() string { return s.systemErr }

// Tests returns the number of contained cases.
func (s TestSuite) Tests() int { return s.tests }

// Errors returns the number of contained error cases.
func (s TestSuite) Errors() int { return s.errors }

// Failures returns the number of contained failure cases.
func (s TestSuite) Failures() int { return s.failures }

// Skipped returns the number of contained skipped cases.
func (s TestSuite) Skipped() int { return s.skipped }

// Time returns the summed duration of the contained cases.
func (s TestSuite) Time() time.Duration { return s.time }

// TestSuiteBuilder assembles a TestSuite. Case order is preserved and is
// significant for serialization.
type TestSuiteBuilder struct {
	testsuite TestSuite
}

// NewTestSuiteBuilder creates a builder for a suite named name.
func NewTestSuiteBuilder(name string) *TestSuiteBuilder {
	return &TestSuiteBuilder{testsuite: TestSuite{name: name}}
}

// SetTimestamp records when the suite ran. Unset timestamps are omitted from
// the serialized report; this package never reads the clock itself.
func (b *TestSuiteBuilder) SetTimestamp(timestamp time.Time) *TestSuiteBuilder {
	b.testsuite.timestamp = timestamp
	return b
}

// SetSystemOut sets the holistic standard output of the suite.
func (b *TestSuiteBuilder) SetSystemOut(systemOut string) *TestSuiteBuilder {
	b.testsuite.systemOut = systemOut
	return b
}

// SetSystemErr sets the holistic standard error of the suite.
func (b *TestSuiteBuilder) SetSystemErr(systemErr string) *TestSuiteBuilder {
	b.testsuite.systemErr = systemErr
	return b
}

// AddProperty appends a name/value property to the suite.
func (b *TestSuiteBuilder) AddProperty(name, value string) *TestSuiteBuilder {
	b.testsuite.properties = append(b.testsuite.properties, Property{Name: name, Value: value})
	return b
}

// AddTestCase appends a case to the suite.
func (b *TestSuiteBuilder) AddTestCase(testcase TestCase) *TestSuiteBuilder {
	b.testsuite.cases = append(b.testsuite.cases, testcase)
	return b
}

// AddTestCases appends cases to the suite in the order given.
func (b *TestSuiteBuilder) AddTestCases(testcases ...TestCase) *TestSuiteBuilder {
	b.testsuite.cases = append(b.testsuite.cases, testcases...)
	return b
}

// Build computes the aggregate statistics and returns the immutable
// TestSuite. It fails with ErrEmptyName when the name is empty. No suite id
// is assigned here; that happens when the suite joins a report.
func (b *TestSuiteBuilder) Build() (TestSuite, error) {
	if b.testsuite.name == "" {
		return TestSuite{}, fmt.Errorf("build test suite: %w", ErrEmptyName)
	}

	ts := b.testsuite
	ts.properties = append([]Property(nil), b.testsuite.properties...)
	ts.cases = append([]TestCase(nil), b.testsuite.cases...)

	ts.tests = len(ts.cases)
	for _, tc := range ts.cases {
		switch tc.result.Kind {
		case ResultError:
			ts.errors++
		case ResultFailure:
			ts.failures++
		case ResultSkipped:
			ts.skipped++
		}
		ts.time += tc.duration
	}

	return ts, nil
}
