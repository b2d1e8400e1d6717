package junitreport

import (
	"fmt"
	"time"
)

// ResultKind classifies the outcome of a test case.
type ResultKind int

const (
	// ResultSuccess marks a case that passed.
	ResultSuccess ResultKind = iota
	// ResultError marks a case that hit an unexpected error condition.
	ResultError
	// ResultFailure marks a case where an explicit assertion failed.
	ResultFailure
	// ResultSkipped marks a case that was not executed.
	ResultSkipped
)

// TestResult is the outcome of a single test case. Type, Message and Trace
// carry data only for error and failure results.
type TestResult struct {
	Kind    ResultKind
	Type    string
	Message string
	Trace   string
}

// TestCase is a single test execution record. Values are immutable once
// built; construct them through TestCaseBuilder.
type TestCase struct {
	name      string
	duration  time.Duration
	result    TestResult
	classname string
	filepath  string
	systemOut string
	systemErr string
}

// Name returns the case name.
func (c TestCase) Name() string { return c.name }

// Duration returns how long the case ran.
func (c TestCase) Duration() time.Duration { return c.duration }

// Result returns the outcome of the case.
func (c TestCase) Result() TestResult { return c.result }

// Classname returns the optional class name, empty when unset.
func (c TestCase) Classname() string { return c.classname }

// Filepath returns the optional source file path, empty when unset.
func (c TestCase) Filepath() string { return c.filepath }

// SystemOut returns the captured standard output, empty when unset.
func (c TestCase) SystemOut() string { return c.systemOut }

// SystemErr returns the captured standard error, empty when unset.
func (c TestCase) SystemErr() string { return c.systemErr }

// IsSuccess reports whether the case passed.
func (c TestCase) IsSuccess() bool { return c.result.Kind == ResultSuccess }

// IsError reports whether the case hit an unexpected error.
func (c TestCase) IsError() bool { return c.result.Kind == ResultError }

// IsFailure reports whether an assertion failed.
func (c TestCase) IsFailure() bool { return c.result.Kind == ResultFailure }

// IsSkipped reports whether the case was skipped.
func (c TestCase) IsSkipped() bool { return c.result.Kind == ResultSkipped }

// TestCaseBuilder assembles a TestCase. Setters chain and may be called
// repeatedly; the last write wins. Build validates once.
type TestCaseBuilder struct {
	testcase TestCase
}

// NewTestCaseBuilder creates a builder for a successful case named name.
func NewTestCaseBuilder(name string) *TestCaseBuilder {
	return Success(name, 0)
}

// Success creates a builder for a case that passed.
func Success(name string, duration time.Duration) *TestCaseBuilder {
	return &TestCaseBuilder{testcase: TestCase{
		name:     name,
		duration: duration,
		result:   TestResult{Kind: ResultSuccess},
	}}
}

// Error creates a builder for a case that encountered an unexpected error.
func Error(name string, duration time.Duration, errType, message string) *TestCaseBuilder {
	return &TestCaseBuilder{testcase: TestCase{
		name:     name,
		duration: duration,
		result:   TestResult{Kind: ResultError, Type: errType, Message: message},
	}}
}

// Failure creates a builder for a case where an assertion failed.
func Failure(name string, duration time.Duration, failureType, message string) *TestCaseBuilder {
	return &TestCaseBuilder{testcase: TestCase{
		name:     name,
		duration: duration,
		result:   TestResult{Kind: ResultFailure, Type: failureType, Message: message},
	}}
}

// Skipped creates a builder for a case that was not executed.
func Skipped(name string, duration time.Duration) *TestCaseBuilder {
	return &TestCaseBuilder{testcase: TestCase{
		name:     name,
		duration: duration,
		result:   TestResult{Kind: ResultSkipped},
	}}
}

// SetClassname sets the class name attribute of the case.
func (b *TestCaseBuilder) SetClassname(classname string) *TestCaseBuilder {
	b.testcase.classname = classname
	return b
}

// SetFilepath sets the source file attribute of the case.
func (b *TestCaseBuilder) SetFilepath(filepath string) *TestCaseBuilder {
	b.testcase.filepath = filepath
	return b
}

// SetSystemOut sets the captured standard output of the case.
func (b *TestCaseBuilder) SetSystemOut(systemOut string) *TestCaseBuilder {
	b.testcase.systemOut = systemOut
	return b
}

// SetSystemErr sets the captured standard error of the case.
func (b *TestCaseBuilder) SetSystemErr(systemErr string) *TestCaseBuilder {
	b.testcase.systemErr = systemErr
	return b
}

// SetTrace attaches detailed diagnostic text to an error or failure result.
// It has no effect on successful or skipped cases.
func (b *TestCaseBuilder) SetTrace(trace string) *TestCaseBuilder {
	switch b.testcase.result.Kind {
	case ResultError, ResultFailure:
		b.testcase.result.Trace = trace
	}
	return b
}

// Build validates the staged data and returns the immutable TestCase. It
// fails with ErrEmptyName when the name is empty. Negative durations are
// clamped to zero; the schema cannot represent them.
func (b *TestCaseBuilder) Build() (TestCase, error) {
	if b.testcase.name == "" {
		return TestCase{}, fmt.Errorf("build test case: %w", ErrEmptyName)
	}
	tc := b.testcase
	if tc.duration < 0 {
		tc.duration = 0
	}
	return tc, nil
}
