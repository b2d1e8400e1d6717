// Package junitreport builds JUnit compatible XML test reports.
//
// Test cases are assembled into suites and suites into a report through
// builders; built values are immutable and serialization never mutates them.
// The package does not read the clock and does not touch the filesystem:
// timestamps are supplied by the caller and output goes to an io.Writer.
//
//	good, err := junitreport.Success("good test", 15*time.Second).Build()
//	bad, err := junitreport.Failure("failure test", 10*time.Second, "assert_eq", "not equal").Build()
//
//	suite, err := junitreport.NewTestSuiteBuilder("ts").
//		SetTimestamp(start).
//		AddTestCases(good, bad).
//		Build()
//
//	report := junitreport.NewReportBuilder().AddTestSuite(suite).Build()
//	err = report.WriteXML(os.Stdout)
package junitreport

import "errors"

// ErrEmptyName indicates that a case or suite builder was finalized without a
// non-empty name.
var ErrEmptyName = errors.New("name must not be empty")
