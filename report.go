package junitreport

// Report is the root of a JUnit report: an ordered collection of test
// suites. Built reports are immutable.
type Report struct {
	suites []TestSuite
}

// TestSuites returns a copy of the contained suites in insertion order.
func (r Report) TestSuites() []TestSuite {
	return append([]TestSuite(nil), r.suites...)
}

// ReportBuilder assembles a Report. Suites receive their id as they are
// added, as a strictly increasing counter starting at 0 and scoped to this
// builder, so suites built independently never collide when combined.
type ReportBuilder struct {
	report Report
}

// NewReportBuilder creates an empty report builder.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{}
}

// AddTestSuite appends a suite to the report and assigns its id.
func (b *ReportBuilder) AddTestSuite(testsuite TestSuite) *ReportBuilder {
	testsuite.id = len(b.report.suites)
	b.report.suites = append(b.report.suites, testsuite)
	return b
}

// AddTestSuites appends suites in the order given, assigning ids.
func (b *ReportBuilder) AddTestSuites(testsuites ...TestSuite) *ReportBuilder {
	for _, ts := range testsuites {
		b.AddTestSuite(ts)
	}
	return b
}

// Build returns the immutable Report. A report with zero suites is valid.
func (b *ReportBuilder) Build() Report {
	return Report{suites: append([]TestSuite(nil), b.report.suites...)}
}
