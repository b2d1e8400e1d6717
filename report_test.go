package junitreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBuilderEmpty(t *testing.T) {
	r := NewReportBuilder().Build()
	assert.Empty(t, r.TestSuites())
}

func TestReportBuilderAssignsIDsInInsertionOrder(t *testing.T) {
	// Build the suites out of order; ids must follow report insertion order.
	ts2, err := NewTestSuiteBuilder("ts2").Build()
	require.NoError(t, err)
	ts1, err := NewTestSuiteBuilder("ts1").Build()
	require.NoError(t, err)
	ts3, err := NewTestSuiteBuilder("ts3").Build()
	require.NoError(t, err)

	r := NewReportBuilder().
		AddTestSuite(ts1).
		AddTestSuites(ts2, ts3).
		Build()

	suites := r.TestSuites()
	require.Len(t, suites, 3)
	for i, ts := range suites {
		assert.Equal(t, i, ts.ID())
	}
	assert.Equal(t, "ts1", suites[0].Name())
	assert.Equal(t, "ts2", suites[1].Name())
	assert.Equal(t, "ts3", suites[2].Name())
}

func TestReportBuilderRenumbersReusedSuites(t *testing.T) {
	ts, err := NewTestSuiteBuilder("shared").Build()
	require.NoError(t, err)

	first := NewReportBuilder().AddTestSuite(ts).AddTestSuite(ts).Build()
	second := NewReportBuilder().AddTestSuite(first.TestSuites()[1]).Build()

	assert.Equal(t, 1, first.TestSuites()[1].ID())
	// A suite that carried id 1 in one report starts over in the next.
	assert.Equal(t, 0, second.TestSuites()[0].ID())
}
