package junitreport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestSuiteBuilderEmptyName(t *testing.T) {
	_, err := NewTestSuiteBuilder("").Build()
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestTestSuiteAggregates(t *testing.T) {
	success, err := Success("mysuccess", 6001*time.Millisecond).Build()
	require.NoError(t, err)
	errCase, err := Error("myerror", 6*time.Second, "Some Error", "An Error happened").Build()
	require.NoError(t, err)
	failCase, err := Failure("myfailure", 6*time.Second, "Some failure", "A Failure happened").Build()
	require.NoError(t, err)
	skipCase, err := Skipped("myskip", 0).Build()
	require.NoError(t, err)

	ts, err := NewTestSuiteBuilder("ts").
		AddTestCase(success).
		AddTestCase(errCase).
		AddTestCases(failCase, skipCase).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 4, ts.Tests())
	assert.Equal(t, 1, ts.Errors())
	assert.Equal(t, 1, ts.Failures())
	assert.Equal(t, 1, ts.Skipped())
	assert.Equal(t, 18001*time.Millisecond, ts.Time())

	// Counts must equal the tally over the returned cases.
	cases := ts.TestCases()
	assert.Len(t, cases, ts.Tests())
	assert.LessOrEqual(t, ts.Errors()+ts.Failures()+ts.Skipped(), ts.Tests())
}

func TestTestSuiteEmpty(t *testing.T) {
	ts, err := NewTestSuiteBuilder("ts1").Build()
	require.NoError(t, err)

	assert.Equal(t, 0, ts.Tests())
	assert.Equal(t, 0, ts.Errors())
	assert.Equal(t, 0, ts.Failures())
	assert.Equal(t, 0, ts.Skipped())
	assert.Equal(t, time.Duration(0), ts.Time())
	assert.Empty(t, ts.TestCases())
}

func TestTestSuiteCaseOrderPreserved(t *testing.T) {
	first, err := Success("first", time.Second).Build()
	require.NoError(t, err)
	second, err := Success("second", time.Second).Build()
	require.NoError(t, err)
	third, err := Success("third", time.Second).Build()
	require.NoError(t, err)

	ts, err := NewTestSuiteBuilder("ordered").
		AddTestCase(first).
		AddTestCases(second, third).
		Build()
	require.NoError(t, err)

	cases := ts.TestCases()
	require.Len(t, cases, 3)
	assert.Equal(t, "first", cases[0].Name())
	assert.Equal(t, "second", cases[1].Name())
	assert.Equal(t, "third", cases[2].Name())
}

func TestTestSuiteTimestampUnsetByDefault(t *testing.T) {
	ts, err := NewTestSuiteBuilder("ts").Build()
	require.NoError(t, err)
	assert.True(t, ts.Timestamp().IsZero())

	when := time.Date(1970, 1, 1, 0, 1, 1, 0, time.UTC)
	ts, err = NewTestSuiteBuilder("ts").SetTimestamp(when).Build()
	require.NoError(t, err)
	assert.Equal(t, when, ts.Timestamp())
}

func TestTestSuiteProperties(t *testing.T) {
	ts, err := NewTestSuiteBuilder("ts").
		AddProperty("config", "debug").
		AddProperty("arch", "arm64").
		Build()
	require.NoError(t, err)

	props := ts.Properties()
	require.Len(t, props, 2)
	assert.Equal(t, Property{Name: "config", Value: "debug"}, props[0])
	assert.Equal(t, Property{Name: "arch", Value: "arm64"}, props[1])
}

func TestTestSuiteBuilderSnapshotIndependence(t *testing.T) {
	b := NewTestSuiteBuilder("ts")

	success, err := Success("first", time.Second).Build()
	require.NoError(t, err)
	b.AddTestCase(success)

	first, err := b.Build()
	require.NoError(t, err)

	late, err := Success("second", time.Second).Build()
	require.NoError(t, err)
	b.AddTestCase(late)

	// The earlier snapshot must not see cases added afterwards.
	assert.Equal(t, 1, first.Tests())

	second, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, second.Tests())
}
