package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestListCommand(t *testing.T) {
	path := writeSample(t, "results.yml", sampleResults)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"list", path})

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("command execute: %v", err)
	}

	want := `Suite ts1 (0 tests)
Suite ts2 (3 tests)
    ✓ good test (15s)
    ! error test (5s)
      error: git error: unable to fetch
    ✗ failure test (10s)
      failure: assert_eq: not equal
SUMMARY: 1 passed, 1 failed, 1 errored, 0 skipped (30s)
`
	if buf.String() != want {
		t.Fatalf("unexpected output:\n--- want\n%s\n--- got\n%s", want, buf.String())
	}
}

func TestListCommandMissingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"list", "does-not-exist.yml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "read results") {
		t.Fatalf("unexpected error: %v", err)
	}
}
