package main

import (
	"fmt"
	"time"

	"github.com/bgricker/junitreport"
	"github.com/bgricker/junitreport/internal/resultfile"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <results.yml>",
		Short: "List suites and cases from a result file",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	doc, err := resultfile.Load(args[0])
	if err != nil {
		return err
	}
	suites, err := doc.Build()
	if err != nil {
		return fmt.Errorf("results %q: %w", args[0], err)
	}

	var passed, failed, errored, skipped int
	var total time.Duration

	for _, ts := range suites {
		fmt.Fprintf(cmd.OutOrStdout(), "Suite %s (%d tests)\n", ts.Name(), ts.Tests())
		for _, tc := range ts.TestCases() {
			fmt.Fprintf(cmd.OutOrStdout(), "    %s %s (%s)\n", resultGlyph(tc), tc.Name(), formatDuration(tc.Duration()))
			if detail := resultDetail(tc); detail != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "      %s\n", detail)
			}
		}
		passed += ts.Tests() - ts.Errors() - ts.Failures() - ts.Skipped()
		failed += ts.Failures()
		errored += ts.Errors()
		skipped += ts.Skipped()
		total += ts.Time()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "SUMMARY: %d passed, %d failed, %d errored, %d skipped (%s)\n",
		passed, failed, errored, skipped, formatDuration(total))
	return nil
}

func resultGlyph(tc junitreport.TestCase) string {
	switch {
	case tc.IsError():
		return "!"
	case tc.IsFailure():
		return "✗"
	case tc.IsSkipped():
		return "-"
	default:
		return "✓"
	}
}

func resultDetail(tc junitreport.TestCase) string {
	result := tc.Result()
	switch result.Kind {
	case junitreport.ResultError:
		return fmt.Sprintf("error: %s: %s", result.Type, result.Message)
	case junitreport.ResultFailure:
		return fmt.Sprintf("failure: %s: %s", result.Type, result.Message)
	default:
		return ""
	}
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Truncate(time.Millisecond).String()
}
