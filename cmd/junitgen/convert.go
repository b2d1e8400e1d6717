package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bgricker/junitreport"
	"github.com/bgricker/junitreport/internal/resultfile"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <results.yml> [results.yml...]",
		Short: "Convert result files into one JUnit XML report",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runConvert,
	}
	cmd.Flags().StringP("output", "o", "", "write the report to this file instead of stdout")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	report, err := buildReport(args)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("parse --output: %w", err)
	}

	var sink io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output %q: %w", output, err)
		}
		defer f.Close()
		sink = f
	}

	if err := report.WriteXML(sink); err != nil {
		return err
	}
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

// buildReport loads every input file and appends its suites in file order.
// The report builder renumbers suite ids, so ids never collide across files.
func buildReport(paths []string) (junitreport.Report, error) {
	builder := junitreport.NewReportBuilder()
	for _, path := range paths {
		doc, err := resultfile.Load(path)
		if err != nil {
			return junitreport.Report{}, err
		}
		suites, err := doc.Build()
		if err != nil {
			return junitreport.Report{}, fmt.Errorf("results %q: %w", path, err)
		}
		builder.AddTestSuites(suites...)
	}
	return builder.Build(), nil
}
