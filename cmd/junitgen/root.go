package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "junitgen",
		Short:         "Junitgen converts test result files into JUnit XML reports",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
