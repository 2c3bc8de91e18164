package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ptest",
		Short:         "Ptest runs distribution package tests and reports their results",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	persistent := cmd.PersistentFlags()
	persistent.String("toolkit-dir", "", "path to the toolkit directory holding the Makefile")
	persistent.String("log-dir", "", "path to the package test log directory")
	persistent.String("suite-name", "", "name of the test suite (for reports)")
	persistent.String("format", "", "output format (pretty|json)")
	persistent.String("output-junit-xml", "", "path to the output JUnit XML file")
	persistent.String("output-md", "", "path to the output markdown file")
	persistent.Bool("ado-logger", false, "emit Azure DevOps pipeline logging commands")
	persistent.BoolP("verbose", "v", false, "enable verbose output")

	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
