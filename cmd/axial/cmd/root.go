package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "axial",
	Short: "Axial - named-axis arrays from the command line",
	Long: `Axial is a library for n-dimensional arrays with named axes.

Every dimension carries a semantic name instead of a bare position, and
all operations align operands by those names. This CLI exposes a few
library entry points for quick experiments:

  version   - print the version banner
  linspace  - build and print an evenly spaced grid
  demo      - walk through named alignment end to end`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
