package cmd

import (
	"fmt"

	"github.com/axial-ml/axial/backend/cpu"
	"github.com/axial-ml/axial/named"
	"github.com/spf13/cobra"
)

var (
	linspaceStart      float64
	linspaceStop       float64
	linspaceNum        int
	linspaceAxis       string
	linspaceNoEndpoint bool
)

var linspaceCmd = &cobra.Command{
	Use:   "linspace",
	Short: "Build and print an evenly spaced grid",
	Long: `Build an implicit LinearSpace along one named axis, materialize it,
and print the values.`,
	RunE: runLinspace,
}

func init() {
	linspaceCmd.Flags().Float64Var(&linspaceStart, "start", 0, "first grid value")
	linspaceCmd.Flags().Float64Var(&linspaceStop, "stop", 1, "last grid value (excluded with --no-endpoint)")
	linspaceCmd.Flags().IntVar(&linspaceNum, "num", 11, "number of samples")
	linspaceCmd.Flags().StringVar(&linspaceAxis, "axis", "x", "axis name")
	linspaceCmd.Flags().BoolVar(&linspaceNoEndpoint, "no-endpoint", false, "exclude the stop value")
	rootCmd.AddCommand(linspaceCmd)
}

func runLinspace(cmd *cobra.Command, args []string) error {
	backend := cpu.New()

	grid, err := named.NewLinearSpace(linspaceStart, linspaceStop, linspaceAxis, linspaceNum, !linspaceNoEndpoint, backend)
	if err != nil {
		return err
	}

	arr, err := grid.Materialize()
	if err != nil {
		return err
	}

	fmt.Println(grid)
	fmt.Printf("  step: %g\n", grid.Step())
	fmt.Printf("  %s\n", arr)
	return nil
}
