package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Continuous beam analysis",
	Long: `Analyze continuous beams with the direct stiffness method.

Subcommands:
  analyze  - Shear and moment diagrams, extremes and reactions

Members are Euler-Bernoulli elements; shear deformation is ignored.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
