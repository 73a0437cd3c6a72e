package cmd

import (
	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Concrete-encased composite column design (EN 1994-1-1)",
	Long: `Design concrete-encased HE profile columns under axial load
following EN 1994-1-1 Section 6.7 (simplified method).

Subcommands:
  design  - Buckling check and M-N interaction diagram
  curve   - EN 1993-1-1 buckling reduction factors

The buckling check uses curve c (minor axis) and accounts for
creep through the sustained part of the axial load.`,
}

func init() {
	rootCmd.AddCommand(columnCmd)
}
