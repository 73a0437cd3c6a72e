package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocivil/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocivil",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gocivil v%s\n", version.Version)
		fmt.Fprintf(out, "Built %s from %s\n", version.BuildTime, version.GitCommit)
		fmt.Fprintln(out, "Composite columns to EN 1994-1-1, beams and PV sizing")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
