package cmd

import (
	"github.com/spf13/cobra"
)

var pvCmd = &cobra.Command{
	Use:   "pv",
	Short: "Photovoltaic system sizing",
	Long: `Size rooftop photovoltaic systems from measured irradiance.

Subcommands:
  size  - Module area covering household and electric car demand

Daily global irradiance is read from the NASA POWER API
(ALLSKY_SFC_SW_DWN) and averaged over the configured period.`,
}

func init() {
	rootCmd.AddCommand(pvCmd)
}
