package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alexiusacademia/gocivil/internal/report"
	"github.com/alexiusacademia/gocivil/internal/solar"
	"github.com/spf13/cobra"
)

var (
	pvSite      string
	pvLatitude  float64
	pvLongitude float64
	pvXLSX      string

	// Demand overrides
	pvHousehold   float64
	pvCarPer100km float64
	pvDistance    float64
	pvSession     float64
)

var pvSizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Required PV module area for a daily demand",
	Long: `Compute the PV module area that covers the daily household
consumption plus the charging energy of an electric car.

  driving      = consumption per 100 km x distance / 100
  total        = household + driving / charging efficiency + session energy
  area         = total / η_pv / (q_global x η_tilt)

Without --site or --lat/--lon every configured site is sized
concurrently; a site whose radiation cannot be fetched is reported
and skipped.

Examples:
  # All built-in sites
  gocivil pv size --household 10 --car 18 --distance 40

  # One site by (fuzzy) name
  gocivil pv size --site zaragoza

  # Any location, results to a spreadsheet
  gocivil pv size --lat 40.42 --lon -3.70 --xlsx pv.xlsx`,
	RunE: runPVSize,
}

func init() {
	pvCmd.AddCommand(pvSizeCmd)

	// Location flags
	pvSizeCmd.Flags().StringVarP(&pvSite, "site", "s", "", "Site name from the site list")
	pvSizeCmd.Flags().Float64Var(&pvLatitude, "lat", 0, "Latitude (°)")
	pvSizeCmd.Flags().Float64Var(&pvLongitude, "lon", 0, "Longitude (°)")
	pvSizeCmd.MarkFlagsRequiredTogether("lat", "lon")
	pvSizeCmd.MarkFlagsMutuallyExclusive("site", "lat")

	// Demand flags, defaults come from the configuration
	pvSizeCmd.Flags().Float64Var(&pvHousehold, "household", 0, "Household consumption (kWh/day)")
	pvSizeCmd.Flags().Float64Var(&pvCarPer100km, "car", 0, "Car consumption (kWh/100 km)")
	pvSizeCmd.Flags().Float64Var(&pvDistance, "distance", 0, "Daily driving distance (km)")
	pvSizeCmd.Flags().Float64Var(&pvSession, "session", 0, "Energy per daily charging session (kWh)")

	pvSizeCmd.Flags().StringVar(&pvXLSX, "xlsx", "", "Write site results to an xlsx file")
}

func pvDemand(cmd *cobra.Command) solar.Demand {
	d := cfg.Demand
	if cmd.Flags().Changed("household") {
		d.HouseholdDaily = pvHousehold
	}
	if cmd.Flags().Changed("car") {
		d.CarPer100km = pvCarPer100km
	}
	if cmd.Flags().Changed("distance") {
		d.DailyDistance = pvDistance
	}
	if cmd.Flags().Changed("session") {
		d.CarPerSession = pvSession
	}
	return d
}

func runPVSize(cmd *cobra.Command, args []string) error {
	demand := pvDemand(cmd)
	if err := demand.Validate(); err != nil {
		return err
	}

	var sites []solar.Site
	switch {
	case pvSite != "":
		site, err := solar.FindSite(pvSite, cfg.SiteList())
		if err != nil {
			return err
		}
		sites = []solar.Site{site}
	case cmd.Flags().Changed("lat"):
		sites = []solar.Site{{
			Name:      fmt.Sprintf("%.4f, %.4f", pvLatitude, pvLongitude),
			Latitude:  pvLatitude,
			Longitude: pvLongitude,
		}}
	default:
		sites = cfg.SiteList()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client := cfg.SolarClient(solar.WithLogger(slog.Default()))
	results, err := solar.SizeSites(ctx, client, sites, demand, cfg.PV, cfg.Solar.Concurrency)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printBanner(out, "PHOTOVOLTAIC SIZING")

	printSection(out, "DEMAND", func(w io.Writer) {
		fmt.Fprintf(w, "  Household:\t%.2f kWh/day\n", demand.HouseholdDaily)
		fmt.Fprintf(w, "  Car consumption:\t%.2f kWh/100 km\n", demand.CarPer100km)
		fmt.Fprintf(w, "  Daily distance:\t%.1f km\n", demand.DailyDistance)
		fmt.Fprintf(w, "  Charging session:\t%.2f kWh\n", demand.CarPerSession)
		fmt.Fprintf(w, "  η_charge / η_pv / η_tilt:\t%.2f / %.2f / %.2f\n", cfg.PV.ChargingEfficiency, cfg.PV.PVEfficiency, cfg.PV.TiltFactor)
	})

	failed := 0
	printSection(out, "SITES", func(w io.Writer) {
		fmt.Fprintf(w, "  Site\tq [kWh/m²/day]\tDemand [kWh/day]\tArea [m²]\n")
		for _, r := range results {
			if r.Err != nil {
				failed++
				slog.Warn("site skipped", "site", r.Site.Name, "error", r.Err)
				fmt.Fprintf(w, "  %s\t-\t-\t-\n", r.Site.Name)
				continue
			}
			fmt.Fprintf(w, "  %s\t%.3f\t%.2f\t%.2f\n", r.Site.Name, r.Sizing.Radiation, r.Sizing.TotalDaily, r.Sizing.Area)
		}
	})

	if pvXLSX != "" {
		if err := report.WriteSites(pvXLSX, results); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		fmt.Fprintf(out, "Results written to: %s\n", pvXLSX)
	}

	if failed == len(results) {
		return fmt.Errorf("no site could be sized")
	}
	return nil
}
