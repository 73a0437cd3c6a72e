package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alexiusacademia/gocivil/internal/beam"
	"github.com/alexiusacademia/gocivil/internal/diagram"
	"github.com/alexiusacademia/gocivil/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Analysis inputs
	beamSpans   []float64
	beamLoad    float64
	beamE       float64
	beamI       float64
	beamPoints  int
	beamAt      []float64
	beamDiagram bool
	beamOutput  string
	beamXLSX    string
)

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Shear and moment diagrams of a continuous beam",
	Long: `Analyze a continuous beam under a uniform load on every span.
The first support is pinned, the others are rollers.

Internal forces do not depend on E and I when all spans share the
same section; they only scale the reported deflections.

Examples:
  # Three spans under 10 kN/m gravity load
  gocivil beam analyze --spans 5,6,5 --load -10

  # Values at given positions and an ASCII diagram
  gocivil beam analyze --spans 5,6,5 --load -10 --at 2.5,8 --diagram

  # Export the diagrams and the summary table
  gocivil beam analyze --spans 4,4 --load -12 -o beam.png --xlsx beam.xlsx`,
	RunE: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)

	// Model flags
	beamAnalyzeCmd.Flags().Float64SliceVar(&beamSpans, "spans", []float64{5, 6, 5}, "Span lengths (m)")
	beamAnalyzeCmd.Flags().Float64VarP(&beamLoad, "load", "w", -10, "Uniform load in global Y (kN/m), negative is downward")
	beamAnalyzeCmd.Flags().Float64Var(&beamE, "E", 1, "Young's modulus E (kN/m²)")
	beamAnalyzeCmd.Flags().Float64Var(&beamI, "I", 1, "Second moment of area I (m⁴)")

	// Output flags
	beamAnalyzeCmd.Flags().IntVar(&beamPoints, "points", beam.DefaultPointsPerMember, "Sample points per span")
	beamAnalyzeCmd.Flags().Float64SliceVar(&beamAt, "at", nil, "Report shear and moment at these positions (m)")
	beamAnalyzeCmd.Flags().BoolVar(&beamDiagram, "diagram", false, "Show ASCII shear and moment diagrams")
	beamAnalyzeCmd.Flags().StringVarP(&beamOutput, "output", "o", "", "Export diagrams to files (png, svg, pdf)")
	beamAnalyzeCmd.Flags().StringVar(&beamXLSX, "xlsx", "", "Write summary and sampled diagrams to an xlsx file")
}

func runBeamAnalyze(cmd *cobra.Command, args []string) error {
	model, err := beam.ContinuousBeam(beamSpans, beamLoad, beamE, beamI)
	if err != nil {
		return err
	}

	result, err := model.Analyze()
	if err != nil {
		return err
	}

	stations := result.Diagrams(beamPoints)
	summary := beam.Summarize(stations)
	slog.Debug("beam analyzed", "spans", len(beamSpans), "stations", len(stations))

	out := cmd.OutOrStdout()
	printBanner(out, "CONTINUOUS BEAM ANALYSIS")

	printSection(out, "INPUT DATA", func(w io.Writer) {
		for i, span := range beamSpans {
			fmt.Fprintf(w, "  Span %d:\t%.2f m\n", i+1, span)
		}
		fmt.Fprintf(w, "  Uniform load (w):\t%.2f kN/m\n", beamLoad)
		fmt.Fprintf(w, "  EI:\t%.4g kNm²\n", beamE*beamI)
	})

	printSection(out, "SUPPORT REACTIONS", func(w io.Writer) {
		for _, node := range model.Nodes {
			fmt.Fprintf(w, "  %s (x = %.2f m):\t%.2f kN\n", node.ID, node.X, result.Reactions[node.ID])
		}
	})

	printSection(out, "SUMMARY", func(w io.Writer) {
		fmt.Fprintf(w, "  Quantity\tMinimum\tMaximum\n")
		fmt.Fprintf(w, "  Shear Force (V) [kN]\t%.2f\t%.2f\n", summary.MinShear, summary.MaxShear)
		fmt.Fprintf(w, "  Moment (M) [kNm]\t%.2f\t%.2f\n", summary.MinMoment, summary.MaxMoment)
	})

	if len(beamAt) > 0 {
		printSection(out, "VALUES AT POSITION", func(w io.Writer) {
			fmt.Fprintf(w, "  x [m]\tV [kN]\tM [kNm]\n")
			for _, x := range beamAt {
				s, ok := beam.At(stations, x)
				if !ok {
					fmt.Fprintf(w, "  %.2f\t-\t-\n", x)
					continue
				}
				fmt.Fprintf(w, "  %.2f\t%.2f\t%.2f\n", x, s.Shear, s.Moment)
			}
		})
	}

	data := beamDiagramData(stations)
	if beamDiagram {
		fmt.Fprintln(out, diagram.DrawBeamDiagrams(data))
	}

	if beamOutput != "" {
		paths, err := diagram.ExportBeamDiagrams(data, beamOutput)
		if err != nil {
			return fmt.Errorf("export diagrams: %w", err)
		}
		for _, p := range paths {
			fmt.Fprintf(out, "Diagram exported to: %s\n", p)
		}
	}

	if beamXLSX != "" {
		if err := report.WriteBeamSummary(beamXLSX, stations, summary); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		fmt.Fprintf(out, "Summary written to: %s\n", beamXLSX)
	}

	return nil
}

func beamDiagramData(stations []beam.Station) diagram.BeamDiagramData {
	data := diagram.BeamDiagramData{
		X:      make([]float64, len(stations)),
		Shear:  make([]float64, len(stations)),
		Moment: make([]float64, len(stations)),
	}
	for i, s := range stations {
		data.X[i] = s.X
		data.Shear[i] = s.Shear
		data.Moment[i] = s.Moment
	}
	return data
}
