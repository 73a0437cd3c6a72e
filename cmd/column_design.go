package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alexiusacademia/gocivil/internal/diagram"
	"github.com/alexiusacademia/gocivil/internal/ec4"
	"github.com/spf13/cobra"
)

var (
	columnFile string

	// Geometry inputs
	columnLength         float64
	columnWidth          float64
	columnHeight         float64
	columnProfileArea    float64
	columnProfileInertia float64
	columnRebarArea      float64
	columnRebarInertia   float64

	// Material inputs
	columnFy float64
	columnFc float64
	columnFs float64
	columnEc float64
	columnEs float64

	// Loads, either design or characteristic
	columnNEd  float64
	columnNGd  float64
	columnDead float64
	columnLive float64

	columnShowDiagram bool
	columnExportFile  string
)

var columnDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Check a composite column and compute its interaction diagram",
	Long: `Check the buckling resistance of a concrete-encased HE profile
column and compute the vertices of its M-N interaction diagram.

Give the design axial load with --ned and its permanent part with
--ngd, or the characteristic actions with --dead and --live to use
the governing EN 1990 combination (6.10, 6.10a, 6.10b).

The flag defaults describe an HE 300 B in a 300x300 mm section with
4 bars of 20 mm, 4 m long.

Examples:
  # Design loads
  gocivil column design --fy 355 --fc 30 --ned 2200 --ngd 1400

  # Characteristic actions and the ASCII interaction diagram
  gocivil column design --dead 1000 --live 450 --diagram

  # From a project file, exporting the diagram
  gocivil column design -f column.yaml -o column.png`,
	RunE: runColumnDesign,
}

func init() {
	columnCmd.AddCommand(columnDesignCmd)

	columnDesignCmd.Flags().StringVarP(&columnFile, "file", "f", "", "Path to column project YAML file")

	// Geometry flags
	columnDesignCmd.Flags().Float64VarP(&columnLength, "length", "L", 4, "Buckling length L (m)")
	columnDesignCmd.Flags().Float64VarP(&columnWidth, "width", "b", 300, "Column width b (mm)")
	columnDesignCmd.Flags().Float64Var(&columnHeight, "height", 300, "Column depth h (mm)")
	columnDesignCmd.Flags().Float64Var(&columnProfileArea, "profile-area", 149.8, "Steel profile area A_st (cm²)")
	columnDesignCmd.Flags().Float64Var(&columnProfileInertia, "profile-inertia", 19340, "Steel profile inertia I_st (cm⁴)")
	columnDesignCmd.Flags().Float64Var(&columnRebarArea, "rebar-area", 12.57, "Reinforcement area As_b (cm²)")
	columnDesignCmd.Flags().Float64Var(&columnRebarInertia, "rebar-inertia", 1257, "Reinforcement inertia I_by (cm⁴)")

	// Material flags
	columnDesignCmd.Flags().Float64Var(&columnFy, "fy", 355, "Structural steel yield strength fy (MPa)")
	columnDesignCmd.Flags().Float64Var(&columnFc, "fc", 30, "Concrete strength fc (MPa)")
	columnDesignCmd.Flags().Float64Var(&columnFs, "fs", ec4.DefaultRebarStrength, "Reinforcement yield strength fs (MPa)")
	columnDesignCmd.Flags().Float64Var(&columnEc, "ec", ec4.DefaultConcreteModulus, "Concrete modulus Ec (GPa)")
	columnDesignCmd.Flags().Float64Var(&columnEs, "es", ec4.DefaultSteelModulus, "Steel modulus Es (GPa)")

	// Load flags
	columnDesignCmd.Flags().Float64Var(&columnNEd, "ned", 0, "Design axial load N_Ed (kN)")
	columnDesignCmd.Flags().Float64Var(&columnNGd, "ngd", 0, "Permanent part of the design load N_G,Ed (kN)")
	columnDesignCmd.Flags().Float64Var(&columnDead, "dead", 0, "Characteristic permanent load G_k (kN)")
	columnDesignCmd.Flags().Float64Var(&columnLive, "live", 0, "Characteristic variable load Q_k (kN)")

	// Design loads and characteristic actions never mix
	for _, design := range []string{"ned", "ngd"} {
		for _, action := range []string{"dead", "live"} {
			columnDesignCmd.MarkFlagsMutuallyExclusive(design, action)
		}
	}
	// A project file defines the whole column
	for _, input := range []string{
		"length", "width", "height", "profile-area", "profile-inertia", "rebar-area", "rebar-inertia",
		"fy", "fc", "fs", "ec", "es", "ned", "ngd", "dead", "live",
	} {
		columnDesignCmd.MarkFlagsMutuallyExclusive("file", input)
	}

	// Output flags
	columnDesignCmd.Flags().BoolVar(&columnShowDiagram, "diagram", false, "Show ASCII interaction diagram")
	columnDesignCmd.Flags().StringVarP(&columnExportFile, "output", "o", "", "Export interaction diagram to file (png, svg, pdf)")
}

func runColumnDesign(cmd *cobra.Command, args []string) error {
	name := "Composite column"
	column := ec4.NewColumn(
		ec4.Geometry{
			Length:         columnLength,
			Width:          columnWidth,
			Height:         columnHeight,
			ProfileArea:    columnProfileArea,
			ProfileInertia: columnProfileInertia,
			RebarArea:      columnRebarArea,
			RebarInertia:   columnRebarInertia,
		},
		ec4.Materials{Fy: columnFy, Fc: columnFc, Fs: columnFs, Ec: columnEc, Es: columnEs},
	)
	column.Parameters = cfg.EC4

	var (
		loads ec4.Loads
		combo *ec4.Combination
	)
	switch {
	case columnFile != "":
		project, err := ec4.LoadProject(columnFile)
		if err != nil {
			return err
		}
		if project.Name != "" {
			name = project.Name
		}
		column.Geometry = project.Geometry
		column.Materials = project.Materials
		loads, combo = project.DesignLoads()
	case cmd.Flags().Changed("dead") || cmd.Flags().Changed("live"):
		var c ec4.Combination
		loads, c = ec4.Governing(ec4.Actions{Permanent: columnDead, Variable: columnLive}, ec4.Combinations)
		combo = &c
	case cmd.Flags().Changed("ned"):
		loads = ec4.Loads{NEd: columnNEd, NGd: columnNGd}
	default:
		return fmt.Errorf("give --ned/--ngd, --dead/--live or --file")
	}

	slog.Debug("designing column", "name", name, "ned", loads.NEd, "ngd", loads.NGd)

	result, err := column.Design(loads)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printColumnResult(out, name, column, result, combo)

	data := interactionData(name, result)
	if columnShowDiagram {
		fmt.Fprintln(out, diagram.DrawInteractionDiagram(data))
	}

	if columnExportFile != "" {
		if err := diagram.ExportInteractionDiagram(data, columnExportFile); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", columnExportFile)
	}

	return nil
}

func printColumnResult(out io.Writer, name string, column *ec4.Column, r *ec4.DesignResult, combo *ec4.Combination) {
	g, m := column.Geometry, column.Materials

	printBanner(out, "COMPOSITE COLUMN DESIGN - EN 1994-1-1")

	printSection(out, "INPUT DATA", func(w io.Writer) {
		fmt.Fprintf(w, "  Column:\t%s\n", name)
		fmt.Fprintf(w, "  Buckling length (L):\t%.2f m\n", g.Length)
		fmt.Fprintf(w, "  Section (b x h):\t%.0f x %.0f mm\n", g.Width, g.Height)
		fmt.Fprintf(w, "  Profile (A_st, I_st):\t%.2f cm², %.0f cm⁴\n", g.ProfileArea, g.ProfileInertia)
		fmt.Fprintf(w, "  Reinforcement (As_b, I_by):\t%.2f cm², %.0f cm⁴\n", g.RebarArea, g.RebarInertia)
		fmt.Fprintf(w, "  fy / fc / fs:\t%.0f / %.0f / %.0f MPa\n", m.Fy, m.Fc, m.Fs)
		fmt.Fprintf(w, "  Ec / Es:\t%.0f / %.0f GPa\n", m.Ec, m.Es)
	})

	printSection(out, "LOADS", func(w io.Writer) {
		if combo != nil {
			fmt.Fprintf(w, "  Governing combination:\t%s (%s)\n", combo.ID, combo.Description)
		}
		fmt.Fprintf(w, "  N_Ed:\t%.1f kN\n", r.Loads.NEd)
		fmt.Fprintf(w, "  N_G,Ed:\t%.1f kN\n", r.Loads.NGd)
	})

	printSection(out, "DESIGN STRENGTHS", func(w io.Writer) {
		fmt.Fprintf(w, "  f_yd:\t%.2f MPa\n", r.Fyd)
		fmt.Fprintf(w, "  f_cd:\t%.2f MPa\n", r.Fcd)
		fmt.Fprintf(w, "  f_sd:\t%.2f MPa\n", r.Fsd)
	})

	printSection(out, "STIFFNESS", func(w io.Writer) {
		fmt.Fprintf(w, "  Concrete area (A_c):\t%.2f cm²\n", r.ConcreteArea)
		fmt.Fprintf(w, "  Concrete inertia (I_c):\t%.0f cm⁴\n", r.ConcreteInertia)
		fmt.Fprintf(w, "  E_c,eff:\t%.1f MPa\n", r.EffectiveConcreteModulus)
		fmt.Fprintf(w, "  (EI)_eff:\t%.1f kNm²\n", r.EffectiveStiffness)
		fmt.Fprintf(w, "  N_cr:\t%.1f kN\n", r.CriticalLoad)
	})

	printSection(out, "AXIAL RESISTANCE", func(w io.Writer) {
		fmt.Fprintf(w, "  N_pl,Rk:\t%.1f kN\n", r.PlasticResistanceChar)
		fmt.Fprintf(w, "  N_pl,Rd:\t%.1f kN\n", r.PlasticResistance)
		fmt.Fprintf(w, "  λ̄:\t%.4f\n", r.Slenderness)
		fmt.Fprintf(w, "  χ (curve %s):\t%.4f\n", ec4.ColumnCurve, r.ReductionFactor)
		fmt.Fprintf(w, "  χ·N_pl,Rd:\t%.1f kN\n", r.BucklingResistance)
		fmt.Fprintf(w, "  Utilisation:\t%.3f %s\n", r.Utilisation, statusMark(r.IsAdequate))
	})

	printSection(out, "INTERACTION DIAGRAM", func(w io.Writer) {
		fmt.Fprintf(w, "  h_n:\t%.2f mm\n", r.NeutralAxisDepth)
		fmt.Fprintf(w, "  M_max,Rd:\t%.1f kNm\n", r.MaxMoment)
		fmt.Fprintf(w, "  M_pl,Rd:\t%.1f kNm\n", r.PlasticMoment)
		fmt.Fprintf(w, "  Point\tM (kNm)\tN (kN)\n")
		for _, p := range labelledVertices(r) {
			fmt.Fprintf(w, "  %s\t%.1f\t%.1f\n", p.Label, p.Moment, p.Axial)
		}
	})

	fmt.Fprint(out, diagram.DrawSummaryBox("DESIGN RESISTANCE", []string{
		fmt.Sprintf("χ·N_pl,Rd = %.1f kN", r.BucklingResistance),
		fmt.Sprintf("M_pl,Rd   = %.1f kNm", r.PlasticMoment),
	}))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "STATUS:")
	fmt.Fprintln(out, lightRule)
	fmt.Fprintf(out, "  %s\n", r.Message)
	fmt.Fprintln(out)
}

func labelledVertices(r *ec4.DesignResult) []diagram.Point {
	labels := []string{"A", "B", "D", "C"}
	vertices := r.Vertices()
	points := make([]diagram.Point, len(vertices))
	for i, v := range vertices {
		points[i] = diagram.Point{Label: labels[i], Moment: v.Moment, Axial: v.Axial}
	}
	return points
}

func interactionData(name string, r *ec4.DesignResult) diagram.InteractionDiagramData {
	return diagram.InteractionDiagramData{
		Title:    name + " M-N interaction",
		Vertices: labelledVertices(r),
		NEd:      r.Loads.NEd,
	}
}
