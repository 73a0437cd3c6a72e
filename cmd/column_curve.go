package cmd

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gocivil/internal/ec4"
	"github.com/spf13/cobra"
)

var (
	curveName   string
	curveLambda []float64
	curveMax    float64
	curveStep   float64
)

var columnCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Tabulate buckling reduction factors χ",
	Long: `Tabulate the EN 1993-1-1 reduction factor χ against the relative
slenderness λ̄ for buckling curves a, b, c and d (Table 6.1).

Examples:
  # χ for all curves from 0 to 2 in steps of 0.2
  gocivil column curve --max 2 --step 0.2

  # χ for curve b at given slenderness values
  gocivil column curve --curve b --slenderness 0.5,1.0,1.5`,
	RunE: runColumnCurve,
}

func init() {
	columnCmd.AddCommand(columnCurveCmd)

	columnCurveCmd.Flags().StringVarP(&curveName, "curve", "c", "", "Buckling curve (a, b, c, d); all curves when empty")
	columnCurveCmd.Flags().Float64SliceVar(&curveLambda, "slenderness", nil, "Relative slenderness values λ̄")
	columnCurveCmd.Flags().Float64Var(&curveMax, "max", 3, "Largest λ̄ when --slenderness is not given")
	columnCurveCmd.Flags().Float64Var(&curveStep, "step", 0.1, "λ̄ increment when --slenderness is not given")
}

func runColumnCurve(cmd *cobra.Command, args []string) error {
	curves := ec4.Curves
	if curveName != "" {
		c, err := ec4.ParseCurve(curveName)
		if err != nil {
			return err
		}
		curves = []ec4.Curve{c}
	}

	lambdas := curveLambda
	if len(lambdas) == 0 {
		if curveStep <= 0 || curveMax < 0 {
			return fmt.Errorf("--step must be positive and --max not negative")
		}
		// Integer count avoids accumulating the step
		n := int(curveMax/curveStep + 1e-9)
		for i := 0; i <= n; i++ {
			lambdas = append(lambdas, float64(i)*curveStep)
		}
	}

	table := make([][]float64, len(lambdas))
	for i, l := range lambdas {
		table[i] = make([]float64, len(curves))
		for j, c := range curves {
			chi, err := ec4.ReductionFactor(l, c)
			if err != nil {
				return err
			}
			table[i][j] = chi
		}
	}

	out := cmd.OutOrStdout()
	printBanner(out, "BUCKLING REDUCTION FACTORS - EN 1993-1-1")

	printSection(out, "IMPERFECTION FACTORS", func(w io.Writer) {
		for _, c := range curves {
			p, _ := c.Parameters()
			fmt.Fprintf(w, "  Curve %s:\tα = %.2f\n", c, p.Alpha)
		}
	})

	printSection(out, "REDUCTION FACTOR χ", func(w io.Writer) {
		fmt.Fprint(w, "  λ̄")
		for _, c := range curves {
			fmt.Fprintf(w, "\t%s", c)
		}
		fmt.Fprintln(w)
		for i, l := range lambdas {
			fmt.Fprintf(w, "  %.2f", l)
			for _, chi := range table[i] {
				fmt.Fprintf(w, "\t%.4f", chi)
			}
			fmt.Fprintln(w)
		}
	})

	return nil
}
