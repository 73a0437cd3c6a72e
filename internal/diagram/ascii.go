package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Point is a vertex of an interaction diagram
type Point struct {
	Label  string
	Moment float64 // kNm
	Axial  float64 // kN
}

// InteractionDiagramData holds the M-N envelope of a column section
type InteractionDiagramData struct {
	Title    string
	Vertices []Point // in drawing order, e.g. A, B, D, C

	// Design axial load drawn as a horizontal line, 0 to omit
	NEd float64 // kN
}

// BeamDiagramData holds sampled internal forces along a beam
type BeamDiagramData struct {
	X      []float64 // m
	Shear  []float64 // kN
	Moment []float64 // kNm
}

// DrawInteractionDiagram creates an ASCII plot of the interaction envelope
func DrawInteractionDiagram(data InteractionDiagramData) string {
	const (
		widthChars  = 56
		heightChars = 20
	)

	var maxM, maxN float64
	for _, v := range data.Vertices {
		maxM = math.Max(maxM, v.Moment)
		maxN = math.Max(maxN, v.Axial)
	}
	maxN = math.Max(maxN, data.NEd)
	if maxM <= 0 || maxN <= 0 {
		return "  (empty interaction diagram)\n"
	}
	maxM *= 1.1
	maxN *= 1.05

	grid := make([][]rune, heightChars+1)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars+1))
	}

	col := func(m float64) int { return int(math.Round(m / maxM * widthChars)) }
	row := func(n float64) int { return heightChars - int(math.Round(n/maxN*heightChars)) }

	// Design load line
	if data.NEd > 0 {
		r := row(data.NEd)
		for c := range grid[r] {
			grid[r][c] = '·'
		}
	}

	// Envelope segments
	for i := 1; i < len(data.Vertices); i++ {
		a, b := data.Vertices[i-1], data.Vertices[i]
		const steps = 200
		for s := 0; s <= steps; s++ {
			t := float64(s) / steps
			m := a.Moment + t*(b.Moment-a.Moment)
			n := a.Axial + t*(b.Axial-a.Axial)
			grid[row(n)][col(m)] = '*'
		}
	}

	// Vertex labels on top
	for _, v := range data.Vertices {
		if v.Label != "" {
			grid[row(v.Axial)][col(v.Moment)] = []rune(v.Label)[0]
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
	}
	sb.WriteString(fmt.Sprintf("  N_Rd (kN)  max %.0f\n", maxN/1.05))
	for _, line := range grid {
		sb.WriteString("  │")
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s▶ M_Rd (kNm)  max %.0f\n", strings.Repeat("─", widthChars), maxM/1.1))

	// Legend
	sb.WriteString("\n")
	for _, v := range data.Vertices {
		sb.WriteString(fmt.Sprintf("  %s = (%.1f kNm, %.1f kN)\n", v.Label, v.Moment, v.Axial))
	}
	if data.NEd > 0 {
		sb.WriteString(fmt.Sprintf("  ··· = N_Ed %.1f kN\n", data.NEd))
	}

	return sb.String()
}

// DrawBeamDiagrams creates ASCII charts of the shear and moment diagrams
func DrawBeamDiagrams(data BeamDiagramData) string {
	if len(data.Shear) == 0 || len(data.Moment) == 0 {
		return "  (no diagram data)\n"
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(data.Shear,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Offset(4),
		asciigraph.Precision(1),
		asciigraph.Caption("Shear force V (kN)")))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.Plot(data.Moment,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Offset(4),
		asciigraph.Precision(1),
		asciigraph.Caption("Bending moment M (kNm)")))
	sb.WriteString("\n")

	if len(data.X) > 0 {
		sb.WriteString(fmt.Sprintf("\n  x from %.2f m to %.2f m\n", data.X[0], data.X[len(data.X)-1]))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes, not runes
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
