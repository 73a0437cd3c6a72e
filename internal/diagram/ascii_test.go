package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleEnvelope() InteractionDiagramData {
	return InteractionDiagramData{
		Title: "HE 300 B",
		Vertices: []Point{
			{Label: "A", Moment: 0, Axial: 7118.4},
			{Label: "B", Moment: 512.1, Axial: 1254.0},
			{Label: "D", Moment: 519.0, Axial: 627.0},
			{Label: "C", Moment: 512.1, Axial: 0},
		},
		NEd: 2200,
	}
}

func TestDrawInteractionDiagram(t *testing.T) {
	out := DrawInteractionDiagram(sampleEnvelope())

	assert.Contains(t, out, "HE 300 B")
	assert.Contains(t, out, "A = (0.0 kNm, 7118.4 kN)")
	assert.Contains(t, out, "N_Ed 2200.0 kN")
	for _, label := range []string{"A", "B", "C", "D"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "*")
}

func TestDrawInteractionDiagramEmpty(t *testing.T) {
	assert.Contains(t, DrawInteractionDiagram(InteractionDiagramData{}), "empty")
}

func TestDrawBeamDiagrams(t *testing.T) {
	out := DrawBeamDiagrams(BeamDiagramData{
		X:      []float64{0, 1, 2, 3},
		Shear:  []float64{10, 5, -5, -10},
		Moment: []float64{0, 7.5, 7.5, 0},
	})
	assert.Contains(t, out, "Shear force V (kN)")
	assert.Contains(t, out, "Bending moment M (kNm)")
	assert.Contains(t, out, "x from 0.00 m to 3.00 m")

	assert.Contains(t, DrawBeamDiagrams(BeamDiagramData{}), "no diagram data")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"χ·N_pl,Rd = 5839.1 kN", "OK"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, line := range lines {
		assert.Equal(t, width, len([]rune(line)))
	}
}
