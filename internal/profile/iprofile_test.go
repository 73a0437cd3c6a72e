package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIProfileClosedForm(t *testing.T) {
	p := IProfile{Height: 200, WebThickness: 5.6, FlangeWidth: 100, FlangeThickness: 8.1}
	require.NoError(t, p.Validate())

	assert.InDelta(t, 2649.28, p.Area(), 1e-9)
	assert.InDelta(t, 17820861.8869, p.InertiaYY(), 1e-3)
}

func TestIPE200(t *testing.T) {
	assert.InDelta(t, 2724.8, IPE200.Area(), 1e-9)
	assert.InDelta(t, 18455902.2667, IPE200.InertiaYY(), 1e-3)
	assert.InDelta(t, 1419344.8107, IPE200.InertiaZZ(), 1e-3)
	assert.InDelta(t, 209659.6, IPE200.PlasticModulusYY(), 1e-6)
}

func TestOutlineMatchesClosedForm(t *testing.T) {
	outline := IPE200.Outline()
	require.Len(t, outline, 12)

	props := outline.Properties()
	assert.InDelta(t, IPE200.Area(), props.Area, 1e-9)
	assert.InDelta(t, 0, props.CentroidX, 1e-9)
	assert.InDelta(t, 0, props.CentroidY, 1e-9)
	assert.InDelta(t, IPE200.InertiaYY(), props.Ix, 1e-3)
	assert.InDelta(t, IPE200.InertiaZZ(), props.Iy, 1e-3)
}

func TestPropertiesIndependentOfOrientation(t *testing.T) {
	outline := IPE200.Outline()
	reversed := make(Polygon, len(outline))
	for i, v := range outline {
		reversed[len(outline)-1-i] = v
	}

	a, b := outline.Properties(), reversed.Properties()
	assert.InDelta(t, a.Area, b.Area, 1e-9)
	assert.InDelta(t, a.Ix, b.Ix, 1e-3)
}

func TestRectangleOffsetCentroid(t *testing.T) {
	rect := Polygon{{0, 0}, {300, 0}, {300, 500}, {0, 500}}
	props := rect.Properties()

	assert.InDelta(t, 150000, props.Area, 1e-9)
	assert.InDelta(t, 150, props.CentroidX, 1e-9)
	assert.InDelta(t, 250, props.CentroidY, 1e-9)
	assert.InDelta(t, 300*500*500*500/12.0, props.Ix, 1e-3)
}

func TestWidthAtY(t *testing.T) {
	outline := IPE200.Outline()

	assert.InDelta(t, 100, outline.WidthAtY(95), 1e-9)
	assert.InDelta(t, 5.6, outline.WidthAtY(0), 1e-9)
	assert.InDelta(t, 100, outline.WidthAtY(-95), 1e-9)
	assert.Equal(t, 0.0, outline.WidthAtY(150))
}

func TestPlasticModulusIntegration(t *testing.T) {
	numeric := IPE200.Outline().PlasticModulus(2000)
	assert.InEpsilon(t, IPE200.PlasticModulusYY(), numeric, 5e-3)
}

func TestValidate(t *testing.T) {
	tests := []IProfile{
		{Height: 0, WebThickness: 5, FlangeWidth: 100, FlangeThickness: 8},
		{Height: 100, WebThickness: 5, FlangeWidth: 100, FlangeThickness: 50},
		{Height: 100, WebThickness: 120, FlangeWidth: 100, FlangeThickness: 8},
	}
	for _, p := range tests {
		var verr *ValidationError
		assert.ErrorAs(t, p.Validate(), &verr)
	}
}
