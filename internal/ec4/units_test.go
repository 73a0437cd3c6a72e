package ec4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func he300Geometry() Geometry {
	return Geometry{
		Length:         4.0,
		Width:          300,
		Height:         300,
		ProfileArea:    149.8,
		ProfileInertia: 19340,
		RebarArea:      12.57,
		RebarInertia:   1257,
	}
}

func TestGeometrySIRoundTrip(t *testing.T) {
	g := he300Geometry()
	back := g.SI().Geometry()

	assert.InDelta(t, g.Length, back.Length, 1e-12)
	assert.InDelta(t, g.Width, back.Width, 1e-9)
	assert.InDelta(t, g.Height, back.Height, 1e-9)
	assert.InDelta(t, g.ProfileArea, back.ProfileArea, 1e-9)
	assert.InDelta(t, g.ProfileInertia, back.ProfileInertia, 1e-7)
	assert.InDelta(t, g.RebarArea, back.RebarArea, 1e-9)
	assert.InDelta(t, g.RebarInertia, back.RebarInertia, 1e-7)
}

func TestGeometrySI(t *testing.T) {
	si := he300Geometry().SI()

	assert.InDelta(t, 0.3, si.Width, 1e-15)
	assert.InDelta(t, 0.09, si.GrossArea(), 1e-15)
	assert.InDelta(t, 0.3*0.3*0.3*0.3/12, si.GrossInertia(), 1e-15)
	assert.InDelta(t, 149.8e-4, si.ProfileArea, 1e-15)
	assert.InDelta(t, 19340e-8, si.ProfileInertia, 1e-15)

	ac, err := si.ConcreteArea()
	require.NoError(t, err)
	assert.InDelta(t, 737.63e-4, ac, 1e-12)

	ic, err := si.ConcreteInertia()
	require.NoError(t, err)
	assert.InDelta(t, 46903e-8, ic, 1e-12)
}

func TestConcreteAreaGuard(t *testing.T) {
	g := he300Geometry()
	g.Width, g.Height = 100, 100 // 100 cm² gross
	g.ProfileArea = 90
	g.RebarArea = 20

	_, err := g.SI().ConcreteArea()
	var areaErr *NegativeConcreteAreaError
	require.ErrorAs(t, err, &areaErr)
	assert.InDelta(t, 0.01, areaErr.Gross, 1e-15)
}

func TestConcreteInertiaGuard(t *testing.T) {
	g := he300Geometry()
	g.ProfileInertia = 70000

	_, err := g.SI().ConcreteInertia()
	var inertiaErr *NegativeConcreteInertiaError
	assert.ErrorAs(t, err, &inertiaErr)
}
