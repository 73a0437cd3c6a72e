package ec4

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func designHE300(t *testing.T) *DesignResult {
	t.Helper()
	result, err := Design(he300Geometry(), NewMaterials(355, 30), Loads{NEd: 2200, NGd: 1400})
	require.NoError(t, err)
	return result
}

func TestDesignHE300(t *testing.T) {
	r := designHE300(t)

	assert.InDelta(t, 355.0, r.Fyd, 1e-12)
	assert.InDelta(t, 17.0, r.Fcd, 1e-12)
	assert.InDelta(t, 500/1.15, r.Fsd, 1e-12)

	assert.InDelta(t, 737.63, r.ConcreteArea, 1e-6)
	assert.InDelta(t, 46903, r.ConcreteInertia, 1e-6)
	assert.InDelta(t, 13122.807, r.EffectiveConcreteModulus, 1e-3)
	assert.InDelta(t, 44886.994, r.EffectiveStiffness, 1e-2)
	assert.InDelta(t, 27688.555, r.CriticalLoad, 1e-2)
	assert.InDelta(t, 8077.312, r.PlasticResistanceChar, 1e-2)
	assert.InDelta(t, 7118.393, r.PlasticResistance, 1e-2)
	assert.InDelta(t, 0.54011, r.Slenderness, 1e-5)
	assert.InDelta(t, 0.82029, r.ReductionFactor, 1e-5)
	assert.InDelta(t, 47.2023, r.NeutralAxisDepth, 1e-3)
	assert.InDelta(t, 518.986, r.MaxMoment, 1e-2)
	assert.InDelta(t, 512.095, r.PlasticMoment, 1e-2)

	assert.InDelta(t, r.ReductionFactor*r.PlasticResistance, r.BucklingResistance, 1e-9)
	assert.True(t, r.IsAdequate)
	assert.Less(t, r.Utilisation, 1.0)
}

func TestColumnDesignUsesParameters(t *testing.T) {
	loads := Loads{NEd: 2200, NGd: 1400}

	c := NewColumn(he300Geometry(), NewMaterials(355, 30))
	assert.Equal(t, DefaultParameters(), c.Parameters)
	base, err := c.Design(loads)
	require.NoError(t, err)
	assert.InDelta(t, designHE300(t).PlasticResistance, base.PlasticResistance, 1e-12)

	c.Parameters.GammaC = 1.6
	r, err := c.Design(loads)
	require.NoError(t, err)
	assert.InDelta(t, 0.85*30/1.6, r.Fcd, 1e-12)
	assert.Less(t, r.PlasticResistance, base.PlasticResistance)
}

func TestDesignInteractionVertices(t *testing.T) {
	r := designHE300(t)

	assert.Equal(t, Point{Moment: 0, Axial: r.PlasticResistance}, r.A)
	assert.InDelta(t, 1253.971, r.B.Axial, 1e-2)
	assert.InDelta(t, 626.986, r.D.Axial, 1e-2)
	assert.Equal(t, 0.0, r.C.Axial)
	assert.Equal(t, r.B.Moment, r.C.Moment)

	vertices := r.Vertices()
	require.Len(t, vertices, 4)
	for i := 1; i < len(vertices); i++ {
		assert.LessOrEqual(t, vertices[i].Axial, vertices[i-1].Axial)
	}
	for _, v := range vertices {
		assert.False(t, math.IsNaN(v.Moment) || math.IsNaN(v.Axial))
		assert.GreaterOrEqual(t, v.Moment, 0.0)
		assert.GreaterOrEqual(t, v.Axial, 0.0)
	}
	assert.Greater(t, r.D.Moment, r.B.Moment)
	assert.Greater(t, r.B.Moment, r.A.Moment)
}

func TestDesignSustainedLoadReducesStiffness(t *testing.T) {
	short, err := Design(he300Geometry(), NewMaterials(355, 30), Loads{NEd: 2200, NGd: 0})
	require.NoError(t, err)
	long, err := Design(he300Geometry(), NewMaterials(355, 30), Loads{NEd: 2200, NGd: 2200})
	require.NoError(t, err)

	assert.InDelta(t, 34000, short.EffectiveConcreteModulus, 1e-9)
	assert.InDelta(t, 34000/3.5, long.EffectiveConcreteModulus, 1e-9)
	assert.Greater(t, short.CriticalLoad, long.CriticalLoad)
	assert.GreaterOrEqual(t, short.ReductionFactor, long.ReductionFactor)
}

func TestDesignLongerColumnIsWeaker(t *testing.T) {
	g := he300Geometry()
	g.Length = 8
	r, err := Design(g, NewMaterials(355, 30), Loads{NEd: 2200, NGd: 1400})
	require.NoError(t, err)

	base := designHE300(t)
	assert.InDelta(t, base.CriticalLoad/4, r.CriticalLoad, 1e-6)
	assert.InDelta(t, 2*base.Slenderness, r.Slenderness, 1e-9)
	assert.Less(t, r.ReductionFactor, base.ReductionFactor)
	assert.Equal(t, base.PlasticResistance, r.PlasticResistance)
}

func TestDesignNegativeConcreteArea(t *testing.T) {
	g := he300Geometry()
	g.ProfileArea = 880
	g.RebarArea = 40 // 920 cm² > 900 cm² gross

	_, err := Design(g, NewMaterials(355, 30), Loads{NEd: 2200, NGd: 1400})
	var areaErr *NegativeConcreteAreaError
	assert.ErrorAs(t, err, &areaErr)
}

func TestDesignNegativeConcreteInertia(t *testing.T) {
	g := he300Geometry()
	g.ProfileInertia = 67000

	_, err := Design(g, NewMaterials(355, 30), Loads{NEd: 2200, NGd: 1400})
	var inertiaErr *NegativeConcreteInertiaError
	assert.ErrorAs(t, err, &inertiaErr)
}

func TestDesignInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Column, *Loads)
		quantity string
	}{
		{"negative length", func(c *Column, l *Loads) { c.Geometry.Length = -4 }, "geometry.length"},
		{"zero width", func(c *Column, l *Loads) { c.Geometry.Width = 0 }, "geometry.width"},
		{"NaN inertia", func(c *Column, l *Loads) { c.Geometry.ProfileInertia = math.NaN() }, "geometry.profile_inertia"},
		{"zero fy", func(c *Column, l *Loads) { c.Materials.Fy = 0 }, "materials.fy"},
		{"negative fc", func(c *Column, l *Loads) { c.Materials.Fc = -30 }, "materials.fc"},
		{"infinite modulus", func(c *Column, l *Loads) { c.Materials.Ec = math.Inf(1) }, "materials.ec"},
		{"zero load", func(c *Column, l *Loads) { l.NEd = 0 }, "loads.ned"},
		{"dead exceeds total", func(c *Column, l *Loads) { l.NGd = 3000 }, "loads.ngd"},
		{"zero gamma", func(c *Column, l *Loads) { c.Parameters.GammaC = 0 }, "parameters.gamma_c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewColumn(he300Geometry(), NewMaterials(355, 30))
			loads := Loads{NEd: 2200, NGd: 1400}
			tt.mutate(c, &loads)

			_, err := c.Design(loads)
			var inputErr *InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.quantity, inputErr.Quantity)
		})
	}
}

func TestDesignOversizedPlasticModulus(t *testing.T) {
	c := NewColumn(he300Geometry(), NewMaterials(355, 30))
	c.Parameters.ProfilePlasticModulus = 7000 // exceeds b·h²/4 = 6750 cm³

	_, err := c.Design(Loads{NEd: 2200, NGd: 1400})
	var inputErr *InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "W_pl,c", inputErr.Quantity)
}

func TestDesignInadequate(t *testing.T) {
	r, err := Design(he300Geometry(), NewMaterials(355, 30), Loads{NEd: 9000, NGd: 5000})
	require.NoError(t, err)
	assert.False(t, r.IsAdequate)
	assert.Greater(t, r.Utilisation, 1.0)
	assert.Contains(t, r.Message, "inadequate")
}
