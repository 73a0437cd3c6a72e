package ec4

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReductionFactorCurveB(t *testing.T) {
	phi, err := CurveB.Phi(1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.136, phi, 1e-12)

	chi, err := ReductionFactor(1.0, CurveB)
	require.NoError(t, err)
	assert.InDelta(t, 1/(1.136+math.Sqrt(1.136*1.136-1)), chi, 1e-12)
	assert.InDelta(t, 0.5970, chi, 1e-4)
}

func TestReductionFactorInvalidCurve(t *testing.T) {
	_, err := ReductionFactor(1.0, Curve("e"))
	var curveErr *InvalidCurveError
	require.ErrorAs(t, err, &curveErr)
	assert.Equal(t, "e", curveErr.Curve)

	_, err = ParseCurve("e")
	assert.ErrorAs(t, err, &curveErr)
}

func TestParseCurve(t *testing.T) {
	for _, s := range []string{"a", "B", " c ", "d"} {
		c, err := ParseCurve(s)
		require.NoError(t, err, s)
		_, err = c.Parameters()
		assert.NoError(t, err)
	}
}

func TestReductionFactorZeroSlenderness(t *testing.T) {
	for _, curve := range Curves {
		p, err := curve.Parameters()
		require.NoError(t, err)

		phi, err := curve.Phi(0)
		require.NoError(t, err)
		assert.InDelta(t, 0.5*(1-0.2*p.Alpha), phi, 1e-15)

		chi, err := ReductionFactor(0, curve)
		require.NoError(t, err)
		assert.Equal(t, math.Min(1, 1/(phi+phi)), chi)
		assert.LessOrEqual(t, chi, 1.0)
	}
}

func TestReductionFactorMonotonic(t *testing.T) {
	for _, curve := range Curves {
		prev := math.Inf(1)
		for i := 0; i <= 300; i++ {
			lambda := float64(i) * 0.01
			chi, err := ReductionFactor(lambda, curve)
			require.NoError(t, err)
			assert.Greater(t, chi, 0.0)
			assert.LessOrEqual(t, chi, prev, "curve %s at λ=%.2f", curve, lambda)
			prev = chi
		}
	}
}

func TestReductionFactorCurveOrder(t *testing.T) {
	// Larger imperfection factors give lower reduction factors.
	prev := math.Inf(1)
	for _, curve := range Curves {
		chi, err := ReductionFactor(1.2, curve)
		require.NoError(t, err)
		assert.Less(t, chi, prev)
		prev = chi
	}
}

func TestReductionFactorInvalidSlenderness(t *testing.T) {
	for _, lambda := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		_, err := ReductionFactor(lambda, CurveC)
		var inputErr *InvalidInputError
		assert.ErrorAs(t, err, &inputErr)
	}
}

func TestReductionFactorDomainError(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
	}{
		// φ = 0.2 < λ̄ = 1, no real root
		{"negative discriminant", -2},
		// φ = -3, φ + √(φ²−λ̄²) < 0
		{"non-positive result", -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unlimitedReductionFactor(1.0, CurveParameters{Alpha: tt.alpha, Lambda1: 1.0})
			var domainErr *ReductionFactorDomainError
			require.ErrorAs(t, err, &domainErr)
			assert.InDelta(t, 1.0, domainErr.Slenderness, 1e-12)
			assert.Contains(t, err.Error(), "reduction factor undefined")
		})
	}
}

func TestUnlimitedReductionFactorAtZeroSlenderness(t *testing.T) {
	for _, c := range Curves {
		p, err := c.Parameters()
		require.NoError(t, err)

		raw, err := unlimitedReductionFactor(0, p)
		require.NoError(t, err)
		phi := 0.5 * (1 - 0.2*p.Alpha)
		assert.InDelta(t, 1/(phi+phi), raw, 1e-12, "curve %s", c)
		assert.Greater(t, raw, 1.0)

		chi, err := ReductionFactor(0, c)
		require.NoError(t, err)
		assert.Equal(t, 1.0, chi)
	}

	p, _ := CurveC.Parameters()
	raw, err := unlimitedReductionFactor(0, p)
	require.NoError(t, err)
	assert.InDelta(t, 1.1086, raw, 1e-4)
}
