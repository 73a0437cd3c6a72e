package ec4

import (
	"math"
	"strings"
)

// Curve identifies a Eurocode buckling curve.
type Curve string

const (
	CurveA Curve = "a"
	CurveB Curve = "b"
	CurveC Curve = "c"
	CurveD Curve = "d"
)

// CurveParameters holds the imperfection factor and reference slenderness of a curve.
type CurveParameters struct {
	Alpha   float64 // α - imperfection factor
	Lambda1 float64 // λ₁ - reference slenderness
}

// EN 1993-1-1 Table 6.1
var curveTable = map[Curve]CurveParameters{
	CurveA: {Alpha: 0.21, Lambda1: 1.0},
	CurveB: {Alpha: 0.34, Lambda1: 1.0},
	CurveC: {Alpha: 0.49, Lambda1: 1.0},
	CurveD: {Alpha: 0.76, Lambda1: 1.0},
}

// Curves lists the buckling curves in order.
var Curves = []Curve{CurveA, CurveB, CurveC, CurveD}

// ParseCurve converts a symbol such as "c" or "C" into a Curve.
func ParseCurve(s string) (Curve, error) {
	c := Curve(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := curveTable[c]; !ok {
		return "", &InvalidCurveError{Curve: s}
	}
	return c, nil
}

// Parameters returns the curve's α and λ₁.
func (c Curve) Parameters() (CurveParameters, error) {
	p, ok := curveTable[c]
	if !ok {
		return CurveParameters{}, &InvalidCurveError{Curve: string(c)}
	}
	return p, nil
}

// Phi evaluates φ = 0.5·(1 + α·(λ̄ − 0.2) + λ̄²) for a relative slenderness.
func (c Curve) Phi(relative float64) (float64, error) {
	p, err := c.Parameters()
	if err != nil {
		return 0, err
	}
	return 0.5 * (1 + p.Alpha*(relative-0.2) + relative*relative), nil
}

// ReductionFactor returns χ for the given slenderness on a buckling curve.
// The result is limited to 1.0 (EN 1993-1-1 Eq. 6.49); below λ̄ = 0.2 the
// unlimited expression 1/(φ+√(φ²−λ̄²)) exceeds 1 and is not returned.
func ReductionFactor(slenderness float64, curve Curve) (float64, error) {
	p, err := curve.Parameters()
	if err != nil {
		return 0, err
	}
	chi, err := unlimitedReductionFactor(slenderness, p)
	if err != nil {
		return 0, err
	}
	return math.Min(chi, 1.0), nil
}

// unlimitedReductionFactor evaluates 1/(φ+√(φ²−λ̄²)) without the 1.0 limit.
func unlimitedReductionFactor(slenderness float64, p CurveParameters) (float64, error) {
	if math.IsNaN(slenderness) || math.IsInf(slenderness, 0) || slenderness < 0 {
		return 0, &InvalidInputError{Quantity: "slenderness", Value: slenderness, Reason: "must be finite and non-negative"}
	}

	relative := slenderness / p.Lambda1
	phi := 0.5 * (1 + p.Alpha*(relative-0.2) + relative*relative)

	disc := phi*phi - relative*relative
	if disc < 0 {
		return 0, &ReductionFactorDomainError{Slenderness: relative, Phi: phi}
	}

	chi := 1 / (phi + math.Sqrt(disc))
	if math.IsNaN(chi) || math.IsInf(chi, 0) || chi <= 0 {
		return 0, &ReductionFactorDomainError{Slenderness: relative, Phi: phi}
	}
	return chi, nil
}
