package ec4

import "fmt"

// InvalidCurveError is returned for a buckling curve symbol outside a, b, c, d.
type InvalidCurveError struct {
	Curve string
}

func (e *InvalidCurveError) Error() string {
	return fmt.Sprintf("invalid buckling curve %q: valid curves are a, b, c, d", e.Curve)
}

// ReductionFactorDomainError reports a buckling curve formula without a
// positive real result, i.e. φ² < λ̄² or φ + √(φ²−λ̄²) ≤ 0.
type ReductionFactorDomainError struct {
	Slenderness float64
	Phi         float64
}

func (e *ReductionFactorDomainError) Error() string {
	return fmt.Sprintf("reduction factor undefined: φ=%.6g, λ̄=%.6g", e.Phi, e.Slenderness)
}

// NegativeConcreteAreaError is returned when the steel areas leave no concrete.
type NegativeConcreteAreaError struct {
	Gross float64 // m²
	Steel float64 // m², profile + reinforcement
}

func (e *NegativeConcreteAreaError) Error() string {
	return fmt.Sprintf("concrete area is not positive: gross %.2f cm² - steel %.2f cm² = %.2f cm²",
		e.Gross*1e4, e.Steel*1e4, (e.Gross-e.Steel)*1e4)
}

// NegativeConcreteInertiaError is returned when the steel inertias exceed the gross inertia.
type NegativeConcreteInertiaError struct {
	Gross float64 // m⁴
	Steel float64 // m⁴, profile + reinforcement
}

func (e *NegativeConcreteInertiaError) Error() string {
	return fmt.Sprintf("concrete inertia is not positive: gross %.2f cm⁴ - steel %.2f cm⁴ = %.2f cm⁴",
		e.Gross*1e8, e.Steel*1e8, (e.Gross-e.Steel)*1e8)
}

// InvalidInputError identifies a quantity outside its physical domain.
// Derived quantities (N_cr, EI_eff, ...) use the same type.
type InvalidInputError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s = %g: %s", e.Quantity, e.Value, e.Reason)
}
