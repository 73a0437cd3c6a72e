package ec4

import (
	"fmt"
	"math"
)

// Column represents a concrete-encased HE profile column (EN 1994-1-1 Section 6.7)
type Column struct {
	Geometry   Geometry
	Materials  Materials
	Parameters Parameters
}

// NewColumn creates a column with the default design parameters
func NewColumn(g Geometry, m Materials) *Column {
	return &Column{
		Geometry:   g,
		Materials:  m,
		Parameters: DefaultParameters(),
	}
}

// Point is a vertex of the M-N interaction diagram
type Point struct {
	Moment float64 // kNm
	Axial  float64 // kN
}

// DesignResult holds the results of the column design
type DesignResult struct {
	Loads Loads

	// Design strengths (MPa)
	Fyd float64
	Fcd float64
	Fsd float64

	// Section properties
	ConcreteArea    float64 // A_c (cm²)
	ConcreteInertia float64 // I_c (cm⁴)

	// Stiffness
	EffectiveConcreteModulus float64 // E_c,eff (MPa)
	EffectiveStiffness       float64 // (EI)_eff (kNm²)
	CriticalLoad             float64 // N_cr (kN)

	// Axial resistance
	PlasticResistanceChar float64 // N_pl,Rk (kN)
	PlasticResistance     float64 // N_pl,Rd (kN)
	Slenderness           float64 // λ̄
	ReductionFactor       float64 // χ
	BucklingResistance    float64 // χ·N_pl,Rd (kN)
	Utilisation           float64 // N_Ed / (χ·N_pl,Rd)

	// Bending resistance
	NeutralAxisDepth float64 // h_n (mm)
	MaxMoment        float64 // M_max,Rd (kNm)
	PlasticMoment    float64 // M_pl,Rd (kNm)

	// Interaction diagram
	A Point // pure compression
	B Point // plastic neutral axis at +h_n
	C Point // pure bending
	D Point // maximum moment

	// Status
	IsAdequate bool
	Message    string
}

// Vertices returns the interaction diagram in A, B, D, C order.
func (r *DesignResult) Vertices() []Point {
	return []Point{r.A, r.B, r.D, r.C}
}

// Design is Column.Design with the default parameters.
func Design(g Geometry, m Materials, loads Loads) (*DesignResult, error) {
	return NewColumn(g, m).Design(loads)
}

// Design checks the column for the given axial loads and computes the
// interaction diagram vertices.
func (c *Column) Design(loads Loads) (*DesignResult, error) {
	if err := c.validate(loads); err != nil {
		return nil, err
	}

	p := c.Parameters
	m := c.Materials
	result := &DesignResult{Loads: loads}

	// Design strengths
	fyd := m.Fy / p.GammaM
	fcd := p.AlphaCC * m.Fc / p.GammaC
	fsd := m.Fs / p.GammaS
	result.Fyd, result.Fcd, result.Fsd = fyd, fcd, fsd

	// Everything below is in m, MPa and MN
	g := c.Geometry.SI()

	ac, err := g.ConcreteArea()
	if err != nil {
		return nil, err
	}
	ic, err := g.ConcreteInertia()
	if err != nil {
		return nil, err
	}
	result.ConcreteArea = ac / cm2ToM2
	result.ConcreteInertia = ic / cm4ToM4

	// Creep reduces the concrete modulus by the sustained load share
	ecEff := m.Ec * 1e3 / (1 + loads.SustainedRatio()*p.CreepCoefficient)
	if err := requirePositive("E_c,eff", ecEff); err != nil {
		return nil, err
	}
	result.EffectiveConcreteModulus = ecEff

	// (EI)_eff = Ea·Ia + Ke·Ec,eff·Ic + Es·Is
	eiEff := m.Es*1e3*g.ProfileInertia +
		p.ConcreteStiffnessFactor*ecEff*ic +
		p.RebarModulus*1e3*g.RebarInertia
	if err := requirePositive("(EI)_eff", eiEff); err != nil {
		return nil, err
	}
	result.EffectiveStiffness = eiEff * 1e3

	ncr := math.Pi * math.Pi * eiEff / (g.Length * g.Length)
	if err := requirePositive("N_cr", ncr); err != nil {
		return nil, err
	}
	result.CriticalLoad = ncr * 1e3

	// Plastic resistance to compression
	nplRk := m.Fy*g.ProfileArea + fsd*g.RebarArea + m.Fc*ac
	nplRd := fyd*g.ProfileArea + fsd*g.RebarArea + fcd*ac
	if err := requirePositive("N_pl,Rd", nplRd); err != nil {
		return nil, err
	}
	result.PlasticResistanceChar = nplRk * 1e3
	result.PlasticResistance = nplRd * 1e3

	result.Slenderness = math.Sqrt(nplRk / ncr)
	chi, err := ReductionFactor(result.Slenderness, ColumnCurve)
	if err != nil {
		return nil, err
	}
	result.ReductionFactor = chi
	result.BucklingResistance = chi * result.PlasticResistance
	result.Utilisation = loads.NEd / result.BucklingResistance

	// Plastic neutral axis depth from force balance over the web
	tw := p.WebThickness * mmToM
	hn := ac / (2 * (g.Width - tw + 2*tw*(fyd/(p.AlphaCC*fcd))))
	if err := requirePositive("h_n", hn); err != nil {
		return nil, err
	}
	result.NeutralAxisDepth = hn / mmToM

	// Point D
	wpa := p.ProfilePlasticModulus * cm3ToM3
	wps := p.RebarPlasticModulus * cm3ToM3
	wpc := g.Width*g.Height*g.Height/4 - wpa - wps
	if err := requirePositive("W_pl,c", wpc); err != nil {
		return nil, err
	}
	mMax := wpa*fyd + 0.5*wpc*fcd + wps*fsd
	nD := 0.5 * ac * fcd

	// Points B and C
	mPl := mMax - (2*hn*hn*tw/6)*fsd - (2*hn*hn*(g.Width-tw)/6)*fcd
	if err := requirePositive("M_pl,Rd", mPl); err != nil {
		return nil, err
	}
	nB := ac * fcd

	result.MaxMoment = mMax * 1e3
	result.PlasticMoment = mPl * 1e3

	result.A = Point{Moment: 0, Axial: result.PlasticResistance}
	result.B = Point{Moment: result.PlasticMoment, Axial: nB * 1e3}
	result.C = Point{Moment: result.PlasticMoment, Axial: 0}
	result.D = Point{Moment: result.MaxMoment, Axial: nD * 1e3}

	result.IsAdequate = result.Utilisation <= 1
	if result.IsAdequate {
		result.Message = fmt.Sprintf("Design OK - N_Ed = %.1f kN ≤ χ·N_pl,Rd = %.1f kN", loads.NEd, result.BucklingResistance)
	} else {
		result.Message = fmt.Sprintf("Column inadequate - N_Ed = %.1f kN > χ·N_pl,Rd = %.1f kN", loads.NEd, result.BucklingResistance)
	}

	return result, nil
}

func (c *Column) validate(loads Loads) error {
	if err := validateInput("geometry", c.Geometry); err != nil {
		return err
	}
	if err := validateInput("materials", c.Materials); err != nil {
		return err
	}
	if err := validateInput("loads", loads); err != nil {
		return err
	}
	return validateInput("parameters", c.Parameters)
}
