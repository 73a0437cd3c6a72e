package ec4

// Unit conversion factors to SI.
const (
	mmToM   = 1e-3
	cm2ToM2 = 1e-4
	cm4ToM4 = 1e-8
	cm3ToM3 = 1e-6
)

// Geometry describes a concrete-encased steel column in the mixed units
// used on drawings and in section tables.
type Geometry struct {
	Length         float64 `yaml:"length" mapstructure:"length" validate:"finite,gt=0"`                   // L - buckling length (m)
	Width          float64 `yaml:"width" mapstructure:"width" validate:"finite,gt=0"`                     // b - column width (mm)
	Height         float64 `yaml:"height" mapstructure:"height" validate:"finite,gt=0"`                   // h - column depth (mm)
	ProfileArea    float64 `yaml:"profile_area" mapstructure:"profile_area" validate:"finite,gt=0"`       // A_st - steel profile area (cm²)
	ProfileInertia float64 `yaml:"profile_inertia" mapstructure:"profile_inertia" validate:"finite,gt=0"` // I_st - profile inertia y-y (cm⁴)
	RebarArea      float64 `yaml:"rebar_area" mapstructure:"rebar_area" validate:"finite,gte=0"`          // As_b - reinforcement area (cm²)
	RebarInertia   float64 `yaml:"rebar_inertia" mapstructure:"rebar_inertia" validate:"finite,gte=0"`    // I_by - reinforcement inertia (cm⁴)
}

// SIGeometry is Geometry with every quantity in m, m² or m⁴.
type SIGeometry struct {
	Length         float64 // m
	Width          float64 // m
	Height         float64 // m
	ProfileArea    float64 // m²
	ProfileInertia float64 // m⁴
	RebarArea      float64 // m²
	RebarInertia   float64 // m⁴
}

// SI converts the geometry to meters. Each factor is applied exactly once.
func (g Geometry) SI() SIGeometry {
	return SIGeometry{
		Length:         g.Length,
		Width:          g.Width * mmToM,
		Height:         g.Height * mmToM,
		ProfileArea:    g.ProfileArea * cm2ToM2,
		ProfileInertia: g.ProfileInertia * cm4ToM4,
		RebarArea:      g.RebarArea * cm2ToM2,
		RebarInertia:   g.RebarInertia * cm4ToM4,
	}
}

// Geometry converts back to drawing units.
func (s SIGeometry) Geometry() Geometry {
	return Geometry{
		Length:         s.Length,
		Width:          s.Width / mmToM,
		Height:         s.Height / mmToM,
		ProfileArea:    s.ProfileArea / cm2ToM2,
		ProfileInertia: s.ProfileInertia / cm4ToM4,
		RebarArea:      s.RebarArea / cm2ToM2,
		RebarInertia:   s.RebarInertia / cm4ToM4,
	}
}

// GrossArea returns b·h (m²).
func (s SIGeometry) GrossArea() float64 {
	return s.Width * s.Height
}

// GrossInertia returns b·h³/12 (m⁴).
func (s SIGeometry) GrossInertia() float64 {
	return s.Width * s.Height * s.Height * s.Height / 12
}

// ConcreteArea returns the gross area less profile and reinforcement.
func (s SIGeometry) ConcreteArea() (float64, error) {
	steel := s.ProfileArea + s.RebarArea
	ac := s.GrossArea() - steel
	if !(ac > 0) {
		return 0, &NegativeConcreteAreaError{Gross: s.GrossArea(), Steel: steel}
	}
	return ac, nil
}

// ConcreteInertia returns the gross inertia less profile and reinforcement.
func (s SIGeometry) ConcreteInertia() (float64, error) {
	steel := s.ProfileInertia + s.RebarInertia
	ic := s.GrossInertia() - steel
	if !(ic > 0) {
		return 0, &NegativeConcreteInertiaError{Gross: s.GrossInertia(), Steel: steel}
	}
	return ic, nil
}
