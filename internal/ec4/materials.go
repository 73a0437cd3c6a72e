package ec4

// EN 1994-1-1 material and section constants

const (
	// Partial factors (EN 1994-1-1 Section 2.4.1.2)
	GammaM = 1.0  // structural steel
	GammaC = 1.5  // concrete
	GammaS = 1.15 // reinforcing steel

	AlphaCC = 0.85 // long-term and stress-block coefficient on f_cd

	CreepCoefficient        = 2.5   // φt
	ConcreteStiffnessFactor = 0.6   // K_e (Section 6.7.3.3)
	RebarModulus            = 200.0 // GPa

	// HE 300 B defaults used when no profile data is given
	WebThickness          = 10.0   // mm
	ProfilePlasticModulus = 1283.0 // cm³
	RebarPlasticModulus   = 40.0   // cm³

	DefaultRebarStrength   = 500.0 // MPa
	DefaultConcreteModulus = 34.0  // GPa
	DefaultSteelModulus    = 200.0 // GPa
)

// ColumnCurve is the buckling curve used for HE profiles encased in concrete
// (EN 1994-1-1 Table 6.5, minor axis).
const ColumnCurve = CurveC

// Materials holds nominal strengths (MPa) and moduli (GPa).
type Materials struct {
	Fy float64 `yaml:"fy" mapstructure:"fy" validate:"finite,gt=0"` // structural steel yield strength
	Fc float64 `yaml:"fc" mapstructure:"fc" validate:"finite,gt=0"` // concrete cylinder strength
	Fs float64 `yaml:"fs" mapstructure:"fs" validate:"finite,gt=0"` // reinforcement yield strength
	Ec float64 `yaml:"ec" mapstructure:"ec" validate:"finite,gt=0"` // concrete secant modulus
	Es float64 `yaml:"es" mapstructure:"es" validate:"finite,gt=0"` // structural steel modulus
}

// NewMaterials fills fs, Ec and Es with their defaults.
func NewMaterials(fy, fc float64) Materials {
	return Materials{
		Fy: fy,
		Fc: fc,
		Fs: DefaultRebarStrength,
		Ec: DefaultConcreteModulus,
		Es: DefaultSteelModulus,
	}
}

// Loads holds the design axial load and its sustained part (kN).
type Loads struct {
	NEd float64 `yaml:"ned" mapstructure:"ned" validate:"finite,gt=0"`               // total design axial load
	NGd float64 `yaml:"ngd" mapstructure:"ngd" validate:"finite,gte=0,ltefield=NEd"` // permanent (dead) part
}

// SustainedRatio returns N_G,Ed / N_Ed.
func (l Loads) SustainedRatio() float64 {
	return l.NGd / l.NEd
}

// Parameters collects the factors and section constants of the design
// procedure. Zero values are not replaced; start from DefaultParameters.
type Parameters struct {
	GammaM float64 `mapstructure:"gamma_m" validate:"finite,gt=0"`
	GammaC float64 `mapstructure:"gamma_c" validate:"finite,gt=0"`
	GammaS float64 `mapstructure:"gamma_s" validate:"finite,gt=0"`

	AlphaCC                 float64 `mapstructure:"alpha_cc" validate:"finite,gt=0,lte=1"`
	CreepCoefficient        float64 `mapstructure:"creep_coefficient" validate:"finite,gte=0"`
	ConcreteStiffnessFactor float64 `mapstructure:"concrete_stiffness_factor" validate:"finite,gt=0,lte=1"`
	RebarModulus            float64 `mapstructure:"rebar_modulus" validate:"finite,gt=0"` // GPa

	WebThickness          float64 `mapstructure:"web_thickness" validate:"finite,gt=0"`           // mm
	ProfilePlasticModulus float64 `mapstructure:"profile_plastic_modulus" validate:"finite,gt=0"` // cm³
	RebarPlasticModulus   float64 `mapstructure:"rebar_plastic_modulus" validate:"finite,gte=0"`  // cm³
}

// DefaultParameters returns the EN 1994-1-1 factors with HE 300 B section constants.
func DefaultParameters() Parameters {
	return Parameters{
		GammaM:                  GammaM,
		GammaC:                  GammaC,
		GammaS:                  GammaS,
		AlphaCC:                 AlphaCC,
		CreepCoefficient:        CreepCoefficient,
		ConcreteStiffnessFactor: ConcreteStiffnessFactor,
		RebarModulus:            RebarModulus,
		WebThickness:            WebThickness,
		ProfilePlasticModulus:   ProfilePlasticModulus,
		RebarPlasticModulus:     RebarPlasticModulus,
	}
}
