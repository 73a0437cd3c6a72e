package ec4

// Actions holds characteristic axial loads on the column (kN).
type Actions struct {
	Permanent float64 `yaml:"permanent"` // G_k
	Variable  float64 `yaml:"variable"`  // Q_k
}

// Combination represents an EN 1990 ultimate limit state combination
// for a single leading variable action.
type Combination struct {
	ID          string
	Description string
	Permanent   float64 // γG (including ξ where applicable)
	Variable    float64 // γQ (including ψ0 where applicable)
}

// EN 1990 Section 6.4.3.2 with recommended values (Table A1.2(B)), ψ0 = 0.7
var Combinations = []Combination{
	{
		ID:          "6.10",
		Description: "1.35G + 1.5Q",
		Permanent:   1.35,
		Variable:    1.5,
	},
	{
		ID:          "6.10a",
		Description: "1.35G + 1.5ψ0Q",
		Permanent:   1.35,
		Variable:    1.05,
	},
	{
		ID:          "6.10b",
		Description: "0.85·1.35G + 1.5Q",
		Permanent:   1.1475,
		Variable:    1.5,
	},
}

// Factored returns the design axial load for the combination.
func (c Combination) Factored(a Actions) float64 {
	return c.Permanent*a.Permanent + c.Variable*a.Variable
}

// Loads returns N_Ed and its sustained permanent part for the combination.
func (c Combination) Loads(a Actions) Loads {
	return Loads{
		NEd: c.Factored(a),
		NGd: c.Permanent * a.Permanent,
	}
}

// Governing finds the combination with the largest design axial load.
func Governing(a Actions, combinations []Combination) (Loads, Combination) {
	var governing Combination
	var loads Loads

	for _, combo := range combinations {
		l := combo.Loads(a)
		if l.NEd > loads.NEd {
			loads = l
			governing = combo
		}
	}

	return loads, governing
}
