package beam

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultPointsPerMember matches the sampling density of the diagrams.
const DefaultPointsPerMember = 50

// MemberResult holds the end forces of a member, acting on the member
type MemberResult struct {
	ID     string
	Start  float64 // global X of the start node (m)
	Length float64 // m
	W      float64 // uniform load (kN/m)

	ShearStart  float64 // Fy at the start node (kN)
	MomentStart float64 // Mz at the start node, counter-clockwise positive (kNm)
}

// Shear returns the shear force at local position x (kN).
// Positive shear is the net upward force left of the section.
func (r MemberResult) Shear(x float64) float64 {
	return r.ShearStart + r.W*x
}

// Moment returns the bending moment at local position x (kNm), sagging positive.
func (r MemberResult) Moment(x float64) float64 {
	return -r.MomentStart + r.ShearStart*x + r.W*x*x/2
}

// Result holds the solved beam
type Result struct {
	Members []MemberResult

	// Nodal displacements
	Deflections []float64 // m
	Rotations   []float64 // rad

	// Support reactions (kN, kNm), keyed by node ID
	Reactions       map[string]float64
	ReactionMoments map[string]float64
}

// Analyze assembles and solves the stiffness equations
func (m *Model) Analyze() (*Result, error) {
	if len(m.Members) == 0 {
		return nil, fmt.Errorf("model has no members")
	}
	if err := m.checkSupports(); err != nil {
		return nil, err
	}

	ndof := 2 * len(m.Nodes)
	k := mat.NewSymDense(ndof, nil)
	f := mat.NewVecDense(ndof, nil)

	for _, member := range m.Members {
		ke, fe := m.elementMatrices(member)
		dofs := elementDOFs(member)
		for a := 0; a < 4; a++ {
			f.SetVec(dofs[a], f.AtVec(dofs[a])+fe[a])
			// SetSym writes both triangles, so visit each pair once
			for b := a; b < 4; b++ {
				i, j := dofs[a], dofs[b]
				k.SetSym(i, j, k.At(i, j)+ke.At(a, b))
			}
		}
	}

	free := m.freeDOFs()
	d := mat.NewVecDense(ndof, nil)

	if len(free) > 0 {
		kff := mat.NewDense(len(free), len(free), nil)
		ff := mat.NewVecDense(len(free), nil)
		for a, i := range free {
			ff.SetVec(a, f.AtVec(i))
			for b, j := range free {
				kff.Set(a, b, k.At(i, j))
			}
		}

		var df mat.VecDense
		if err := df.SolveVec(kff, ff); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnstable, err)
		}
		for a, i := range free {
			d.SetVec(i, df.AtVec(a))
		}
	}

	result := &Result{
		Deflections:     make([]float64, len(m.Nodes)),
		Rotations:       make([]float64, len(m.Nodes)),
		Reactions:       make(map[string]float64),
		ReactionMoments: make(map[string]float64),
	}
	for n := range m.Nodes {
		result.Deflections[n] = d.AtVec(2 * n)
		result.Rotations[n] = d.AtVec(2*n + 1)
	}

	// Reactions R = K·d - F at restrained DOFs
	var kd mat.VecDense
	kd.MulVec(k, d)
	for n, node := range m.Nodes {
		if node.RestrainVertical {
			result.Reactions[node.ID] = kd.AtVec(2*n) - f.AtVec(2*n)
		}
		if node.RestrainRotation {
			result.ReactionMoments[node.ID] = kd.AtVec(2*n+1) - f.AtVec(2*n+1)
		}
	}

	// Member end forces f = ke·de - fe
	for _, member := range m.Members {
		ke, fe := m.elementMatrices(member)
		dofs := elementDOFs(member)
		de := mat.NewVecDense(4, nil)
		for a, i := range dofs {
			de.SetVec(a, d.AtVec(i))
		}
		var end mat.VecDense
		end.MulVec(ke, de)

		result.Members = append(result.Members, MemberResult{
			ID:          member.ID,
			Start:       m.Nodes[member.From].X,
			Length:      m.Length(member),
			W:           member.W,
			ShearStart:  end.AtVec(0) - fe[0],
			MomentStart: end.AtVec(1) - fe[1],
		})
	}

	return result, nil
}

// elementMatrices returns the member stiffness matrix and the equivalent
// nodal loads of its uniform load, both in (v_i, θ_i, v_j, θ_j) order.
func (m *Model) elementMatrices(member Member) (*mat.SymDense, [4]float64) {
	l := m.Length(member)
	ei := member.E * member.I
	c := ei / (l * l * l)

	ke := mat.NewSymDense(4, []float64{
		12 * c, 6 * l * c, -12 * c, 6 * l * c,
		6 * l * c, 4 * l * l * c, -6 * l * c, 2 * l * l * c,
		-12 * c, -6 * l * c, 12 * c, -6 * l * c,
		6 * l * c, 2 * l * l * c, -6 * l * c, 4 * l * l * c,
	})

	w := member.W
	fe := [4]float64{w * l / 2, w * l * l / 12, w * l / 2, -w * l * l / 12}

	return ke, fe
}

func elementDOFs(member Member) [4]int {
	return [4]int{2 * member.From, 2*member.From + 1, 2 * member.To, 2*member.To + 1}
}

func (m *Model) freeDOFs() []int {
	var free []int
	for n, node := range m.Nodes {
		if !node.RestrainVertical {
			free = append(free, 2*n)
		}
		if !node.RestrainRotation {
			free = append(free, 2*n+1)
		}
	}
	return free
}

// checkSupports rejects rigid body motion of a continuous beam: it needs two
// vertical supports, or one support that also restrains rotation.
func (m *Model) checkSupports() error {
	var vertical int
	var clamped bool
	for _, node := range m.Nodes {
		if node.RestrainVertical {
			vertical++
			if node.RestrainRotation {
				clamped = true
			}
		}
	}
	if vertical >= 2 || (vertical == 1 && clamped) {
		return nil
	}
	return ErrUnstable
}

// Station is a sample of the internal forces
type Station struct {
	X      float64 // global position (m)
	Shear  float64 // kN
	Moment float64 // kNm
}

// Diagrams samples shear and moment along every member.
// Stations are ordered by X; member ends appear on both sides of a support.
func (r *Result) Diagrams(pointsPerMember int) []Station {
	if pointsPerMember < 2 {
		pointsPerMember = 2
	}

	stations := make([]Station, 0, pointsPerMember*len(r.Members))
	xs := make([]float64, pointsPerMember)
	for _, member := range r.Members {
		floats.Span(xs, 0, member.Length)
		for _, x := range xs {
			stations = append(stations, Station{
				X:      member.Start + x,
				Shear:  member.Shear(x),
				Moment: member.Moment(x),
			})
		}
	}
	return stations
}

// Evaluate returns the exact shear and moment at global position x.
// At an interior node the values of the member to the right are returned.
func (r *Result) Evaluate(x float64) (Station, error) {
	for i, member := range r.Members {
		end := member.Start + member.Length
		last := i == len(r.Members)-1
		if x >= member.Start && (x < end || (last && x <= end)) {
			local := x - member.Start
			return Station{X: x, Shear: member.Shear(local), Moment: member.Moment(local)}, nil
		}
	}
	return Station{}, fmt.Errorf("position %.4g m is outside the beam", x)
}

// At returns the first sampled station at or after x, or false if x lies
// beyond the last station.
func At(stations []Station, x float64) (Station, bool) {
	for _, s := range stations {
		if s.X >= x {
			return s, true
		}
	}
	return Station{}, false
}

// Summary holds the extreme internal forces of a diagram
type Summary struct {
	MinShear  float64
	MaxShear  float64
	MinMoment float64
	MaxMoment float64
}

// Summarize returns the minimum and maximum sampled shear and moment
func Summarize(stations []Station) Summary {
	if len(stations) == 0 {
		return Summary{}
	}

	shear := make([]float64, len(stations))
	moment := make([]float64, len(stations))
	for i, s := range stations {
		shear[i] = s.Shear
		moment[i] = s.Moment
	}

	return Summary{
		MinShear:  floats.Min(shear),
		MaxShear:  floats.Max(shear),
		MinMoment: floats.Min(moment),
		MaxMoment: floats.Max(moment),
	}
}

// MaxAbsMoment returns the largest moment magnitude among the stations
func (s Summary) MaxAbsMoment() float64 {
	return math.Max(math.Abs(s.MinMoment), math.Abs(s.MaxMoment))
}
