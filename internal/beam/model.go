package beam

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnstable is returned when the supports cannot restrain the beam.
var ErrUnstable = errors.New("beam is unstable: not enough supports")

// Node is a point on the beam axis
type Node struct {
	ID string
	X  float64 // position along the beam (m)

	// Support conditions
	RestrainVertical bool
	RestrainRotation bool
}

// Member is an Euler-Bernoulli beam element between two nodes
type Member struct {
	ID   string
	From int     // index of start node
	To   int     // index of end node
	E    float64 // Young's modulus (kN/m²)
	I    float64 // second moment of area about the bending axis (m⁴)

	// Uniform load in global Y (kN/m), negative acts downward
	W float64
}

// Model is a planar beam model
type Model struct {
	Nodes   []Node
	Members []Member

	nodeIndex   map[string]int
	memberIndex map[string]int
}

// NewModel creates an empty beam model
func NewModel() *Model {
	return &Model{
		nodeIndex:   make(map[string]int),
		memberIndex: make(map[string]int),
	}
}

// AddNode adds a node at position x
func (m *Model) AddNode(id string, x float64) error {
	if _, ok := m.nodeIndex[id]; ok {
		return fmt.Errorf("duplicate node %q", id)
	}
	m.nodeIndex[id] = len(m.Nodes)
	m.Nodes = append(m.Nodes, Node{ID: id, X: x})
	return nil
}

// DefineSupport sets the support conditions of a node
func (m *Model) DefineSupport(id string, vertical, rotation bool) error {
	i, ok := m.nodeIndex[id]
	if !ok {
		return fmt.Errorf("unknown node %q", id)
	}
	m.Nodes[i].RestrainVertical = vertical
	m.Nodes[i].RestrainRotation = rotation
	return nil
}

// AddMember connects two nodes with a prismatic member
func (m *Model) AddMember(id, from, to string, e, i float64) error {
	if _, ok := m.memberIndex[id]; ok {
		return fmt.Errorf("duplicate member %q", id)
	}
	fi, ok := m.nodeIndex[from]
	if !ok {
		return fmt.Errorf("member %s: unknown node %q", id, from)
	}
	ti, ok := m.nodeIndex[to]
	if !ok {
		return fmt.Errorf("member %s: unknown node %q", id, to)
	}
	if m.Nodes[ti].X <= m.Nodes[fi].X {
		return fmt.Errorf("member %s: end node must lie after start node", id)
	}
	if e <= 0 || i <= 0 {
		return fmt.Errorf("member %s: invalid stiffness E=%.4g, I=%.4g", id, e, i)
	}

	m.memberIndex[id] = len(m.Members)
	m.Members = append(m.Members, Member{ID: id, From: fi, To: ti, E: e, I: i})
	return nil
}

// AddUniformLoad adds a distributed load over the full member length
func (m *Model) AddUniformLoad(member string, w float64) error {
	i, ok := m.memberIndex[member]
	if !ok {
		return fmt.Errorf("unknown member %q", member)
	}
	m.Members[i].W += w
	return nil
}

// Length returns the member length (m)
func (m *Model) Length(member Member) float64 {
	return m.Nodes[member.To].X - m.Nodes[member.From].X
}

// ContinuousBeam builds a beam over consecutive spans with the same uniform
// load and stiffness. The first support is pinned, the others are rollers.
func ContinuousBeam(spans []float64, w, e, i float64) (*Model, error) {
	if len(spans) == 0 {
		return nil, errors.New("at least one span is required")
	}

	m := NewModel()
	var x float64
	if err := m.AddNode("N0", 0); err != nil {
		return nil, err
	}
	for k, span := range spans {
		if span <= 0 {
			return nil, fmt.Errorf("span %d: length must be positive, got %.4g", k+1, span)
		}
		x += span
		if err := m.AddNode(nodeID(k+1), x); err != nil {
			return nil, err
		}
	}

	for k := range m.Nodes {
		if err := m.DefineSupport(nodeID(k), true, false); err != nil {
			return nil, err
		}
	}

	for k := range spans {
		id := "M" + strconv.Itoa(k)
		if err := m.AddMember(id, nodeID(k), nodeID(k+1), e, i); err != nil {
			return nil, err
		}
		if err := m.AddUniformLoad(id, w); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func nodeID(k int) string {
	return "N" + strconv.Itoa(k)
}
