package profile

import "fmt"

// IProfile is a doubly symmetric I-section (IPE, HEA, HEB) without root radii.
// All dimensions in mm.
type IProfile struct {
	Name            string  `json:"name,omitempty"`
	Height          float64 `json:"h"`  // overall depth
	WebThickness    float64 `json:"tw"` // web thickness
	FlangeWidth     float64 `json:"b"`  // flange width
	FlangeThickness float64 `json:"tf"` // flange thickness
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// Polygon is a simple closed outline, vertices counter-clockwise.
type Polygon []Point

// Properties holds calculated geometric properties
type Properties struct {
	Area      float64 // mm²
	CentroidX float64 // mm
	CentroidY float64 // mm
	Ix        float64 // second moment about the horizontal centroidal axis (mm⁴)
	Iy        float64 // second moment about the vertical centroidal axis (mm⁴)

	MinY float64
	MaxY float64
}

// Validate checks if the profile dimensions are consistent
func (p IProfile) Validate() error {
	if p.Height <= 0 || p.WebThickness <= 0 || p.FlangeWidth <= 0 || p.FlangeThickness <= 0 {
		return &ValidationError{"all profile dimensions must be positive"}
	}
	if 2*p.FlangeThickness >= p.Height {
		return &ValidationError{msg: fmt.Sprintf("flanges (2×%.1f mm) leave no web in a %.1f mm profile", p.FlangeThickness, p.Height)}
	}
	if p.WebThickness > p.FlangeWidth {
		return &ValidationError{msg: fmt.Sprintf("web thickness %.1f mm exceeds flange width %.1f mm", p.WebThickness, p.FlangeWidth)}
	}
	return nil
}

// ValidationError represents a profile validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
