package ec4

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Project is a column definition stored in a YAML file.
//
//	name: C1 ground floor
//	geometry:
//	  length: 4.0
//	  width: 300
//	  height: 300
//	  profile_area: 149.8
//	  profile_inertia: 19340
//	  rebar_area: 12.57
//	  rebar_inertia: 1257
//	materials: {fy: 355, fc: 30}
//	loads: {ned: 2200, ngd: 1400}
type Project struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Geometry    Geometry  `yaml:"geometry"`
	Materials   Materials `yaml:"materials"`

	// Either design loads or characteristic actions must be given.
	Loads   *Loads   `yaml:"loads,omitempty"`
	Actions *Actions `yaml:"actions,omitempty"`
}

// LoadProject reads a column project file and fills default material values.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if project.Materials.Fs == 0 {
		project.Materials.Fs = DefaultRebarStrength
	}
	if project.Materials.Ec == 0 {
		project.Materials.Ec = DefaultConcreteModulus
	}
	if project.Materials.Es == 0 {
		project.Materials.Es = DefaultSteelModulus
	}

	if project.Loads == nil && project.Actions == nil {
		return nil, errors.New("project must define loads or actions")
	}

	return &project, nil
}

// DesignLoads returns the explicit loads, or the governing EN 1990
// combination of the characteristic actions.
func (p *Project) DesignLoads() (Loads, *Combination) {
	if p.Loads != nil {
		return *p.Loads, nil
	}
	loads, combo := Governing(*p.Actions, Combinations)
	return loads, &combo
}
