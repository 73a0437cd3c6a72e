package ec4

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "column.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadProject(t *testing.T) {
	path := writeProject(t, `
name: C1
geometry:
  length: 4.0
  width: 300
  height: 300
  profile_area: 149.8
  profile_inertia: 19340
  rebar_area: 12.57
  rebar_inertia: 1257
materials:
  fy: 355
  fc: 30
loads:
  ned: 2200
  ngd: 1400
`)

	p, err := LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, "C1", p.Name)
	assert.Equal(t, he300Geometry(), p.Geometry)
	assert.Equal(t, NewMaterials(355, 30), p.Materials)

	loads, combo := p.DesignLoads()
	assert.Nil(t, combo)
	assert.Equal(t, Loads{NEd: 2200, NGd: 1400}, loads)
}

func TestLoadProjectActions(t *testing.T) {
	path := writeProject(t, `
geometry: {length: 4, width: 300, height: 300, profile_area: 149.8, profile_inertia: 19340}
materials: {fy: 355, fc: 30, ec: 33}
actions: {permanent: 1000, variable: 500}
`)

	p, err := LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, 33.0, p.Materials.Ec)

	loads, combo := p.DesignLoads()
	require.NotNil(t, combo)
	assert.Equal(t, "6.10", combo.ID)
	assert.InDelta(t, 2100, loads.NEd, 1e-9)
}

func TestLoadProjectWithoutLoads(t *testing.T) {
	path := writeProject(t, `
geometry: {length: 4, width: 300, height: 300, profile_area: 149.8, profile_inertia: 19340}
materials: {fy: 355, fc: 30}
`)

	_, err := LoadProject(path)
	assert.Error(t, err)
}
