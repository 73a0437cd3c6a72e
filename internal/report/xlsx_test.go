package report

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gocivil/internal/beam"
	"github.com/alexiusacademia/gocivil/internal/solar"
)

func TestWriteBeamSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beam.xlsx")
	stations := []beam.Station{{X: 0, Shear: 30, Moment: 0}, {X: 3, Shear: 0, Moment: 45}, {X: 6, Shear: -30, Moment: 0}}
	require.NoError(t, WriteBeamSummary(path, stations, beam.Summarize(stations)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(summarySheet, "C3")
	require.NoError(t, err)
	assert.Equal(t, "45", v)

	rows, err := f.GetRows(diagramSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestWriteSites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.xlsx")
	results := []solar.SiteResult{
		{Site: solar.Sites[0], Sizing: &solar.Sizing{Radiation: 5, TotalDaily: 18, Area: 26.7}},
		{Site: solar.Sites[1], Err: errors.New("timeout")},
	}
	require.NoError(t, WriteSites(path, results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(sitesSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "México DF", name)

	msg, err := f.GetCellValue(sitesSheet, "G3")
	require.NoError(t, err)
	assert.Equal(t, "timeout", msg)
}
