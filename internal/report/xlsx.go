// Package report writes calculation results to spreadsheets.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gocivil/internal/beam"
	"github.com/alexiusacademia/gocivil/internal/solar"
)

const (
	summarySheet = "Summary"
	diagramSheet = "Diagrams"
	sitesSheet   = "Sites"
	defaultSheet = "Sheet1"
)

// WriteBeamSummary writes the min/max table and the sampled diagrams.
func WriteBeamSummary(path string, stations []beam.Station, summary beam.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, summarySheet); err != nil {
		return err
	}
	rows := [][]any{
		{"Quantity", "Minimum", "Maximum"},
		{"Shear Force (V) [kN]", summary.MinShear, summary.MaxShear},
		{"Moment (M) [kNm]", summary.MinMoment, summary.MaxMoment},
	}
	if err := setRows(f, summarySheet, rows); err != nil {
		return err
	}

	if _, err := f.NewSheet(diagramSheet); err != nil {
		return err
	}
	rows = [][]any{{"x [m]", "V [kN]", "M [kNm]"}}
	for _, s := range stations {
		rows = append(rows, []any{s.X, s.Shear, s.Moment})
	}
	if err := setRows(f, diagramSheet, rows); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// WriteSites writes one row per sized site; failed sites carry the error text.
func WriteSites(path string, results []solar.SiteResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, sitesSheet); err != nil {
		return err
	}

	rows := [][]any{{"Site", "Latitude", "Longitude", "Radiation [kWh/m²/day]", "Demand [kWh/day]", "Area [m²]", "Error"}}
	for _, r := range results {
		row := []any{r.Site.Name, r.Site.Latitude, r.Site.Longitude}
		if r.Err != nil {
			row = append(row, nil, nil, nil, r.Err.Error())
		} else {
			row = append(row, r.Sizing.Radiation, r.Sizing.TotalDaily, r.Sizing.Area, "")
		}
		rows = append(rows, row)
	}
	if err := setRows(f, sitesSheet, rows); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
