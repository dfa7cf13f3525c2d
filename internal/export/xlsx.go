package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tartampluch/go-lifecalc/internal/config"
	"github.com/tartampluch/go-lifecalc/internal/engine"
	"github.com/xuri/excelize/v2"
)

// WriteMilestones renders records as a single-sheet workbook: one header row,
// then one row per record in the given order.
// headers must name the five columns (label, description, date, weekday, days remaining);
// nil selects the English defaults.
func WriteMilestones(w io.Writer, records []engine.MilestoneRecord, headers []string) error {
	if headers == nil {
		headers = config.DefaultMilestoneHeaders
	}
	if len(headers) != config.ColCount {
		return wrap(config.ErrXLSXWrite, fmt.Errorf("expected %d headers, got %d", config.ColCount, len(headers)))
	}

	f, sheet, err := newWorkbook(config.SheetMilestones, headers)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	dateFmt := config.XLSXDateFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return wrap(config.ErrXLSXWrite, err)
	}

	for i, r := range records {
		row := i + 2 // Row 1 holds the headers
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return wrap(config.ErrXLSXWrite, err)
		}
		values := []interface{}{r.Label, r.Description, r.Date, r.WeekdayName, r.DaysRemaining}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return wrap(config.ErrXLSXWrite, err)
		}

		dateCell, _ := excelize.CoordinatesToCellName(config.ColIDDate+1, row)
		if err := f.SetCellStyle(sheet, dateCell, dateCell, dateStyle); err != nil {
			return wrap(config.ErrXLSXWrite, err)
		}
	}

	return flush(f, w)
}

// WriteRank renders a one-row workbook describing in and res.
// The z score is rounded to 3 decimals and the percentile is written as a percentage rounded to 2.
func WriteRank(w io.Writer, in engine.RankInput, res engine.RankResult, headers []string) error {
	if headers == nil {
		headers = config.DefaultRankHeaders
	}
	if len(headers) != len(config.DefaultRankHeaders) {
		return wrap(config.ErrXLSXWrite, fmt.Errorf("expected %d headers, got %d", len(config.DefaultRankHeaders), len(headers)))
	}

	f, sheet, err := newWorkbook(config.SheetRank, headers)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	values := []interface{}{
		in.Score,
		in.Mean,
		in.StdDev,
		in.Population,
		Round(res.ZScore, config.ZScoreDecimals),
		Round(res.PercentileUpper*100, config.PercentileDecimals),
		res.EstimatedRank,
	}
	if err := f.SetSheetRow(sheet, "A2", &values); err != nil {
		return wrap(config.ErrXLSXWrite, err)
	}

	return flush(f, w)
}

// Round rounds v to the given number of decimals. Rounding works on the exact
// binary value, and exact ties go to the even digit (0.125 gives 0.12).
func Round(v float64, decimals int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// newWorkbook creates a workbook whose only sheet is named sheet and carries a bold header row.
func newWorkbook(sheet string, headers []string) (*excelize.File, string, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		_ = f.Close()
		return nil, "", wrap(config.ErrXLSXWrite, err)
	}

	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
		_ = f.Close()
		return nil, "", wrap(config.ErrXLSXWrite, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, "", wrap(config.ErrXLSXWrite, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		_ = f.Close()
		return nil, "", wrap(config.ErrXLSXWrite, err)
	}

	return f, sheet, nil
}

func flush(f *excelize.File, w io.Writer) error {
	if err := f.Write(w); err != nil {
		return wrap(config.ErrXLSXWrite, err)
	}
	return nil
}
