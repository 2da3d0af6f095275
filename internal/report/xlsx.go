// Package report writes analysis results as spreadsheets and PDF documents,
// and reads depth lists from spreadsheets.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorcx/internal/capacity"
	"github.com/alexiusacademia/gorcx/internal/material"
)

// ErrNoDepths is returned when a spreadsheet holds no usable depth.
var ErrNoDepths = errors.New("no neutral axis depths found")

const sweepSheet = "Sweep"

// WriteSweepXLSX writes interaction points as a spreadsheet with one row per
// depth, nominal and reduced.
func WriteSweepXLSX(w io.Writer, title string, units material.Units, points []capacity.Point) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sweepSheet); err != nil {
		return err
	}

	header := []any{
		fmt.Sprintf("c (%s)", units.Length()),
		fmt.Sprintf("P (%s)", units.Force()),
		fmt.Sprintf("Mx (%s)", units.Moment()),
		fmt.Sprintf("My (%s)", units.Moment()),
		"phi",
		fmt.Sprintf("phiP (%s)", units.Force()),
		fmt.Sprintf("phiMx (%s)", units.Moment()),
		fmt.Sprintf("phiMy (%s)", units.Moment()),
	}

	if err := f.SetCellValue(sweepSheet, "A1", title); err != nil {
		return err
	}
	if err := f.SetSheetRow(sweepSheet, "A2", &header); err != nil {
		return err
	}
	for i, p := range points {
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return err
		}
		row := []any{p.Depth, p.P, p.Mx, p.My, p.Phi, p.Phi * p.P, p.Phi * p.Mx, p.Phi * p.My}
		if err := f.SetSheetRow(sweepSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// ReadDepths reads neutral axis depths from the first column of the first
// sheet. Rows whose first cell is not a positive number are skipped, so a
// header row is allowed.
func ReadDepths(r io.Reader) ([]float64, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var depths []float64
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		c, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil || c <= 0 {
			continue
		}
		depths = append(depths, c)
	}
	if len(depths) == 0 {
		return nil, ErrNoDepths
	}
	return depths, nil
}
