package sheet

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/teemow/calexport/internal/extract"
)

// ErrIO indicates the destination workbook could not be created or written,
// e.g. the file is locked by another open spreadsheet instance. Callers can
// detect it with errors.Is.
var ErrIO = errors.New("spreadsheet write failed")

const (
	// SheetName is the single worksheet all rows land on.
	SheetName = "Calendar Events"

	maxColumnWidth = 50

	headerFontColor = "FFFFFF"
	headerFillColor = "366092"
)

// Write exports rows to an .xlsx workbook at path, overwriting any existing
// file. The header always comes from extract.Columns, so a zero-row export
// still produces a valid workbook with the full column set.
func Write(rows []extract.Row, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("%w: rename worksheet: %v", ErrIO, err)
	}

	columns := extract.Columns()
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("%w: write header: %v", ErrIO, err)
	}

	for i, row := range rows {
		values := row.Values()
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("%w: write row %d: %v", ErrIO, i+1, err)
		}
		for col, v := range values {
			if l := len(fmt.Sprint(v)); l > widths[col] {
				widths[col] = l
			}
		}
	}

	if err := styleHeader(f, len(columns)); err != nil {
		return err
	}
	if err := sizeColumns(f, widths); err != nil {
		return err
	}

	lastCell, err := excelize.CoordinatesToCellName(len(columns), len(rows)+1)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := f.AutoFilter(SheetName, "A1:"+lastCell, nil); err != nil {
		return fmt.Errorf("%w: set auto filter: %v", ErrIO, err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrIO, path, err)
	}
	return nil
}

// styleHeader renders the header bold in white on a blue fill.
func styleHeader(f *excelize.File, columns int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFontColor},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
	})
	if err != nil {
		return fmt.Errorf("%w: create header style: %v", ErrIO, err)
	}

	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return fmt.Errorf("%w: style header: %v", ErrIO, err)
	}
	return nil
}

// sizeColumns widens each column to its longest cell, capped so huge
// descriptions don't blow the layout apart.
func sizeColumns(f *excelize.File, widths []int) error {
	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		width := w + 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		if err := f.SetColWidth(SheetName, name, name, float64(width)); err != nil {
			return fmt.Errorf("%w: size column %s: %v", ErrIO, name, err)
		}
	}
	return nil
}
