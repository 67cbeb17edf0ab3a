package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet pairs a workbook sheet name with the table written to it.
type Sheet struct {
	Name  string
	Table *Table
}

// WriteWorkbook writes the sheets to one xlsx workbook, replacing any
// existing file at path. Column order follows Table.Columns.
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}

	wb := excelize.NewFile()
	defer wb.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// Reuse the default sheet instead of leaving an empty
			// "Sheet1" behind.
			if err := wb.SetSheetName(wb.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := wb.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", sheet.Name, err)
		}
		if err := writeSheet(wb, sheet.Name, sheet.Table); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheet.Name, err)
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(wb *excelize.File, name string, t *Table) error {
	for c, column := range t.Columns {
		if err := setCell(wb, name, c, 0, column); err != nil {
			return err
		}
	}
	for r, row := range t.Rows {
		for c, value := range row {
			if err := setCell(wb, name, c, r+1, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(wb *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return wb.SetCellValue(sheet, cell, value)
}
