package main

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// writeXLSX writes one header row plus one row per record. Missing keys
// leave their cell empty; values keep their native scalar types and
// excelize handles the cell conversion.
func writeXLSX(rows []map[string]interface{}, headers []string, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, name := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("header %s: %w", name, err)
		}
	}

	for i, row := range rows {
		for col, name := range headers {
			value, ok := row[name]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("cell %s: %w", cell, err)
			}
		}
	}

	return f.SaveAs(path)
}
