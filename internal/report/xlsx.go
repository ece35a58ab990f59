// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/affilscan/pkg/types"
)

const sheetName = "Sheet1"

// writeXLSX writes a single-sheet workbook. is_chinese is stored as a
// boolean cell.
func writeXLSX(path string, records []types.ArticleRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{r.Title, r.FirstAuthor, r.Affiliation, r.DOI, r.IsChinese}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
