// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pdiddy/affilscan/pkg/types"
)

// utf8BOM lets spreadsheet applications detect UTF-8 for CJK titles.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func writeCSV(path string, records []types.ArticleRecord) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := file.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(row(r)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
