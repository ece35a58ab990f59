// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report persists scan records as a table (one header row, one row
// per article) and prints the run summary. The spreadsheet format is the
// default; CSV, JSON, YAML and a SQLite run archive are also supported.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/affilscan/pkg/types"
)

// Columns is the header row, in output order.
var Columns = []string{"title", "first_author", "affiliation", "DOI", "is_chinese"}

// ErrUnknownFormat is returned when no format was given and none can be
// inferred from the output path.
var ErrUnknownFormat = errors.New("cannot infer report format from file extension")

// WriteError reports a failure to persist the report. It is fatal to the run.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing report %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// RunMeta describes the run that produced the records.
type RunMeta struct {
	Window       types.QueryWindow `json:"window" yaml:"window"`
	ChineseCount int               `json:"chinese_count" yaml:"chinese_count"`
	GeneratedAt  time.Time         `json:"generated_at" yaml:"generated_at"`

	// FetchError is the listing failure message when the run degraded.
	FetchError string `json:"fetch_error,omitempty" yaml:"fetch_error,omitempty"`
}

// DefaultOutputPath returns the spreadsheet name used when none is configured.
func DefaultOutputPath(year int) string {
	return fmt.Sprintf("china_authors_articles_with_affiliations_%d.xlsx", year)
}

// InferFormat maps a file extension to a format.
func InferFormat(path string) (types.OutputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return types.FormatXLSX, nil
	case ".csv":
		return types.FormatCSV, nil
	case ".json":
		return types.FormatJSON, nil
	case ".yaml", ".yml":
		return types.FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return types.FormatSQLite, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Write persists records to path. An empty format is inferred from the
// extension. Every failure is returned as a *WriteError.
func Write(path string, format types.OutputFormat, records []types.ArticleRecord, meta RunMeta) error {
	if format == "" {
		f, err := InferFormat(path)
		if err != nil {
			return &WriteError{Path: path, Err: err}
		}
		format = f
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}

	var err error
	switch format {
	case types.FormatXLSX:
		err = writeXLSX(path, records)
	case types.FormatCSV:
		err = writeCSV(path, records)
	case types.FormatJSON:
		err = writeJSON(path, records, meta)
	case types.FormatYAML:
		err = writeYAML(path, records, meta)
	case types.FormatSQLite:
		err = writeSQLite(path, records, meta)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// row returns the record's values in Columns order.
func row(r types.ArticleRecord) []string {
	return []string{r.Title, r.FirstAuthor, r.Affiliation, r.DOI, strconv.FormatBool(r.IsChinese)}
}

// Summary prints the Chinese first-author count and the completion line.
func Summary(w io.Writer, chineseCount, total int, path string) {
	fmt.Fprintf(w, "Articles with a Chinese first author: %d (of %d)\n", chineseCount, total)
	fmt.Fprintf(w, "Saved report to %s\n", path)
}
