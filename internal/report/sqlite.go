// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/affilscan/pkg/types"
)

const sqliteDateFmt = "2006-01-02"

// writeSQLite appends one run and its articles to an archive database.
// Earlier runs in the same file are kept.
func writeSQLite(path string, records []types.ArticleRecord, meta RunMeta) error {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := createSchema(db); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	runID := uuid.NewString()
	if _, err := tx.Exec(
		`INSERT INTO runs (id, issn, from_date, until_date, max_rows, generated_at, chinese_count, total, fetch_error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		meta.Window.ISSN,
		meta.Window.FromDate.Format(sqliteDateFmt),
		meta.Window.UntilDate.Format(sqliteDateFmt),
		meta.Window.MaxRows,
		meta.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
		meta.ChineseCount,
		len(records),
		meta.FetchError,
	); err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO articles (run_id, position, title, first_author, affiliation, doi, is_chinese, affiliation_source, evidence)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(runID, i, r.Title, r.FirstAuthor, r.Affiliation, r.DOI,
			r.IsChinese, string(r.AffiliationSource), string(r.Evidence)); err != nil {
			return fmt.Errorf("inserting article %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func createSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			issn TEXT NOT NULL,
			from_date TEXT NOT NULL,
			until_date TEXT NOT NULL,
			max_rows INTEGER NOT NULL,
			generated_at TEXT NOT NULL,
			chinese_count INTEGER NOT NULL,
			total INTEGER NOT NULL,
			fetch_error TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS articles (
			run_id TEXT NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			title TEXT,
			first_author TEXT,
			affiliation TEXT,
			doi TEXT,
			is_chinese INTEGER NOT NULL,
			affiliation_source TEXT,
			evidence TEXT,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_doi ON articles(doi)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}
