// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the affilscan pipeline:
// the query window sent to the metadata API, the per-article record the
// pipeline emits, and the configuration that drives a scan.
package types

import "time"

// NoAffiliation is the affiliation value recorded when neither the listing
// nor the DOI lookup produced an affiliation string.
const NoAffiliation = "N/A"

// AffiliationSource records where a record's affiliation strings came from.
type AffiliationSource string

const (
	SourceListing AffiliationSource = "listing"
	SourceDOI     AffiliationSource = "doi"
	SourceNone    AffiliationSource = "none"
)

// Evidence records which rule classified an author as Chinese.
type Evidence string

const (
	EvidenceNone        Evidence = ""
	EvidenceAffiliation Evidence = "affiliation"
	EvidenceName        Evidence = "name"
)

// QueryWindow selects the works of one journal published within a date range.
type QueryWindow struct {
	// ISSN identifies the journal (e.g. "1389-9341").
	ISSN string `json:"issn" yaml:"issn"`

	// FromDate and UntilDate bound the publication date, both inclusive.
	FromDate  time.Time `json:"from_date" yaml:"from_date"`
	UntilDate time.Time `json:"until_date" yaml:"until_date"`

	// MaxRows caps the number of works returned by the listing request.
	MaxRows int `json:"max_rows" yaml:"max_rows"`
}

// ArticleRecord is the classification outcome for one article's first author.
// Records are created once and never mutated afterwards.
type ArticleRecord struct {
	Title       string `json:"title" yaml:"title"`
	FirstAuthor string `json:"first_author" yaml:"first_author"`

	// Affiliation is the comma-joined affiliation list, or NoAffiliation.
	Affiliation string `json:"affiliation" yaml:"affiliation"`

	// DOI may be empty; records are emitted regardless.
	DOI       string `json:"doi" yaml:"doi"`
	IsChinese bool   `json:"is_chinese" yaml:"is_chinese"`

	AffiliationSource AffiliationSource `json:"affiliation_source" yaml:"affiliation_source"`
	Evidence          Evidence          `json:"evidence,omitempty" yaml:"evidence,omitempty"`
}
