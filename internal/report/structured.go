// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/affilscan/pkg/types"
)

// document is the JSON/YAML report layout.
type document struct {
	Run      RunMeta               `json:"run" yaml:"run"`
	Columns  []string              `json:"columns" yaml:"columns"`
	Articles []types.ArticleRecord `json:"articles" yaml:"articles"`
}

func newDocument(records []types.ArticleRecord, meta RunMeta) document {
	if records == nil {
		records = []types.ArticleRecord{}
	}
	return document{Run: meta, Columns: Columns, Articles: records}
}

func writeJSON(path string, records []types.ArticleRecord, meta RunMeta) error {
	data, err := json.MarshalIndent(newDocument(records, meta), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func writeYAML(path string, records []types.ArticleRecord, meta RunMeta) error {
	doc := newDocument(records, meta)
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
