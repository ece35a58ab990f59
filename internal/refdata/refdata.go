// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package refdata holds the static surname and institution lists used to
// classify authors. The built-in lists are embedded from reference.yaml; a
// replacement file with the same shape can be loaded at startup.
package refdata

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"
)

//go:embed reference.yaml
var defaultYAML []byte

// ErrEmptyReferenceSet is returned when a reference file defines no entries at all.
var ErrEmptyReferenceSet = errors.New("reference set has no surnames and no institution substrings")

// ReferenceSet is the immutable lookup data for one process. Order and
// duplicates carry no meaning.
type ReferenceSet struct {
	surnames              []string
	commonPinyinSurnames  []string
	institutionSubstrings []string
}

// referenceFile is the on-disk representation of a ReferenceSet.
type referenceFile struct {
	Surnames              []string `yaml:"surnames"`
	CommonPinyinSurnames  []string `yaml:"common_pinyin_surnames"`
	InstitutionSubstrings []string `yaml:"institution_substrings"`
}

// New builds a ReferenceSet from caller-owned slices. The slices are copied.
func New(surnames, commonPinyin, institutions []string) *ReferenceSet {
	return &ReferenceSet{
		surnames:              clone(surnames),
		commonPinyinSurnames:  clone(commonPinyin),
		institutionSubstrings: clone(institutions),
	}
}

// Default returns the built-in reference set.
func Default() *ReferenceSet {
	rs, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("refdata: embedded reference.yaml is invalid: %v", err))
	}
	return rs
}

// Load reads a reference set from a YAML file.
func Load(path string) (*ReferenceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference file: %w", err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// Parse decodes a reference set from YAML bytes.
func Parse(data []byte) (*ReferenceSet, error) {
	var rf referenceFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing reference data: %w", err)
	}
	if len(rf.Surnames) == 0 && len(rf.CommonPinyinSurnames) == 0 && len(rf.InstitutionSubstrings) == 0 {
		return nil, ErrEmptyReferenceSet
	}
	return New(rf.Surnames, rf.CommonPinyinSurnames, rf.InstitutionSubstrings), nil
}

// Surnames returns the general surname list.
func (r *ReferenceSet) Surnames() []string { return clone(r.surnames) }

// CommonPinyinSurnames returns the subset used for name-prefix matching.
func (r *ReferenceSet) CommonPinyinSurnames() []string { return clone(r.commonPinyinSurnames) }

// InstitutionSubstrings returns the affiliation fragments that indicate a
// Chinese institution.
func (r *ReferenceSet) InstitutionSubstrings() []string { return clone(r.institutionSubstrings) }

// WriteYAML writes the set in the same format Load accepts.
func (r *ReferenceSet) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(referenceFile{
		Surnames:              r.surnames,
		CommonPinyinSurnames:  r.commonPinyinSurnames,
		InstitutionSubstrings: r.institutionSubstrings,
	})
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
