// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether an author is affiliated with a Chinese
// institution. Affiliation strings are checked first; the name heuristics
// (Han script, pinyin surname prefix) are consulted only when no affiliation
// matched.
package classify

import (
	"strings"

	"github.com/pdiddy/affilscan/internal/refdata"
	"github.com/pdiddy/affilscan/pkg/types"
)

// CJK Unified Ideographs block.
const (
	hanFirst = '\u4e00'
	hanLast  = '\u9fff'
)

// ContainsHanScript reports whether name contains any CJK Unified Ideograph.
func ContainsHanScript(name string) bool {
	for _, r := range name {
		if r >= hanFirst && r <= hanLast {
			return true
		}
	}
	return false
}

// HasPinyinPrefix reports whether name starts with any of surnames.
// Matching is case-sensitive and ignores word boundaries, so "Lindqvist"
// matches "Lin".
func HasPinyinPrefix(name string, surnames []string) bool {
	for _, s := range surnames {
		if strings.HasPrefix(name, s) {
			return true
		}
	}
	return false
}

// AffiliationMatches reports whether text contains any of substrings verbatim.
func AffiliationMatches(text string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// Decision is the outcome of classifying one author.
type Decision struct {
	IsChinese bool
	Evidence  types.Evidence
}

// Classifier applies a fixed reference set. It holds no mutable state and
// is safe to share.
type Classifier struct {
	pinyin       []string
	institutions []string
}

// New returns a Classifier bound to rs.
func New(rs *refdata.ReferenceSet) *Classifier {
	return &Classifier{
		pinyin:       rs.CommonPinyinSurnames(),
		institutions: rs.InstitutionSubstrings(),
	}
}

// ContainsHanScript reports whether name contains Han characters.
func (c *Classifier) ContainsHanScript(name string) bool {
	return ContainsHanScript(name)
}

// HasChinesePinyinPrefix reports whether name starts with a common pinyin surname.
func (c *Classifier) HasChinesePinyinPrefix(name string) bool {
	return HasPinyinPrefix(name, c.pinyin)
}

// AffiliationIsChinese reports whether text names a known Chinese institution.
func (c *Classifier) AffiliationIsChinese(text string) bool {
	return AffiliationMatches(text, c.institutions)
}

// Author classifies an author from their full name and affiliation strings.
// Any matching affiliation wins; otherwise the name heuristics decide.
func (c *Classifier) Author(fullName string, affiliations []string) Decision {
	for _, aff := range affiliations {
		if c.AffiliationIsChinese(aff) {
			return Decision{IsChinese: true, Evidence: types.EvidenceAffiliation}
		}
	}
	if c.ContainsHanScript(fullName) || c.HasChinesePinyinPrefix(fullName) {
		return Decision{IsChinese: true, Evidence: types.EvidenceName}
	}
	return Decision{}
}
