// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/affilscan/internal/refdata"
	"github.com/pdiddy/affilscan/pkg/types"
)

// --- ContainsHanScript ---

func TestContainsHanScript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"latin only", "Smith John", false},
		{"empty", "", false},
		{"han name", "张伟", true},
		{"mixed", "Zhang 伟", true},
		{"first code point", "\u4e00", true},
		{"last code point", "\u9fff", true},
		{"just below range", "\u4dff", false},
		{"just above range", "\ua000", false},
		{"hiragana is not han", "さくら", false},
		{"hangul is not han", "김민수", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsHanScript(tt.in); got != tt.want {
				t.Errorf("ContainsHanScript(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// --- HasPinyinPrefix ---

func TestHasPinyinPrefix(t *testing.T) {
	surnames := []string{"Zhang", "Li", "Lin", "He"}
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"exact surname", "Zhang Wei", true},
		{"no boundary check", "Lindqvist Anna", true},
		{"he prefix false positive", "Hernandez Maria", true},
		{"case sensitive", "zhang wei", false},
		{"anchored at start", "Wei Zhang", false},
		{"empty name", "", false},
		{"leading space", " Zhang Wei", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPinyinPrefix(tt.in, surnames); got != tt.want {
				t.Errorf("HasPinyinPrefix(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHasPinyinPrefixEverySurname(t *testing.T) {
	rs := refdata.Default()
	for _, s := range rs.CommonPinyinSurnames() {
		assert.True(t, HasPinyinPrefix(s+" X", rs.CommonPinyinSurnames()), s)
	}
}

// --- AffiliationMatches ---

func TestAffiliationMatches(t *testing.T) {
	subs := []string{"Beijing Forestry University", "Chinese Academy of Forestry"}
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"exact", "Beijing Forestry University", true},
		{"embedded", "School of Economics, Beijing Forestry University, Beijing 100083, China", true},
		{"case sensitive", "beijing forestry university", false},
		{"whitespace not normalized", "Beijing  Forestry University", false},
		{"unrelated", "MIT", false},
		{"country alone is not enough", "Beijing, China", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AffiliationMatches(tt.in, subs); got != tt.want {
				t.Errorf("AffiliationMatches(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAffiliationMatchesEverySubstring(t *testing.T) {
	c := New(refdata.Default())
	for _, s := range refdata.Default().InstitutionSubstrings() {
		assert.True(t, c.AffiliationIsChinese("Dept. X, "+s+", China"), s)
	}
}

// --- Classifier.Author ---

func TestAuthor(t *testing.T) {
	c := New(refdata.Default())

	tests := []struct {
		name         string
		fullName     string
		affiliations []string
		want         Decision
	}{
		{
			name:         "matching affiliation",
			fullName:     "Smith John",
			affiliations: []string{"Tsinghua University"},
			want:         Decision{IsChinese: true, Evidence: types.EvidenceAffiliation},
		},
		{
			name:         "second affiliation matches",
			fullName:     "Smith John",
			affiliations: []string{"MIT", "Fudan University, Shanghai"},
			want:         Decision{IsChinese: true, Evidence: types.EvidenceAffiliation},
		},
		{
			name:         "affiliation precedes name",
			fullName:     "Zhang Wei",
			affiliations: []string{"Peking University"},
			want:         Decision{IsChinese: true, Evidence: types.EvidenceAffiliation},
		},
		{
			name:     "no affiliation han name",
			fullName: "张 伟",
			want:     Decision{IsChinese: true, Evidence: types.EvidenceName},
		},
		{
			name:         "non-matching affiliation pinyin name falls back",
			fullName:     "Zhang Wei",
			affiliations: []string{"University of Helsinki"},
			want:         Decision{IsChinese: true, Evidence: types.EvidenceName},
		},
		{
			name:         "non-matching affiliation non-chinese name",
			fullName:     "Smith John",
			affiliations: []string{"MIT"},
			want:         Decision{},
		},
		{
			name:     "empty name no affiliation",
			fullName: " ",
			want:     Decision{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Author(tt.fullName, tt.affiliations))
		})
	}
}

func TestAuthorIsIdempotent(t *testing.T) {
	c := New(refdata.Default())
	inputs := []struct {
		name string
		affs []string
	}{
		{"Zhang Wei", nil},
		{"Smith John", []string{"MIT"}},
		{"Müller Jan", []string{"Chinese Academy of Forestry"}},
	}
	for _, in := range inputs {
		first := c.Author(in.name, in.affs)
		second := c.Author(in.name, in.affs)
		assert.Equal(t, first, second, in.name)
	}
}

func TestNewDoesNotAliasReferenceSet(t *testing.T) {
	rs := refdata.New(nil, []string{"Zhang"}, []string{"Tsinghua University"})
	c := New(rs)

	assert.True(t, c.HasChinesePinyinPrefix("Zhang Wei"))
	assert.False(t, c.HasChinesePinyinPrefix("Wang Fang"))
	assert.True(t, c.ContainsHanScript("王芳"))
}
