// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package refdata

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	rs := Default()

	assert.Contains(t, rs.Surnames(), "Zheng")
	assert.Len(t, rs.CommonPinyinSurnames(), 20)
	assert.Contains(t, rs.CommonPinyinSurnames(), "Ding")
	assert.Contains(t, rs.InstitutionSubstrings(), "Beijing Forestry University")
	assert.Contains(t, rs.InstitutionSubstrings(), "Northwest A&F University")
	assert.Contains(t, rs.InstitutionSubstrings(), "Xi'an Jiaotong University")
	assert.Contains(t, rs.InstitutionSubstrings(), "Chinese Academy of Forestry")
}

func TestAccessorsReturnCopies(t *testing.T) {
	rs := New([]string{"Li"}, []string{"Li"}, []string{"Fudan University"})

	s := rs.InstitutionSubstrings()
	s[0] = "MIT"

	assert.Equal(t, []string{"Fudan University"}, rs.InstitutionSubstrings())
}

func TestNewCopiesInput(t *testing.T) {
	in := []string{"Wang"}
	rs := New(nil, in, nil)
	in[0] = "Smith"

	assert.Equal(t, []string{"Wang"}, rs.CommonPinyinSurnames())
	assert.Nil(t, rs.Surnames())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"institutions only", "institution_substrings: [Tsinghua University]\n", false},
		{"surnames only", "common_pinyin_surnames: [Zhang]\n", false},
		{"duplicates tolerated", "surnames: [Li, Li]\n", false},
		{"empty document", "{}\n", true},
		{"not yaml", "surnames: [unterminated\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseEmptyIsSentinel(t *testing.T) {
	_, err := Parse([]byte("surnames: []\n"))
	assert.ErrorIs(t, err, ErrEmptyReferenceSet)
}

func TestLoadRoundTripsWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().WriteYAML(&buf))

	path := filepath.Join(t.TempDir(), "ref.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	rs, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().InstitutionSubstrings(), rs.InstitutionSubstrings())
	assert.Equal(t, Default().Surnames(), rs.Surnames())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
