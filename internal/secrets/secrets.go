// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads per-user values that should not live in a committed
// config file from a directory of plain-text files. The filename is the key
// and the trimmed contents are the value.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultDir is the secrets directory relative to the working directory.
const DefaultDir = ".secrets"

// CrossrefMailto holds the contact address sent to Crossref for polite-pool access.
const CrossrefMailto = "crossref-mailto"

// Secrets maps key file names to their values.
type Secrets map[string]string

// Load reads all regular, non-hidden files in dir. A missing directory is
// not an error and yields an empty set. Unreadable files are reported to
// warn and skipped.
func Load(dir string, warn io.Writer) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}
	return s, nil
}

// Get returns the value for key, or fallback when fallback is non-empty or
// the key is absent. An explicit fallback always wins.
func (s Secrets) Get(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return s[key]
}

// Keys returns the loaded key names in sorted order.
func (s Secrets) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
