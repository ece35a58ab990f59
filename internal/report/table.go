// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/affilscan/pkg/types"
)

// Column display widths for FormatTable.
const (
	titleWidth       = 48
	authorWidth      = 20
	affiliationWidth = 36
)

// FormatTable writes records as a human-readable table to w. Widths are
// measured in terminal cells so CJK text stays aligned.
func FormatTable(w io.Writer, records []types.ArticleRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No articles.")
		return
	}

	fmt.Fprintf(w, "%-4s  %s  %s  %s  %-7s\n", "#",
		cell("Title", titleWidth), cell("First author", authorWidth),
		cell("Affiliation", affiliationWidth), "Chinese")
	fmt.Fprintln(w, strings.Repeat("-", 4+2+titleWidth+2+authorWidth+2+affiliationWidth+2+7))

	for i, r := range records {
		mark := "no"
		if r.IsChinese {
			mark = "yes"
		}
		fmt.Fprintf(w, "%-4d  %s  %s  %s  %-7s\n", i+1,
			cell(r.Title, titleWidth), cell(r.FirstAuthor, authorWidth),
			cell(r.Affiliation, affiliationWidth), mark)
	}
}

// cell truncates s to width display cells and pads it on the right.
func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "..."), width)
}
