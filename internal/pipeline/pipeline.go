// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one scan: list a journal's works, resolve each first
// author's affiliations, classify them, and fold the outcomes into an ordered
// record list and a count. Execution is strictly sequential.
package pipeline

import (
	"context"
	"errors"
	"strings"

	"github.com/pdiddy/affilscan/internal/classify"
	"github.com/pdiddy/affilscan/internal/crossref"
	"github.com/pdiddy/affilscan/internal/logger"
	"github.com/pdiddy/affilscan/pkg/types"
)

// Fetcher retrieves article metadata. *crossref.Client implements it.
type Fetcher interface {
	ListWorks(ctx context.Context, window types.QueryWindow) ([]crossref.Item, error)
	EnrichAffiliation(ctx context.Context, doi string) ([]string, error)
}

// Result is the outcome of a scan.
type Result struct {
	Records      []types.ArticleRecord
	ChineseCount int

	// Listed is the number of works the listing returned.
	Listed int
	// Skipped counts works without any author.
	Skipped int
	// Enriched counts DOI lookups issued; EnrichFailed those that failed.
	Enriched     int
	EnrichFailed int

	// FetchErr is set when the listing failed and the scan degraded to
	// zero articles.
	FetchErr error
	// Interrupted is set when ctx was cancelled part-way through.
	Interrupted error
}

// Degraded reports whether the listing failed.
func (r Result) Degraded() bool { return r.FetchErr != nil }

// accumulator is the fold state carried across items.
type accumulator struct {
	result Result
}

func (a *accumulator) add(rec types.ArticleRecord) {
	a.result.Records = append(a.result.Records, rec)
	if rec.IsChinese {
		a.result.ChineseCount++
	}
}

// Run executes the scan. It never fails: listing errors are reported in
// Result.FetchErr, or Result.Interrupted when ctx was cancelled, and per-item
// lookup errors only fall back to name heuristics.
func Run(ctx context.Context, f Fetcher, c *classify.Classifier, window types.QueryWindow, log *logger.Logger) Result {
	acc := &accumulator{}

	items, err := f.ListWorks(ctx, window)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil || errors.Is(err, context.Canceled) {
			log.Warn("scan interrupted during listing", "issn", window.ISSN, "error", err)
			acc.result.Interrupted = errors.Join(ctxErr, err)
			return acc.result
		}
		log.Error("listing works failed; continuing with no articles", "issn", window.ISSN, "error", err)
		acc.result.FetchErr = err
		return acc.result
	}
	acc.result.Listed = len(items)
	log.Info("listed works", "issn", window.ISSN, "count", len(items))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			log.Warn("scan interrupted", "processed", i, "error", err)
			acc.result.Interrupted = err
			break
		}

		itemLog := log.With("doi", item.DOI)
		first, ok := item.FirstAuthor()
		if !ok {
			itemLog.Debug("skipping work without authors")
			acc.result.Skipped++
			continue
		}

		affs, source := resolveAffiliations(ctx, f, first, item.DOI, acc, itemLog)
		name := first.DisplayName()
		decision := c.Author(name, affs)

		acc.add(types.ArticleRecord{
			Title:             item.FirstTitle(),
			FirstAuthor:       name,
			Affiliation:       joinAffiliations(affs),
			DOI:               item.DOI,
			IsChinese:         decision.IsChinese,
			AffiliationSource: source,
			Evidence:          decision.Evidence,
		})
		itemLog.Debug("classified", "author", name, "chinese", decision.IsChinese, "evidence", string(decision.Evidence))
	}

	return acc.result
}

// resolveAffiliations returns the listing's affiliations for the first
// author, or, when those are empty and a DOI exists, the result of a DOI
// lookup. The lookup replaces the listing value; it is never merged.
func resolveAffiliations(ctx context.Context, f Fetcher, first crossref.Author, doi string, acc *accumulator, log *logger.Logger) ([]string, types.AffiliationSource) {
	affs := first.AffiliationNames()
	if len(affs) > 0 {
		return affs, types.SourceListing
	}
	if doi == "" {
		return nil, types.SourceNone
	}

	acc.result.Enriched++
	enriched, err := f.EnrichAffiliation(ctx, doi)
	if err != nil {
		acc.result.EnrichFailed++
		log.Warn("affiliation lookup failed; using name heuristics", "error", err)
		return nil, types.SourceNone
	}
	if len(enriched) == 0 {
		return nil, types.SourceNone
	}
	return enriched, types.SourceDOI
}

func joinAffiliations(affs []string) string {
	if len(affs) == 0 {
		return types.NoAffiliation
	}
	return strings.Join(affs, ", ")
}
