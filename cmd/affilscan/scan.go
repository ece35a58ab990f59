// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/affilscan/internal/classify"
	"github.com/pdiddy/affilscan/internal/crossref"
	"github.com/pdiddy/affilscan/internal/logger"
	"github.com/pdiddy/affilscan/internal/pipeline"
	"github.com/pdiddy/affilscan/internal/refdata"
	"github.com/pdiddy/affilscan/internal/report"
	"github.com/pdiddy/affilscan/internal/secrets"
	"github.com/pdiddy/affilscan/pkg/types"
)

const (
	defaultISSN      = "1389-9341" // Forest Policy and Economics
	defaultFrom      = "2021-01-01"
	defaultUntil     = "2021-12-31"
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "affilscan/0.1"
	dateFmt          = "2006-01-02"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Fetch, classify, and export a journal's articles for a date window",
	Long: `Scan lists the journal's works published in the window, resolves each
first author's affiliations (falling back to a DOI lookup when the listing
has none), classifies the author, and writes the report.

A failed listing request is not fatal: the scan continues with zero
articles and still writes an empty report. Only a failure to write the
report ends the run with an error.`,
	RunE: runScan,
}

func init() {
	f := scanCmd.Flags()
	f.String("issn", defaultISSN, "journal ISSN")
	f.String("from", defaultFrom, "publication date range start (YYYY-MM-DD)")
	f.String("until", defaultUntil, "publication date range end (YYYY-MM-DD)")
	f.Int("max-rows", types.MaxRowsLimit, "maximum number of works to list (1-1000)")
	f.String("output", "", "report path (default: china_authors_articles_with_affiliations_<year>.xlsx)")
	f.String("format", "", "report format: xlsx, csv, json, yaml, sqlite (default: from extension)")
	f.String("mailto", "", "contact address for the Crossref polite pool")
	f.String("reference", "", "YAML file replacing the built-in surname and institution lists")
	f.Duration("timeout", defaultTimeout, "HTTP request timeout (0 disables)")
	f.String("user-agent", defaultUserAgent, "User-Agent header for API requests")
	f.Float64("rate-limit", 5, "maximum API requests per second (0 disables limiting)")
	f.Bool("print", false, "also print the records as a table")
	f.String("base-url", crossref.BaseURL, "Crossref API base URL")
	_ = f.MarkHidden("base-url")

	for _, key := range []string{
		"issn", "from", "until", "max-rows", "output", "format", "mailto",
		"reference", "timeout", "user-agent", "rate-limit", "print", "base-url",
	} {
		_ = viper.BindPFlag(key, f.Lookup(key))
	}

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	cfg, err := scanConfig(v, loadedSecrets)
	if err != nil {
		return &configError{err: err}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	log := logger.New(v.GetString("log-level"))
	return scan(ctx, cfg, v.GetString("base-url"), v.GetBool("print"), cmd.OutOrStdout(), log)
}

// scanConfig assembles and validates the scan configuration. Explicit
// settings win over the secrets directory.
func scanConfig(v *viper.Viper, sec secrets.Secrets) (types.ScanConfig, error) {
	from, err := parseDate("from", v.GetString("from"))
	if err != nil {
		return types.ScanConfig{}, err
	}
	until, err := parseDate("until", v.GetString("until"))
	if err != nil {
		return types.ScanConfig{}, err
	}

	output := v.GetString("output")
	if output == "" {
		output = report.DefaultOutputPath(from.Year())
	}

	cfg := types.ScanConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   v.GetDuration("timeout"),
			UserAgent: v.GetString("user-agent"),
		},
		Window: types.QueryWindow{
			ISSN:      v.GetString("issn"),
			FromDate:  from,
			UntilDate: until,
			MaxRows:   v.GetInt("max-rows"),
		},
		OutputPath:    output,
		Format:        types.OutputFormat(v.GetString("format")),
		Mailto:        sec.Get(secrets.CrossrefMailto, v.GetString("mailto")),
		ReferenceFile: v.GetString("reference"),
		RateLimit:     v.GetFloat64("rate-limit"),
	}
	if err := cfg.Validate(); err != nil {
		return types.ScanConfig{}, err
	}
	return cfg, nil
}

func parseDate(name, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateFmt, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q: %w", name, s, err)
	}
	return t, nil
}

// loadReference returns the configured reference set, or the built-in one.
func loadReference(path string) (*refdata.ReferenceSet, error) {
	if path == "" {
		return refdata.Default(), nil
	}
	return refdata.Load(path)
}

// scan runs the pipeline and writes the report.
func scan(ctx context.Context, cfg types.ScanConfig, baseURL string, printTable bool, out io.Writer, log *logger.Logger) error {
	rs, err := loadReference(cfg.ReferenceFile)
	if err != nil {
		return &configError{err: err}
	}

	client := crossref.NewClient(
		crossref.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		crossref.WithBaseURL(baseURL),
		crossref.WithUserAgent(cfg.UserAgent),
		crossref.WithMailto(cfg.Mailto),
		crossref.WithRateLimit(cfg.RateLimit),
	)

	res := pipeline.Run(ctx, client, classify.New(rs), cfg.Window, log)
	log.Info("scan finished",
		"listed", res.Listed, "records", len(res.Records), "skipped", res.Skipped,
		"lookups", res.Enriched, "lookup_failures", res.EnrichFailed, "chinese", res.ChineseCount)

	meta := report.RunMeta{
		Window:       cfg.Window,
		ChineseCount: res.ChineseCount,
		GeneratedAt:  time.Now(),
	}
	if res.Degraded() {
		meta.FetchError = res.FetchErr.Error()
		fmt.Fprintf(out, "warning: article listing failed, writing an empty report: %v\n", res.FetchErr)
	}

	if err := report.Write(cfg.OutputPath, cfg.Format, res.Records, meta); err != nil {
		return err
	}

	if printTable {
		report.FormatTable(out, res.Records)
	}
	report.Summary(out, res.ChineseCount, len(res.Records), cfg.OutputPath)
	return res.Interrupted
}
