// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crossref retrieves journal article metadata from the Crossref REST
// API: one listing request for a journal's works in a publication window,
// and an optional per-DOI lookup when the listing omits the first author's
// affiliation.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/pdiddy/affilscan/internal/httputil"
	"github.com/pdiddy/affilscan/pkg/types"
)

const (
	// BaseURL is the public Crossref REST API.
	BaseURL = "https://api.crossref.org"

	dateFmt = "2006-01-02"
)

// Client is a sequential, rate-limited Crossref client. It never retries.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
	mailto     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithMailto adds a mailto parameter to every request.
func WithMailto(addr string) ClientOption {
	return func(c *Client) {
		c.mailto = addr
	}
}

// WithRateLimit caps the request rate. Zero or negative disables limiting.
func WithRateLimit(perSecond float64) ClientOption {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = httputil.NewLimiter(perSecond)
	}
}

// NewClient creates a Crossref client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		limiter:    httputil.NewLimiter(httputil.DefaultRateLimit),
		baseURL:    BaseURL,
		userAgent:  "affilscan/0.1",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListWorks returns the works of window.ISSN published within the window,
// in the order the API returned them. Callers that want the degraded
// behaviour treat any error as an empty listing.
func (c *Client) ListWorks(ctx context.Context, window types.QueryWindow) ([]Item, error) {
	params := url.Values{
		"filter": {"from-pub-date:" + window.FromDate.Format(dateFmt) + ",until-pub-date:" + window.UntilDate.Format(dateFmt)},
		"rows":   {strconv.Itoa(window.MaxRows)},
	}
	reqURL := c.baseURL + "/journals/" + url.PathEscape(window.ISSN) + "/works?" + c.withMailto(params).Encode()

	var lr listResponse
	if err := c.getJSON(ctx, reqURL, &lr); err != nil {
		return nil, err
	}
	return lr.Message.Items, nil
}

// EnrichAffiliation looks up a single work by DOI and returns its first
// author's affiliation names. Every failure yields an empty slice and a
// non-nil error.
func (c *Client) EnrichAffiliation(ctx context.Context, doi string) ([]string, error) {
	reqURL := c.baseURL + "/works/" + escapeDOI(doi)
	if c.mailto != "" {
		reqURL += "?" + c.withMailto(url.Values{}).Encode()
	}

	var wr workResponse
	if err := c.getJSON(ctx, reqURL, &wr); err != nil {
		return nil, err
	}
	first, ok := wr.Message.FirstAuthor()
	if !ok {
		return nil, &MalformedResponseError{URL: reqURL, Err: ErrNoAuthors}
	}
	return first.AffiliationNames(), nil
}

// escapeDOI path-escapes each slash-separated segment of doi, leaving the
// slashes themselves in place.
func escapeDOI(doi string) string {
	segments := strings.Split(doi, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

func (c *Client) withMailto(params url.Values) url.Values {
	if c.mailto != "" {
		params.Set("mailto", c.mailto)
	}
	return params
}

// getJSON issues one GET and decodes a 200 response into v.
func (c *Client) getJSON(ctx context.Context, reqURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.Do(ctx, c.httpClient, c.limiter, req, c.userAgent)
	if err != nil {
		return &FetchError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{URL: reqURL, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &MalformedResponseError{URL: reqURL, Err: err}
	}
	return nil
}
