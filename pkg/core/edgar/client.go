// Package edgar fetches and parses SEC EDGAR filings into the input tuple
// the standardization engine consumes: facts, presentation relations and
// calculation relations per statement role, plus filing metadata.
package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	userAgent         = "xbrl-fundamentals research@example.com"
	submissionsAPIURL = "https://data.sec.gov/submissions/CIK%s.json"
	filingBaseURL     = "https://www.sec.gov/Archives/edgar/data/%s/%s/%s"
	companyTickersURL = "https://www.sec.gov/files/company_tickers.json"

	// SEC fair-access policy caps automated traffic at 10 requests/second.
	requestsPerSecond = 8
)

// Client talks to SEC EDGAR with polite rate limiting and an on-disk
// document cache. Fetched documents never change, so cache entries have no
// expiry and are evicted only by explicit removal.
type Client struct {
	http     *http.Client
	limiter  *rate.Limiter
	cacheDir string
}

// NewClient creates a client caching under .cache/edgar/documents.
func NewClient() *Client {
	return NewClientWithCacheDir(filepath.Join(".cache", "edgar", "documents"))
}

// NewClientWithCacheDir creates a client with a custom cache directory.
func NewClientWithCacheDir(dir string) *Client {
	os.MkdirAll(dir, 0755)
	return &Client{
		http:     &http.Client{Timeout: 60 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		cacheDir: dir,
	}
}

// cachePath maps a URL to its cache file.
func (c *Client) cachePath(url string) string {
	name := strings.NewReplacer("https://", "", "http://", "", "/", "_", "?", "_").Replace(url)
	return filepath.Join(c.cacheDir, name)
}

// fetch returns the document body, from cache when available.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	path := c.cachePath(url)
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	if err := os.WriteFile(path, data, 0644); err == nil {
		return data, nil
	}
	return data, nil
}

// ClearCache removes every cached document.
func (c *Client) ClearCache() error {
	return os.RemoveAll(c.cacheDir)
}

// SubmissionsResponse is the SEC submissions API shape.
type SubmissionsResponse struct {
	CIK     string   `json:"cik"`
	Name    string   `json:"name"`
	Tickers []string `json:"tickers"`
	Filings struct {
		Recent RecentFilings `json:"recent"`
	} `json:"filings"`
}

// RecentFilings holds the column-oriented recent filing arrays.
type RecentFilings struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	ReportDate      []string `json:"reportDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
}

// FilingRef points at one filing on EDGAR.
type FilingRef struct {
	CIK             string
	CompanyName     string
	AccessionNumber string
	Form            string
	FilingDate      time.Time
	ReportDate      time.Time
	PrimaryDocument string
}

// Submissions fetches the filing history for a zero-padded CIK.
func (c *Client) Submissions(ctx context.Context, cik string) (*SubmissionsResponse, error) {
	data, err := c.fetch(ctx, fmt.Sprintf(submissionsAPIURL, padCIK(cik)))
	if err != nil {
		return nil, err
	}
	var sub SubmissionsResponse
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("parse submissions for CIK %s: %w", cik, err)
	}
	return &sub, nil
}

// Filings lists recent filings of the given forms, newest first.
func (c *Client) Filings(ctx context.Context, cik string, forms ...string) ([]FilingRef, error) {
	sub, err := c.Submissions(ctx, cik)
	if err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(forms))
	for _, f := range forms {
		want[f] = true
	}

	recent := sub.Filings.Recent
	var refs []FilingRef
	for i := range recent.AccessionNumber {
		if len(forms) > 0 && !want[recent.Form[i]] {
			continue
		}
		filed, _ := time.Parse("2006-01-02", recent.FilingDate[i])
		reported, _ := time.Parse("2006-01-02", recent.ReportDate[i])
		refs = append(refs, FilingRef{
			CIK:             padCIK(cik),
			CompanyName:     sub.Name,
			AccessionNumber: recent.AccessionNumber[i],
			Form:            recent.Form[i],
			FilingDate:      filed,
			ReportDate:      reported,
			PrimaryDocument: recent.PrimaryDocument[i],
		})
	}
	return refs, nil
}

// tickerEntry matches one record of the company_tickers.json index.
type tickerEntry struct {
	CIK    int    `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

// ResolveTicker maps a ticker symbol onto its zero-padded CIK.
func (c *Client) ResolveTicker(ctx context.Context, ticker string) (string, error) {
	data, err := c.fetch(ctx, companyTickersURL)
	if err != nil {
		return "", err
	}
	var entries map[string]tickerEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return "", fmt.Errorf("parse company tickers: %w", err)
	}
	for _, e := range entries {
		if strings.EqualFold(e.Ticker, ticker) {
			return padCIK(strconv.Itoa(e.CIK)), nil
		}
	}
	return "", fmt.Errorf("ticker %q not found on EDGAR", ticker)
}

// document fetches one file out of a filing's archive directory.
func (c *Client) document(ctx context.Context, ref FilingRef, name string) ([]byte, error) {
	accession := strings.ReplaceAll(ref.AccessionNumber, "-", "")
	cikNum := strings.TrimLeft(ref.CIK, "0")
	return c.fetch(ctx, fmt.Sprintf(filingBaseURL, cikNum, accession, name))
}

// padCIK left-pads a CIK to the 10 digits the submissions API expects.
func padCIK(cik string) string {
	cik = strings.TrimSpace(cik)
	for len(cik) < 10 {
		cik = "0" + cik
	}
	return cik
}
