package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	duckduckgoEndpoint = "https://html.duckduckgo.com/html/"
	userAgent          = "Mozilla/5.0 (compatible; offersentry/1.0)"
)

// DuckDuckGo scrapes the DuckDuckGo HTML endpoint. It needs no API key,
// which keeps the research stage usable without credentials.
type DuckDuckGo struct {
	client   *http.Client
	endpoint string
}

// NewDuckDuckGo creates a DuckDuckGo searcher using the given HTTP
// client, or http.DefaultClient when nil.
func NewDuckDuckGo(client *http.Client) *DuckDuckGo {
	if client == nil {
		client = http.DefaultClient
	}
	return &DuckDuckGo{client: client, endpoint: duckduckgoEndpoint}
}

// Search fetches and parses one page of results.
func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	reqURL := d.endpoint + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	var results []Result
	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(results) >= maxResults {
			return false
		}
		link, _ := sel.Find(".result__a").Attr("href")
		body := strings.TrimSpace(sel.Find(".result__snippet").Text())
		if link == "" && body == "" {
			return true
		}
		results = append(results, Result{Link: link, Body: body})
		return true
	})

	return results, nil
}
