package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const maxListingsPerSource = 3

var httpClient = &http.Client{Timeout: 15 * time.Second}

// Flipkart search results embed product title/price pairs in the markup;
// selectors on the rendered page change often, the embedded JSON less so.
var flipkartItemPattern = regexp.MustCompile(`"name"\s*:\s*"([^"]{10,120})"[^}]*?"price"\s*:\s*"?(₹?[\d,]+)`)

func scrapeFlipkart(ctx context.Context, laptopName string) ([]Listing, error) {
	searchURL := "https://www.flipkart.com/search?q=" + url.QueryEscape(laptopName)

	body, err := fetchPage(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("flipkart fetch: %w", err)
	}

	var listings []Listing
	for _, m := range flipkartItemPattern.FindAllStringSubmatch(body, maxListingsPerSource) {
		listings = append(listings, Listing{
			Title:  m[1],
			Price:  m[2],
			URL:    searchURL,
			Source: "flipkart",
		})
	}
	return listings, nil
}

func fetchPage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept-Language", "en-IN,en;q=0.9")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	// Search pages are large; cap the read.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
