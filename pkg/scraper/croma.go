package scraper

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
)

var cromaItemPattern = regexp.MustCompile(`"name"\s*:\s*"([^"]{10,120})"[^}]*?"value"\s*:\s*([\d.]+)`)

func scrapeCroma(ctx context.Context, laptopName string) ([]Listing, error) {
	searchURL := "https://www.croma.com/searchB?q=" + url.QueryEscape(laptopName) + "%3Arelevance"

	body, err := fetchPage(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("croma fetch: %w", err)
	}

	var listings []Listing
	for _, m := range cromaItemPattern.FindAllStringSubmatch(body, maxListingsPerSource) {
		listings = append(listings, Listing{
			Title:  m[1],
			Price:  "₹" + m[2],
			URL:    searchURL,
			Source: "croma",
		})
	}
	return listings, nil
}
