package scraper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeAllIsolatesSourceFailures(t *testing.T) {
	agg := NewAggregatorWithSources(map[string]SourceFunc{
		"good": func(ctx context.Context, name string) ([]Listing, error) {
			return []Listing{{Title: name, Price: "45,990", Source: "good"}}, nil
		},
		"bad": func(ctx context.Context, name string) ([]Listing, error) {
			return nil, errors.New("connection refused")
		},
	})

	result := agg.ScrapeAll(context.Background(), "HP Pavilion")

	assert.Equal(t, "HP Pavilion", result.LaptopName)
	require.Len(t, result.Listings["good"], 1)
	assert.Empty(t, result.Listings["bad"], "failed source yields an empty slice, not a missing key")
	assert.Error(t, result.Errors["bad"])
	assert.NotContains(t, result.Errors, "good")
}

func TestScrapeAllRunsEverySource(t *testing.T) {
	var calls int32
	sources := map[string]SourceFunc{}
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		sources[name] = func(ctx context.Context, laptopName string) ([]Listing, error) {
			atomic.AddInt32(&calls, 1)
			return nil, nil
		}
	}

	agg := NewAggregatorWithSources(sources)
	result := agg.ScrapeAll(context.Background(), "Dell XPS")

	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
	assert.Len(t, result.Listings, 5)
	assert.Empty(t, result.Errors)
}

func TestScrapeAllEmptySources(t *testing.T) {
	agg := NewAggregatorWithSources(map[string]SourceFunc{})
	result := agg.ScrapeAll(context.Background(), "anything")

	assert.Empty(t, result.Listings)
	assert.Empty(t, result.Errors)
}

func TestDefaultAggregatorSources(t *testing.T) {
	agg := NewAggregator()
	assert.Contains(t, agg.sources, "flipkart")
	assert.Contains(t, agg.sources, "croma")
}
