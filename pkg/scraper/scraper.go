package scraper

import (
	"context"
	"sync"
)

const maxWorkers = 3

// Listing is a single price hit from one retail source.
type Listing struct {
	Title  string `json:"title"`
	Price  string `json:"price"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// SourceFunc scrapes one retail site for a laptop name.
type SourceFunc func(ctx context.Context, laptopName string) ([]Listing, error)

// Result is the fan-out outcome keyed by source name. A failed source yields
// an empty slice and an entry in Errors; it never fails the whole lookup.
type Result struct {
	LaptopName string               `json:"laptop_name"`
	Listings   map[string][]Listing `json:"listings"`
	Errors     map[string]error     `json:"-"`
}

// Aggregator fans a lookup out to every registered source with a bounded
// worker count.
type Aggregator struct {
	sources map[string]SourceFunc
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		sources: map[string]SourceFunc{
			"flipkart": scrapeFlipkart,
			"croma":    scrapeCroma,
		},
	}
}

// NewAggregatorWithSources is used by tests and alternate deployments.
func NewAggregatorWithSources(sources map[string]SourceFunc) *Aggregator {
	return &Aggregator{sources: sources}
}

// ScrapeAll queries every source concurrently. Each source is isolated: one
// failure produces an empty list for that source only.
func (a *Aggregator) ScrapeAll(ctx context.Context, laptopName string) Result {
	result := Result{
		LaptopName: laptopName,
		Listings:   make(map[string][]Listing, len(a.sources)),
		Errors:     make(map[string]error),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers)

	for name, fn := range a.sources {
		wg.Add(1)
		go func(name string, fn SourceFunc) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			listings, err := fn(ctx, laptopName)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Listings[name] = []Listing{}
				result.Errors[name] = err
				return
			}
			result.Listings[name] = listings
		}(name, fn)
	}

	wg.Wait()
	return result
}
