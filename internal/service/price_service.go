package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"laptop-advisor-be/internal/dto"
	"laptop-advisor-be/internal/pkg/logger"
	"laptop-advisor-be/pkg/scraper"

	"github.com/redis/go-redis/v9"
)

const (
	priceCacheKeyPrefix = "price_cache:"
	priceCacheTTL       = 6 * time.Hour
)

type IPriceService interface {
	Lookup(ctx context.Context, req *dto.PriceLookupRequest) (*dto.PriceLookupResponse, error)
}

type priceService struct {
	aggregator *scraper.Aggregator
	redis      *redis.Client
	logger     logger.ILogger
}

func NewPriceService(aggregator *scraper.Aggregator, redisClient *redis.Client, log logger.ILogger) IPriceService {
	return &priceService{
		aggregator: aggregator,
		redis:      redisClient,
		logger:     log,
	}
}

// Lookup serves cached listings when fresh, otherwise fans out to the retail
// sources and caches whatever came back. A missing or unreachable Redis
// degrades to scrape-every-time.
func (s *priceService) Lookup(ctx context.Context, req *dto.PriceLookupRequest) (*dto.PriceLookupResponse, error) {
	cacheKey := priceCacheKeyPrefix + strings.ToLower(strings.TrimSpace(req.LaptopName))

	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return &dto.PriceLookupResponse{
			LaptopName: req.LaptopName,
			Prices:     cached,
			FromCache:  true,
		}, nil
	}

	result := s.aggregator.ScrapeAll(ctx, req.LaptopName)
	for source, err := range result.Errors {
		s.logger.Warn("price", "source scrape failed", map[string]interface{}{
			"laptop_name": req.LaptopName,
			"source":      source,
			"error":       err.Error(),
		})
	}

	s.toCache(ctx, cacheKey, result.Listings)

	return &dto.PriceLookupResponse{
		LaptopName: req.LaptopName,
		Prices:     result.Listings,
		FromCache:  false,
	}, nil
}

func (s *priceService) fromCache(ctx context.Context, key string) (map[string][]scraper.Listing, bool) {
	if s.redis == nil {
		return nil, false
	}
	raw, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("price", "redis get failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}
	var listings map[string][]scraper.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return nil, false
	}
	return listings, true
}

func (s *priceService) toCache(ctx context.Context, key string, listings map[string][]scraper.Listing) {
	if s.redis == nil || len(listings) == 0 {
		return
	}
	raw, err := json.Marshal(listings)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, raw, priceCacheTTL).Err(); err != nil {
		s.logger.Warn("price", "redis set failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
