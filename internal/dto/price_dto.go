package dto

import "laptop-advisor-be/pkg/scraper"

type PriceLookupRequest struct {
	LaptopName string `json:"laptop_name" validate:"required"`
}

type PriceLookupResponse struct {
	LaptopName string                       `json:"laptop_name"`
	Prices     map[string][]scraper.Listing `json:"prices"`
	FromCache  bool                         `json:"from_cache"`
}
