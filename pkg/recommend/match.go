package recommend

import "sort"

const (
	topN             = 3
	qualityThreshold = 5
)

// CatalogLaptop is the matcher's view of one catalog row. Features holds the
// offline classification (low/medium/high per feature key); an empty map is a
// valid never-classified state and scores as all-low.
type CatalogLaptop struct {
	ID       string            `json:"id"`
	Brand    string            `json:"brand"`
	Model    string            `json:"model_name"`
	Price    string            `json:"price"`
	Features map[string]string `json:"features,omitempty"`
}

// MatchDetail records one feature comparison for presentation.
type MatchDetail struct {
	Satisfied bool   `json:"satisfied"`
	Laptop    string `json:"laptop"`
	Required  string `json:"required"`
}

// ScoredLaptop is a catalog entry ranked against a profile. Score counts the
// features whose classified level meets or exceeds the requested level.
type ScoredLaptop struct {
	CatalogLaptop
	PriceValue int                    `json:"price_value"`
	Score      int                    `json:"score"`
	Details    map[string]MatchDetail `json:"match_details"`
}

// Match filters the catalog by budget, scores the survivors feature by
// feature, ranks them and applies the top-3 quality gate.
//
// An empty return means nothing fit the budget. A non-empty return with all
// scores below the threshold means laptops exist but match poorly; callers
// tell the two apart by inspecting scores.
func Match(profile *Profile, catalog []CatalogLaptop) []ScoredLaptop {
	var inBudget []ScoredLaptop
	for _, laptop := range catalog {
		price, ok := parseAmount(laptop.Price)
		if !ok {
			// Unparsable price excludes the row, it is not an error.
			continue
		}
		if price > profile.Budget {
			continue
		}
		inBudget = append(inBudget, score(profile, laptop, price))
	}
	if len(inBudget) == 0 {
		return nil
	}

	sort.SliceStable(inBudget, func(i, j int) bool {
		if inBudget[i].Score != inBudget[j].Score {
			return inBudget[i].Score > inBudget[j].Score
		}
		if inBudget[i].PriceValue != inBudget[j].PriceValue {
			return inBudget[i].PriceValue < inBudget[j].PriceValue
		}
		return inBudget[i].ID < inBudget[j].ID
	})

	top := inBudget
	if len(top) > topN {
		top = top[:topN]
	}

	var validated []ScoredLaptop
	for _, laptop := range top {
		if laptop.Score >= qualityThreshold {
			validated = append(validated, laptop)
		}
	}
	if len(validated) > 0 {
		return validated
	}
	// Nothing reached the threshold: return the top picks anyway so the
	// caller can present a best-effort list instead of nothing.
	return top
}

func score(profile *Profile, laptop CatalogLaptop, price int) ScoredLaptop {
	scored := ScoredLaptop{
		CatalogLaptop: laptop,
		PriceValue:    price,
		Details:       make(map[string]MatchDetail, len(FeatureKeys)),
	}
	for _, key := range FeatureKeys {
		required := profile.Requirement(key)
		have := levelOrLow(laptop.Features[key])
		satisfied := have >= required
		if satisfied {
			scored.Score++
		}
		scored.Details[key] = MatchDetail{
			Satisfied: satisfied,
			Laptop:    have.String(),
			Required:  required.String(),
		}
	}
	return scored
}
