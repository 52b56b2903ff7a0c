package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allLevelProfile(lvl Level, budget int) *Profile {
	p := &Profile{Budget: budget}
	for _, key := range FeatureKeys {
		p.setRequirement(key, lvl)
	}
	return p
}

func allLevelFeatures(lvl Level) map[string]string {
	features := make(map[string]string, len(FeatureKeys))
	for _, key := range FeatureKeys {
		features[key] = lvl.String()
	}
	return features
}

func TestMatchScoresMeetsOrExceeds(t *testing.T) {
	profile := allLevelProfile(LevelMedium, 50000)
	catalog := []CatalogLaptop{
		{ID: "a", Brand: "Asus", Model: "VivoBook", Price: "45,000", Features: allLevelFeatures(LevelMedium)},
		{ID: "b", Brand: "HP", Model: "Pavilion", Price: "40,000", Features: allLevelFeatures(LevelLow)},
		{ID: "c", Brand: "Dell", Model: "XPS", Price: "48,000", Features: allLevelFeatures(LevelHigh)},
	}

	result := Match(profile, catalog)
	require.NotEmpty(t, result)

	scores := map[string]int{}
	for _, r := range result {
		scores[r.ID] = r.Score
	}
	assert.Equal(t, 9, scores["a"], "exact match satisfies every feature")
	assert.Equal(t, 9, scores["c"], "exceeding satisfies every feature")
	_, hasB := scores["b"]
	assert.False(t, hasB, "all-low laptop scores 0 and falls outside top picks")
}

func TestMatchBudgetFilter(t *testing.T) {
	profile := allLevelProfile(LevelLow, 50000)
	catalog := []CatalogLaptop{
		{ID: "over", Brand: "Apple", Model: "MacBook", Price: "60,000", Features: allLevelFeatures(LevelHigh)},
	}

	assert.Empty(t, Match(profile, catalog), "nothing within budget yields an empty result")

	// Exactly at budget is within budget.
	catalog[0].Price = "50,000"
	result := Match(profile, catalog)
	require.Len(t, result, 1)
	assert.Equal(t, 50000, result[0].PriceValue)
}

func TestMatchDropsUnparsablePrices(t *testing.T) {
	profile := allLevelProfile(LevelLow, 100000)
	catalog := []CatalogLaptop{
		{ID: "bad", Brand: "X", Model: "Y", Price: "call for price"},
		{ID: "ok", Brand: "Asus", Model: "Zen", Price: "55,000", Features: allLevelFeatures(LevelLow)},
	}

	result := Match(profile, catalog)
	require.Len(t, result, 1)
	assert.Equal(t, "ok", result[0].ID)
}

func TestMatchQualityThreshold(t *testing.T) {
	profile := allLevelProfile(LevelHigh, 200000)
	profile.Budget = 200000

	mixed := func(highs int) map[string]string {
		features := allLevelFeatures(LevelLow)
		for i := 0; i < highs; i++ {
			features[FeatureKeys[i]] = "high"
		}
		return features
	}

	catalog := []CatalogLaptop{
		{ID: "six", Brand: "A", Model: "A", Price: "100000", Features: mixed(6)},
		{ID: "five", Brand: "B", Model: "B", Price: "100000", Features: mixed(5)},
		{ID: "three", Brand: "C", Model: "C", Price: "100000", Features: mixed(3)},
	}

	result := Match(profile, catalog)
	require.Len(t, result, 2, "only laptops at or above the threshold survive")
	assert.Equal(t, "six", result[0].ID)
	assert.Equal(t, "five", result[1].ID)
}

func TestMatchBestEffortFallback(t *testing.T) {
	// Laptops exist in budget but none reach the threshold: the top picks
	// come back anyway so the caller can present a best-effort list.
	profile := allLevelProfile(LevelHigh, 100000)
	catalog := []CatalogLaptop{
		{ID: "weak1", Brand: "A", Model: "A", Price: "40000", Features: allLevelFeatures(LevelLow)},
		{ID: "weak2", Brand: "B", Model: "B", Price: "50000", Features: allLevelFeatures(LevelLow)},
	}

	result := Match(profile, catalog)
	require.Len(t, result, 2)
	for _, r := range result {
		assert.Less(t, r.Score, 5)
	}
}

func TestMatchTopThreeCap(t *testing.T) {
	profile := allLevelProfile(LevelLow, 100000)
	var catalog []CatalogLaptop
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		catalog = append(catalog, CatalogLaptop{
			ID: id, Brand: "B", Model: id, Price: "50000",
			Features: allLevelFeatures(LevelMedium),
		})
	}

	result := Match(profile, catalog)
	assert.Len(t, result, 3)
}

func TestMatchDeterministicTieBreak(t *testing.T) {
	profile := allLevelProfile(LevelLow, 100000)
	catalog := []CatalogLaptop{
		{ID: "b", Brand: "B", Model: "B", Price: "60000", Features: allLevelFeatures(LevelHigh)},
		{ID: "a", Brand: "A", Model: "A", Price: "60000", Features: allLevelFeatures(LevelHigh)},
		{ID: "cheap", Brand: "C", Model: "C", Price: "30000", Features: allLevelFeatures(LevelHigh)},
	}

	// Same scores: cheaper first, then lexicographic id.
	result := Match(profile, catalog)
	require.Len(t, result, 3)
	assert.Equal(t, "cheap", result[0].ID)
	assert.Equal(t, "a", result[1].ID)
	assert.Equal(t, "b", result[2].ID)
}

func TestMatchEmptyFeatureMapScoresAsAllLow(t *testing.T) {
	profile := allLevelProfile(LevelLow, 100000)
	catalog := []CatalogLaptop{
		{ID: "bare", Brand: "A", Model: "A", Price: "50000"},
	}

	result := Match(profile, catalog)
	require.Len(t, result, 1)
	assert.Equal(t, 9, result[0].Score, "all-low requirement is satisfied by an unclassified laptop")

	profile = allLevelProfile(LevelMedium, 100000)
	result = Match(profile, catalog)
	require.Len(t, result, 1)
	assert.Equal(t, 0, result[0].Score)
}

func TestMatchDetails(t *testing.T) {
	profile := allLevelProfile(LevelMedium, 100000)
	catalog := []CatalogLaptop{
		{ID: "x", Brand: "A", Model: "A", Price: "50000", Features: allLevelFeatures(LevelLow)},
	}

	result := Match(profile, catalog)
	require.Len(t, result, 1)
	require.Len(t, result[0].Details, 9)
	for key, detail := range result[0].Details {
		assert.False(t, detail.Satisfied, "feature %s should not be satisfied", key)
		assert.Equal(t, "low", detail.Laptop)
		assert.Equal(t, "medium", detail.Required)
	}
}
