package classifier

import (
	"context"
	"fmt"

	"laptop-advisor-be/pkg/llm"
	"laptop-advisor-be/pkg/recommend"
)

// SpecSheet carries the raw vendor specs the classifier grades.
type SpecSheet struct {
	Brand       string
	Model       string
	CPU         string
	ClockSpeed  string
	RAM         string
	Storage     string
	DisplayType string
	DisplaySize string
	GPU         string
	Resolution  string
	Weight      string
	Battery     string
	Description string
}

// Classifier grades each of the nine laptop features into low/medium/high
// using the LLM. Runs out of the request path (batch job or async consumer).
type Classifier struct {
	provider llm.LLMProvider
}

func New(provider llm.LLMProvider) *Classifier {
	return &Classifier{provider: provider}
}

// ClassifyFeatures returns a complete nine-key feature map or an error when
// the model output cannot be parsed into one.
func (c *Classifier) ClassifyFeatures(ctx context.Context, spec SpecSheet) (map[string]string, error) {
	prompt := buildClassificationPrompt(spec)

	response, err := c.provider.Generate(ctx, prompt,
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(500),
	)
	if err != nil {
		return nil, fmt.Errorf("classification completion: %w", err)
	}

	features, ok := recommend.ExtractFeatureMap(response)
	if !ok {
		return nil, fmt.Errorf("classifier output is not a valid nine-key feature map: %.120s", response)
	}
	return features, nil
}

func buildClassificationPrompt(spec SpecSheet) string {
	return fmt.Sprintf(`You are a Laptop Specifications Classifier. Analyze the laptop specifications and classify EACH feature as 'low', 'medium', or 'high'.

LAPTOP SPECS:
Brand: %s
Model: %s
CPU: %s @ %s
RAM: %s
Storage: %s
Display: %s %s (%s)
GPU: %s
Weight: %s
Battery: %s
Description: %s

CLASSIFICATION RULES:
1. GPU Intensity: low = integrated graphics; medium = entry/mid dedicated (GTX 1050-1650, MX series); high = GTX 1660+/RTX/RX series.
2. Processing Speed: low = i3/Ryzen 3/Celeron; medium = i5/Ryzen 5; high = i7/i9/Ryzen 7/Ryzen 9.
3. RAM Capacity: low = 4-8GB; medium = 12-16GB; high = 24GB or more.
4. Storage Capacity: low = under 512GB; medium = 512GB-1TB; high = over 1TB.
5. Storage Type: low = HDD; medium = SATA SSD; high = NVMe/PCIe SSD.
6. Display Quality: low = below Full HD; medium = Full HD IPS/LED; high = 2K/4K/OLED/color-accurate.
7. Display Size: low = under 14 inches; medium = 14-15.6 inches; high = over 15.6 inches.
8. Portability (by weight): low = under 1.5kg; medium = 1.5-2.5kg; high = over 2.5kg.
9. Battery Life: low = under 6 hours; medium = 6-10 hours; high = over 10 hours.

Output ONLY a dictionary with these EXACT 9 keys:
{'gpu intensity': 'value', 'processing speed': 'value', 'ram capacity': 'value', 'storage capacity': 'value', 'storage type': 'value', 'display quality': 'value', 'display size': 'value', 'portability': 'value', 'battery life': 'value'}

Replace 'value' with 'low', 'medium', or 'high' based on the rules above. Output ONLY the dictionary, no explanations.`,
		spec.Brand, spec.Model, spec.CPU, spec.ClockSpeed, spec.RAM, spec.Storage,
		spec.DisplaySize, spec.DisplayType, spec.Resolution, spec.GPU,
		spec.Weight, spec.Battery, spec.Description)
}
