package main

import (
	"context"
	"log"
	"time"

	"laptop-advisor-be/internal/config"
	"laptop-advisor-be/internal/repository/implementation"
	"laptop-advisor-be/pkg/classifier"
	"laptop-advisor-be/pkg/database"
	"laptop-advisor-be/pkg/llm/factory"

	"github.com/fatih/color"
)

// Batch-grades every catalog row that has no feature map yet. Safe to re-run;
// already classified rows are skipped.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Groq,
	)
	if err != nil {
		log.Fatal("Error: Failed to initialize LLM provider:", err)
	}

	cls := classifier.New(llmProvider)
	laptopRepo := implementation.NewLaptopRepository(db)
	ctx := context.Background()

	laptops, err := laptopRepo.FindAll(ctx)
	if err != nil {
		log.Fatal("Error: Failed to load catalog:", err)
	}

	color.Cyan("Classifying features for %d laptops...", len(laptops))

	classified, skipped, failed := 0, 0, 0
	for _, laptop := range laptops {
		if len(laptop.Features) > 0 {
			skipped++
			continue
		}

		features, err := cls.ClassifyFeatures(ctx, classifier.SpecSheet{
			Brand:       laptop.Brand,
			Model:       laptop.ModelName,
			CPU:         laptop.Core,
			ClockSpeed:  laptop.ClockSpeed,
			RAM:         laptop.RamSize,
			Storage:     laptop.StorageType,
			DisplayType: laptop.DisplayType,
			DisplaySize: laptop.DisplaySize,
			GPU:         laptop.GraphicsProcessor,
			Resolution:  laptop.ScreenResolution,
			Weight:      laptop.LaptopWeight,
			Battery:     laptop.AverageBatteryLife,
			Description: laptop.Description,
		})
		if err != nil {
			color.Red("  ✗ %s %s: %v", laptop.Brand, laptop.ModelName, err)
			failed++
			continue
		}

		laptop.Features = features
		if err := laptopRepo.Update(ctx, laptop); err != nil {
			color.Red("  ✗ %s %s: %v", laptop.Brand, laptop.ModelName, err)
			failed++
			continue
		}

		color.Green("  ✓ %s %s", laptop.Brand, laptop.ModelName)
		classified++

		// Stay under the provider's request rate limits.
		time.Sleep(2 * time.Second)
	}

	color.Cyan("Done. Classified: %d, skipped: %d, failed: %d", classified, skipped, failed)
}
