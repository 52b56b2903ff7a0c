package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"laptop-advisor-be/internal/model"
	"laptop-advisor-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// catalogRow mirrors the JSON export of the laptop dataset.
type catalogRow struct {
	Brand              string            `json:"brand"`
	ModelName          string            `json:"model_name"`
	Core               string            `json:"core"`
	CpuManufacturer    string            `json:"cpu_manufacturer"`
	ClockSpeed         string            `json:"clock_speed"`
	RamSize            string            `json:"ram_size"`
	StorageType        string            `json:"storage_type"`
	DisplayType        string            `json:"display_type"`
	DisplaySize        string            `json:"display_size"`
	GraphicsProcessor  string            `json:"graphics_processor"`
	ScreenResolution   string            `json:"screen_resolution"`
	OS                 string            `json:"os"`
	LaptopWeight       string            `json:"laptop_weight"`
	SpecialFeatures    string            `json:"special_features"`
	Warranty           string            `json:"warranty"`
	AverageBatteryLife string            `json:"average_battery_life"`
	Price              string            `json:"price"`
	Description        string            `json:"description"`
	Features           map[string]string `json:"features"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	catalogPath := os.Getenv("CATALOG_FILE")
	if catalogPath == "" {
		catalogPath = "laptop_data.json"
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&model.Laptop{}); err != nil {
		log.Fatal("Error: Failed to migrate laptops table:", err)
	}

	raw, err := os.ReadFile(catalogPath)
	if err != nil {
		log.Fatalf("Error: Failed to read catalog file %s: %v", catalogPath, err)
	}

	var rows []catalogRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		log.Fatal("Error: Failed to parse catalog file:", err)
	}

	color.Cyan("Seeding %d laptops from %s...", len(rows), catalogPath)

	inserted := 0
	for _, row := range rows {
		var features datatypes.JSONMap
		if len(row.Features) > 0 {
			features = make(datatypes.JSONMap, len(row.Features))
			for k, v := range row.Features {
				features[k] = v
			}
		}

		laptop := model.Laptop{
			Id:                 uuid.New(),
			Brand:              row.Brand,
			ModelName:          row.ModelName,
			Core:               row.Core,
			CpuManufacturer:    row.CpuManufacturer,
			ClockSpeed:         row.ClockSpeed,
			RamSize:            row.RamSize,
			StorageType:        row.StorageType,
			DisplayType:        row.DisplayType,
			DisplaySize:        row.DisplaySize,
			GraphicsProcessor:  row.GraphicsProcessor,
			ScreenResolution:   row.ScreenResolution,
			OS:                 row.OS,
			LaptopWeight:       row.LaptopWeight,
			SpecialFeatures:    row.SpecialFeatures,
			Warranty:           row.Warranty,
			AverageBatteryLife: row.AverageBatteryLife,
			Price:              row.Price,
			Description:        row.Description,
			Features:           features,
			CreatedAt:          time.Now(),
		}

		if err := db.Create(&laptop).Error; err != nil {
			color.Red("  ✗ %s %s: %v", row.Brand, row.ModelName, err)
			continue
		}
		color.Green("  ✓ %s %s (%s INR)", row.Brand, row.ModelName, row.Price)
		inserted++
	}

	color.Cyan("Done. Inserted %d/%d laptops.", inserted, len(rows))
}
