package entity

import (
	"time"

	"github.com/google/uuid"
)

// Laptop is one catalog row. Price stays a string because upstream feeds
// deliver formatted amounts ("45,990"); the matcher parses it defensively.
// Features is the offline low/medium/high classification and may be empty
// for rows the classifier has not processed yet.
type Laptop struct {
	Id                 uuid.UUID
	Brand              string
	ModelName          string
	Core               string
	CpuManufacturer    string
	ClockSpeed         string
	RamSize            string
	StorageType        string
	DisplayType        string
	DisplaySize        string
	GraphicsProcessor  string
	ScreenResolution   string
	OS                 string
	LaptopWeight       string
	SpecialFeatures    string
	Warranty           string
	AverageBatteryLife string
	Price              string
	Description        string
	Features           map[string]string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
