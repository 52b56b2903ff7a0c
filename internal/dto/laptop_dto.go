package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateLaptopRequest struct {
	Brand              string `json:"brand" validate:"required"`
	ModelName          string `json:"model_name" validate:"required"`
	Core               string `json:"core"`
	CpuManufacturer    string `json:"cpu_manufacturer"`
	ClockSpeed         string `json:"clock_speed"`
	RamSize            string `json:"ram_size"`
	StorageType        string `json:"storage_type"`
	DisplayType        string `json:"display_type"`
	DisplaySize        string `json:"display_size"`
	GraphicsProcessor  string `json:"graphics_processor"`
	ScreenResolution   string `json:"screen_resolution"`
	OS                 string `json:"os"`
	LaptopWeight       string `json:"laptop_weight"`
	SpecialFeatures    string `json:"special_features"`
	Warranty           string `json:"warranty"`
	AverageBatteryLife string `json:"average_battery_life"`
	Price              string `json:"price" validate:"required"`
	Description        string `json:"description"`
}

type LaptopResponse struct {
	Id                 uuid.UUID         `json:"id"`
	Brand              string            `json:"brand"`
	ModelName          string            `json:"model_name"`
	Core               string            `json:"core,omitempty"`
	CpuManufacturer    string            `json:"cpu_manufacturer,omitempty"`
	ClockSpeed         string            `json:"clock_speed,omitempty"`
	RamSize            string            `json:"ram_size,omitempty"`
	StorageType        string            `json:"storage_type,omitempty"`
	DisplayType        string            `json:"display_type,omitempty"`
	DisplaySize        string            `json:"display_size,omitempty"`
	GraphicsProcessor  string            `json:"graphics_processor,omitempty"`
	ScreenResolution   string            `json:"screen_resolution,omitempty"`
	OS                 string            `json:"os,omitempty"`
	LaptopWeight       string            `json:"laptop_weight,omitempty"`
	SpecialFeatures    string            `json:"special_features,omitempty"`
	Warranty           string            `json:"warranty,omitempty"`
	AverageBatteryLife string            `json:"average_battery_life,omitempty"`
	Price              string            `json:"price"`
	Description        string            `json:"description,omitempty"`
	Features           map[string]string `json:"features,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

// ClassifyLaptopMessage is the async pipeline payload for one catalog row.
type ClassifyLaptopMessage struct {
	LaptopId uuid.UUID `json:"laptop_id"`
}
