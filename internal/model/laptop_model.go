package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Laptop struct {
	Id                 uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Brand              string            `gorm:"type:text;not null;index"`
	ModelName          string            `gorm:"type:text;not null"`
	Core               string            `gorm:"type:text"`
	CpuManufacturer    string            `gorm:"type:text"`
	ClockSpeed         string            `gorm:"type:text"`
	RamSize            string            `gorm:"type:text"`
	StorageType        string            `gorm:"type:text"`
	DisplayType        string            `gorm:"type:text"`
	DisplaySize        string            `gorm:"type:text"`
	GraphicsProcessor  string            `gorm:"type:text"`
	ScreenResolution   string            `gorm:"type:text"`
	OS                 string            `gorm:"type:text"`
	LaptopWeight       string            `gorm:"type:text"`
	SpecialFeatures    string            `gorm:"type:text"`
	Warranty           string            `gorm:"type:text"`
	AverageBatteryLife string            `gorm:"type:text"`
	Price              string            `gorm:"type:text;not null"`
	Description        string            `gorm:"type:text"`
	Features           datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt          time.Time         `gorm:"autoCreateTime"`
	UpdatedAt          time.Time         `gorm:"autoUpdateTime"`
}

func (Laptop) TableName() string {
	return "laptops"
}
