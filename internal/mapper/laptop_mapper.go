package mapper

import (
	"fmt"
	"time"

	"laptop-advisor-be/internal/entity"
	"laptop-advisor-be/internal/model"
	"laptop-advisor-be/pkg/recommend"

	"gorm.io/datatypes"
)

type LaptopMapper struct{}

func NewLaptopMapper() *LaptopMapper {
	return &LaptopMapper{}
}

func (m *LaptopMapper) ToModel(e *entity.Laptop) *model.Laptop {
	var features datatypes.JSONMap
	if len(e.Features) > 0 {
		features = make(datatypes.JSONMap, len(e.Features))
		for k, v := range e.Features {
			features[k] = v
		}
	}

	out := &model.Laptop{
		Id:                 e.Id,
		Brand:              e.Brand,
		ModelName:          e.ModelName,
		Core:               e.Core,
		CpuManufacturer:    e.CpuManufacturer,
		ClockSpeed:         e.ClockSpeed,
		RamSize:            e.RamSize,
		StorageType:        e.StorageType,
		DisplayType:        e.DisplayType,
		DisplaySize:        e.DisplaySize,
		GraphicsProcessor:  e.GraphicsProcessor,
		ScreenResolution:   e.ScreenResolution,
		OS:                 e.OS,
		LaptopWeight:       e.LaptopWeight,
		SpecialFeatures:    e.SpecialFeatures,
		Warranty:           e.Warranty,
		AverageBatteryLife: e.AverageBatteryLife,
		Price:              e.Price,
		Description:        e.Description,
		Features:           features,
		CreatedAt:          e.CreatedAt,
	}
	if e.UpdatedAt != nil {
		out.UpdatedAt = *e.UpdatedAt
	}
	return out
}

func (m *LaptopMapper) ToEntity(mo *model.Laptop) *entity.Laptop {
	var features map[string]string
	if len(mo.Features) > 0 {
		features = make(map[string]string, len(mo.Features))
		for k, v := range mo.Features {
			features[k] = fmt.Sprint(v)
		}
	}

	updatedAt := mo.UpdatedAt
	var updatedAtPtr *time.Time
	if !updatedAt.IsZero() {
		updatedAtPtr = &updatedAt
	}

	return &entity.Laptop{
		Id:                 mo.Id,
		Brand:              mo.Brand,
		ModelName:          mo.ModelName,
		Core:               mo.Core,
		CpuManufacturer:    mo.CpuManufacturer,
		ClockSpeed:         mo.ClockSpeed,
		RamSize:            mo.RamSize,
		StorageType:        mo.StorageType,
		DisplayType:        mo.DisplayType,
		DisplaySize:        mo.DisplaySize,
		GraphicsProcessor:  mo.GraphicsProcessor,
		ScreenResolution:   mo.ScreenResolution,
		OS:                 mo.OS,
		LaptopWeight:       mo.LaptopWeight,
		SpecialFeatures:    mo.SpecialFeatures,
		Warranty:           mo.Warranty,
		AverageBatteryLife: mo.AverageBatteryLife,
		Price:              mo.Price,
		Description:        mo.Description,
		Features:           features,
		CreatedAt:          mo.CreatedAt,
		UpdatedAt:          updatedAtPtr,
	}
}

func (m *LaptopMapper) ToEntities(models []*model.Laptop) []*entity.Laptop {
	entities := make([]*entity.Laptop, len(models))
	for i, mo := range models {
		entities[i] = m.ToEntity(mo)
	}
	return entities
}

// ToCatalog builds the matcher's view of a laptop. Feature keys are
// normalized the same way the extractor normalizes profile keys so stored
// variants like "GPU_Intensity" still line up.
func (m *LaptopMapper) ToCatalog(e *entity.Laptop) recommend.CatalogLaptop {
	return recommend.CatalogLaptop{
		ID:       e.Id.String(),
		Brand:    e.Brand,
		Model:    e.ModelName,
		Price:    e.Price,
		Features: recommend.NormalizeFeatureKeys(e.Features),
	}
}
