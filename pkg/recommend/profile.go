package recommend

// Canonical requirement keys. The assistant emits them in various casings
// ("GPU intensity", "gpu_intensity"); key lookups normalize before comparing.
const (
	KeyGPUIntensity    = "gpu intensity"
	KeyProcessingSpeed = "processing speed"
	KeyRAMCapacity     = "ram capacity"
	KeyStorageCapacity = "storage capacity"
	KeyStorageType     = "storage type"
	KeyDisplayQuality  = "display quality"
	KeyDisplaySize     = "display size"
	KeyPortability     = "portability"
	KeyBatteryLife     = "battery life"
	KeyBudget          = "budget"
)

// FeatureKeys lists the nine scoreable features in presentation order.
var FeatureKeys = []string{
	KeyGPUIntensity,
	KeyProcessingSpeed,
	KeyRAMCapacity,
	KeyStorageCapacity,
	KeyStorageType,
	KeyDisplayQuality,
	KeyDisplaySize,
	KeyPortability,
	KeyBatteryLife,
}

// Profile is the fully resolved ten-attribute user requirement. It only
// exists in a valid state: extraction either fills every field or fails.
type Profile struct {
	GPUIntensity    Level `json:"gpu_intensity"`
	ProcessingSpeed Level `json:"processing_speed"`
	RAMCapacity     Level `json:"ram_capacity"`
	StorageCapacity Level `json:"storage_capacity"`
	StorageType     Level `json:"storage_type"`
	DisplayQuality  Level `json:"display_quality"`
	DisplaySize     Level `json:"display_size"`
	Portability     Level `json:"portability"`
	BatteryLife     Level `json:"battery_life"`
	Budget          int   `json:"budget"`
}

// Requirement returns the requested level for a canonical feature key.
func (p *Profile) Requirement(key string) Level {
	switch key {
	case KeyGPUIntensity:
		return p.GPUIntensity
	case KeyProcessingSpeed:
		return p.ProcessingSpeed
	case KeyRAMCapacity:
		return p.RAMCapacity
	case KeyStorageCapacity:
		return p.StorageCapacity
	case KeyStorageType:
		return p.StorageType
	case KeyDisplayQuality:
		return p.DisplayQuality
	case KeyDisplaySize:
		return p.DisplaySize
	case KeyPortability:
		return p.Portability
	case KeyBatteryLife:
		return p.BatteryLife
	}
	return LevelLow
}

func (p *Profile) setRequirement(key string, lvl Level) {
	switch key {
	case KeyGPUIntensity:
		p.GPUIntensity = lvl
	case KeyProcessingSpeed:
		p.ProcessingSpeed = lvl
	case KeyRAMCapacity:
		p.RAMCapacity = lvl
	case KeyStorageCapacity:
		p.StorageCapacity = lvl
	case KeyStorageType:
		p.StorageType = lvl
	case KeyDisplayQuality:
		p.DisplayQuality = lvl
	case KeyDisplaySize:
		p.DisplaySize = lvl
	case KeyPortability:
		p.Portability = lvl
	case KeyBatteryLife:
		p.BatteryLife = lvl
	}
}
