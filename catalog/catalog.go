// Package catalog holds the compiled-in description of every supported
// sensor type: unit, valid numeric domain, default alert range and
// display metadata. The catalog is exhaustive and never mutated.
package catalog

import "github.com/iroro1/et-mobile-new/models"

type SensorInfo struct {
	Type        models.SensorType `json:"type"`
	Name        string            `json:"name"`
	Unit        string            `json:"unit"`
	Icon        string            `json:"icon"`
	Description string            `json:"description"`
	MinValue    float64           `json:"min_value"`
	MaxValue    float64           `json:"max_value"`
	DefaultMin  float64           `json:"default_min"`
	DefaultMax  float64           `json:"default_max"`
	Color       string            `json:"color"`
}

// Types lists the supported sensor types in display order.
var Types = []models.SensorType{
	models.Temperature,
	models.Humidity,
	models.SoilMoisture,
	models.AtmosphericPressure,
	models.WaterLevel,
	models.LightIntensity,
	models.FireDetection,
}

var sensors = map[models.SensorType]SensorInfo{
	models.Temperature: {
		Type:        models.Temperature,
		Name:        "Temperature",
		Unit:        "°C",
		Icon:        "thermometer",
		Description: "Measures ambient temperature",
		MinValue:    -20,
		MaxValue:    60,
		DefaultMin:  10,
		DefaultMax:  30,
		Color:       "#F44336",
	},
	models.Humidity: {
		Type:        models.Humidity,
		Name:        "Humidity",
		Unit:        "%",
		Icon:        "droplets",
		Description: "Measures relative humidity in the air",
		MinValue:    0,
		MaxValue:    100,
		DefaultMin:  30,
		DefaultMax:  70,
		Color:       "#1E88E5",
	},
	models.SoilMoisture: {
		Type:        models.SoilMoisture,
		Name:        "Soil Moisture",
		Unit:        "%",
		Icon:        "waves",
		Description: "Measures soil water content",
		MinValue:    0,
		MaxValue:    100,
		DefaultMin:  20,
		DefaultMax:  80,
		Color:       "#8D6E63",
	},
	models.AtmosphericPressure: {
		Type:        models.AtmosphericPressure,
		Name:        "Atmospheric Pressure",
		Unit:        "hPa",
		Icon:        "gauge",
		Description: "Measures atmospheric pressure",
		MinValue:    800,
		MaxValue:    1200,
		DefaultMin:  950,
		DefaultMax:  1050,
		Color:       "#7E57C2",
	},
	models.WaterLevel: {
		Type:        models.WaterLevel,
		Name:        "Water Level",
		Unit:        "%",
		Icon:        "droplet",
		Description: "Measures water level in tank or reservoir",
		MinValue:    0,
		MaxValue:    100,
		DefaultMin:  20,
		DefaultMax:  90,
		Color:       "#039BE5",
	},
	models.LightIntensity: {
		Type:        models.LightIntensity,
		Name:        "Light Intensity",
		Unit:        "Lux",
		Icon:        "sun",
		Description: "Measures ambient light intensity",
		MinValue:    0,
		MaxValue:    100000,
		DefaultMin:  100,
		DefaultMax:  10000,
		Color:       "#FFC107",
	},
	models.FireDetection: {
		Type:        models.FireDetection,
		Name:        "Fire Detection",
		Unit:        "",
		Icon:        "flame",
		Description: "Detects presence of fire or smoke",
		MinValue:    0,
		MaxValue:    1,
		DefaultMin:  0,
		DefaultMax:  0,
		Color:       "#FF5722",
	},
}

// Lookup returns the catalog entry for the given sensor type. The
// catalog covers every SensorType, so the zero SensorInfo is only
// returned for a tag that does not exist at all.
func Lookup(t models.SensorType) SensorInfo {
	return sensors[t]
}

// DefaultThresholds synthesizes one unpersisted threshold per catalog
// entry from its default alert range. Used when the backend has no
// thresholds configured yet, so screens have something to render.
func DefaultThresholds() []models.SensorThreshold {
	thresholds := make([]models.SensorThreshold, 0, len(Types))
	for _, t := range Types {
		info := sensors[t]
		thresholds = append(thresholds, models.SensorThreshold{
			SensorType: t,
			MinValue:   info.DefaultMin,
			MaxValue:   info.DefaultMax,
			Unit:       info.Unit,
		})
	}
	return thresholds
}
