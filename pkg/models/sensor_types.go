package models

import "fmt"

// SensorType is the closed set of environmental measurements GardenMaestro
// understands. Using a dedicated type instead of free-form strings lets the
// advisor switch exhaustively over it.
type SensorType string

const (
	SensorTypeTemperature  SensorType = "Temperature"
	SensorTypeHumidity     SensorType = "Humidity"
	SensorTypeSoilMoisture SensorType = "SoilMoisture"
	SensorTypeLight        SensorType = "Light"
	SensorTypeSoilPH       SensorType = "SoilPH"
)

// AllSensorTypes lists every supported sensor type in a stable order.
var AllSensorTypes = []SensorType{
	SensorTypeTemperature,
	SensorTypeHumidity,
	SensorTypeSoilMoisture,
	SensorTypeLight,
	SensorTypeSoilPH,
}

// ParseSensorType validates a raw string against the closed set.
func ParseSensorType(s string) (SensorType, error) {
	st := SensorType(s)
	if _, ok := SensorTypeRegistry[st]; !ok {
		return "", fmt.Errorf("unknown sensor type: %s", s)
	}
	return st, nil
}

// Valid reports whether the sensor type is part of the closed set.
func (st SensorType) Valid() bool {
	_, ok := SensorTypeRegistry[st]
	return ok
}

// ThresholdBands holds the generic status bands for a sensor type. Values
// inside [Low, High] are optimal, values outside [CriticalLow, CriticalHigh]
// are critical, anything between needs attention.
type ThresholdBands struct {
	CriticalLow  float64
	Low          float64
	High         float64
	CriticalHigh float64
}

// SensorTypeInfo holds display and evaluation metadata for a sensor type.
type SensorTypeInfo struct {
	Name  string
	Unit  string
	Bands ThresholdBands
}

// SensorTypeRegistry maps sensor types to their metadata. The bands are the
// plant-agnostic defaults; growth-stage ranges override the optimal window
// when a plot has a plant configured.
var SensorTypeRegistry = map[SensorType]SensorTypeInfo{
	SensorTypeTemperature: {
		Name:  "Temperature",
		Unit:  "°C",
		Bands: ThresholdBands{CriticalLow: 5, Low: 15, High: 30, CriticalHigh: 40},
	},
	SensorTypeHumidity: {
		Name:  "Humidity",
		Unit:  "%",
		Bands: ThresholdBands{CriticalLow: 20, Low: 40, High: 80, CriticalHigh: 95},
	},
	SensorTypeSoilMoisture: {
		Name:  "Soil Moisture",
		Unit:  "%",
		Bands: ThresholdBands{CriticalLow: 20, Low: 35, High: 75, CriticalHigh: 90},
	},
	SensorTypeLight: {
		Name:  "Light",
		Unit:  "lux",
		Bands: ThresholdBands{CriticalLow: 500, Low: 2000, High: 40000, CriticalHigh: 80000},
	},
	SensorTypeSoilPH: {
		Name:  "Soil pH",
		Unit:  "pH",
		Bands: ThresholdBands{CriticalLow: 4.5, Low: 5.5, High: 7.5, CriticalHigh: 8.5},
	},
}

// OptimalRange is the stage-specific optimal window for one sensor type.
type OptimalRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultOptimalRange returns the generic optimal window for a sensor type,
// used when a plot has no growth-stage range configured.
func DefaultOptimalRange(st SensorType) OptimalRange {
	info := SensorTypeRegistry[st]
	return OptimalRange{Min: info.Bands.Low, Max: info.Bands.High}
}
