package gardenlink

import (
	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// fieldSensors maps GardenLink payload fields to sensor templates. The
// handler binds these to stored sensors per plot on first report.
var fieldSensors = map[string]models.Sensor{
	"tempc": {
		Name:       "Air Temperature",
		SensorType: models.SensorTypeTemperature,
		Enabled:    true,
	},
	"tempf": {
		Name:       "Air Temperature",
		SensorType: models.SensorTypeTemperature,
		Enabled:    true,
	},
	"humidity": {
		Name:       "Air Humidity",
		SensorType: models.SensorTypeHumidity,
		Enabled:    true,
	},
	"soilmoisture": {
		Name:       "Soil Moisture",
		SensorType: models.SensorTypeSoilMoisture,
		Enabled:    true,
	},
	"lux": {
		Name:       "Light Level",
		SensorType: models.SensorTypeLight,
		Enabled:    true,
	},
	"solarradiation": {
		Name:       "Light Level",
		SensorType: models.SensorTypeLight,
		Enabled:    true,
	},
	"soilph": {
		Name:       "Soil pH",
		SensorType: models.SensorTypeSoilPH,
		Enabled:    true,
	},
}
