package gardenlink

import (
	"net/url"
	"strconv"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/ingest"
	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// luxPerWattM2 approximates the lux equivalent of solar irradiance for
// gateways that only report W/m².
const luxPerWattM2 = 126.7

// Gateway implements the GardenLink soil gateway payload format
type Gateway struct{}

// GetEndpoint returns the endpoint path for GardenLink gateways
func (g *Gateway) GetEndpoint() string {
	return "/data/report"
}

// GetGatewayType returns the gateway type identifier
func (g *Gateway) GetGatewayType() string {
	return "GardenLink"
}

// ParseSensors returns sensor templates for every field present in the
// payload, indexed by field name. The gateway model is carried onto each
// sensor so the origin stays visible in listings.
func (g *Gateway) ParseSensors(params url.Values) map[string]models.Sensor {
	model := params.Get("model")

	result := make(map[string]models.Sensor)
	for field, template := range fieldSensors {
		if val := params.Get(field); val != "" {
			sensor := template
			sensor.Model = model
			result[field] = sensor
		}
	}

	return result
}

// ParseReadings parses GardenLink data for the discovered sensors and
// normalizes units (Fahrenheit to Celsius, W/m² to lux)
func (g *Gateway) ParseReadings(params url.Values, sensors map[string]models.Sensor) (map[string]ingest.Reading, error) {
	result := make(map[string]ingest.Reading)

	// Parse date once
	var dateUTC time.Time
	if dateStr := params.Get("dateutc"); dateStr != "" {
		formats := []string{
			"2006-01-02 15:04:05",
			"2006-01-02+15:04:05",
		}
		for _, format := range formats {
			if t, err := time.Parse(format, dateStr); err == nil {
				dateUTC = t
				break
			}
		}
	}
	if dateUTC.IsZero() {
		dateUTC = time.Now().UTC()
	}

	parseFloat := func(key string) (float64, bool) {
		if val := params.Get(key); val != "" {
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return f, true
			}
		}
		return 0.0, false
	}

	for field := range sensors {
		f, ok := parseFloat(field)
		if !ok {
			continue
		}

		var value float64
		switch field {
		case "tempf":
			value = (f - 32) * 5 / 9
		case "solarradiation":
			value = f * luxPerWattM2
		default:
			value = f
		}

		result[field] = ingest.Reading{Value: value, DateUTC: dateUTC}
	}

	return result, nil
}
