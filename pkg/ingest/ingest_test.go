package ingest

import (
	"net/url"
	"testing"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// MockGateway implements the Gateway interface for testing
type MockGateway struct {
	endpoint    string
	gatewayType string
}

func (m *MockGateway) GetEndpoint() string {
	return m.endpoint
}

func (m *MockGateway) GetGatewayType() string {
	return m.gatewayType
}

func (m *MockGateway) ParseSensors(params url.Values) map[string]models.Sensor {
	sensors := make(map[string]models.Sensor)
	if params.Get("tempc") != "" {
		sensors["tempc"] = models.Sensor{
			SensorType: models.SensorTypeTemperature,
		}
	}
	return sensors
}

func (m *MockGateway) ParseReadings(params url.Values, sensors map[string]models.Sensor) (map[string]Reading, error) {
	return make(map[string]Reading), nil
}

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()

	if registry == nil {
		t.Fatal("Expected registry to be created, got nil")
	}

	if registry.gateways == nil {
		t.Fatal("Expected gateways map to be initialized, got nil")
	}

	if len(registry.gateways) != 0 {
		t.Errorf("Expected empty registry, got %d gateways", len(registry.gateways))
	}
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	gateway := &MockGateway{
		endpoint:    "/data/report",
		gatewayType: "GardenLink",
	}

	registry.Register(gateway)

	if len(registry.gateways) != 1 {
		t.Errorf("Expected 1 gateway, got %d", len(registry.gateways))
	}

	if _, ok := registry.gateways["GardenLink"]; !ok {
		t.Error("Expected gateway to be registered with key 'GardenLink'")
	}
}

func TestRegistry_Register_Nil(t *testing.T) {
	registry := NewRegistry()

	registry.Register(nil)

	if len(registry.gateways) != 0 {
		t.Errorf("Expected nil gateway to be ignored, got %d gateways", len(registry.gateways))
	}
}

func TestRegistry_Register_Overwrite(t *testing.T) {
	registry := NewRegistry()

	first := &MockGateway{endpoint: "/data/report", gatewayType: "GardenLink"}
	second := &MockGateway{endpoint: "/data/report/v2", gatewayType: "GardenLink"}

	registry.Register(first)
	registry.Register(second)

	if len(registry.gateways) != 1 {
		t.Errorf("Expected same-type registration to overwrite, got %d gateways", len(registry.gateways))
	}

	g, ok := registry.Get("GardenLink")
	if !ok {
		t.Fatal("Expected gateway to be registered")
	}
	if g.GetEndpoint() != "/data/report/v2" {
		t.Errorf("Expected latest registration to win, got endpoint %s", g.GetEndpoint())
	}
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry()

	gateway := &MockGateway{
		endpoint:    "/data/report",
		gatewayType: "GardenLink",
	}
	registry.Register(gateway)

	got, ok := registry.Get("GardenLink")
	if !ok {
		t.Fatal("Expected to find registered gateway")
	}
	if got.GetGatewayType() != "GardenLink" {
		t.Errorf("Expected gateway type GardenLink, got %s", got.GetGatewayType())
	}

	if _, ok := registry.Get("Unknown"); ok {
		t.Error("Expected lookup of unregistered type to fail")
	}
}

func TestRegistry_All(t *testing.T) {
	registry := NewRegistry()

	if all := registry.All(); len(all) != 0 {
		t.Errorf("Expected no gateways, got %d", len(all))
	}

	registry.Register(&MockGateway{endpoint: "/data/report", gatewayType: "GardenLink"})
	registry.Register(&MockGateway{endpoint: "/data/other", gatewayType: "Other"})

	all := registry.All()
	if len(all) != 2 {
		t.Errorf("Expected 2 gateways, got %d", len(all))
	}

	types := make(map[string]bool)
	for _, g := range all {
		types[g.GetGatewayType()] = true
	}
	if !types["GardenLink"] || !types["Other"] {
		t.Errorf("Expected both gateway types, got %v", types)
	}
}
