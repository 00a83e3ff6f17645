// Package ingest receives sensor payloads pushed by garden gateways over
// HTTP and turns them into normalized readings.
package ingest

import (
	"net/url"
	"sync"
	"time"

	"github.com/gardenmaestro/gardenmaestro/pkg/models"
)

// Reading is a parsed measurement before it is bound to a stored sensor.
type Reading struct {
	Value   float64
	DateUTC time.Time
}

// Gateway defines the interface for all garden gateway payload formats
type Gateway interface {
	// GetEndpoint returns the HTTP endpoint path for this gateway format
	GetEndpoint() string

	// GetGatewayType returns the gateway type identifier
	GetGatewayType() string

	// ParseSensors converts URL parameters to sensors indexed by field name
	ParseSensors(params url.Values) map[string]models.Sensor

	// ParseReadings converts URL parameters to readings indexed by field name
	ParseReadings(params url.Values, sensors map[string]models.Sensor) (map[string]Reading, error)
}

// Registry holds all registered gateways
type Registry struct {
	mu       sync.RWMutex
	gateways map[string]Gateway
}

// NewRegistry creates a new gateway registry
func NewRegistry() *Registry {
	return &Registry{
		gateways: make(map[string]Gateway),
	}
}

// Register adds a gateway to the registry
func (r *Registry) Register(g Gateway) {
	if g == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.gateways[g.GetGatewayType()] = g
}

// Get retrieves a gateway by type
func (r *Registry) Get(gatewayType string) (Gateway, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.gateways[gatewayType]
	return g, ok
}

// All returns all registered gateways
func (r *Registry) All() []Gateway {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gateways := make([]Gateway, 0, len(r.gateways))
	for _, g := range r.gateways {
		gateways = append(gateways, g)
	}
	return gateways
}
