package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert is an upstream alarm raised against a plot, e.g. by the ingestion
// pipeline or a monitoring job. Severity is free-form at this layer; the
// advisor normalizes it into its three-tier scale.
type Alert struct {
	ID             uuid.UUID  `json:"id"`
	PlotID         uuid.UUID  `json:"plot_id"`
	Severity       string     `json:"severity"`
	Source         string     `json:"source"`
	Message        string     `json:"message"`
	CreatedAt      time.Time  `json:"created_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
}

// Active reports whether the alert is still unacknowledged.
func (a Alert) Active() bool {
	return a.AcknowledgedAt == nil
}
