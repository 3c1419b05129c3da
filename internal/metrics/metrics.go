// Package metrics exposes Prometheus instrumentation for scans and inventory.
package metrics

import (
	"context"

	"medtrack_backend/internal/events"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScansTotal tracks barcode scans by classified scheme and match outcome
	ScansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medtrack_scans_total",
			Help: "Total number of barcode scans",
		},
		[]string{"scheme", "outcome"},
	)

	// InventoryAdjustmentsTotal tracks inventory mutations by reason
	InventoryAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medtrack_inventory_adjustments_total",
			Help: "Total number of inventory adjustments",
		},
		[]string{"reason"},
	)

	// LowStockMedications tracks how many medications are under their threshold
	LowStockMedications = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "medtrack_low_stock_medications",
			Help: "Number of medications currently below their stock threshold",
		},
	)
)

// Recorder subscribes to domain events and records them as metrics.
type Recorder struct{}

// NewRecorder creates a metrics recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RegisterHandlers subscribes the recorder to the events it counts.
func (r *Recorder) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.InventoryAdjusted{}.EventName(), r)
	bus.Subscribe(events.BarcodeScanned{}.EventName(), r)
}

// Handle routes events to the appropriate metric.
func (r *Recorder) Handle(_ context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.InventoryAdjusted:
		InventoryAdjustmentsTotal.WithLabelValues(e.Reason).Inc()
	case events.BarcodeScanned:
		ScansTotal.WithLabelValues(e.Scheme, scanOutcome(e)).Inc()
	}
	return nil
}

func scanOutcome(e events.BarcodeScanned) string {
	switch {
	case !e.Recognized:
		return "unrecognized"
	case e.Matched:
		return "matched"
	default:
		return "unmatched"
	}
}
