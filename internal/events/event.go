// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"medtrack_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event     = events.Event
	Bus       = events.Bus
	Handler   = events.Handler
	BaseEvent = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Inventory Domain Events
// =============================================================================

// InventoryAdjusted is published after any inventory count change.
type InventoryAdjusted struct {
	BaseEvent
	MedicationID  uuid.UUID `json:"medicationId"`
	PreviousCount int       `json:"previousCount"`
	NewCount      int       `json:"newCount"`
	Reason        string    `json:"reason"`
}

func (e InventoryAdjusted) EventName() string { return "inventory.adjusted" }

// =============================================================================
// Scanner Domain Events
// =============================================================================

// BarcodeScanned is published after every scan attempt, recognized or not.
type BarcodeScanned struct {
	BaseEvent
	Scheme     string `json:"scheme"`
	Recognized bool   `json:"recognized"`
	Matched    bool   `json:"matched"`
}

func (e BarcodeScanned) EventName() string { return "scanner.barcode.scanned" }
