package repository

import (
	"context"

	"github.com/google/uuid"
)

// Inventory is the current stock level for one medication.
type Inventory struct {
	ID           uuid.UUID
	MedicationID uuid.UUID
	CurrentCount int
	PackagesN1   int
	PackagesN2   int
	PackagesN3   int
	UpdatedAt    string
}

// LogEntry is one append-only record of an inventory change.
type LogEntry struct {
	ID            uuid.UUID
	MedicationID  uuid.UUID
	PreviousCount int
	NewCount      int
	Reason        string
	CreatedAt     string
}

// LowStockItem pairs an inventory row with its medication name for reports.
type LowStockItem struct {
	Inventory      Inventory
	MedicationName string
}

// Repository defines persistence operations for inventory and its log.
// Count mutations and their log entry commit in a single transaction.
type Repository interface {
	GetByMedication(ctx context.Context, medicationID uuid.UUID) (Inventory, error)
	// SetCount sets the absolute unit count, creating the inventory row if
	// missing, and appends a log entry. Returns the updated row and the
	// previous count.
	SetCount(ctx context.Context, medicationID uuid.UUID, newCount int, reason string) (Inventory, int, error)
	// DeductCount decrements the unit count, flooring at zero, and appends a
	// log entry. Returns the updated row and the previous count.
	DeductCount(ctx context.Context, medicationID uuid.UUID, units int, reason string) (Inventory, int, error)
	SetPackageCounts(ctx context.Context, medicationID uuid.UUID, n1, n2, n3 int) (Inventory, error)
	ListLogs(ctx context.Context, medicationID uuid.UUID, limit int) ([]LogEntry, error)
	ListLowStock(ctx context.Context, threshold int) ([]LowStockItem, error)
}
