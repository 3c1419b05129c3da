package transport

import "github.com/google/uuid"

// AdjustInventoryRequest sets the absolute unit count for a medication.
type AdjustInventoryRequest struct {
	NewCount int    `json:"newCount" validate:"min=0"`
	Reason   string `json:"reason" validate:"required,min=1,max=200"`
}

// DeductInventoryRequest decrements the unit count for a medication.
type DeductInventoryRequest struct {
	Units  int    `json:"units" validate:"required,min=1"`
	Reason string `json:"reason" validate:"required,min=1,max=200"`
}

// PackageCountsRequest updates the per-size package counts.
type PackageCountsRequest struct {
	PackagesN1 int `json:"packagesN1" validate:"min=0"`
	PackagesN2 int `json:"packagesN2" validate:"min=0"`
	PackagesN3 int `json:"packagesN3" validate:"min=0"`
}

// InventoryResponse represents a medication's stock level in API responses.
type InventoryResponse struct {
	ID           uuid.UUID `json:"id"`
	MedicationID uuid.UUID `json:"medicationId"`
	CurrentCount int       `json:"currentCount"`
	PackagesN1   int       `json:"packagesN1"`
	PackagesN2   int       `json:"packagesN2"`
	PackagesN3   int       `json:"packagesN3"`
	UpdatedAt    string    `json:"updatedAt"`
}

// LogEntryResponse represents one inventory change in API responses.
type LogEntryResponse struct {
	ID            uuid.UUID `json:"id"`
	MedicationID  uuid.UUID `json:"medicationId"`
	PreviousCount int       `json:"previousCount"`
	NewCount      int       `json:"newCount"`
	Delta         int       `json:"delta"`
	Reason        string    `json:"reason"`
	CreatedAt     string    `json:"createdAt"`
}

// LogListResponse wraps a list of inventory log entries.
type LogListResponse struct {
	Items []LogEntryResponse `json:"items"`
	Total int                `json:"total"`
}

// LowStockItemResponse pairs an inventory row with its medication name.
type LowStockItemResponse struct {
	Inventory      InventoryResponse `json:"inventory"`
	MedicationName string            `json:"medicationName"`
}

// LowStockResponse wraps the low stock report.
type LowStockResponse struct {
	Items     []LowStockItemResponse `json:"items"`
	Threshold int                    `json:"threshold"`
}
