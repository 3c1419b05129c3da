package transport

import "github.com/google/uuid"

// ScanRequest carries the decoded barcode content from the client scanner.
type ScanRequest struct {
	Barcode string `json:"barcode" validate:"required,min=1,max=64"`
}

// ScannedPackage describes the product package a scan resolved to.
type ScannedPackage struct {
	PackageID      uuid.UUID `json:"packageId"`
	MedicationID   uuid.UUID `json:"medicationId"`
	MedicationName string    `json:"medicationName"`
	PackageSize    string    `json:"packageSize"`
	Quantity       int       `json:"quantity"`
}

// ScanResponse is the outcome of classifying and resolving a scanned barcode.
// Matched is false when the number classified but no package carries it; the
// client then offers package onboarding with the prefilled classification.
type ScanResponse struct {
	Number       string          `json:"number"`
	Scheme       string          `json:"scheme"`
	DisplayLabel string          `json:"displayLabel"`
	Matched      bool            `json:"matched"`
	Package      *ScannedPackage `json:"package,omitempty"`
}
