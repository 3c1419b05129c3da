package transport

import "github.com/google/uuid"

// CreateMedicationRequest contains data for creating a new medication.
type CreateMedicationRequest struct {
	Name             string     `json:"name" validate:"required,min=1,max=200"`
	ActiveIngredient *string    `json:"activeIngredient,omitempty" validate:"omitempty,max=200"`
	DosageForm       *string    `json:"dosageForm,omitempty" validate:"omitempty,max=100"`
	Strength         *string    `json:"strength,omitempty" validate:"omitempty,max=50"`
	Notes            *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
	PhysicianID      *uuid.UUID `json:"physicianId,omitempty"`
	AutIdem          bool       `json:"autIdem"`
}

// UpdateMedicationRequest contains data for updating an existing medication.
type UpdateMedicationRequest struct {
	Name             *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	ActiveIngredient *string    `json:"activeIngredient,omitempty" validate:"omitempty,max=200"`
	DosageForm       *string    `json:"dosageForm,omitempty" validate:"omitempty,max=100"`
	Strength         *string    `json:"strength,omitempty" validate:"omitempty,max=50"`
	Notes            *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
	PhysicianID      *uuid.UUID `json:"physicianId,omitempty"`
	AutIdem          *bool      `json:"autIdem,omitempty"`
	IsActive         *bool      `json:"isActive,omitempty"`
}

// ListMedicationsRequest contains query parameters for listing medications.
type ListMedicationsRequest struct {
	Search    string `form:"search"`
	IsActive  *bool  `form:"isActive"`
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

// MedicationResponse represents a medication in API responses.
type MedicationResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	ActiveIngredient *string    `json:"activeIngredient,omitempty"`
	DosageForm       *string    `json:"dosageForm,omitempty"`
	Strength         *string    `json:"strength,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	PhysicianID      *uuid.UUID `json:"physicianId,omitempty"`
	AutIdem          bool       `json:"autIdem"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        string     `json:"createdAt"`
	UpdatedAt        string     `json:"updatedAt"`
}

// MedicationListResponse wraps a paginated list of medications.
type MedicationListResponse struct {
	Items    []MedicationResponse `json:"items"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

// CreatePackageRequest contains data for creating a new product package.
type CreatePackageRequest struct {
	PackageSize    string  `json:"packageSize" validate:"required,min=1,max=20"`
	Quantity       int     `json:"quantity" validate:"required,min=1"`
	NationalNumber *string `json:"nationalNumber,omitempty" validate:"omitempty,max=20"`
	Manufacturer   *string `json:"manufacturer,omitempty" validate:"omitempty,max=100"`
	ListPriceCents *int    `json:"listPriceCents,omitempty" validate:"omitempty,min=0"`
}

// UpdatePackageRequest contains data for updating an existing package.
type UpdatePackageRequest struct {
	PackageSize    *string `json:"packageSize,omitempty" validate:"omitempty,min=1,max=20"`
	Quantity       *int    `json:"quantity,omitempty" validate:"omitempty,min=1"`
	NationalNumber *string `json:"nationalNumber,omitempty" validate:"omitempty,max=20"`
	Manufacturer   *string `json:"manufacturer,omitempty" validate:"omitempty,max=100"`
	ListPriceCents *int    `json:"listPriceCents,omitempty" validate:"omitempty,min=0"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

// PackageResponse represents a product package in API responses.
type PackageResponse struct {
	ID                 uuid.UUID `json:"id"`
	MedicationID       uuid.UUID `json:"medicationId"`
	PackageSize        string    `json:"packageSize"`
	Quantity           int       `json:"quantity"`
	NationalNumber     *string   `json:"nationalNumber,omitempty"`
	NationalNumberType *string   `json:"nationalNumberType,omitempty"`
	DisplayLabel       *string   `json:"displayLabel,omitempty"`
	Manufacturer       *string   `json:"manufacturer,omitempty"`
	ListPriceCents     *int      `json:"listPriceCents,omitempty"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          string    `json:"createdAt"`
	UpdatedAt          string    `json:"updatedAt"`
}

// PackageListResponse wraps a list of packages for one medication.
type PackageListResponse struct {
	Items []PackageResponse `json:"items"`
	Total int               `json:"total"`
}
