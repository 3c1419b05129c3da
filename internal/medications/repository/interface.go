package repository

import (
	"context"

	"github.com/google/uuid"
)

// Medication is a tracked medicinal product.
type Medication struct {
	ID               uuid.UUID
	Name             string
	ActiveIngredient *string
	DosageForm       *string
	Strength         *string
	Notes            *string
	PhysicianID      *uuid.UUID
	AutIdem          bool
	IsActive         bool
	CreatedAt        string
	UpdatedAt        string
}

// ProductPackage is one purchasable package configuration of a medication,
// e.g. the N1 and N2 boxes of the same product each carry their own national
// number.
type ProductPackage struct {
	ID                 uuid.UUID
	MedicationID       uuid.UUID
	PackageSize        string
	Quantity           int
	NationalNumber     *string
	NationalNumberType *string
	Manufacturer       *string
	ListPriceCents     *int
	IsActive           bool
	CreatedAt          string
	UpdatedAt          string
}

// PackageMatch joins a package with its medication for barcode lookups.
type PackageMatch struct {
	Package        ProductPackage
	MedicationName string
}

// ListParams controls medication list filtering and pagination.
type ListParams struct {
	Search    string
	IsActive  *bool
	Offset    int
	Limit     int
	SortBy    string
	SortOrder string
}

// Repository defines persistence operations for medications and packages.
type Repository interface {
	Create(ctx context.Context, m Medication) (Medication, error)
	GetByID(ctx context.Context, id uuid.UUID) (Medication, error)
	Update(ctx context.Context, m Medication) (Medication, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params ListParams) ([]Medication, int, error)

	CreatePackage(ctx context.Context, p ProductPackage) (ProductPackage, error)
	GetPackageByID(ctx context.Context, id uuid.UUID) (ProductPackage, error)
	UpdatePackage(ctx context.Context, p ProductPackage) (ProductPackage, error)
	DeletePackage(ctx context.Context, id uuid.UUID) error
	ListPackages(ctx context.Context, medicationID uuid.UUID) ([]ProductPackage, error)
	FindPackageByNationalNumber(ctx context.Context, number, numberType string) (PackageMatch, error)
}
