package adapters

import (
	"context"

	medrepo "medtrack_backend/internal/medications/repository"
	scansvc "medtrack_backend/internal/scanner/service"
	"medtrack_backend/platform/apperr"
)

// MedicationsPackageFinder adapts the medications repository for the scanner
// domain, satisfying scansvc.PackageFinder. This keeps the scanner module
// free of a direct dependency on the catalog's types.
type MedicationsPackageFinder struct {
	repo medrepo.Repository
}

// NewMedicationsPackageFinder creates a new package finder adapter.
func NewMedicationsPackageFinder(repo medrepo.Repository) *MedicationsPackageFinder {
	return &MedicationsPackageFinder{repo: repo}
}

// FindPackage resolves a classified national number to a product package.
// A missing package is reported through the boolean, not as an error.
func (a *MedicationsPackageFinder) FindPackage(ctx context.Context, number, schemeTag string) (scansvc.PackageMatch, bool, error) {
	match, err := a.repo.FindPackageByNationalNumber(ctx, number, schemeTag)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return scansvc.PackageMatch{}, false, nil
		}
		return scansvc.PackageMatch{}, false, err
	}

	return scansvc.PackageMatch{
		PackageID:      match.Package.ID,
		MedicationID:   match.Package.MedicationID,
		MedicationName: match.MedicationName,
		PackageSize:    match.Package.PackageSize,
		Quantity:       match.Package.Quantity,
	}, true, nil
}

// Compile-time check that the adapter satisfies the scanner port.
var _ scansvc.PackageFinder = (*MedicationsPackageFinder)(nil)
