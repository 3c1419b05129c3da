package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"medtrack_backend/internal/medications/repository"
	"medtrack_backend/internal/medications/transport"
	"medtrack_backend/platform/apperr"
	"medtrack_backend/platform/logger"
)

// testRepo is an in-memory Repository backed by maps.
type testRepo struct {
	medications map[uuid.UUID]repository.Medication
	packages    map[uuid.UUID]repository.ProductPackage
}

func newTestRepo() *testRepo {
	return &testRepo{
		medications: make(map[uuid.UUID]repository.Medication),
		packages:    make(map[uuid.UUID]repository.ProductPackage),
	}
}

func (r *testRepo) Create(_ context.Context, m repository.Medication) (repository.Medication, error) {
	m.ID = uuid.New()
	r.medications[m.ID] = m
	return m, nil
}

func (r *testRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Medication, error) {
	m, ok := r.medications[id]
	if !ok {
		return repository.Medication{}, apperr.NotFound("medication not found")
	}
	return m, nil
}

func (r *testRepo) Update(_ context.Context, m repository.Medication) (repository.Medication, error) {
	if _, ok := r.medications[m.ID]; !ok {
		return repository.Medication{}, apperr.NotFound("medication not found")
	}
	r.medications[m.ID] = m
	return m, nil
}

func (r *testRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.medications[id]; !ok {
		return apperr.NotFound("medication not found")
	}
	delete(r.medications, id)
	return nil
}

func (r *testRepo) List(_ context.Context, _ repository.ListParams) ([]repository.Medication, int, error) {
	items := make([]repository.Medication, 0, len(r.medications))
	for _, m := range r.medications {
		items = append(items, m)
	}
	return items, len(items), nil
}

func (r *testRepo) CreatePackage(_ context.Context, p repository.ProductPackage) (repository.ProductPackage, error) {
	p.ID = uuid.New()
	r.packages[p.ID] = p
	return p, nil
}

func (r *testRepo) GetPackageByID(_ context.Context, id uuid.UUID) (repository.ProductPackage, error) {
	p, ok := r.packages[id]
	if !ok {
		return repository.ProductPackage{}, apperr.NotFound("package not found")
	}
	return p, nil
}

func (r *testRepo) UpdatePackage(_ context.Context, p repository.ProductPackage) (repository.ProductPackage, error) {
	if _, ok := r.packages[p.ID]; !ok {
		return repository.ProductPackage{}, apperr.NotFound("package not found")
	}
	r.packages[p.ID] = p
	return p, nil
}

func (r *testRepo) DeletePackage(_ context.Context, id uuid.UUID) error {
	if _, ok := r.packages[id]; !ok {
		return apperr.NotFound("package not found")
	}
	delete(r.packages, id)
	return nil
}

func (r *testRepo) ListPackages(_ context.Context, medicationID uuid.UUID) ([]repository.ProductPackage, error) {
	var items []repository.ProductPackage
	for _, p := range r.packages {
		if p.MedicationID == medicationID {
			items = append(items, p)
		}
	}
	return items, nil
}

func (r *testRepo) FindPackageByNationalNumber(_ context.Context, number, numberType string) (repository.PackageMatch, error) {
	for _, p := range r.packages {
		if p.NationalNumber != nil && *p.NationalNumber == number &&
			p.NationalNumberType != nil && *p.NationalNumberType == numberType {
			med := r.medications[p.MedicationID]
			return repository.PackageMatch{Package: p, MedicationName: med.Name}, nil
		}
	}
	return repository.PackageMatch{}, apperr.NotFound("package not found")
}

func newTestService(repo *testRepo) *Service {
	return New(repo, logger.New("development"))
}

func createMedication(t *testing.T, svc *Service, name string) transport.MedicationResponse {
	t.Helper()
	med, err := svc.Create(context.Background(), transport.CreateMedicationRequest{Name: name})
	if err != nil {
		t.Fatalf("Create medication: %v", err)
	}
	return med
}

func strptr(s string) *string { return &s }

func TestCreatePackageClassifiesNationalNumber(t *testing.T) {
	tests := []struct {
		name      string
		number    string
		wantType  string
		wantLabel string
	}{
		{"eight digit PZN", "12345678", "DE_PZN", "PZN: 12345678"},
		{"seven digits with valid PZN check", "2345677", "DE_PZN", "PZN: 2345677"},
		{"seven digits without PZN check", "1234567", "FR_CIP7", "CIP7: 1234567"},
		{"thirteen digit CIP", "3400930000017", "FR_CIP13", "CIP13: 3400930000017"},
		{"nine digit AIC", "123456789", "IT_AIC", "AIC: 123456789"},
		{"six digit CN", "123456", "ES_CN", "CN: 123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newTestRepo())
			med := createMedication(t, svc, "Test Medication")

			pkg, err := svc.CreatePackage(context.Background(), med.ID, transport.CreatePackageRequest{
				PackageSize:    "N1",
				Quantity:       20,
				NationalNumber: strptr(tt.number),
			})
			if err != nil {
				t.Fatalf("CreatePackage: %v", err)
			}
			if pkg.NationalNumberType == nil || *pkg.NationalNumberType != tt.wantType {
				t.Errorf("NationalNumberType = %v, want %q", pkg.NationalNumberType, tt.wantType)
			}
			if pkg.DisplayLabel == nil || *pkg.DisplayLabel != tt.wantLabel {
				t.Errorf("DisplayLabel = %v, want %q", pkg.DisplayLabel, tt.wantLabel)
			}
		})
	}
}

func TestCreatePackageRejectsUnclassifiableNumber(t *testing.T) {
	svc := newTestService(newTestRepo())
	med := createMedication(t, svc, "Test Medication")

	for _, number := range []string{"12345", "12345678901", "ABC12345"} {
		_, err := svc.CreatePackage(context.Background(), med.ID, transport.CreatePackageRequest{
			PackageSize:    "N1",
			Quantity:       20,
			NationalNumber: strptr(number),
		})
		if err == nil {
			t.Errorf("CreatePackage(%q) returned nil error", number)
			continue
		}
		if kind := apperr.GetKind(err); kind != apperr.KindValidation {
			t.Errorf("CreatePackage(%q) error kind = %v, want KindValidation", number, kind)
		}
	}
}

func TestCreatePackageWithoutNationalNumber(t *testing.T) {
	svc := newTestService(newTestRepo())
	med := createMedication(t, svc, "Test Medication")

	pkg, err := svc.CreatePackage(context.Background(), med.ID, transport.CreatePackageRequest{
		PackageSize: "N1",
		Quantity:    10,
	})
	if err != nil {
		t.Fatalf("CreatePackage: %v", err)
	}
	if pkg.NationalNumber != nil || pkg.NationalNumberType != nil || pkg.DisplayLabel != nil {
		t.Errorf("package = %+v, want no national number fields", pkg)
	}
}

func TestCreatePackageForMissingMedication(t *testing.T) {
	svc := newTestService(newTestRepo())

	_, err := svc.CreatePackage(context.Background(), uuid.New(), transport.CreatePackageRequest{
		PackageSize: "N1",
		Quantity:    10,
	})
	if kind := apperr.GetKind(err); kind != apperr.KindNotFound {
		t.Errorf("error kind = %v, want KindNotFound", kind)
	}
}

func TestUpdatePackageClearsNationalNumber(t *testing.T) {
	svc := newTestService(newTestRepo())
	med := createMedication(t, svc, "Test Medication")

	pkg, err := svc.CreatePackage(context.Background(), med.ID, transport.CreatePackageRequest{
		PackageSize:    "N1",
		Quantity:       20,
		NationalNumber: strptr("12345678"),
	})
	if err != nil {
		t.Fatalf("CreatePackage: %v", err)
	}

	updated, err := svc.UpdatePackage(context.Background(), pkg.ID, transport.UpdatePackageRequest{
		NationalNumber: strptr(""),
	})
	if err != nil {
		t.Fatalf("UpdatePackage: %v", err)
	}
	if updated.NationalNumber != nil || updated.NationalNumberType != nil {
		t.Errorf("updated package = %+v, want cleared national number", updated)
	}
}

func TestUpdatePackageReclassifiesNationalNumber(t *testing.T) {
	svc := newTestService(newTestRepo())
	med := createMedication(t, svc, "Test Medication")

	pkg, err := svc.CreatePackage(context.Background(), med.ID, transport.CreatePackageRequest{
		PackageSize:    "N1",
		Quantity:       20,
		NationalNumber: strptr("12345678"),
	})
	if err != nil {
		t.Fatalf("CreatePackage: %v", err)
	}

	updated, err := svc.UpdatePackage(context.Background(), pkg.ID, transport.UpdatePackageRequest{
		NationalNumber: strptr("1234567"),
	})
	if err != nil {
		t.Fatalf("UpdatePackage: %v", err)
	}
	if updated.NationalNumberType == nil || *updated.NationalNumberType != "FR_CIP7" {
		t.Errorf("NationalNumberType = %v, want FR_CIP7", updated.NationalNumberType)
	}
}

func TestCreateMedicationStripsHTMLFromNotes(t *testing.T) {
	svc := newTestService(newTestRepo())

	med, err := svc.Create(context.Background(), transport.CreateMedicationRequest{
		Name:  "Test Medication",
		Notes: strptr("<script>alert(1)</script>take with food"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if med.Notes == nil || *med.Notes != "alert(1)take with food" {
		t.Errorf("Notes = %v, want HTML stripped", med.Notes)
	}
}

func TestUpdateMedicationPartial(t *testing.T) {
	svc := newTestService(newTestRepo())
	med := createMedication(t, svc, "Original Name")

	strength := "400mg"
	updated, err := svc.Update(context.Background(), med.ID, transport.UpdateMedicationRequest{
		Strength: &strength,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Original Name" {
		t.Errorf("Name = %q, want unchanged", updated.Name)
	}
	if updated.Strength == nil || *updated.Strength != "400mg" {
		t.Errorf("Strength = %v, want 400mg", updated.Strength)
	}
}
