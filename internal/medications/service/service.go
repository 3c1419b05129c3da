package service

import (
	"context"

	"github.com/google/uuid"

	"medtrack_backend/internal/medications/repository"
	"medtrack_backend/internal/medications/transport"
	"medtrack_backend/internal/pharmacode"
	"medtrack_backend/platform/apperr"
	"medtrack_backend/platform/logger"
	"medtrack_backend/platform/sanitize"
)

// Service provides business logic for medications and their packages.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new medications service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create inserts a new medication.
func (s *Service) Create(ctx context.Context, req transport.CreateMedicationRequest) (transport.MedicationResponse, error) {
	m := repository.Medication{
		Name:             req.Name,
		ActiveIngredient: req.ActiveIngredient,
		DosageForm:       req.DosageForm,
		Strength:         req.Strength,
		Notes:            sanitize.TextPtr(req.Notes),
		PhysicianID:      req.PhysicianID,
		AutIdem:          req.AutIdem,
		IsActive:         true,
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return transport.MedicationResponse{}, err
	}
	return toMedicationResponse(created), nil
}

// GetByID retrieves a medication by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.MedicationResponse, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.MedicationResponse{}, err
	}
	return toMedicationResponse(m), nil
}

// Update applies a partial update to a medication.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateMedicationRequest) (transport.MedicationResponse, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.MedicationResponse{}, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.ActiveIngredient != nil {
		m.ActiveIngredient = req.ActiveIngredient
	}
	if req.DosageForm != nil {
		m.DosageForm = req.DosageForm
	}
	if req.Strength != nil {
		m.Strength = req.Strength
	}
	if req.Notes != nil {
		m.Notes = sanitize.TextPtr(req.Notes)
	}
	if req.PhysicianID != nil {
		m.PhysicianID = req.PhysicianID
	}
	if req.AutIdem != nil {
		m.AutIdem = *req.AutIdem
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	updated, err := s.repo.Update(ctx, m)
	if err != nil {
		return transport.MedicationResponse{}, err
	}
	return toMedicationResponse(updated), nil
}

// Delete removes a medication.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// List retrieves medications with filters and pagination.
func (s *Service) List(ctx context.Context, req transport.ListMedicationsRequest) (transport.MedicationListResponse, error) {
	page := req.Page
	pageSize := req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	params := repository.ListParams{
		Search:    req.Search,
		IsActive:  req.IsActive,
		Offset:    (page - 1) * pageSize,
		Limit:     pageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return transport.MedicationListResponse{}, err
	}

	resp := transport.MedicationListResponse{
		Items:    make([]transport.MedicationResponse, 0, len(items)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, m := range items {
		resp.Items = append(resp.Items, toMedicationResponse(m))
	}
	return resp, nil
}

// CreatePackage inserts a new package for a medication. A supplied national
// number must classify as a known scheme; the recognized scheme tag is stored
// alongside the number.
func (s *Service) CreatePackage(ctx context.Context, medicationID uuid.UUID, req transport.CreatePackageRequest) (transport.PackageResponse, error) {
	// Ensure the parent exists so a bad ID reads as 404, not a FK error.
	if _, err := s.repo.GetByID(ctx, medicationID); err != nil {
		return transport.PackageResponse{}, err
	}

	p := repository.ProductPackage{
		MedicationID:   medicationID,
		PackageSize:    req.PackageSize,
		Quantity:       req.Quantity,
		Manufacturer:   req.Manufacturer,
		ListPriceCents: req.ListPriceCents,
		IsActive:       true,
	}

	if err := s.applyNationalNumber(&p, req.NationalNumber); err != nil {
		return transport.PackageResponse{}, err
	}

	created, err := s.repo.CreatePackage(ctx, p)
	if err != nil {
		return transport.PackageResponse{}, err
	}
	return toPackageResponse(created), nil
}

// GetPackageByID retrieves a package by ID.
func (s *Service) GetPackageByID(ctx context.Context, id uuid.UUID) (transport.PackageResponse, error) {
	p, err := s.repo.GetPackageByID(ctx, id)
	if err != nil {
		return transport.PackageResponse{}, err
	}
	return toPackageResponse(p), nil
}

// UpdatePackage applies a partial update to a package.
func (s *Service) UpdatePackage(ctx context.Context, id uuid.UUID, req transport.UpdatePackageRequest) (transport.PackageResponse, error) {
	p, err := s.repo.GetPackageByID(ctx, id)
	if err != nil {
		return transport.PackageResponse{}, err
	}

	if req.PackageSize != nil {
		p.PackageSize = *req.PackageSize
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	if req.Manufacturer != nil {
		p.Manufacturer = req.Manufacturer
	}
	if req.ListPriceCents != nil {
		p.ListPriceCents = req.ListPriceCents
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.NationalNumber != nil {
		if err := s.applyNationalNumber(&p, req.NationalNumber); err != nil {
			return transport.PackageResponse{}, err
		}
	}

	updated, err := s.repo.UpdatePackage(ctx, p)
	if err != nil {
		return transport.PackageResponse{}, err
	}
	return toPackageResponse(updated), nil
}

// DeletePackage removes a package.
func (s *Service) DeletePackage(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePackage(ctx, id)
}

// ListPackages retrieves all packages for a medication.
func (s *Service) ListPackages(ctx context.Context, medicationID uuid.UUID) (transport.PackageListResponse, error) {
	if _, err := s.repo.GetByID(ctx, medicationID); err != nil {
		return transport.PackageListResponse{}, err
	}

	items, err := s.repo.ListPackages(ctx, medicationID)
	if err != nil {
		return transport.PackageListResponse{}, err
	}

	resp := transport.PackageListResponse{
		Items: make([]transport.PackageResponse, 0, len(items)),
		Total: len(items),
	}
	for _, p := range items {
		resp.Items = append(resp.Items, toPackageResponse(p))
	}
	return resp, nil
}

// FindPackageByNationalNumber looks up a package by national number and scheme tag.
func (s *Service) FindPackageByNationalNumber(ctx context.Context, number, schemeTag string) (transport.PackageResponse, string, error) {
	match, err := s.repo.FindPackageByNationalNumber(ctx, number, schemeTag)
	if err != nil {
		return transport.PackageResponse{}, "", err
	}
	return toPackageResponse(match.Package), match.MedicationName, nil
}

// applyNationalNumber classifies the supplied number and stores number plus
// scheme tag on the package. An empty string clears both fields.
func (s *Service) applyNationalNumber(p *repository.ProductPackage, number *string) error {
	if number == nil || *number == "" {
		p.NationalNumber = nil
		p.NationalNumberType = nil
		return nil
	}

	result := pharmacode.Classify(*number)
	if !result.Recognized {
		return apperr.Validation("national number does not match any known scheme")
	}

	tag := result.Scheme.String()
	p.NationalNumber = number
	p.NationalNumberType = &tag
	return nil
}

func toMedicationResponse(m repository.Medication) transport.MedicationResponse {
	return transport.MedicationResponse{
		ID:               m.ID,
		Name:             m.Name,
		ActiveIngredient: m.ActiveIngredient,
		DosageForm:       m.DosageForm,
		Strength:         m.Strength,
		Notes:            m.Notes,
		PhysicianID:      m.PhysicianID,
		AutIdem:          m.AutIdem,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toPackageResponse(p repository.ProductPackage) transport.PackageResponse {
	resp := transport.PackageResponse{
		ID:                 p.ID,
		MedicationID:       p.MedicationID,
		PackageSize:        p.PackageSize,
		Quantity:           p.Quantity,
		NationalNumber:     p.NationalNumber,
		NationalNumberType: p.NationalNumberType,
		Manufacturer:       p.Manufacturer,
		ListPriceCents:     p.ListPriceCents,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}

	if p.NationalNumber != nil && p.NationalNumberType != nil {
		if scheme, ok := pharmacode.ParseScheme(*p.NationalNumberType); ok {
			label := pharmacode.FormatLabel(*p.NationalNumber, scheme)
			resp.DisplayLabel = &label
		}
	}

	return resp
}
