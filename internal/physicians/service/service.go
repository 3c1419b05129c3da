package service

import (
	"context"

	"github.com/google/uuid"

	"medtrack_backend/internal/physicians/repository"
	"medtrack_backend/internal/physicians/transport"
	"medtrack_backend/platform/logger"
	"medtrack_backend/platform/phone"
	"medtrack_backend/platform/sanitize"
)

// Service provides business logic for physicians.
type Service struct {
	repo   repository.Repository
	log    *logger.Logger
	region string
}

// New creates a new physicians service. region is the default phone region
// for numbers entered without a country prefix.
func New(repo repository.Repository, log *logger.Logger, region string) *Service {
	return &Service{repo: repo, log: log, region: region}
}

// Create inserts a new physician, normalizing the phone number to E.164.
func (s *Service) Create(ctx context.Context, req transport.CreatePhysicianRequest) (transport.PhysicianResponse, error) {
	p := repository.Physician{
		Name:      req.Name,
		Specialty: req.Specialty,
		Phone:     s.normalizePhone(req.Phone),
		Email:     req.Email,
		Address:   req.Address,
		Notes:     sanitize.TextPtr(req.Notes),
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return transport.PhysicianResponse{}, err
	}
	return toResponse(created), nil
}

// GetByID retrieves a physician by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.PhysicianResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.PhysicianResponse{}, err
	}
	return toResponse(p), nil
}

// Update applies a partial update to a physician.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdatePhysicianRequest) (transport.PhysicianResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.PhysicianResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Specialty != nil {
		p.Specialty = req.Specialty
	}
	if req.Phone != nil {
		p.Phone = s.normalizePhone(req.Phone)
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Address != nil {
		p.Address = req.Address
	}
	if req.Notes != nil {
		p.Notes = sanitize.TextPtr(req.Notes)
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return transport.PhysicianResponse{}, err
	}
	return toResponse(updated), nil
}

// Delete removes a physician.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// List retrieves all physicians.
func (s *Service) List(ctx context.Context) (transport.PhysicianListResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return transport.PhysicianListResponse{}, err
	}

	resp := transport.PhysicianListResponse{
		Items: make([]transport.PhysicianResponse, 0, len(items)),
		Total: len(items),
	}
	for _, p := range items {
		resp.Items = append(resp.Items, toResponse(p))
	}
	return resp, nil
}

func (s *Service) normalizePhone(input *string) *string {
	if input == nil || *input == "" {
		return nil
	}
	normalized := phone.NormalizeE164(*input, s.region)
	return &normalized
}

func toResponse(p repository.Physician) transport.PhysicianResponse {
	return transport.PhysicianResponse{
		ID:        p.ID,
		Name:      p.Name,
		Specialty: p.Specialty,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
