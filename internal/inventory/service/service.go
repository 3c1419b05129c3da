package service

import (
	"context"

	"github.com/google/uuid"

	"medtrack_backend/internal/events"
	"medtrack_backend/internal/inventory/repository"
	"medtrack_backend/internal/inventory/transport"
	"medtrack_backend/internal/metrics"
	"medtrack_backend/platform/logger"
)

// Service provides business logic for medication inventory.
type Service struct {
	repo      repository.Repository
	bus       events.Bus
	log       *logger.Logger
	threshold int
}

// New creates a new inventory service. threshold is the unit count at or
// below which a medication counts as low stock.
func New(repo repository.Repository, bus events.Bus, log *logger.Logger, threshold int) *Service {
	return &Service{repo: repo, bus: bus, log: log, threshold: threshold}
}

// GetByMedication retrieves the stock level for a medication.
func (s *Service) GetByMedication(ctx context.Context, medicationID uuid.UUID) (transport.InventoryResponse, error) {
	inv, err := s.repo.GetByMedication(ctx, medicationID)
	if err != nil {
		return transport.InventoryResponse{}, err
	}
	return toInventoryResponse(inv), nil
}

// Adjust sets the absolute unit count for a medication.
func (s *Service) Adjust(ctx context.Context, medicationID uuid.UUID, req transport.AdjustInventoryRequest) (transport.InventoryResponse, error) {
	inv, previous, err := s.repo.SetCount(ctx, medicationID, req.NewCount, req.Reason)
	if err != nil {
		return transport.InventoryResponse{}, err
	}

	s.publishAdjusted(ctx, medicationID, previous, inv.CurrentCount, req.Reason)
	return toInventoryResponse(inv), nil
}

// Deduct decrements the unit count for a medication, flooring at zero.
func (s *Service) Deduct(ctx context.Context, medicationID uuid.UUID, req transport.DeductInventoryRequest) (transport.InventoryResponse, error) {
	inv, previous, err := s.repo.DeductCount(ctx, medicationID, req.Units, req.Reason)
	if err != nil {
		return transport.InventoryResponse{}, err
	}

	s.publishAdjusted(ctx, medicationID, previous, inv.CurrentCount, req.Reason)
	return toInventoryResponse(inv), nil
}

// SetPackageCounts updates the per-size package counts for a medication.
func (s *Service) SetPackageCounts(ctx context.Context, medicationID uuid.UUID, req transport.PackageCountsRequest) (transport.InventoryResponse, error) {
	inv, err := s.repo.SetPackageCounts(ctx, medicationID, req.PackagesN1, req.PackagesN2, req.PackagesN3)
	if err != nil {
		return transport.InventoryResponse{}, err
	}
	return toInventoryResponse(inv), nil
}

// ListLogs retrieves the most recent inventory changes for a medication.
func (s *Service) ListLogs(ctx context.Context, medicationID uuid.UUID, limit int) (transport.LogListResponse, error) {
	if limit < 1 || limit > 500 {
		limit = 50
	}

	entries, err := s.repo.ListLogs(ctx, medicationID, limit)
	if err != nil {
		return transport.LogListResponse{}, err
	}

	resp := transport.LogListResponse{
		Items: make([]transport.LogEntryResponse, 0, len(entries)),
		Total: len(entries),
	}
	for _, e := range entries {
		resp.Items = append(resp.Items, transport.LogEntryResponse{
			ID:            e.ID,
			MedicationID:  e.MedicationID,
			PreviousCount: e.PreviousCount,
			NewCount:      e.NewCount,
			Delta:         e.NewCount - e.PreviousCount,
			Reason:        e.Reason,
			CreatedAt:     e.CreatedAt,
		})
	}
	return resp, nil
}

// ListLowStock retrieves active medications at or below the stock threshold.
func (s *Service) ListLowStock(ctx context.Context) (transport.LowStockResponse, error) {
	items, err := s.repo.ListLowStock(ctx, s.threshold)
	if err != nil {
		return transport.LowStockResponse{}, err
	}

	metrics.LowStockMedications.Set(float64(len(items)))

	resp := transport.LowStockResponse{
		Items:     make([]transport.LowStockItemResponse, 0, len(items)),
		Threshold: s.threshold,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, transport.LowStockItemResponse{
			Inventory:      toInventoryResponse(item.Inventory),
			MedicationName: item.MedicationName,
		})
	}
	return resp, nil
}

func (s *Service) publishAdjusted(ctx context.Context, medicationID uuid.UUID, previous, current int, reason string) {
	s.bus.Publish(ctx, events.InventoryAdjusted{
		BaseEvent:     events.NewBaseEvent(),
		MedicationID:  medicationID,
		PreviousCount: previous,
		NewCount:      current,
		Reason:        reason,
	})
}

func toInventoryResponse(inv repository.Inventory) transport.InventoryResponse {
	return transport.InventoryResponse{
		ID:           inv.ID,
		MedicationID: inv.MedicationID,
		CurrentCount: inv.CurrentCount,
		PackagesN1:   inv.PackagesN1,
		PackagesN2:   inv.PackagesN2,
		PackagesN3:   inv.PackagesN3,
		UpdatedAt:    inv.UpdatedAt,
	}
}
