package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"medtrack_backend/internal/events"
	"medtrack_backend/internal/inventory/repository"
	"medtrack_backend/internal/inventory/transport"
	"medtrack_backend/platform/apperr"
	"medtrack_backend/platform/logger"
)

// testRepo is an in-memory Repository keyed by medication ID.
type testRepo struct {
	counts map[uuid.UUID]int
	logs   map[uuid.UUID][]repository.LogEntry
}

func newTestRepo() *testRepo {
	return &testRepo{
		counts: make(map[uuid.UUID]int),
		logs:   make(map[uuid.UUID][]repository.LogEntry),
	}
}

func (r *testRepo) row(medicationID uuid.UUID) repository.Inventory {
	return repository.Inventory{
		ID:           uuid.New(),
		MedicationID: medicationID,
		CurrentCount: r.counts[medicationID],
	}
}

func (r *testRepo) appendLog(medicationID uuid.UUID, previous, next int, reason string) {
	r.logs[medicationID] = append(r.logs[medicationID], repository.LogEntry{
		ID:            uuid.New(),
		MedicationID:  medicationID,
		PreviousCount: previous,
		NewCount:      next,
		Reason:        reason,
	})
}

func (r *testRepo) GetByMedication(_ context.Context, medicationID uuid.UUID) (repository.Inventory, error) {
	if _, ok := r.counts[medicationID]; !ok {
		return repository.Inventory{}, apperr.NotFound("inventory not found")
	}
	return r.row(medicationID), nil
}

func (r *testRepo) SetCount(_ context.Context, medicationID uuid.UUID, newCount int, reason string) (repository.Inventory, int, error) {
	previous := r.counts[medicationID]
	r.counts[medicationID] = newCount
	r.appendLog(medicationID, previous, newCount, reason)
	return r.row(medicationID), previous, nil
}

func (r *testRepo) DeductCount(_ context.Context, medicationID uuid.UUID, units int, reason string) (repository.Inventory, int, error) {
	previous := r.counts[medicationID]
	next := previous - units
	if next < 0 {
		next = 0
	}
	r.counts[medicationID] = next
	r.appendLog(medicationID, previous, next, reason)
	return r.row(medicationID), previous, nil
}

func (r *testRepo) SetPackageCounts(_ context.Context, medicationID uuid.UUID, n1, n2, n3 int) (repository.Inventory, error) {
	inv := r.row(medicationID)
	inv.PackagesN1 = n1
	inv.PackagesN2 = n2
	inv.PackagesN3 = n3
	return inv, nil
}

func (r *testRepo) ListLogs(_ context.Context, medicationID uuid.UUID, limit int) ([]repository.LogEntry, error) {
	entries := r.logs[medicationID]
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

func (r *testRepo) ListLowStock(_ context.Context, threshold int) ([]repository.LowStockItem, error) {
	var items []repository.LowStockItem
	for medicationID, count := range r.counts {
		if count <= threshold {
			items = append(items, repository.LowStockItem{
				Inventory:      repository.Inventory{MedicationID: medicationID, CurrentCount: count},
				MedicationName: "Medication",
			})
		}
	}
	return items, nil
}

type testBus struct {
	published []events.Event
}

func (b *testBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *testBus) PublishSync(_ context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *testBus) Subscribe(string, events.Handler) {}

func TestAdjustPublishesEvent(t *testing.T) {
	repo := newTestRepo()
	bus := &testBus{}
	svc := New(repo, bus, logger.New("development"), 10)

	medID := uuid.New()
	repo.counts[medID] = 5

	resp, err := svc.Adjust(context.Background(), medID, transport.AdjustInventoryRequest{
		NewCount: 42,
		Reason:   "stocktake",
	})
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if resp.CurrentCount != 42 {
		t.Errorf("CurrentCount = %d, want 42", resp.CurrentCount)
	}

	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}
	adjusted, ok := bus.published[0].(events.InventoryAdjusted)
	if !ok {
		t.Fatalf("published event type = %T, want InventoryAdjusted", bus.published[0])
	}
	if adjusted.MedicationID != medID || adjusted.PreviousCount != 5 || adjusted.NewCount != 42 {
		t.Errorf("event = %+v, want medication %s 5 -> 42", adjusted, medID)
	}
	if adjusted.Reason != "stocktake" {
		t.Errorf("Reason = %q, want stocktake", adjusted.Reason)
	}
}

func TestDeductFloorsAtZero(t *testing.T) {
	repo := newTestRepo()
	bus := &testBus{}
	svc := New(repo, bus, logger.New("development"), 10)

	medID := uuid.New()
	repo.counts[medID] = 3

	resp, err := svc.Deduct(context.Background(), medID, transport.DeductInventoryRequest{
		Units:  10,
		Reason: "dose taken",
	})
	if err != nil {
		t.Fatalf("Deduct: %v", err)
	}
	if resp.CurrentCount != 0 {
		t.Errorf("CurrentCount = %d, want 0", resp.CurrentCount)
	}

	adjusted := bus.published[0].(events.InventoryAdjusted)
	if adjusted.PreviousCount != 3 || adjusted.NewCount != 0 {
		t.Errorf("event = %+v, want 3 -> 0", adjusted)
	}
}

func TestListLogsComputesDelta(t *testing.T) {
	repo := newTestRepo()
	svc := New(repo, &testBus{}, logger.New("development"), 10)

	medID := uuid.New()
	repo.appendLog(medID, 10, 4, "dose taken")
	repo.appendLog(medID, 4, 30, "refill")

	resp, err := svc.ListLogs(context.Background(), medID, 50)
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("Total = %d, want 2", resp.Total)
	}
	if resp.Items[0].Delta != -6 {
		t.Errorf("first Delta = %d, want -6", resp.Items[0].Delta)
	}
	if resp.Items[1].Delta != 26 {
		t.Errorf("second Delta = %d, want 26", resp.Items[1].Delta)
	}
}

func TestListLogsClampsLimit(t *testing.T) {
	repo := newTestRepo()
	svc := New(repo, &testBus{}, logger.New("development"), 10)

	medID := uuid.New()
	for i := 0; i < 60; i++ {
		repo.appendLog(medID, i, i+1, "refill")
	}

	// Out-of-range limits fall back to the default of 50.
	for _, limit := range []int{0, -5, 1000} {
		resp, err := svc.ListLogs(context.Background(), medID, limit)
		if err != nil {
			t.Fatalf("ListLogs(limit=%d): %v", limit, err)
		}
		if resp.Total != 50 {
			t.Errorf("ListLogs(limit=%d) Total = %d, want 50", limit, resp.Total)
		}
	}
}

func TestListLowStockUsesThreshold(t *testing.T) {
	repo := newTestRepo()
	svc := New(repo, &testBus{}, logger.New("development"), 10)

	lowID := uuid.New()
	okID := uuid.New()
	repo.counts[lowID] = 3
	repo.counts[okID] = 25

	resp, err := svc.ListLowStock(context.Background())
	if err != nil {
		t.Fatalf("ListLowStock: %v", err)
	}
	if resp.Threshold != 10 {
		t.Errorf("Threshold = %d, want 10", resp.Threshold)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(resp.Items))
	}
	if resp.Items[0].Inventory.MedicationID != lowID {
		t.Errorf("low stock medication = %s, want %s", resp.Items[0].Inventory.MedicationID, lowID)
	}
}
