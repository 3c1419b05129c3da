package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"medtrack_backend/internal/physicians/repository"
	"medtrack_backend/internal/physicians/transport"
	"medtrack_backend/platform/apperr"
	"medtrack_backend/platform/logger"
)

type testRepo struct {
	physicians map[uuid.UUID]repository.Physician
}

func newTestRepo() *testRepo {
	return &testRepo{physicians: make(map[uuid.UUID]repository.Physician)}
}

func (r *testRepo) Create(_ context.Context, p repository.Physician) (repository.Physician, error) {
	p.ID = uuid.New()
	r.physicians[p.ID] = p
	return p, nil
}

func (r *testRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Physician, error) {
	p, ok := r.physicians[id]
	if !ok {
		return repository.Physician{}, apperr.NotFound("physician not found")
	}
	return p, nil
}

func (r *testRepo) Update(_ context.Context, p repository.Physician) (repository.Physician, error) {
	if _, ok := r.physicians[p.ID]; !ok {
		return repository.Physician{}, apperr.NotFound("physician not found")
	}
	r.physicians[p.ID] = p
	return p, nil
}

func (r *testRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.physicians[id]; !ok {
		return apperr.NotFound("physician not found")
	}
	delete(r.physicians, id)
	return nil
}

func (r *testRepo) List(_ context.Context) ([]repository.Physician, error) {
	items := make([]repository.Physician, 0, len(r.physicians))
	for _, p := range r.physicians {
		items = append(items, p)
	}
	return items, nil
}

func strptr(s string) *string { return &s }

func TestCreateNormalizesPhone(t *testing.T) {
	svc := New(newTestRepo(), logger.New("development"), "DE")

	created, err := svc.Create(context.Background(), transport.CreatePhysicianRequest{
		Name:  "Dr. Weber",
		Phone: strptr("+49 151 23456789"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Phone == nil || *created.Phone != "+4915123456789" {
		t.Errorf("Phone = %v, want +4915123456789", created.Phone)
	}
}

func TestCreateKeepsUnparsablePhone(t *testing.T) {
	svc := New(newTestRepo(), logger.New("development"), "DE")

	created, err := svc.Create(context.Background(), transport.CreatePhysicianRequest{
		Name:  "Dr. Weber",
		Phone: strptr("ext. 4711"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Phone == nil || *created.Phone != "ext. 4711" {
		t.Errorf("Phone = %v, want input preserved", created.Phone)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc := New(newTestRepo(), logger.New("development"), "DE")

	created, err := svc.Create(context.Background(), transport.CreatePhysicianRequest{
		Name:      "Dr. Weber",
		Specialty: strptr("Cardiology"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, transport.UpdatePhysicianRequest{
		Specialty: strptr("Internal Medicine"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Dr. Weber" {
		t.Errorf("Name = %q, want unchanged", updated.Name)
	}
	if updated.Specialty == nil || *updated.Specialty != "Internal Medicine" {
		t.Errorf("Specialty = %v, want Internal Medicine", updated.Specialty)
	}
}

func TestDeleteMissingPhysician(t *testing.T) {
	svc := New(newTestRepo(), logger.New("development"), "DE")

	err := svc.Delete(context.Background(), uuid.New())
	if kind := apperr.GetKind(err); kind != apperr.KindNotFound {
		t.Errorf("error kind = %v, want KindNotFound", kind)
	}
}
