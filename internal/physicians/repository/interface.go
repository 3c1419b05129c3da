package repository

import (
	"context"

	"github.com/google/uuid"
)

// Physician is a prescribing doctor referenced by medications.
type Physician struct {
	ID        uuid.UUID
	Name      string
	Specialty *string
	Phone     *string
	Email     *string
	Address   *string
	Notes     *string
	CreatedAt string
	UpdatedAt string
}

// Repository defines persistence operations for physicians.
type Repository interface {
	Create(ctx context.Context, p Physician) (Physician, error)
	GetByID(ctx context.Context, id uuid.UUID) (Physician, error)
	Update(ctx context.Context, p Physician) (Physician, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]Physician, error)
}
