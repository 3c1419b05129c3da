package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"medtrack_backend/platform/apperr"
)

const physicianNotFoundMessage = "physician not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new physicians repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const physicianColumns = `id, name, specialty, phone, email, address, notes, created_at, updated_at`

// Create inserts a new physician.
func (r *Repo) Create(ctx context.Context, p Physician) (Physician, error) {
	query := `
		INSERT INTO physicians (id, name, specialty, phone, email, address, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + physicianColumns

	created, err := scanPhysician(r.pool.QueryRow(ctx, query,
		uuid.New(), p.Name, p.Specialty, p.Phone, p.Email, p.Address, p.Notes,
	))
	if err != nil {
		return Physician{}, fmt.Errorf("create physician: %w", err)
	}
	return created, nil
}

// GetByID retrieves a physician by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Physician, error) {
	query := `SELECT ` + physicianColumns + ` FROM physicians WHERE id = $1`

	p, err := scanPhysician(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Physician{}, apperr.NotFound(physicianNotFoundMessage)
		}
		return Physician{}, fmt.Errorf("get physician by id: %w", err)
	}
	return p, nil
}

// Update modifies an existing physician.
func (r *Repo) Update(ctx context.Context, p Physician) (Physician, error) {
	query := `
		UPDATE physicians
		SET name = $2, specialty = $3, phone = $4, email = $5, address = $6, notes = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + physicianColumns

	updated, err := scanPhysician(r.pool.QueryRow(ctx, query,
		p.ID, p.Name, p.Specialty, p.Phone, p.Email, p.Address, p.Notes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Physician{}, apperr.NotFound(physicianNotFoundMessage)
		}
		return Physician{}, fmt.Errorf("update physician: %w", err)
	}
	return updated, nil
}

// Delete removes a physician. Medications referencing it keep a null link.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM physicians WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete physician: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(physicianNotFoundMessage)
	}
	return nil
}

// List retrieves all physicians ordered by name.
func (r *Repo) List(ctx context.Context) ([]Physician, error) {
	query := `SELECT ` + physicianColumns + ` FROM physicians ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list physicians: %w", err)
	}
	defer rows.Close()

	items := make([]Physician, 0)
	for rows.Next() {
		p, err := scanPhysician(rows)
		if err != nil {
			return nil, fmt.Errorf("scan physician: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list physicians: %w", err)
	}

	return items, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanPhysician(row scannable) (Physician, error) {
	var p Physician
	var createdAt, updatedAt time.Time

	err := row.Scan(&p.ID, &p.Name, &p.Specialty, &p.Phone, &p.Email, &p.Address, &p.Notes, &createdAt, &updatedAt)
	if err != nil {
		return Physician{}, err
	}

	p.CreatedAt = createdAt.Format(time.RFC3339)
	p.UpdatedAt = updatedAt.Format(time.RFC3339)
	return p, nil
}
