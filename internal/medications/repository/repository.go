package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"medtrack_backend/platform/apperr"
)

const (
	medicationNotFoundMessage = "medication not found"
	packageNotFoundMessage    = "package not found"
	uniqueViolationCode       = "23505"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new medications repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const medicationColumns = `id, name, active_ingredient, dosage_form, strength, notes, physician_id, aut_idem, is_active, created_at, updated_at`

// Create inserts a new medication.
func (r *Repo) Create(ctx context.Context, m Medication) (Medication, error) {
	query := `
		INSERT INTO medications (id, name, active_ingredient, dosage_form, strength, notes, physician_id, aut_idem, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + medicationColumns

	row := r.pool.QueryRow(ctx, query,
		uuid.New(), m.Name, m.ActiveIngredient, m.DosageForm, m.Strength, m.Notes, m.PhysicianID, m.AutIdem, m.IsActive,
	)
	created, err := scanMedication(row)
	if err != nil {
		return Medication{}, fmt.Errorf("create medication: %w", err)
	}
	return created, nil
}

// GetByID retrieves a medication by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE id = $1`

	m, err := scanMedication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Medication{}, apperr.NotFound(medicationNotFoundMessage)
		}
		return Medication{}, fmt.Errorf("get medication by id: %w", err)
	}
	return m, nil
}

// Update modifies an existing medication.
func (r *Repo) Update(ctx context.Context, m Medication) (Medication, error) {
	query := `
		UPDATE medications
		SET name = $2, active_ingredient = $3, dosage_form = $4, strength = $5,
			notes = $6, physician_id = $7, aut_idem = $8, is_active = $9, updated_at = now()
		WHERE id = $1
		RETURNING ` + medicationColumns

	row := r.pool.QueryRow(ctx, query,
		m.ID, m.Name, m.ActiveIngredient, m.DosageForm, m.Strength, m.Notes, m.PhysicianID, m.AutIdem, m.IsActive,
	)
	updated, err := scanMedication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Medication{}, apperr.NotFound(medicationNotFoundMessage)
		}
		return Medication{}, fmt.Errorf("update medication: %w", err)
	}
	return updated, nil
}

// Delete removes a medication and, via cascade, its packages.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(medicationNotFoundMessage)
	}
	return nil
}

// List retrieves medications with search, active filter, pagination, and sorting.
func (r *Repo) List(ctx context.Context, params ListParams) ([]Medication, int, error) {
	var searchParam interface{}
	if params.Search != "" {
		searchParam = "%" + params.Search + "%"
	}
	var isActiveParam interface{}
	if params.IsActive != nil {
		isActiveParam = *params.IsActive
	}

	sortBy := "name"
	if params.SortBy != "" {
		switch params.SortBy {
		case "name", "createdAt", "updatedAt":
			sortBy = params.SortBy
		default:
			return nil, 0, apperr.BadRequest("invalid sort field")
		}
	}

	sortOrder := "asc"
	if params.SortOrder != "" {
		switch params.SortOrder {
		case "asc", "desc":
			sortOrder = params.SortOrder
		default:
			return nil, 0, apperr.BadRequest("invalid sort order")
		}
	}

	args := []interface{}{searchParam, isActiveParam}

	countQuery := `
		SELECT COUNT(*)
		FROM medications
		WHERE ($1::text IS NULL OR name ILIKE $1 OR active_ingredient ILIKE $1)
			AND ($2::boolean IS NULL OR is_active = $2)
	`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count medications: %w", err)
	}

	query := `
		SELECT ` + medicationColumns + `
		FROM medications
		WHERE ($1::text IS NULL OR name ILIKE $1 OR active_ingredient ILIKE $1)
			AND ($2::boolean IS NULL OR is_active = $2)
		ORDER BY
			CASE WHEN $3 = 'name' AND $4 = 'asc' THEN name END ASC,
			CASE WHEN $3 = 'name' AND $4 = 'desc' THEN name END DESC,
			CASE WHEN $3 = 'createdAt' AND $4 = 'asc' THEN created_at END ASC,
			CASE WHEN $3 = 'createdAt' AND $4 = 'desc' THEN created_at END DESC,
			CASE WHEN $3 = 'updatedAt' AND $4 = 'asc' THEN updated_at END ASC,
			CASE WHEN $3 = 'updatedAt' AND $4 = 'desc' THEN updated_at END DESC,
			name ASC
		LIMIT $5 OFFSET $6
	`

	args = append(args, sortBy, sortOrder, params.Limit, params.Offset)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	items := make([]Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan medication: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list medications: %w", err)
	}

	return items, total, nil
}

const packageColumns = `id, medication_id, package_size, quantity, national_number, national_number_type, manufacturer, list_price_cents, is_active, created_at, updated_at`

// CreatePackage inserts a new product package for a medication.
func (r *Repo) CreatePackage(ctx context.Context, p ProductPackage) (ProductPackage, error) {
	query := `
		INSERT INTO product_packages (id, medication_id, package_size, quantity, national_number, national_number_type, manufacturer, list_price_cents, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + packageColumns

	row := r.pool.QueryRow(ctx, query,
		uuid.New(), p.MedicationID, p.PackageSize, p.Quantity, p.NationalNumber, p.NationalNumberType, p.Manufacturer, p.ListPriceCents, p.IsActive,
	)
	created, err := scanPackage(row)
	if err != nil {
		if isUniqueViolation(err) {
			return ProductPackage{}, apperr.Conflict("a package with this national number already exists")
		}
		if isForeignKeyViolation(err) {
			return ProductPackage{}, apperr.NotFound(medicationNotFoundMessage)
		}
		return ProductPackage{}, fmt.Errorf("create package: %w", err)
	}
	return created, nil
}

// GetPackageByID retrieves a package by its ID.
func (r *Repo) GetPackageByID(ctx context.Context, id uuid.UUID) (ProductPackage, error) {
	query := `SELECT ` + packageColumns + ` FROM product_packages WHERE id = $1`

	p, err := scanPackage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProductPackage{}, apperr.NotFound(packageNotFoundMessage)
		}
		return ProductPackage{}, fmt.Errorf("get package by id: %w", err)
	}
	return p, nil
}

// UpdatePackage modifies an existing package.
func (r *Repo) UpdatePackage(ctx context.Context, p ProductPackage) (ProductPackage, error) {
	query := `
		UPDATE product_packages
		SET package_size = $2, quantity = $3, national_number = $4, national_number_type = $5,
			manufacturer = $6, list_price_cents = $7, is_active = $8, updated_at = now()
		WHERE id = $1
		RETURNING ` + packageColumns

	row := r.pool.QueryRow(ctx, query,
		p.ID, p.PackageSize, p.Quantity, p.NationalNumber, p.NationalNumberType, p.Manufacturer, p.ListPriceCents, p.IsActive,
	)
	updated, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProductPackage{}, apperr.NotFound(packageNotFoundMessage)
		}
		if isUniqueViolation(err) {
			return ProductPackage{}, apperr.Conflict("a package with this national number already exists")
		}
		return ProductPackage{}, fmt.Errorf("update package: %w", err)
	}
	return updated, nil
}

// DeletePackage removes a package.
func (r *Repo) DeletePackage(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM product_packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(packageNotFoundMessage)
	}
	return nil
}

// ListPackages retrieves all packages for a medication ordered by size.
func (r *Repo) ListPackages(ctx context.Context, medicationID uuid.UUID) ([]ProductPackage, error) {
	query := `SELECT ` + packageColumns + ` FROM product_packages WHERE medication_id = $1 ORDER BY package_size ASC, quantity ASC`

	rows, err := r.pool.Query(ctx, query, medicationID)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	items := make([]ProductPackage, 0)
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	return items, nil
}

// FindPackageByNationalNumber looks up a package by its national number and
// scheme tag, joined with the medication name for scan responses.
func (r *Repo) FindPackageByNationalNumber(ctx context.Context, number, numberType string) (PackageMatch, error) {
	query := `
		SELECT p.id, p.medication_id, p.package_size, p.quantity, p.national_number, p.national_number_type,
			p.manufacturer, p.list_price_cents, p.is_active, p.created_at, p.updated_at, m.name
		FROM product_packages p
		JOIN medications m ON m.id = p.medication_id
		WHERE p.national_number = $1 AND p.national_number_type = $2`

	var match PackageMatch
	var createdAt, updatedAt time.Time

	err := r.pool.QueryRow(ctx, query, number, numberType).Scan(
		&match.Package.ID, &match.Package.MedicationID, &match.Package.PackageSize, &match.Package.Quantity,
		&match.Package.NationalNumber, &match.Package.NationalNumberType, &match.Package.Manufacturer,
		&match.Package.ListPriceCents, &match.Package.IsActive, &createdAt, &updatedAt, &match.MedicationName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PackageMatch{}, apperr.NotFound(packageNotFoundMessage)
		}
		return PackageMatch{}, fmt.Errorf("find package by national number: %w", err)
	}

	match.Package.CreatedAt = createdAt.Format(time.RFC3339)
	match.Package.UpdatedAt = updatedAt.Format(time.RFC3339)

	return match, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanMedication(row scannable) (Medication, error) {
	var m Medication
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&m.ID, &m.Name, &m.ActiveIngredient, &m.DosageForm, &m.Strength, &m.Notes,
		&m.PhysicianID, &m.AutIdem, &m.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return Medication{}, err
	}

	m.CreatedAt = createdAt.Format(time.RFC3339)
	m.UpdatedAt = updatedAt.Format(time.RFC3339)
	return m, nil
}

func scanPackage(row scannable) (ProductPackage, error) {
	var p ProductPackage
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&p.ID, &p.MedicationID, &p.PackageSize, &p.Quantity, &p.NationalNumber, &p.NationalNumberType,
		&p.Manufacturer, &p.ListPriceCents, &p.IsActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return ProductPackage{}, err
	}

	p.CreatedAt = createdAt.Format(time.RFC3339)
	p.UpdatedAt = updatedAt.Format(time.RFC3339)
	return p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
