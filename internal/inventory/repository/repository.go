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
	inventoryNotFoundMessage  = "inventory not found"
	medicationNotFoundMessage = "medication not found"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inventory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const inventoryColumns = `id, medication_id, current_count, packages_n1, packages_n2, packages_n3, updated_at`

// GetByMedication retrieves the inventory row for a medication.
func (r *Repo) GetByMedication(ctx context.Context, medicationID uuid.UUID) (Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE medication_id = $1`

	inv, err := scanInventory(r.pool.QueryRow(ctx, query, medicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Inventory{}, apperr.NotFound(inventoryNotFoundMessage)
		}
		return Inventory{}, fmt.Errorf("get inventory: %w", err)
	}
	return inv, nil
}

// SetCount sets the absolute count and logs the change in one transaction.
func (r *Repo) SetCount(ctx context.Context, medicationID uuid.UUID, newCount int, reason string) (Inventory, int, error) {
	return r.mutateCount(ctx, medicationID, reason, func(current int) int {
		return newCount
	})
}

// DeductCount decrements the count, flooring at zero, and logs the change.
func (r *Repo) DeductCount(ctx context.Context, medicationID uuid.UUID, units int, reason string) (Inventory, int, error) {
	return r.mutateCount(ctx, medicationID, reason, func(current int) int {
		return deductFloored(current, units)
	})
}

// deductFloored returns the count after removing units, never below zero.
func deductFloored(current, units int) int {
	next := current - units
	if next < 0 {
		return 0
	}
	return next
}

func (r *Repo) mutateCount(ctx context.Context, medicationID uuid.UUID, reason string, next func(current int) int) (Inventory, int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Inventory{}, 0, fmt.Errorf("begin inventory tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Create the row on first use so callers never need a separate init step.
	upsert := `
		INSERT INTO inventory (id, medication_id, current_count)
		VALUES ($1, $2, 0)
		ON CONFLICT (medication_id) DO NOTHING`
	if _, err := tx.Exec(ctx, upsert, uuid.New(), medicationID); err != nil {
		if isForeignKeyViolation(err) {
			return Inventory{}, 0, apperr.NotFound(medicationNotFoundMessage)
		}
		return Inventory{}, 0, fmt.Errorf("ensure inventory row: %w", err)
	}

	var previous int
	lock := `SELECT current_count FROM inventory WHERE medication_id = $1 FOR UPDATE`
	if err := tx.QueryRow(ctx, lock, medicationID).Scan(&previous); err != nil {
		return Inventory{}, 0, fmt.Errorf("lock inventory row: %w", err)
	}

	newCount := next(previous)

	update := `
		UPDATE inventory SET current_count = $2, updated_at = now()
		WHERE medication_id = $1
		RETURNING ` + inventoryColumns
	inv, err := scanInventory(tx.QueryRow(ctx, update, medicationID, newCount))
	if err != nil {
		return Inventory{}, 0, fmt.Errorf("update inventory count: %w", err)
	}

	logInsert := `
		INSERT INTO inventory_log (id, medication_id, previous_count, new_count, reason)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.Exec(ctx, logInsert, uuid.New(), medicationID, previous, newCount, reason); err != nil {
		return Inventory{}, 0, fmt.Errorf("append inventory log: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Inventory{}, 0, fmt.Errorf("commit inventory tx: %w", err)
	}

	return inv, previous, nil
}

// SetPackageCounts updates the per-size package counts for a medication.
func (r *Repo) SetPackageCounts(ctx context.Context, medicationID uuid.UUID, n1, n2, n3 int) (Inventory, error) {
	query := `
		INSERT INTO inventory (id, medication_id, current_count, packages_n1, packages_n2, packages_n3)
		VALUES ($1, $2, 0, $3, $4, $5)
		ON CONFLICT (medication_id) DO UPDATE
		SET packages_n1 = $3, packages_n2 = $4, packages_n3 = $5, updated_at = now()
		RETURNING ` + inventoryColumns

	inv, err := scanInventory(r.pool.QueryRow(ctx, query, uuid.New(), medicationID, n1, n2, n3))
	if err != nil {
		if isForeignKeyViolation(err) {
			return Inventory{}, apperr.NotFound(medicationNotFoundMessage)
		}
		return Inventory{}, fmt.Errorf("set package counts: %w", err)
	}
	return inv, nil
}

// ListLogs retrieves the most recent log entries for a medication.
func (r *Repo) ListLogs(ctx context.Context, medicationID uuid.UUID, limit int) ([]LogEntry, error) {
	query := `
		SELECT id, medication_id, previous_count, new_count, reason, created_at
		FROM inventory_log
		WHERE medication_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, medicationID, limit)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	defer rows.Close()

	entries := make([]LogEntry, 0)
	for rows.Next() {
		var e LogEntry
		var createdAt time.Time
		if err := rows.Scan(&e.ID, &e.MedicationID, &e.PreviousCount, &e.NewCount, &e.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		e.CreatedAt = createdAt.Format(time.RFC3339)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}

	return entries, nil
}

// ListLowStock retrieves inventories at or below the threshold for active medications.
func (r *Repo) ListLowStock(ctx context.Context, threshold int) ([]LowStockItem, error) {
	query := `
		SELECT i.id, i.medication_id, i.current_count, i.packages_n1, i.packages_n2, i.packages_n3, i.updated_at, m.name
		FROM inventory i
		JOIN medications m ON m.id = i.medication_id
		WHERE i.current_count <= $1 AND m.is_active = true
		ORDER BY i.current_count ASC, m.name ASC`

	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	items := make([]LowStockItem, 0)
	for rows.Next() {
		var item LowStockItem
		var updatedAt time.Time
		err := rows.Scan(
			&item.Inventory.ID, &item.Inventory.MedicationID, &item.Inventory.CurrentCount,
			&item.Inventory.PackagesN1, &item.Inventory.PackagesN2, &item.Inventory.PackagesN3,
			&updatedAt, &item.MedicationName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		item.Inventory.UpdatedAt = updatedAt.Format(time.RFC3339)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}

	return items, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanInventory(row scannable) (Inventory, error) {
	var inv Inventory
	var updatedAt time.Time

	err := row.Scan(
		&inv.ID, &inv.MedicationID, &inv.CurrentCount,
		&inv.PackagesN1, &inv.PackagesN2, &inv.PackagesN3, &updatedAt,
	)
	if err != nil {
		return Inventory{}, err
	}

	inv.UpdatedAt = updatedAt.Format(time.RFC3339)
	return inv, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
