package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mibarra/mibarra-api/internal/domain"
	"github.com/mibarra/mibarra-api/internal/domain/entity"
	"github.com/mibarra/mibarra-api/internal/domain/repository"
)

var _ repository.BottleRepository = (*BottleRepo)(nil)

// BottleRepo implementación del puerto BottleRepository sobre PostgreSQL (usable con pool o tx).
type BottleRepo struct {
	q Querier
}

// NewBottleRepository construye el adaptador de persistencia para botellas. Pasar pool o tx (Querier).
func NewBottleRepository(q Querier) *BottleRepo {
	return &BottleRepo{q: q}
}

// Create persiste una nueva botella del catálogo.
func (r *BottleRepo) Create(ctx context.Context, b *entity.Bottle) error {
	query := `
		INSERT INTO bottles (id, bar_id, name, brand, category, capacity_ml, remaining_ml, capacity_units, remaining_units, image_url, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.BarID, b.Name, b.Brand, b.Category,
		b.Capacity, b.Remaining, b.CapacityUnits, b.RemainingUnits,
		b.ImageURL, b.Type, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bottle: %w", err)
	}
	return nil
}

// GetByID obtiene una botella por ID.
func (r *BottleRepo) GetByID(ctx context.Context, id string) (*entity.Bottle, error) {
	query := `
		SELECT id, bar_id, name, brand, category, capacity_ml, remaining_ml, capacity_units, remaining_units, image_url, type, created_at, updated_at
		FROM bottles WHERE id = $1`
	var b entity.Bottle
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.BarID, &b.Name, &b.Brand, &b.Category,
		&b.Capacity, &b.Remaining, &b.CapacityUnits, &b.RemainingUnits,
		&b.ImageURL, &b.Type, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bottle: %w", err)
	}
	return &b, nil
}

// ListByBar lista el catálogo completo de una barra en orden estable
// (created_at, id). El motor de reconciliación depende de este orden.
func (r *BottleRepo) ListByBar(ctx context.Context, barID string) ([]entity.Bottle, error) {
	query := `
		SELECT id, bar_id, name, brand, category, capacity_ml, remaining_ml, capacity_units, remaining_units, image_url, type, created_at, updated_at
		FROM bottles WHERE bar_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, barID)
	if err != nil {
		return nil, fmt.Errorf("list bottles: %w", err)
	}
	defer rows.Close()
	var list []entity.Bottle
	for rows.Next() {
		var b entity.Bottle
		if err := rows.Scan(&b.ID, &b.BarID, &b.Name, &b.Brand, &b.Category,
			&b.Capacity, &b.Remaining, &b.CapacityUnits, &b.RemainingUnits,
			&b.ImageURL, &b.Type, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bottle: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de una botella.
func (r *BottleRepo) Update(ctx context.Context, b *entity.Bottle) error {
	query := `
		UPDATE bottles SET name = $2, brand = $3, category = $4, capacity_ml = $5, capacity_units = $6, image_url = $7, type = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Name, b.Brand, b.Category, b.Capacity, b.CapacityUnits,
		b.ImageURL, b.Type, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bottle: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo los campos de stock (usado por la importación de ventas).
func (r *BottleRepo) UpdateStock(ctx context.Context, b *entity.Bottle) error {
	_, err := r.q.Exec(ctx,
		`UPDATE bottles SET remaining_ml = $2, remaining_units = $3, updated_at = now() WHERE id = $1`,
		b.ID, b.Remaining, b.RemainingUnits,
	)
	if err != nil {
		return fmt.Errorf("update bottle stock: %w", err)
	}
	return nil
}

// Delete elimina una botella por ID.
func (r *BottleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM bottles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bottle: %w", err)
	}
	return nil
}
