package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mibarra/mibarra-api/internal/domain"
	"github.com/mibarra/mibarra-api/internal/domain/entity"
	"github.com/mibarra/mibarra-api/internal/domain/repository"
)

var _ repository.BarRepository = (*BarRepo)(nil)

// BarRepo implementación del puerto BarRepository sobre PostgreSQL (usable con pool o tx).
type BarRepo struct {
	q Querier
}

// NewBarRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBarRepository(q Querier) *BarRepo {
	return &BarRepo{q: q}
}

// Create persiste una nueva barra.
func (r *BarRepo) Create(ctx context.Context, b *entity.Bar) error {
	query := `
		INSERT INTO bars (id, user_id, name, soft_restaurant_code, last_import_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.UserID, b.Name, b.SoftRestaurantCode, b.LastImportAt, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bar: %w", err)
	}
	return nil
}

// GetByID obtiene una barra por ID.
func (r *BarRepo) GetByID(ctx context.Context, id string) (*entity.Bar, error) {
	query := `
		SELECT id, user_id, name, soft_restaurant_code, last_import_at, created_at, updated_at
		FROM bars WHERE id = $1`
	var b entity.Bar
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.UserID, &b.Name, &b.SoftRestaurantCode, &b.LastImportAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bar: %w", err)
	}
	return &b, nil
}

// GetByUser obtiene la barra de un usuario.
func (r *BarRepo) GetByUser(ctx context.Context, userID string) (*entity.Bar, error) {
	query := `
		SELECT id, user_id, name, soft_restaurant_code, last_import_at, created_at, updated_at
		FROM bars WHERE user_id = $1`
	var b entity.Bar
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&b.ID, &b.UserID, &b.Name, &b.SoftRestaurantCode, &b.LastImportAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bar by user: %w", err)
	}
	return &b, nil
}

// UpdateLastImport estampa la fecha de la última importación de ventas.
func (r *BarRepo) UpdateLastImport(ctx context.Context, barID string, at time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE bars SET last_import_at = $2, updated_at = now() WHERE id = $1`,
		barID, at,
	)
	if err != nil {
		return fmt.Errorf("update last import: %w", err)
	}
	return nil
}
