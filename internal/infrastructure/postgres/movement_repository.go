package postgres

import (
	"context"
	"fmt"

	"github.com/mibarra/mibarra-api/internal/domain/entity"
	"github.com/mibarra/mibarra-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create registra una entrada de bitácora.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, bar_id, type, bottle_id, bottle_name, new_value, user_name, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.BarID, m.Type, m.BottleID, m.BottleName,
		m.NewValue, m.UserName, m.Description, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByBar lista movimientos de una barra, más recientes primero, con paginación.
func (r *MovementRepo) ListByBar(ctx context.Context, barID string, limit, offset int) ([]entity.Movement, error) {
	query := `
		SELECT id, bar_id, type, bottle_id, bottle_name, new_value, user_name, description, created_at
		FROM movements WHERE bar_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, barID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.BarID, &m.Type, &m.BottleID, &m.BottleName,
			&m.NewValue, &m.UserName, &m.Description, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
