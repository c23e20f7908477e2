package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/dcastano/optica-inventory/internal/apperr"
	"github.com/dcastano/optica-inventory/internal/filter"
	"github.com/dcastano/optica-inventory/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, l *model.Lens) error {
	query := `
        INSERT INTO lenses (
            id, model, brand_id, base_price, discount_percent, final_price,
            quantity_on_hand, lot_number, identification_code, status,
            created_at, updated_at
        )
        VALUES (
            :id, :model, :brand_id, :base_price, :discount_percent, :final_price,
            :quantity_on_hand, :lot_number, :identification_code, :status,
            :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, l)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Lens, error) {
	var lens model.Lens
	query := `SELECT * FROM lenses WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &lens, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &lens, nil
}

func (r *PGRepository) FindAll(ctx context.Context, spec filter.Spec) ([]model.Lens, error) {
	conditions := []string{}
	args := []interface{}{}

	for _, c := range spec {
		column, ok := columnFor(c.Field)
		if !ok {
			return nil, fmt.Errorf("unknown filter field %q", c.Field)
		}
		switch c.Op {
		case filter.OpContains:
			args = append(args, c.Value)
			conditions = append(conditions, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", column, len(args)))
		case filter.OpEq:
			args = append(args, c.Value)
			conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
		case filter.OpGTE:
			args = append(args, c.Value)
			conditions = append(conditions, fmt.Sprintf("%s >= $%d", column, len(args)))
		case filter.OpLTE:
			args = append(args, c.Value)
			conditions = append(conditions, fmt.Sprintf("%s <= $%d", column, len(args)))
		default:
			return nil, fmt.Errorf("unknown filter operator %q", c.Op)
		}
	}

	query := `SELECT * FROM lenses`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at, id"

	lenses := []model.Lens{}
	if err := r.DB.SelectContext(ctx, &lenses, query, args...); err != nil {
		return nil, err
	}
	return lenses, nil
}

// columnFor whitelists filter fields against real columns so user input
// can never inject SQL.
func columnFor(field string) (string, bool) {
	switch field {
	case filter.FieldModel, filter.FieldBrandID, filter.FieldLot,
		filter.FieldStatus, filter.FieldPrice, filter.FieldQuantity:
		return field, true
	}
	return "", false
}

func (r *PGRepository) Update(ctx context.Context, l *model.Lens) error {
	query := `
        UPDATE lenses
        SET model = :model,
            brand_id = :brand_id,
            base_price = :base_price,
            discount_percent = :discount_percent,
            final_price = :final_price,
            quantity_on_hand = :quantity_on_hand,
            lot_number = :lot_number,
            identification_code = :identification_code,
            status = :status,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, l)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM lenses WHERE id = $1`, id)
	return err
}

func (r *PGRepository) IsCodeUnique(ctx context.Context, code, excludeID string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM lenses WHERE identification_code = $1`
	args := []interface{}{code}
	if excludeID != "" {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}

	if err := r.DB.GetContext(ctx, &count, query, args...); err != nil {
		return false, err
	}
	return count == 0, nil
}

// DecrementStock performs the sale as one conditional UPDATE so two concurrent
// sales can never both observe quantity 1. Zero rows updated means the row is
// either missing or depleted; a follow-up read disambiguates.
func (r *PGRepository) DecrementStock(ctx context.Context, id string) (*model.Lens, error) {
	var lens model.Lens
	query := `
        UPDATE lenses
        SET quantity_on_hand = quantity_on_hand - 1,
            status = CASE WHEN quantity_on_hand - 1 = 0 THEN 'Sold' ELSE status END,
            updated_at = now()
        WHERE id = $1 AND quantity_on_hand > 0
        RETURNING *
    `
	err := r.DB.GetContext(ctx, &lens, query, id)
	if err == nil {
		return &lens, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: lens %s", apperr.ErrNotFound, id)
	}
	return nil, fmt.Errorf("%w: lens %s has no stock left", apperr.ErrOutOfStock, id)
}
