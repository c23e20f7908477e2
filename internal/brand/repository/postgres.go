package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/dcastano/optica-inventory/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, b *model.Brand) error {
	query := `
        INSERT INTO brands (id, name, description, active, created_at, updated_at)
        VALUES (:id, :name, :description, :active, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, b)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Brand, error) {
	var brand model.Brand
	query := `SELECT * FROM brands WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &brand, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Brand, error) {
	var brand model.Brand
	query := `SELECT * FROM brands WHERE lower(name) = lower($1) LIMIT 1`
	err := r.DB.GetContext(ctx, &brand, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *PGRepository) FindAll(ctx context.Context, onlyActive bool) ([]model.Brand, error) {
	brands := []model.Brand{}
	query := `SELECT * FROM brands ORDER BY name`
	if onlyActive {
		query = `SELECT * FROM brands WHERE active = TRUE ORDER BY name`
	}
	if err := r.DB.SelectContext(ctx, &brands, query); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *PGRepository) Update(ctx context.Context, b *model.Brand) error {
	query := `
        UPDATE brands
        SET name = :name,
            description = :description,
            active = :active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, b)
	return err
}

func (r *PGRepository) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE brands SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	return err
}
