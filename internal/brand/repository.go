package brand

import (
	"context"

	"github.com/dcastano/optica-inventory/internal/model"
)

type Repository interface {
	Create(ctx context.Context, brand *model.Brand) error
	// FindByID returns (nil, nil) when the brand does not exist.
	FindByID(ctx context.Context, id string) (*model.Brand, error)
	// FindByName matches the trimmed name case-insensitively; (nil, nil) when absent.
	FindByName(ctx context.Context, name string) (*model.Brand, error)
	FindAll(ctx context.Context, onlyActive bool) ([]model.Brand, error)
	Update(ctx context.Context, brand *model.Brand) error
	SetActive(ctx context.Context, id string, active bool) error
}
