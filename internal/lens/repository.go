package lens

import (
	"context"

	"github.com/dcastano/optica-inventory/internal/filter"
	"github.com/dcastano/optica-inventory/internal/model"
)

type Repository interface {
	Create(ctx context.Context, lens *model.Lens) error
	// FindByID returns (nil, nil) when the lens does not exist.
	FindByID(ctx context.Context, id string) (*model.Lens, error)
	// FindAll returns lenses matching every condition of spec, in listing order.
	// An empty spec returns everything.
	FindAll(ctx context.Context, spec filter.Spec) ([]model.Lens, error)
	Update(ctx context.Context, lens *model.Lens) error
	Delete(ctx context.Context, id string) error
	IsCodeUnique(ctx context.Context, code, excludeID string) (bool, error)

	// DecrementStock is the atomic decrement-if-positive sale primitive: it
	// subtracts exactly 1 from quantity_on_hand, flips status to Sold when the
	// result is zero, and returns the updated record. It fails with
	// apperr.ErrNotFound for an unknown id and apperr.ErrOutOfStock when the
	// quantity is already zero; two concurrent calls can never both succeed on
	// a quantity of 1.
	DecrementStock(ctx context.Context, id string) (*model.Lens, error)
}
