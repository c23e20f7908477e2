package brand

import (
	"context"

	"github.com/dcastano/optica-inventory/internal/brand/dto"
	"github.com/dcastano/optica-inventory/internal/model"
)

type UseCase interface {
	CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error)
	GetBrand(ctx context.Context, id string) (*model.Brand, error)
	// ListBrands returns active brands only; deactivated brands stay reachable
	// through GetBrand.
	ListBrands(ctx context.Context) ([]model.Brand, error)
	UpdateBrand(ctx context.Context, input *dto.UpdateBrandInput) (*model.Brand, error)
	// DeactivateBrand soft-deletes: the record is never physically removed.
	DeactivateBrand(ctx context.Context, id string) error
}
