package lens

import (
	"context"

	"github.com/dcastano/optica-inventory/internal/lens/dto"
	"github.com/dcastano/optica-inventory/internal/model"
	"github.com/dcastano/optica-inventory/internal/report"
)

type UseCase interface {
	CreateLens(ctx context.Context, input *dto.CreateLensInput) (*model.Lens, error)
	GetLens(ctx context.Context, id string) (*model.Lens, error)
	ListLenses(ctx context.Context, filters *dto.LensFilters) ([]model.Lens, error)
	UpdateLens(ctx context.Context, input *dto.UpdateLensInput) (*model.Lens, error)
	DeleteLens(ctx context.Context, id string) error
	// SellLens records the sale of a single unit, see Repository.DecrementStock.
	SellLens(ctx context.Context, id string) (*model.Lens, error)
	GenerateLotReport(ctx context.Context, lotNumber string) (*report.Document, error)
}
