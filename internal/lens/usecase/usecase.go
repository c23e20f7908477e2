package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dcastano/optica-inventory/internal/apperr"
	"github.com/dcastano/optica-inventory/internal/brand"
	"github.com/dcastano/optica-inventory/internal/filter"
	"github.com/dcastano/optica-inventory/internal/lens"
	"github.com/dcastano/optica-inventory/internal/lens/dto"
	"github.com/dcastano/optica-inventory/internal/metrics"
	"github.com/dcastano/optica-inventory/internal/model"
	"github.com/dcastano/optica-inventory/internal/pricing"
	"github.com/dcastano/optica-inventory/internal/report"
	"github.com/dcastano/optica-inventory/pkg/logger"
)

type lensUseCase struct {
	repo    lens.Repository
	brands  brand.Repository
	layout  report.Layout
	metrics *metrics.Metrics
	logger  logger.ZapLogger
}

func NewLensUseCase(repo lens.Repository, brands brand.Repository, m *metrics.Metrics, log logger.ZapLogger) lens.UseCase {
	return &lensUseCase{
		repo:    repo,
		brands:  brands,
		layout:  report.DefaultLayout(),
		metrics: m,
		logger:  log,
	}
}

func (uc *lensUseCase) CreateLens(ctx context.Context, input *dto.CreateLensInput) (*model.Lens, error) {
	modelName := strings.TrimSpace(input.Model)
	if modelName == "" {
		return nil, fmt.Errorf("%w: model is required", apperr.ErrValidation)
	}
	lotNumber := strings.TrimSpace(input.LotNumber)
	if lotNumber == "" {
		return nil, fmt.Errorf("%w: lot number is required", apperr.ErrValidation)
	}
	code := strings.TrimSpace(input.IdentificationCode)
	if code == "" {
		return nil, fmt.Errorf("%w: identification code is required", apperr.ErrValidation)
	}
	if input.QuantityOnHand < 0 {
		return nil, fmt.Errorf("%w: quantity on hand must be non-negative", apperr.ErrValidation)
	}
	if input.BrandID == "" {
		return nil, fmt.Errorf("%w: brand_id is required", apperr.ErrValidation)
	}

	status := model.StatusInInventory
	if input.Status != "" {
		status = model.LensStatus(input.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, input.Status)
		}
	}

	// Deactivated brands are not newly assignable.
	b, err := uc.brands.FindByID(ctx, input.BrandID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: brand %s", apperr.ErrNotFound, input.BrandID)
	}
	if !b.Active {
		return nil, fmt.Errorf("%w: brand %q is deactivated", apperr.ErrValidation, b.Name)
	}

	unique, err := uc.repo.IsCodeUnique(ctx, code, "")
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, fmt.Errorf("%w: identification code %q already exists", apperr.ErrValidation, code)
	}

	finalPrice, err := pricing.FinalPrice(input.BasePrice, input.DiscountPercent)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	l := &model.Lens{
		BaseModel:          model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Model:              modelName,
		BrandID:            input.BrandID,
		BasePrice:          input.BasePrice,
		DiscountPercent:    input.DiscountPercent,
		FinalPrice:         finalPrice,
		QuantityOnHand:     input.QuantityOnHand,
		LotNumber:          lotNumber,
		IdentificationCode: code,
		Status:             status,
	}

	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	uc.logger.Info("lens created",
		zap.String("lens_id", l.ID),
		zap.String("model", l.Model),
		zap.String("lot_number", l.LotNumber))
	return l, nil
}

func (uc *lensUseCase) GetLens(ctx context.Context, id string) (*model.Lens, error) {
	l, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: lens %s", apperr.ErrNotFound, id)
	}
	return l, nil
}

func (uc *lensUseCase) ListLenses(ctx context.Context, filters *dto.LensFilters) ([]model.Lens, error) {
	if filters != nil && filters.Status != "" && !model.LensStatus(filters.Status).Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, filters.Status)
	}
	return uc.repo.FindAll(ctx, filters.Spec())
}

// UpdateLens merges the supplied fields over the stored record and recomputes
// the final price whenever base price or discount is touched. The stored value
// of the untouched field feeds the recomputation, never a default.
func (uc *lensUseCase) UpdateLens(ctx context.Context, input *dto.UpdateLensInput) (*model.Lens, error) {
	l, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: lens %s", apperr.ErrNotFound, input.ID)
	}

	if input.Model != nil {
		modelName := strings.TrimSpace(*input.Model)
		if modelName == "" {
			return nil, fmt.Errorf("%w: model is required", apperr.ErrValidation)
		}
		l.Model = modelName
	}
	if input.BrandID != nil && *input.BrandID != l.BrandID {
		b, err := uc.brands.FindByID(ctx, *input.BrandID)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, fmt.Errorf("%w: brand %s", apperr.ErrNotFound, *input.BrandID)
		}
		if !b.Active {
			return nil, fmt.Errorf("%w: brand %q is deactivated", apperr.ErrValidation, b.Name)
		}
		l.BrandID = *input.BrandID
	}
	if input.LotNumber != nil {
		lotNumber := strings.TrimSpace(*input.LotNumber)
		if lotNumber == "" {
			return nil, fmt.Errorf("%w: lot number is required", apperr.ErrValidation)
		}
		l.LotNumber = lotNumber
	}
	if input.IdentificationCode != nil {
		code := strings.TrimSpace(*input.IdentificationCode)
		if code == "" {
			return nil, fmt.Errorf("%w: identification code is required", apperr.ErrValidation)
		}
		if code != l.IdentificationCode {
			unique, err := uc.repo.IsCodeUnique(ctx, code, l.ID)
			if err != nil {
				return nil, err
			}
			if !unique {
				return nil, fmt.Errorf("%w: identification code %q already exists", apperr.ErrValidation, code)
			}
		}
		l.IdentificationCode = code
	}
	if input.QuantityOnHand != nil {
		if *input.QuantityOnHand < 0 {
			return nil, fmt.Errorf("%w: quantity on hand must be non-negative", apperr.ErrValidation)
		}
		l.QuantityOnHand = *input.QuantityOnHand
	}
	if input.Status != nil {
		// Administrative override: Sold is directly settable here, unlike the
		// sale path which only reaches it through depletion.
		status := model.LensStatus(*input.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, *input.Status)
		}
		l.Status = status
	}

	if input.BasePrice != nil || input.DiscountPercent != nil {
		if input.BasePrice != nil {
			l.BasePrice = *input.BasePrice
		}
		if input.DiscountPercent != nil {
			l.DiscountPercent = *input.DiscountPercent
		}
		finalPrice, err := pricing.FinalPrice(l.BasePrice, l.DiscountPercent)
		if err != nil {
			return nil, err
		}
		l.FinalPrice = finalPrice
	}

	l.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *lensUseCase) DeleteLens(ctx context.Context, id string) error {
	l, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if l == nil {
		return fmt.Errorf("%w: lens %s", apperr.ErrNotFound, id)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *lensUseCase) SellLens(ctx context.Context, id string) (*model.Lens, error) {
	l, err := uc.repo.DecrementStock(ctx, id)
	if err != nil {
		if apperr.IsOutOfStock(err) {
			uc.metrics.SaleOutOfStock()
		}
		return nil, err
	}

	uc.metrics.SaleRecorded()
	uc.logger.Info("lens sold",
		zap.String("lens_id", l.ID),
		zap.Int("quantity_on_hand", l.QuantityOnHand),
		zap.String("status", string(l.Status)))
	return l, nil
}

func (uc *lensUseCase) GenerateLotReport(ctx context.Context, lotNumber string) (*report.Document, error) {
	lotNumber = strings.TrimSpace(lotNumber)
	if lotNumber == "" {
		return nil, fmt.Errorf("%w: lot number is required", apperr.ErrValidation)
	}

	lenses, err := uc.repo.FindAll(ctx, filter.Spec{
		{Field: filter.FieldLot, Op: filter.OpEq, Value: lotNumber},
	})
	if err != nil {
		return nil, err
	}

	brandNames, err := uc.brandNames(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]report.Row, 0, len(lenses))
	for _, l := range lenses {
		rows = append(rows, report.Row{
			Model:              l.Model,
			BrandName:          brandNames[l.BrandID],
			BasePrice:          l.BasePrice,
			DiscountPercent:    l.DiscountPercent,
			FinalPrice:         l.FinalPrice,
			QuantityOnHand:     l.QuantityOnHand,
			Status:             string(l.Status),
			IdentificationCode: l.IdentificationCode,
		})
	}

	doc, err := uc.layout.Build(lotNumber, rows, time.Now())
	if err != nil {
		return nil, err
	}

	uc.metrics.ReportGenerated()
	uc.logger.Info("lot report generated",
		zap.String("lot_number", lotNumber),
		zap.Int("records", doc.TotalCount),
		zap.Int("pages", len(doc.Pages)))
	return doc, nil
}

func (uc *lensUseCase) brandNames(ctx context.Context) (map[string]string, error) {
	brands, err := uc.brands.FindAll(ctx, false)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(brands))
	for _, b := range brands {
		names[b.ID] = b.Name
	}
	return names, nil
}
