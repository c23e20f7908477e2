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
	"github.com/dcastano/optica-inventory/internal/brand/dto"
	"github.com/dcastano/optica-inventory/internal/model"
	"github.com/dcastano/optica-inventory/pkg/logger"
)

type brandUseCase struct {
	repo   brand.Repository
	logger logger.ZapLogger
}

func NewBrandUseCase(repo brand.Repository, log logger.ZapLogger) brand.UseCase {
	return &brandUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *brandUseCase) CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: brand name is required", apperr.ErrValidation)
	}

	existing, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: brand name %q already exists", apperr.ErrValidation, name)
	}

	now := time.Now()
	b := &model.Brand{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      name,
		Active:    true,
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		b.Description = &desc
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.logger.Info("brand created", zap.String("brand_id", b.ID), zap.String("name", b.Name))
	return b, nil
}

func (uc *brandUseCase) GetBrand(ctx context.Context, id string) (*model.Brand, error) {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: brand %s", apperr.ErrNotFound, id)
	}
	return b, nil
}

func (uc *brandUseCase) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return uc.repo.FindAll(ctx, true)
}

func (uc *brandUseCase) UpdateBrand(ctx context.Context, input *dto.UpdateBrandInput) (*model.Brand, error) {
	b, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: brand %s", apperr.ErrNotFound, input.ID)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: brand name is required", apperr.ErrValidation)
		}
		if !strings.EqualFold(name, b.Name) {
			existing, err := uc.repo.FindByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != b.ID {
				return nil, fmt.Errorf("%w: brand name %q already exists", apperr.ErrValidation, name)
			}
		}
		b.Name = name
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		if desc == "" {
			b.Description = nil
		} else {
			b.Description = &desc
		}
	}

	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *brandUseCase) DeactivateBrand(ctx context.Context, id string) error {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("%w: brand %s", apperr.ErrNotFound, id)
	}

	if err := uc.repo.SetActive(ctx, id, false); err != nil {
		return err
	}

	uc.logger.Info("brand deactivated", zap.String("brand_id", id))
	return nil
}
