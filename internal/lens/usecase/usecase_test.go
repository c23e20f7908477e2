package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dcastano/optica-inventory/internal/apperr"
	branddto "github.com/dcastano/optica-inventory/internal/brand/dto"
	brandrepo "github.com/dcastano/optica-inventory/internal/brand/repository"
	brandusecase "github.com/dcastano/optica-inventory/internal/brand/usecase"
	"github.com/dcastano/optica-inventory/internal/lens"
	"github.com/dcastano/optica-inventory/internal/lens/dto"
	lensrepo "github.com/dcastano/optica-inventory/internal/lens/repository"
	"github.com/dcastano/optica-inventory/internal/lens/usecase"
	"github.com/dcastano/optica-inventory/internal/metrics"
	"github.com/dcastano/optica-inventory/internal/model"
	"github.com/dcastano/optica-inventory/pkg/logger"
)

type fixture struct {
	lenses lens.UseCase
	brands *brandrepo.MemoryRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	brands := brandrepo.NewMemoryRepository()
	repo := lensrepo.NewMemoryRepository()
	return &fixture{
		lenses: usecase.NewLensUseCase(repo, brands, metrics.New(), logger.NewNop()),
		brands: brands,
	}
}

func (f *fixture) addBrand(t *testing.T, id, name string, active bool) {
	t.Helper()
	err := f.brands.Create(context.Background(), &model.Brand{
		BaseModel: model.BaseModel{ID: id},
		Name:      name,
		Active:    active,
	})
	require.NoError(t, err)
}

func createInput() *dto.CreateLensInput {
	return &dto.CreateLensInput{
		Model:              "M1",
		BrandID:            "brand-1",
		BasePrice:          100,
		DiscountPercent:    10,
		QuantityOnHand:     2,
		LotNumber:          "L1",
		IdentificationCode: "CODE-1",
	}
}

func TestCreateLens_ComputesFinalPrice(t *testing.T) {
	f := newFixture(t)
	f.addBrand(t, "brand-1", "Acme", true)

	l, err := f.lenses.CreateLens(context.Background(), createInput())
	require.NoError(t, err)
	require.Equal(t, 90.00, l.FinalPrice)
	require.Equal(t, model.StatusInInventory, l.Status)
	require.NotEmpty(t, l.ID)
}

func TestCreateLens_Validation(t *testing.T) {
	f := newFixture(t)
	f.addBrand(t, "brand-1", "Acme", true)
	f.addBrand(t, "brand-2", "Retired", false)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*dto.CreateLensInput)
		wantErr error
	}{
		{"missing model", func(in *dto.CreateLensInput) { in.Model = "  " }, apperr.ErrValidation},
		{"missing lot", func(in *dto.CreateLensInput) { in.LotNumber = "" }, apperr.ErrValidation},
		{"missing code", func(in *dto.CreateLensInput) { in.IdentificationCode = "" }, apperr.ErrValidation},
		{"negative quantity", func(in *dto.CreateLensInput) { in.QuantityOnHand = -1 }, apperr.ErrValidation},
		{"negative price", func(in *dto.CreateLensInput) { in.BasePrice = -5 }, apperr.ErrValidation},
		{"discount above 100", func(in *dto.CreateLensInput) { in.DiscountPercent = 101 }, apperr.ErrValidation},
		{"unknown status", func(in *dto.CreateLensInput) { in.Status = "Broken" }, apperr.ErrValidation},
		{"unknown brand", func(in *dto.CreateLensInput) { in.BrandID = "nope" }, apperr.ErrNotFound},
		{"inactive brand", func(in *dto.CreateLensInput) { in.BrandID = "brand-2" }, apperr.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := createInput()
			tt.mutate(in)
			_, err := f.lenses.CreateLens(ctx, in)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateLens_DuplicateCode(t *testing.T) {
	f := newFixture(t)
	f.addBrand(t, "brand-1", "Acme", true)
	ctx := context.Background()

	_, err := f.lenses.CreateLens(ctx, createInput())
	require.NoError(t, err)

	dup := createInput()
	dup.Model = "M2"
	_, err = f.lenses.CreateLens(ctx, dup)
	require.ErrorIs(t, err, apperr.ErrValidation)
}

// Updating only the discount must recompute the final price from the stored
// base price, never from a zero default.
func TestUpdateLens_PartialRecompute(t *testing.T) {
	f := newFixture(t)
	f.addBrand(t, "brand-1", "Acme", true)
	ctx := context.Background()

	created, err := f.lenses.CreateLens(ctx, createInput())
	require.NoError(t, err)

	discount := 25.0
	updated, err := f.lenses.UpdateLens(ctx, &dto.UpdateLensInput{ID: created.ID, DiscountPercent: &discount})
	require.NoError(t, err)
	require.Equal(t, 100.00, updated.BasePrice, "base price must stay untouched")
	require.Equal(t, 75.00, updated.FinalPrice)

	base := 200.0
	updated, err = f.lenses.UpdateLens(ctx, &dto.UpdateLensInput{ID: created.ID, BasePrice: &base})
	require.NoError(t, err)
	require.Equal(t, 25.0, updated.DiscountPercent, "discount must stay untouched")
	require.Equal(t, 150.00, updated.FinalPrice)
}

func TestUpdateLens_UntouchedPriceFieldsKeepFinalPrice(t *testing.T) {
	f := newFixture(t)
	f.addBrand(t, "brand-1", "Acme", true)
	ctx := context.Background()

	created, err := f.lenses.CreateLens(ctx, createInput())
	require.NoError(t, err)

	newModel := "M1-rev2"
	updated, err := f.lenses.UpdateLens(ctx, &dto.UpdateLensInput{ID: created.ID, Model: &newModel})
	require.NoError(t, err)
	require.Equal(t, created.FinalPrice, updated.FinalPrice)
}

func TestUpdateLens_RejectsInactiveBrandReassignment(t *testing.T) {
	f := newFixture(t)
	f.addBrand(t, "brand-1", "Acme", true)
	f.addBrand(t, "brand-2", "Retired", false)
	ctx := context.Background()

	created, err := f.lenses.CreateLens(ctx, createInput())
	require.NoError(t, err)

	inactive := "brand-2"
	_, err = f.lenses.UpdateLens(ctx, &dto.UpdateLensInput{ID: created.ID, BrandID: &inactive})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateLens_AdministrativeStatusOverride(t *testing.T) {
	f := newFixture(t)
	f.addBrand(t, "brand-1", "Acme", true)
	ctx := context.Background()

	created, err := f.lenses.CreateLens(ctx, createInput())
	require.NoError(t, err)

	sold := string(model.StatusSold)
	updated, err := f.lenses.UpdateLens(ctx, &dto.UpdateLensInput{ID: created.ID, Status: &sold})
	require.NoError(t, err)
	require.Equal(t, model.StatusSold, updated.Status)
	require.Equal(t, 2, updated.QuantityOnHand, "direct edit never touches quantity")
}

func TestSellLens_Lifecycle(t *testing.T) {
	f := newFixture(t)
	f.addBrand(t, "brand-1", "Acme", true)
	ctx := context.Background()

	created, err := f.lenses.CreateLens(ctx, createInput())
	require.NoError(t, err)
	require.Equal(t, 90.00, created.FinalPrice)

	first, err := f.lenses.SellLens(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 1, first.QuantityOnHand)
	require.Equal(t, model.StatusInInventory, first.Status)

	second, err := f.lenses.SellLens(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 0, second.QuantityOnHand)
	require.Equal(t, model.StatusSold, second.Status)

	_, err = f.lenses.SellLens(ctx, created.ID)
	require.ErrorIs(t, err, apperr.ErrOutOfStock)

	_, err = f.lenses.SellLens(ctx, "nope")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListLenses(t *testing.T) {
	f := newFixture(t)
	f.addBrand(t, "brand-1", "Acme", true)
	ctx := context.Background()

	_, err := f.lenses.CreateLens(ctx, createInput())
	require.NoError(t, err)
	other := createInput()
	other.Model = "AB-200"
	other.IdentificationCode = "CODE-2"
	other.LotNumber = "L2"
	_, err = f.lenses.CreateLens(ctx, other)
	require.NoError(t, err)

	all, err := f.lenses.ListLenses(ctx, &dto.LensFilters{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	byModel, err := f.lenses.ListLenses(ctx, &dto.LensFilters{Model: "m1"})
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	require.Equal(t, "M1", byModel[0].Model)

	_, err = f.lenses.ListLenses(ctx, &dto.LensFilters{Status: "Broken"})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestGenerateLotReport(t *testing.T) {
	f := newFixture(t)
	f.addBrand(t, "brand-1", "Acme", true)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		in := createInput()
		in.Model = "M1"
		in.IdentificationCode = "CODE-" + string(rune('A'+i))
		_, err := f.lenses.CreateLens(ctx, in)
		require.NoError(t, err)
	}

	doc, err := f.lenses.GenerateLotReport(ctx, "L1")
	require.NoError(t, err)
	require.Equal(t, 3, doc.TotalCount)
	require.Len(t, doc.Pages, 1)
	require.Equal(t, "Acme", doc.Pages[0].Rows[0].BrandName)
	require.Equal(t, 90.00, doc.Pages[0].Rows[0].FinalPrice)

	_, err = f.lenses.GenerateLotReport(ctx, "L404")
	require.ErrorIs(t, err, apperr.ErrEmptyReport)

	_, err = f.lenses.GenerateLotReport(ctx, "  ")
	require.ErrorIs(t, err, apperr.ErrValidation)
}

// End to end: brand -> lens -> sales to depletion, all through the usecases.
func TestInventoryFlow(t *testing.T) {
	brands := brandrepo.NewMemoryRepository()
	lensRepo := lensrepo.NewMemoryRepository()
	brandUC := brandusecase.NewBrandUseCase(brands, logger.NewNop())
	lensUC := usecase.NewLensUseCase(lensRepo, brands, metrics.New(), logger.NewNop())
	ctx := context.Background()

	acme, err := brandUC.CreateBrand(ctx, &branddto.CreateBrandInput{Name: "Acme"})
	require.NoError(t, err)

	l, err := lensUC.CreateLens(ctx, &dto.CreateLensInput{
		Model:              "M1",
		BrandID:            acme.ID,
		BasePrice:          100,
		DiscountPercent:    10,
		QuantityOnHand:     2,
		LotNumber:          "L1",
		IdentificationCode: "CODE-1",
	})
	require.NoError(t, err)
	require.Equal(t, 90.00, l.FinalPrice)

	_, err = lensUC.SellLens(ctx, l.ID)
	require.NoError(t, err)
	sold, err := lensUC.SellLens(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, 0, sold.QuantityOnHand)
	require.Equal(t, model.StatusSold, sold.Status)

	_, err = lensUC.SellLens(ctx, l.ID)
	require.ErrorIs(t, err, apperr.ErrOutOfStock)
}
