package filter_test

import (
	"testing"

	"github.com/dcastano/optica-inventory/internal/filter"
	"github.com/dcastano/optica-inventory/internal/model"
)

func sampleLens(modelName string) *model.Lens {
	return &model.Lens{
		BaseModel:      model.BaseModel{ID: "lens-1"},
		Model:          modelName,
		BrandID:        "brand-1",
		BasePrice:      150,
		QuantityOnHand: 3,
		LotNumber:      "L1",
		Status:         model.StatusInInventory,
	}
}

func TestSpec_EmptyMatchesEverything(t *testing.T) {
	var spec filter.Spec
	if !spec.Matches(sampleLens("ZX-100")) {
		t.Fatal("empty spec must match every record")
	}
}

func TestSpec_ModelSubstringCaseInsensitive(t *testing.T) {
	spec := filter.Spec{{Field: filter.FieldModel, Op: filter.OpContains, Value: "zx"}}

	if !spec.Matches(sampleLens("ZX-100")) {
		t.Fatal(`"zx" should match "ZX-100"`)
	}
	if !spec.Matches(sampleLens("abc-zx")) {
		t.Fatal(`"zx" should match "abc-zx"`)
	}
	if spec.Matches(sampleLens("AB-200")) {
		t.Fatal(`"zx" should not match "AB-200"`)
	}
}

func TestSpec_CombinesWithAnd(t *testing.T) {
	spec := filter.Spec{
		{Field: filter.FieldLot, Op: filter.OpEq, Value: "L1"},
		{Field: filter.FieldStatus, Op: filter.OpEq, Value: string(model.StatusSold)},
	}

	l := sampleLens("ZX-100")
	if spec.Matches(l) {
		t.Fatal("record matching only one condition must be excluded")
	}
	l.Status = model.StatusSold
	if !spec.Matches(l) {
		t.Fatal("record matching all conditions must be included")
	}
}

func TestSpec_InclusiveBounds(t *testing.T) {
	l := sampleLens("ZX-100") // base price 150, quantity 3

	bounds := filter.Spec{
		{Field: filter.FieldPrice, Op: filter.OpGTE, Value: 150.0},
		{Field: filter.FieldPrice, Op: filter.OpLTE, Value: 150.0},
		{Field: filter.FieldQuantity, Op: filter.OpGTE, Value: 3},
		{Field: filter.FieldQuantity, Op: filter.OpLTE, Value: 3},
	}
	if !bounds.Matches(l) {
		t.Fatal("bounds are inclusive; a record on the boundary must match")
	}

	tooLow := filter.Spec{{Field: filter.FieldPrice, Op: filter.OpLTE, Value: 149.99}}
	if tooLow.Matches(l) {
		t.Fatal("price above the max bound must be excluded")
	}
	tooFew := filter.Spec{{Field: filter.FieldQuantity, Op: filter.OpGTE, Value: 4}}
	if tooFew.Matches(l) {
		t.Fatal("quantity below the min bound must be excluded")
	}
}
