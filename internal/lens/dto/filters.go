package dto

import "github.com/dcastano/optica-inventory/internal/filter"

// LensFilters is the listing criteria object. Every field is independently
// optional; empty strings and nil pointers impose no constraint.
type LensFilters struct {
	Model     string
	BrandID   string
	LotNumber string
	Status    string
	MinPrice  *float64
	MaxPrice  *float64
	MinStock  *int
	MaxStock  *int
}

// Spec translates the criteria into AND-combined conditions. Price bounds are
// inclusive and apply to the base price.
func (f *LensFilters) Spec() filter.Spec {
	var spec filter.Spec
	if f == nil {
		return spec
	}
	if f.Model != "" {
		spec = append(spec, filter.Condition{Field: filter.FieldModel, Op: filter.OpContains, Value: f.Model})
	}
	if f.BrandID != "" {
		spec = append(spec, filter.Condition{Field: filter.FieldBrandID, Op: filter.OpEq, Value: f.BrandID})
	}
	if f.LotNumber != "" {
		spec = append(spec, filter.Condition{Field: filter.FieldLot, Op: filter.OpEq, Value: f.LotNumber})
	}
	if f.Status != "" {
		spec = append(spec, filter.Condition{Field: filter.FieldStatus, Op: filter.OpEq, Value: f.Status})
	}
	if f.MinPrice != nil {
		spec = append(spec, filter.Condition{Field: filter.FieldPrice, Op: filter.OpGTE, Value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		spec = append(spec, filter.Condition{Field: filter.FieldPrice, Op: filter.OpLTE, Value: *f.MaxPrice})
	}
	if f.MinStock != nil {
		spec = append(spec, filter.Condition{Field: filter.FieldQuantity, Op: filter.OpGTE, Value: *f.MinStock})
	}
	if f.MaxStock != nil {
		spec = append(spec, filter.Condition{Field: filter.FieldQuantity, Op: filter.OpLTE, Value: *f.MaxStock})
	}
	return spec
}
