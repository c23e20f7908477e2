// Package filter describes listing criteria as backend-agnostic
// field/operator/value conditions. Storage adapters translate a Spec into
// their own query dialect; the in-memory backend evaluates it directly via
// Matches.
package filter

import (
	"strings"

	"github.com/dcastano/optica-inventory/internal/model"
)

type Op string

const (
	OpEq Op = "eq"
	// OpContains is a case-insensitive substring match.
	OpContains Op = "contains"
	OpGTE      Op = "gte"
	OpLTE      Op = "lte"
)

// Field names understood by the storage adapters. They match the relational
// column names so the SQL translation is a passthrough.
const (
	FieldModel    = "model"
	FieldBrandID  = "brand_id"
	FieldLot      = "lot_number"
	FieldStatus   = "status"
	FieldPrice    = "base_price"
	FieldQuantity = "quantity_on_hand"
)

type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Spec is an AND-combined list of conditions. An empty Spec imposes no
// constraint and matches every record.
type Spec []Condition

func (s Spec) Matches(l *model.Lens) bool {
	for _, c := range s {
		if !matches(c, l) {
			return false
		}
	}
	return true
}

func matches(c Condition, l *model.Lens) bool {
	switch c.Field {
	case FieldModel:
		v, ok := c.Value.(string)
		return ok && strings.Contains(strings.ToLower(l.Model), strings.ToLower(v))
	case FieldBrandID:
		v, ok := c.Value.(string)
		return ok && l.BrandID == v
	case FieldLot:
		v, ok := c.Value.(string)
		return ok && l.LotNumber == v
	case FieldStatus:
		v, ok := c.Value.(string)
		return ok && string(l.Status) == v
	case FieldPrice:
		v, ok := c.Value.(float64)
		return ok && compareFloat(c.Op, l.BasePrice, v)
	case FieldQuantity:
		v, ok := c.Value.(int)
		return ok && compareFloat(c.Op, float64(l.QuantityOnHand), float64(v))
	}
	return false
}

func compareFloat(op Op, field, bound float64) bool {
	switch op {
	case OpGTE:
		return field >= bound
	case OpLTE:
		return field <= bound
	case OpEq:
		return field == bound
	}
	return false
}
