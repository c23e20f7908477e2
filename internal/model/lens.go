package model

type LensStatus string

const (
	StatusInInventory LensStatus = "InInventory"
	StatusListed      LensStatus = "Listed"
	StatusSold        LensStatus = "Sold"
)

func (s LensStatus) Valid() bool {
	switch s {
	case StatusInInventory, StatusListed, StatusSold:
		return true
	}
	return false
}

type Lens struct {
	BaseModel
	Model   string `db:"model" json:"model"`
	BrandID string `db:"brand_id" json:"brand_id"`
	// BasePrice and DiscountPercent are the inputs of FinalPrice; FinalPrice is
	// derived and never taken from a client payload.
	BasePrice          float64    `db:"base_price" json:"base_price"`
	DiscountPercent    float64    `db:"discount_percent" json:"discount_percent"`
	FinalPrice         float64    `db:"final_price" json:"final_price"`
	QuantityOnHand     int        `db:"quantity_on_hand" json:"quantity_on_hand"`
	LotNumber          string     `db:"lot_number" json:"lot_number"`
	IdentificationCode string     `db:"identification_code" json:"identification_code"`
	Status             LensStatus `db:"status" json:"status"`
	Brand              *Brand     `db:"-" json:"brand,omitempty"` // Joined data
}
