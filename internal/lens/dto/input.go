package dto

// CreateLensInput carries client-settable fields only. The final price is
// derived by the service; a "final_price" key in an incoming payload is simply
// never decoded.
type CreateLensInput struct {
	Model              string  `json:"model"`
	BrandID            string  `json:"brand_id"`
	BasePrice          float64 `json:"base_price"`
	DiscountPercent    float64 `json:"discount_percent"`
	QuantityOnHand     int     `json:"quantity_on_hand"`
	LotNumber          string  `json:"lot_number"`
	IdentificationCode string  `json:"identification_code"`
	Status             string  `json:"status"` // optional, defaults to InInventory
}

// UpdateLensInput is a partial update: nil means "leave the stored value
// untouched". Status is directly settable here as the administrative override.
type UpdateLensInput struct {
	ID                 string   `json:"-"`
	Model              *string  `json:"model"`
	BrandID            *string  `json:"brand_id"`
	BasePrice          *float64 `json:"base_price"`
	DiscountPercent    *float64 `json:"discount_percent"`
	QuantityOnHand     *int     `json:"quantity_on_hand"`
	LotNumber          *string  `json:"lot_number"`
	IdentificationCode *string  `json:"identification_code"`
	Status             *string  `json:"status"`
}
