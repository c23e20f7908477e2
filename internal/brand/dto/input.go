package dto

type CreateBrandInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateBrandInput struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
