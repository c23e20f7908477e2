package model

type Brand struct {
	BaseModel
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	// Active is the soft-delete flag: deactivated brands stay referenced by
	// existing lenses but cannot be newly assigned.
	Active bool `db:"active" json:"active"`
}
