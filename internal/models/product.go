package models

import "github.com/google/uuid"

// Product is a rentable jewelry piece. BasePrice is the 3-day rental price;
// longer periods scale it through RentalPeriod.Multiplier.
type Product struct {
	BaseModel
	Name        string     `json:"name"`
	Description string     `json:"description"`
	BasePrice   float64    `json:"base_price"`
	ImageURL    string     `json:"image_url"`
	Stock       int        `json:"stock"`
	Active      bool       `gorm:"default:true" json:"active"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Category    *Category  `json:"category,omitempty"`
}
