package models

// Category groups jewelry pieces for browsing and filtering.
type Category struct {
	BaseModel
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description"`
	Products    []Product `json:"products,omitempty"`
}

// RentalPeriod is a selectable rental duration. A piece's rental price is
// its base price scaled by the period's multiplier.
type RentalPeriod struct {
	BaseModel
	Name       string  `gorm:"uniqueIndex" json:"name"`
	Days       int     `json:"days"`
	Multiplier float64 `json:"multiplier"`
}

// DeliveryOption is a flat-fee shipping tier added to the order total.
type DeliveryOption struct {
	BaseModel
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Days        int     `json:"days"`
}
