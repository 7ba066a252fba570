package models

import "github.com/google/uuid"

// CartItem is one pending product + rental period pairing. It belongs to
// exactly one owner: a registered user or an anonymous browser session.
// OwnerKey collapses that two-column ownership into a single value so the
// uniqueness constraint can span it.
type CartItem struct {
	BaseModel
	OwnerKey  string        `gorm:"index:idx_cart_line,unique,priority:1" json:"-"`
	UserID    *uuid.UUID    `gorm:"type:uuid;index" json:"user_id,omitempty"`
	SessionID *string       `gorm:"index" json:"-"`
	ProductID uuid.UUID     `gorm:"type:uuid;index:idx_cart_line,unique,priority:2" json:"product_id"`
	Product   *Product      `json:"product,omitempty"`
	PeriodID  uuid.UUID     `gorm:"type:uuid;index:idx_cart_line,unique,priority:3" json:"period_id"`
	Period    *RentalPeriod `json:"period,omitempty"`
	Price     float64       `json:"price"`
}
