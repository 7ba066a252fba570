package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is an immutable record of a completed checkout. Pricing and shipping
// fields are copied by value at creation time so later catalog or profile
// edits cannot alter history.
type Order struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User        *User     `json:"user,omitempty"`
	OrderNumber string    `gorm:"uniqueIndex" json:"order_number"`
	Status      string    `json:"status"`
	PlacedAt    time.Time `json:"placed_at"`

	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`

	DeliveryID   uuid.UUID `gorm:"type:uuid" json:"delivery_id"`
	DeliveryName string    `json:"delivery_name"`

	ShippingName     string `json:"shipping_name"`
	ShippingEmail    string `json:"shipping_email"`
	ShippingAddress  string `json:"shipping_address"`
	ShippingAddress2 string `json:"shipping_address2"`
	ShippingCity     string `json:"shipping_city"`
	ShippingState    string `json:"shipping_state"`
	ShippingZip      string `json:"shipping_zip"`
	ShippingCountry  string `json:"shipping_country"`
	ShippingPhone    string `json:"shipping_phone"`

	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem carries one cart line into order history. Price is the snapshot
// recorded when the item was added to the cart, never recomputed.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	ProductID   uuid.UUID `gorm:"type:uuid" json:"product_id"`
	ProductName string    `json:"product_name"`
	PeriodID    uuid.UUID `gorm:"type:uuid" json:"period_id"`
	PeriodName  string    `json:"period_name"`
	Price       float64   `json:"price"`
}
