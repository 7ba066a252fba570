// Package order converts a cart into a persisted order atomically: header,
// line items and cart clearing commit together or not at all.
package order

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/glamora/internal/cart"
	"github.com/example/glamora/internal/identity"
	"github.com/example/glamora/internal/models"
	"github.com/example/glamora/internal/pricing"
	"github.com/example/glamora/internal/shipping"
)

var (
	// ErrEmptyCart means there is nothing to order.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidDeliveryOption means the delivery id does not resolve.
	ErrInvalidDeliveryOption = errors.New("invalid delivery option")
	// ErrNotFound also masks lookups of another user's orders.
	ErrNotFound = errors.New("order not found")
	// ErrAuthRequired means checkout was attempted anonymously.
	ErrAuthRequired = errors.New("authentication required")
)

const (
	orderNumberPrefix = "ORD"
	orderNumberSuffix = 6
	// createAttempts bounds retries when a generated order number collides
	// with the unique index.
	createAttempts = 3
)

// Ledger creates and reads orders.
type Ledger struct {
	db    *gorm.DB
	carts *cart.Store
}

// NewLedger constructs a Ledger.
func NewLedger(db *gorm.DB, carts *cart.Store) *Ledger {
	return &Ledger{db: db, carts: carts}
}

// Create places an order from the owner's current cart. The shipping record
// is validated first, then a single transaction resolves the delivery
// option, writes the header and one item per cart line, and clears the
// cart. Any failure rolls the whole set back and leaves the cart untouched,
// so a failed call is safe to retry.
func (l *Ledger) Create(owner identity.Owner, addr shipping.Address, deliveryID uuid.UUID) (string, error) {
	if !owner.IsAuthenticated() {
		return "", ErrAuthRequired
	}

	if err := addr.Validate(); err != nil {
		return "", err
	}

	items, err := l.carts.Items(owner)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	prices := make([]float64, 0, len(items))
	for _, item := range items {
		prices = append(prices, item.Price)
	}
	subtotal := pricing.Sum(prices...)

	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		number, err := newOrderNumber()
		if err != nil {
			return "", err
		}

		err = l.db.Transaction(func(tx *gorm.DB) error {
			var delivery models.DeliveryOption
			if err := tx.First(&delivery, "id = ?", deliveryID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInvalidDeliveryOption
				}
				return err
			}

			record := models.Order{
				UserID:      owner.UserID,
				OrderNumber: number,
				Status:      "Completed",
				PlacedAt:    time.Now(),

				Subtotal:    subtotal,
				DeliveryFee: delivery.Price,
				Total:       pricing.Sum(subtotal, delivery.Price),

				DeliveryID:   delivery.ID,
				DeliveryName: delivery.Name,

				ShippingName:     addr.Name,
				ShippingEmail:    addr.Email,
				ShippingAddress:  addr.Address,
				ShippingAddress2: addr.Address2,
				ShippingCity:     addr.City,
				ShippingState:    addr.State,
				ShippingZip:      addr.Zip,
				ShippingCountry:  addr.Country,
				ShippingPhone:    addr.Phone,
			}

			for _, item := range items {
				line := models.OrderItem{
					ProductID: item.ProductID,
					PeriodID:  item.PeriodID,
					Price:     item.Price,
				}
				if item.Product != nil {
					line.ProductName = item.Product.Name
				}
				if item.Period != nil {
					line.PeriodName = item.Period.Name
				}
				record.Items = append(record.Items, line)
			}

			if err := tx.Create(&record).Error; err != nil {
				return err
			}

			return l.carts.WithTx(tx).Clear(owner)
		})

		if err == nil {
			return number, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", err
		}
		lastErr = err
	}

	return "", fmt.Errorf("order number collision persisted after %d attempts: %w", createAttempts, lastErr)
}

// GetByNumber loads one of the owner's orders with its items. Another
// user's order number yields ErrNotFound, never a forbidden error.
func (l *Ledger) GetByNumber(owner identity.Owner, number string) (*models.Order, error) {
	if !owner.IsAuthenticated() {
		return nil, ErrAuthRequired
	}

	var record models.Order
	err := l.db.Preload("Items").
		First(&record, "order_number = ? AND user_id = ?", number, owner.UserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ListForOwner returns the owner's orders with items, newest first.
func (l *Ledger) ListForOwner(owner identity.Owner) ([]models.Order, error) {
	if !owner.IsAuthenticated() {
		return nil, ErrAuthRequired
	}

	var records []models.Order
	err := l.db.Preload("Items").
		Where("user_id = ?", owner.UserID).
		Order("placed_at desc, id desc").
		Find(&records).Error
	return records, err
}

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderNumber builds ORD + unix seconds + random suffix. Uniqueness is
// enforced by the order_number index; Create retries on collision.
func newOrderNumber() (string, error) {
	suffix := make([]byte, orderNumberSuffix)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(orderNumberAlphabet))))
		if err != nil {
			return "", err
		}
		suffix[i] = orderNumberAlphabet[n.Int64()]
	}
	return fmt.Sprintf("%s%d%s", orderNumberPrefix, time.Now().Unix(), suffix), nil
}
