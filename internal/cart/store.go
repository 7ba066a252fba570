// Package cart holds pending rental selections, one row per
// (owner, product, rental period).
package cart

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/glamora/internal/identity"
	"github.com/example/glamora/internal/models"
	"github.com/example/glamora/internal/pricing"
)

var (
	// ErrProductNotFound covers absent and inactive products alike.
	ErrProductNotFound = errors.New("product not found")
	// ErrPeriodNotFound means the rental period id does not resolve.
	ErrPeriodNotFound = errors.New("rental period not found")
	// ErrDuplicateItem means the owner already holds this product+period line.
	ErrDuplicateItem = errors.New("item already in cart")
	// ErrItemNotFound also masks cross-owner removal attempts.
	ErrItemNotFound = errors.New("item not found in cart")
)

// Store persists cart lines. All operations are scoped to an owner.
type Store struct {
	db *gorm.DB
}

// NewStore constructs a Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithTx returns a Store bound to an open transaction, so the order ledger
// can clear the cart atomically with its own writes.
func (s *Store) WithTx(tx *gorm.DB) *Store {
	return &Store{db: tx}
}

// AddItem prices the product for the period and inserts the line. Adding the
// same product+period twice is rejected, not merged.
func (s *Store) AddItem(owner identity.Owner, productID, periodID uuid.UUID) (*models.CartItem, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ? AND active = ?", productID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var period models.RentalPeriod
	if err := s.db.First(&period, "id = ?", periodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPeriodNotFound
		}
		return nil, err
	}

	var existing int64
	if err := s.db.Model(&models.CartItem{}).
		Where("owner_key = ? AND product_id = ? AND period_id = ?", owner.Key(), productID, periodID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrDuplicateItem
	}

	item := models.CartItem{
		OwnerKey:  owner.Key(),
		ProductID: productID,
		PeriodID:  periodID,
		Price:     pricing.ForPeriod(product.BasePrice, period.Multiplier),
	}
	if owner.IsAuthenticated() {
		userID := owner.UserID
		item.UserID = &userID
	} else {
		sessionID := owner.SessionID
		item.SessionID = &sessionID
	}

	if err := s.db.Create(&item).Error; err != nil {
		// Two tabs racing on the same add: the unique index is the backstop.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateItem
		}
		return nil, err
	}

	item.Product = &product
	item.Period = &period
	return &item, nil
}

// RemoveItem deletes one line. A line owned by somebody else is reported as
// not found rather than forbidden.
func (s *Store) RemoveItem(owner identity.Owner, itemID uuid.UUID) error {
	result := s.db.Where("id = ? AND owner_key = ?", itemID, owner.Key()).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Items returns the owner's cart lines in insertion order.
func (s *Store) Items(owner identity.Owner) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.Preload("Product").Preload("Period").
		Where("owner_key = ?", owner.Key()).
		Order("created_at asc").
		Find(&items).Error
	return items, err
}

// Subtotal sums the recorded line prices; an empty cart totals zero.
func (s *Store) Subtotal(owner identity.Owner) (float64, error) {
	items, err := s.Items(owner)
	if err != nil {
		return 0, err
	}
	prices := make([]float64, 0, len(items))
	for _, item := range items {
		prices = append(prices, item.Price)
	}
	return pricing.Sum(prices...), nil
}

// Clear deletes every line for the owner.
func (s *Store) Clear(owner identity.Owner) error {
	return s.db.Where("owner_key = ?", owner.Key()).
		Delete(&models.CartItem{}).Error
}
