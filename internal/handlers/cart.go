package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/glamora/internal/cart"
	"github.com/example/glamora/internal/middleware"
)

// CartHandler exposes the cart store over HTTP. Anonymous sessions may use
// every endpoint; checkout is gated elsewhere.
type CartHandler struct {
	carts *cart.Store
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(carts *cart.Store) *CartHandler {
	return &CartHandler{carts: carts}
}

// GetCart returns the owner's cart lines and subtotal.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	owner, ok := middleware.CurrentOwner(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unresolved session")
	}

	items, err := h.carts.Items(owner)
	if err != nil {
		return err
	}

	subtotal, err := h.carts.Subtotal(owner)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"items":    items,
			"subtotal": subtotal,
		},
	})
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	PeriodID  string `json:"period_id"`
}

// AddItem adds one product+period line to the cart.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	owner, ok := middleware.CurrentOwner(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unresolved session")
	}

	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product_id")
	}
	periodID, err := uuid.Parse(req.PeriodID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid period_id")
	}

	item, err := h.carts.AddItem(owner, productID, periodID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrProductNotFound):
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		case errors.Is(err, cart.ErrPeriodNotFound):
			return fiber.NewError(fiber.StatusBadRequest, "rental period not found")
		case errors.Is(err, cart.ErrDuplicateItem):
			return fiber.NewError(fiber.StatusBadRequest, "item already in cart")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

// RemoveItem deletes one cart line.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	owner, ok := middleware.CurrentOwner(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unresolved session")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.carts.RemoveItem(owner, itemID); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "item not found in cart")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "item removed from cart"})
}

// ClearCart deletes every line for the owner.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	owner, ok := middleware.CurrentOwner(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unresolved session")
	}

	if err := h.carts.Clear(owner); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "cart cleared"})
}
