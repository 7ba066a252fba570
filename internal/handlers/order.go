package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/glamora/internal/middleware"
	"github.com/example/glamora/internal/order"
	"github.com/example/glamora/internal/shipping"
)

// OrderHandler exposes the order ledger over HTTP.
type OrderHandler struct {
	ledger *order.Ledger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(ledger *order.Ledger) *OrderHandler {
	return &OrderHandler{ledger: ledger}
}

type createOrderRequest struct {
	Shipping   shipping.Address `json:"shipping"`
	DeliveryID string           `json:"delivery_id"`
}

// CreateOrder places an order from the authenticated user's cart.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	owner, ok := middleware.CurrentOwner(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	deliveryID, err := uuid.Parse(req.DeliveryID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid delivery_id")
	}

	number, err := h.ledger.Create(owner, req.Shipping, deliveryID)
	if err != nil {
		var verr *shipping.ValidationError
		switch {
		case errors.Is(err, order.ErrAuthRequired):
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		case errors.As(err, &verr):
			return fiber.NewError(fiber.StatusBadRequest, verr.Error())
		case errors.Is(err, order.ErrEmptyCart):
			return fiber.NewError(fiber.StatusBadRequest, "cart is empty")
		case errors.Is(err, order.ErrInvalidDeliveryOption):
			return fiber.NewError(fiber.StatusBadRequest, "invalid delivery option")
		}
		// Storage failures roll back fully; report a generic error and keep
		// the detail server-side.
		log.Printf("create order failed for %s: %v", owner.Key(), err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create order")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"order_number": number,
		},
	})
}

// ListOrders returns the authenticated user's orders, newest first.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	owner, ok := middleware.CurrentOwner(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	orders, err := h.ledger.ListForOwner(owner)
	if err != nil {
		if errors.Is(err, order.ErrAuthRequired) {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": orders})
}

// GetOrder returns one of the authenticated user's orders by number.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	owner, ok := middleware.CurrentOwner(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	record, err := h.ledger.GetByNumber(owner, c.Params("number"))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrAuthRequired):
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		case errors.Is(err, order.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": record})
}
