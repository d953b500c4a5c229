package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de una orden nueva.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para registrar una orden de venta.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required,uuid"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// UpdateOrderStatusRequest transición de estado de una orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid shipped completed cancelled"`
}

// OrderItemResponse línea de orden en respuestas.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID         string              `json:"id"`
	BusinessID string              `json:"business_id"`
	CustomerID string              `json:"customer_id"`
	CreatedBy  string              `json:"created_by"`
	Status     string              `json:"status"`
	Total      decimal.Decimal     `json:"total"`
	Items      []OrderItemResponse `json:"items,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// DashboardResponse agregados para el tablero.
type DashboardResponse struct {
	Products  int64                      `json:"products"`
	Customers int64                      `json:"customers"`
	Orders    int64                      `json:"orders"`
	Revenue   map[string]decimal.Decimal `json:"revenue_by_status,omitempty"`
}
