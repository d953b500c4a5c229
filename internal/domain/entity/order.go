package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Order. Vocabulario cerrado: ninguna escritura acepta un estado
// fuera de esta lista.
const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderShipped   = "shipped"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// OrderStatuses lista cerrada de estados de orden.
var OrderStatuses = []string{
	OrderPending,
	OrderPaid,
	OrderShipped,
	OrderCompleted,
	OrderCancelled,
}

// ValidOrderStatus informa si s pertenece al vocabulario de estados.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Order representa una orden de venta del negocio.
type Order struct {
	ID         string
	BusinessID string
	CustomerID string
	CreatedBy  string // usuario que registró la orden
	Status     string // ver constantes Order*
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem línea de una orden; Subtotal = Quantity * UnitPrice.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
