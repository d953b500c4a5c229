package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo del negocio.
type Product struct {
	ID          string
	BusinessID  string
	SKU         string // código único por negocio
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo unitario
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
