package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Negocios-api/internal/application/dto"
	"github.com/jhoicas/Negocios-api/internal/domain"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
	"github.com/jhoicas/Negocios-api/internal/domain/repository"
)

// OrderUseCase registro y consulta de órdenes de venta. Las líneas toman el
// precio vigente del producto al momento de crear la orden.
type OrderUseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, customers repository.CustomerRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, customers: customers}
}

// Create registra una orden con sus líneas y total calculado.
func (uc *OrderUseCase) Create(ctx context.Context, businessID, createdBy string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	customer, err := uc.customers.GetByID(ctx, businessID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("items", "la orden requiere al menos una línea")
	}

	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		CustomerID: customer.ID,
		CreatedBy:  createdBy,
		Status:     entity.OrderPending,
		Total:      decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	items := make([]*entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.NewValidationError("items", "la cantidad debe ser positiva")
		}
		product, err := uc.products.GetByID(ctx, businessID, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(it.Quantity))
		items = append(items, &entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  it.Quantity,
			UnitPrice: product.Price,
			Subtotal:  subtotal,
		})
		order.Total = order.Total.Add(subtotal)
	}
	if err := uc.orders.Create(ctx, order, items); err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// GetByID obtiene una orden del negocio con sus líneas.
func (uc *OrderUseCase) GetByID(ctx context.Context, businessID, id string) (*dto.OrderResponse, error) {
	order, items, err := uc.orders.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order, items), nil
}

// UpdateStatus transiciona el estado de una orden. El estado destino debe
// pertenecer al vocabulario cerrado: un valor arbitrario escaparía para
// siempre del check de estados terminales y ensuciaría los agregados por
// estado del resumen financiero.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	if !entity.ValidOrderStatus(status) {
		return domain.NewValidationError("status", "estado de orden desconocido")
	}
	order, _, err := uc.orders.GetByID(ctx, businessID, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status == entity.OrderCancelled || order.Status == entity.OrderCompleted {
		return domain.ErrConflict // estados terminales
	}
	return uc.orders.UpdateStatus(ctx, businessID, id, status)
}

// List lista órdenes del negocio con paginación (sin líneas).
func (uc *OrderUseCase) List(ctx context.Context, businessID string, limit, offset int) ([]*dto.OrderResponse, error) {
	orders, err := uc.orders.ListByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o, nil))
	}
	return out, nil
}

func toOrderResponse(o *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:         o.ID,
		BusinessID: o.BusinessID,
		CustomerID: o.CustomerID,
		CreatedBy:  o.CreatedBy,
		Status:     o.Status,
		Total:      o.Total,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
