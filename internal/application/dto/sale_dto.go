package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest registro de una venta. El total nunca viene del cliente:
// se calcula en el servidor como quantity × price.
type CreateSaleRequest struct {
	ProductID  string   `json:"product_id" validate:"required"`
	CustomerID string   `json:"customer_id" validate:"required"`
	Quantity   *int     `json:"quantity" validate:"required,min=1"`
	Price      *float64 `json:"price" validate:"required,min=0"`
}

// SaleResponse venta como la consume el SPA.
type SaleResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	CustomerID string          `json:"customer_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Total      decimal.Decimal `json:"total"`
	SaleDate   time.Time       `json:"sale_date"`
}
