package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. Stock, price y cost usan punteros
// para distinguir "campo ausente" de un cero legítimo.
type CreateProductRequest struct {
	Name     string   `json:"name" validate:"required"`
	Category string   `json:"category" validate:"required"`
	SKU      string   `json:"sku" validate:"required"`
	Stock    *int     `json:"stock" validate:"required,min=0"`
	Price    *float64 `json:"price" validate:"required,min=0"`
	Cost     *float64 `json:"cost" validate:"required,min=0"`
	Supplier string   `json:"supplier"`
}

// UpdateProductRequest actualización completa de producto.
// El campo status del cliente se ignora: siempre se recalcula desde stock.
type UpdateProductRequest struct {
	Name     string   `json:"name" validate:"required"`
	Category string   `json:"category" validate:"required"`
	SKU      string   `json:"sku" validate:"required"`
	Stock    *int     `json:"stock" validate:"required,min=0"`
	Price    *float64 `json:"price" validate:"required,min=0"`
	Cost     *float64 `json:"cost" validate:"required,min=0"`
	Supplier string   `json:"supplier"`
	Status   string   `json:"status"`
}

// ProductResponse producto como lo consume el SPA (columnas en snake_case).
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	SKU         string          `json:"sku"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Status      string          `json:"status"`
	LastUpdated time.Time       `json:"last_updated"`
	Supplier    string          `json:"supplier,omitempty"`
}

// ImportResultResponse resumen de la importación CSV: el lote nunca aborta
// por una fila mala, solo la cuenta como error.
type ImportResultResponse struct {
	Message      string `json:"message"`
	SuccessCount int    `json:"successCount"`
	ErrorCount   int    `json:"errorCount"`
	TotalRows    int    `json:"totalRows"`
}
