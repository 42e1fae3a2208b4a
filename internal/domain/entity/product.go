package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock de un producto.
const (
	StatusInStock    = "in-stock"
	StatusLowStock   = "low-stock"
	StatusOutOfStock = "out-of-stock"
)

// LowStockThreshold unidades a partir de las cuales el producto pasa a low-stock.
const LowStockThreshold = 10

// Product representa un producto del inventario de un usuario.
// SKU es único a nivel global (constraint de base de datos, no por usuario).
// Status se almacena pero siempre se recalcula desde Stock en cada escritura.
type Product struct {
	ID          string
	Name        string
	Category    string
	SKU         string
	Stock       int
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Status      string
	LastUpdated time.Time
	Supplier    string
	UserID      string
}

// StatusForStock deriva el estado a partir del stock actual:
// 0 → out-of-stock, <= LowStockThreshold → low-stock, resto → in-stock.
func StatusForStock(stock int) string {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock <= LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
