package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra una venta de un producto a un cliente.
// Las referencias a Product y Customer son blandas: no hay reglas de cascada.
// Total siempre se calcula en el servidor como quantity × price.
type Sale struct {
	ID         string
	ProductID  string
	CustomerID string
	Quantity   int
	Price      decimal.Decimal
	Total      decimal.Decimal
	SaleDate   time.Time
	UserID     string
}
