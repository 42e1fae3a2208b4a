package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthlyRevenueResult ingresos agregados por mes (clave YYYY-MM).
type MonthlyRevenueResult struct {
	Month   string
	Revenue decimal.Decimal
	Count   int64
}

// TopProductResult producto con mayor ingreso en ventas.
type TopProductResult struct {
	ProductID string
	Name      string
	SKU       string
	UnitsSold int64
	Revenue   decimal.Decimal
}

// InventoryCountsResult conteo de productos por estado de stock.
type InventoryCountsResult struct {
	Total      int64
	LowStock   int64
	OutOfStock int64
}

// AnalyticsRepository consultas de solo lectura para el dashboard,
// siempre con alcance por propietario.
type AnalyticsRepository interface {
	// GetSalesTotals ingresos totales, unidades vendidas y número de ventas del usuario.
	GetSalesTotals(ctx context.Context, ownerID string) (revenue decimal.Decimal, units, count int64, err error)
	// GetMonthlyRevenue ingresos agrupados por mes, ascendente, últimos `months` meses.
	GetMonthlyRevenue(ctx context.Context, ownerID string, months int) ([]MonthlyRevenueResult, error)
	// GetTopProducts los `limit` productos con mayor ingreso.
	GetTopProducts(ctx context.Context, ownerID string, limit int) ([]TopProductResult, error)
	// GetInventoryCounts conteos de productos por estado.
	GetInventoryCounts(ctx context.Context, ownerID string) (InventoryCountsResult, error)
	// GetCustomerCount número de clientes del usuario.
	GetCustomerCount(ctx context.Context, ownerID string) (int64, error)
	// GetInventoryValue valor total del inventario (stock × cost).
	GetInventoryValue(ctx context.Context, ownerID string) (decimal.Decimal, error)
}
