package dto

import "github.com/shopspring/decimal"

// MonthlyRevenueDTO ingresos de un mes (clave YYYY-MM).
type MonthlyRevenueDTO struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Count   int64           `json:"count"`
}

// TopProductDTO producto con mayor ingreso del período.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// AnalyticsSummaryResponse agregados del dashboard, todos con alcance del
// usuario autenticado. Es también el contexto que se envía al colaborador de IA.
type AnalyticsSummaryResponse struct {
	TotalRevenue    decimal.Decimal     `json:"total_revenue"`
	TotalSales      int64               `json:"total_sales"`
	UnitsSold       int64               `json:"units_sold"`
	TotalProducts   int64               `json:"total_products"`
	LowStockCount   int64               `json:"low_stock_count"`
	OutOfStockCount int64               `json:"out_of_stock_count"`
	TotalCustomers  int64               `json:"total_customers"`
	InventoryValue  decimal.Decimal     `json:"inventory_value"`
	MonthlyRevenue  []MonthlyRevenueDTO `json:"monthly_revenue"`
	TopProducts     []TopProductDTO     `json:"top_products"`
}
