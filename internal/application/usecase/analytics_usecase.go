package usecase

import (
	"context"

	"github.com/jcastellr/bizpulse-api/internal/application/dto"
	"github.com/jcastellr/bizpulse-api/internal/domain/repository"
)

// Ventana y límites por defecto del resumen del dashboard.
const (
	summaryMonths      = 12
	summaryTopProducts = 5
)

// AnalyticsUseCase arma el resumen del dashboard a partir de las consultas
// agregadas del repositorio, todas con alcance del usuario autenticado.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// Summary agrega ingresos, conteos de inventario y clientes, ingresos por mes
// y productos top. Es la respuesta de /api/analytics/summary y también el
// contexto que se adjunta a las consultas del colaborador de IA.
func (uc *AnalyticsUseCase) Summary(ctx context.Context, ownerID string) (*dto.AnalyticsSummaryResponse, error) {
	revenue, units, count, err := uc.repo.GetSalesTotals(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	inventory, err := uc.repo.GetInventoryCounts(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	customers, err := uc.repo.GetCustomerCount(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	inventoryValue, err := uc.repo.GetInventoryValue(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	monthly, err := uc.repo.GetMonthlyRevenue(ctx, ownerID, summaryMonths)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.GetTopProducts(ctx, ownerID, summaryTopProducts)
	if err != nil {
		return nil, err
	}

	out := &dto.AnalyticsSummaryResponse{
		TotalRevenue:    revenue,
		TotalSales:      count,
		UnitsSold:       units,
		TotalProducts:   inventory.Total,
		LowStockCount:   inventory.LowStock,
		OutOfStockCount: inventory.OutOfStock,
		TotalCustomers:  customers,
		InventoryValue:  inventoryValue,
		MonthlyRevenue:  make([]dto.MonthlyRevenueDTO, 0, len(monthly)),
		TopProducts:     make([]dto.TopProductDTO, 0, len(top)),
	}
	for _, m := range monthly {
		out.MonthlyRevenue = append(out.MonthlyRevenue, dto.MonthlyRevenueDTO{
			Month: m.Month, Revenue: m.Revenue, Count: m.Count,
		})
	}
	for _, t := range top {
		out.TopProducts = append(out.TopProducts, dto.TopProductDTO{
			ProductID: t.ProductID, Name: t.Name, SKU: t.SKU,
			UnitsSold: t.UnitsSold, Revenue: t.Revenue,
		})
	}
	return out, nil
}
