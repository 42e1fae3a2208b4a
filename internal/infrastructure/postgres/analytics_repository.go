package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/bizpulse-api/internal/domain/repository"
)

// AnalyticsRepository consultas de agregación para el dashboard. Todas las
// sumas usan COALESCE para que un usuario sin datos obtenga ceros, no NULL.
type AnalyticsRepository struct {
	db Querier
}

// NewAnalyticsRepository crea el repositorio de analítica.
func NewAnalyticsRepository(db Querier) repository.AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) GetSalesTotals(ctx context.Context, ownerID string) (decimal.Decimal, int64, int64, error) {
	var revenue decimal.Decimal
	var units, count int64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total), 0), COALESCE(SUM(quantity), 0), COUNT(*)
		FROM sales WHERE user_id = $1`, ownerID).Scan(&revenue, &units, &count)
	if err != nil {
		return decimal.Zero, 0, 0, fmt.Errorf("totales de ventas: %w", err)
	}
	return revenue, units, count, nil
}

func (r *AnalyticsRepository) GetMonthlyRevenue(ctx context.Context, ownerID string, months int) ([]repository.MonthlyRevenueResult, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(sale_date, 'YYYY-MM') AS month, COALESCE(SUM(total), 0), COUNT(*)
		FROM sales
		WHERE user_id = $1 AND sale_date >= now() - make_interval(months => $2)
		GROUP BY month
		ORDER BY month`, ownerID, months)
	if err != nil {
		return nil, fmt.Errorf("ingresos mensuales: %w", err)
	}
	defer rows.Close()

	results := make([]repository.MonthlyRevenueResult, 0)
	for rows.Next() {
		var m repository.MonthlyRevenueResult
		if err := rows.Scan(&m.Month, &m.Revenue, &m.Count); err != nil {
			return nil, fmt.Errorf("escanear mes: %w", err)
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

func (r *AnalyticsRepository) GetTopProducts(ctx context.Context, ownerID string, limit int) ([]repository.TopProductResult, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.name, p.sku, COALESCE(SUM(s.quantity), 0), COALESCE(SUM(s.total), 0) AS revenue
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.user_id = $1
		GROUP BY p.id, p.name, p.sku
		ORDER BY revenue DESC
		LIMIT $2`, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("productos top: %w", err)
	}
	defer rows.Close()

	results := make([]repository.TopProductResult, 0)
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.Name, &t.SKU, &t.UnitsSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("escanear producto top: %w", err)
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

func (r *AnalyticsRepository) GetInventoryCounts(ctx context.Context, ownerID string) (repository.InventoryCountsResult, error) {
	var c repository.InventoryCountsResult
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'low-stock'),
		       COUNT(*) FILTER (WHERE status = 'out-of-stock')
		FROM products WHERE user_id = $1`, ownerID).Scan(&c.Total, &c.LowStock, &c.OutOfStock)
	if err != nil {
		return repository.InventoryCountsResult{}, fmt.Errorf("conteos de inventario: %w", err)
	}
	return c, nil
}

func (r *AnalyticsRepository) GetCustomerCount(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE user_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("conteo de clientes: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepository) GetInventoryValue(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	var value decimal.Decimal
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(stock * cost), 0)
		FROM products WHERE user_id = $1`, ownerID).Scan(&value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor de inventario: %w", err)
	}
	return value, nil
}
