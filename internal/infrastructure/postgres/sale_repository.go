package postgres

import (
	"context"
	"fmt"

	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
	"github.com/jcastellr/bizpulse-api/internal/domain/repository"
)

// SaleRepository implementación PostgreSQL del repositorio de ventas.
type SaleRepository struct {
	db Querier
}

// NewSaleRepository crea el repositorio de ventas.
func NewSaleRepository(db Querier) repository.SaleRepository {
	return &SaleRepository{db: db}
}

func (r *SaleRepository) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sales (id, product_id, customer_id, quantity, price, total, sale_date, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.ProductID, s.CustomerID, s.Quantity, s.Price, s.Total, s.SaleDate, s.UserID,
	)
	if err != nil {
		return fmt.Errorf("insertar venta: %w", err)
	}
	return nil
}

func (r *SaleRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Sale, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, customer_id, quantity, price, total, sale_date, user_id
		FROM sales WHERE user_id = $1
		ORDER BY sale_date DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	defer rows.Close()

	sales := make([]*entity.Sale, 0)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.CustomerID, &s.Quantity, &s.Price, &s.Total, &s.SaleDate, &s.UserID); err != nil {
			return nil, fmt.Errorf("escanear venta: %w", err)
		}
		sales = append(sales, &s)
	}
	return sales, rows.Err()
}
