package postgres

import (
	"context"
	"fmt"

	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
	"github.com/jcastellr/bizpulse-api/internal/domain/repository"
)

// CustomerRepository implementación PostgreSQL del repositorio de clientes.
type CustomerRepository struct {
	db Querier
}

// NewCustomerRepository crea el repositorio de clientes.
func NewCustomerRepository(db Querier) repository.CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO customers (id, name, email, phone, address, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.CreatedAt, c.UserID,
	)
	if err != nil {
		return fmt.Errorf("insertar cliente: %w", err)
	}
	return nil
}

func (r *CustomerRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Customer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone, address, created_at, user_id
		FROM customers WHERE user_id = $1
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]*entity.Customer, 0)
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UserID); err != nil {
			return nil, fmt.Errorf("escanear cliente: %w", err)
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}
