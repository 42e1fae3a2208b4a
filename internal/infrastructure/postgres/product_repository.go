package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastellr/bizpulse-api/internal/domain"
	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
	"github.com/jcastellr/bizpulse-api/internal/domain/repository"
)

// ProductRepository implementación PostgreSQL del repositorio de productos.
// Toda mutación sobre una fila existente lleva predicado doble (id + user_id):
// cero filas afectadas significa "no existe para este usuario", sin distinguir
// entre inexistente y ajeno.
type ProductRepository struct {
	db Querier
}

// NewProductRepository crea el repositorio de productos.
func NewProductRepository(db Querier) repository.ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, category, sku, stock, price, cost, status, last_updated, supplier, user_id`

// Create inserta el producto; domain.ErrSKUAlreadyExists si el SKU ya está tomado.
func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Name, p.Category, p.SKU, p.Stock, p.Price, p.Cost, p.Status, p.LastUpdated, p.Supplier, p.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSKUAlreadyExists
		}
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

// ListByOwner devuelve los productos del usuario, más recientes primero.
func (r *ProductRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE user_id = $1
		ORDER BY last_updated DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	products := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetByOwnerAndID devuelve nil, nil si el producto no existe o pertenece a otro usuario.
func (r *ProductRepository) GetByOwnerAndID(ctx context.Context, ownerID, id string) (*entity.Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE id = $1 AND user_id = $2`, id, ownerID)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Update reemplaza los campos mutables; domain.ErrNotFound si no hay fila del
// usuario con ese id.
func (r *ProductRepository) Update(ctx context.Context, ownerID string, p *entity.Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $3, category = $4, sku = $5, stock = $6, price = $7,
		    cost = $8, status = $9, last_updated = $10, supplier = $11
		WHERE id = $1 AND user_id = $2`,
		p.ID, ownerID, p.Name, p.Category, p.SKU, p.Stock, p.Price, p.Cost, p.Status, p.LastUpdated, p.Supplier,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSKUAlreadyExists
		}
		return fmt.Errorf("actualizar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina con predicado doble; domain.ErrNotFound si no afecta filas.
func (r *ProductRepository) Delete(ctx context.Context, ownerID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Upsert inserta o reemplaza por SKU en una sola sentencia atómica. El DO
// UPDATE solo aplica si la fila en conflicto es del mismo usuario: un SKU
// tomado por otro usuario deja la sentencia en cero filas y se reporta como
// domain.ErrSKUAlreadyExists.
func (r *ProductRepository) Upsert(ctx context.Context, p *entity.Product) error {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (sku) DO UPDATE
		SET name = EXCLUDED.name, category = EXCLUDED.category,
		    stock = EXCLUDED.stock, price = EXCLUDED.price, cost = EXCLUDED.cost,
		    status = EXCLUDED.status, last_updated = EXCLUDED.last_updated,
		    supplier = EXCLUDED.supplier
		WHERE products.user_id = EXCLUDED.user_id`,
		p.ID, p.Name, p.Category, p.SKU, p.Stock, p.Price, p.Cost, p.Status, p.LastUpdated, p.Supplier, p.UserID,
	)
	if err != nil {
		return fmt.Errorf("upsert producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSKUAlreadyExists
	}
	return nil
}

// DecrementStock descuenta unidades y recalcula el status en una sola
// sentencia: el stock leído y el escrito son el mismo bajo el lock de fila
// del UPDATE, así que dos ventas concurrentes nunca pierden un descuento.
// GREATEST acota el resultado en cero cuando la venta excede las existencias.
func (r *ProductRepository) DecrementStock(ctx context.Context, ownerID, id string, quantity int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET stock = GREATEST(stock - $3, 0),
		    status = CASE
		        WHEN stock - $3 <= 0 THEN 'out-of-stock'
		        WHEN stock - $3 <= $4 THEN 'low-stock'
		        ELSE 'in-stock'
		    END,
		    last_updated = now()
		WHERE id = $1 AND user_id = $2`,
		id, ownerID, quantity, entity.LowStockThreshold,
	)
	if err != nil {
		return fmt.Errorf("descontar stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.SKU, &p.Stock, &p.Price, &p.Cost,
		&p.Status, &p.LastUpdated, &p.Supplier, &p.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("escanear producto: %w", err)
	}
	return &p, nil
}
