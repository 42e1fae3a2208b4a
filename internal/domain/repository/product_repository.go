package repository

import (
	"context"

	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia de productos.
// SKU tiene constraint único global: Create y Upsert se apoyan en la base de
// datos para resolver la carrera check-insert (nunca leer-luego-insertar).
type ProductRepository interface {
	OwnedMutable[entity.Product]

	// GetByOwnerAndID devuelve nil, nil si el producto no existe o es de otro usuario.
	GetByOwnerAndID(ctx context.Context, ownerID, id string) (*entity.Product, error)

	// Upsert inserta o reemplaza por SKU en una sola sentencia
	// (INSERT ... ON CONFLICT). Usado por la importación CSV.
	Upsert(ctx context.Context, p *entity.Product) error

	// DecrementStock descuenta quantity unidades en una sola sentencia, con
	// predicado doble (id + owner). El stock queda acotado en cero y el status
	// se recalcula del stock resultante; dos ventas concurrentes nunca pierden
	// un descuento porque no hay lectura previa.
	DecrementStock(ctx context.Context, ownerID, id string, quantity int) error
}
