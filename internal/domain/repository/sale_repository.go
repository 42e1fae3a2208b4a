package repository

import "github.com/jcastellr/bizpulse-api/internal/domain/entity"

// SaleRepository puerto de persistencia de ventas.
type SaleRepository interface {
	Owned[entity.Sale]
}
