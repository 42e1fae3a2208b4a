package repository

import "github.com/jcastellr/bizpulse-api/internal/domain/entity"

// CustomerRepository puerto de persistencia de clientes.
// Solo alta y listado: la superficie pública no expone update ni delete.
type CustomerRepository interface {
	Owned[entity.Customer]
}
