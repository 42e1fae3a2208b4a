package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcastellr/bizpulse-api/internal/application/dto"
	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
	"github.com/jcastellr/bizpulse-api/internal/domain/repository"
	"github.com/jcastellr/bizpulse-api/pkg/validator"
)

// CustomerUseCase alta y listado de clientes del usuario autenticado.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create valida y persiste un cliente nuevo.
func (uc *CustomerUseCase) Create(ctx context.Context, ownerID string, in dto.CreateCustomerRequest) (*dto.MessageResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	c := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now(),
		UserID:    ownerID,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Customer added successfully", ID: c.ID}, nil
}

// List devuelve los clientes del usuario, más recientes primero.
func (uc *CustomerUseCase) List(ctx context.Context, ownerID string) ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.CustomerResponse{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			Address:   c.Address,
			CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}
