package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastellr/bizpulse-api/internal/application/dto"
	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
	"github.com/jcastellr/bizpulse-api/internal/domain/repository"
	"github.com/jcastellr/bizpulse-api/pkg/validator"
)

// SaleTxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Registrar una venta toca dos tablas (sales y products) y debe ser atómico.
type SaleTxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
	) error) error
}

// SaleUseCase registro y listado de ventas del usuario autenticado.
// El total se calcula siempre en el servidor (quantity × price) y el stock
// del producto vendido se descuenta en la misma transacción, recalculando
// el status derivado.
type SaleUseCase struct {
	tx       SaleTxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx SaleTxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{tx: tx, saleRepo: saleRepo}
}

// Create registra la venta. El producto debe existir y pertenecer al usuario;
// el id de un producto ajeno devuelve ErrNotFound.
func (uc *SaleUseCase) Create(ctx context.Context, ownerID string, in dto.CreateSaleRequest) (*dto.MessageResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	quantity := *in.Quantity
	price := decimal.NewFromFloat(*in.Price)

	sale := &entity.Sale{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		CustomerID: in.CustomerID,
		Quantity:   quantity,
		Price:      price,
		Total:      price.Mul(decimal.NewFromInt(int64(quantity))),
		SaleDate:   time.Now(),
		UserID:     ownerID,
	}

	err := uc.tx.Run(ctx, func(products repository.ProductRepository, sales repository.SaleRepository) error {
		// DecrementStock resuelve existencia, descuento y recálculo del status
		// en una sola sentencia: ErrNotFound si el producto no es del usuario,
		// y el stock queda acotado en cero sin ventana entre lectura y escritura.
		if err := products.DecrementStock(ctx, ownerID, in.ProductID, quantity); err != nil {
			return err
		}
		return sales.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Sale recorded successfully", ID: sale.ID}, nil
}

// List devuelve las ventas del usuario, más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context, ownerID string) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, dto.SaleResponse{
			ID:         s.ID,
			ProductID:  s.ProductID,
			CustomerID: s.CustomerID,
			Quantity:   s.Quantity,
			Price:      s.Price,
			Total:      s.Total,
			SaleDate:   s.SaleDate,
		})
	}
	return out, nil
}
