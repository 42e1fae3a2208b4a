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

// ProductUseCase CRUD de productos con alcance del usuario autenticado.
// El status nunca se acepta del cliente: se deriva del stock en cada escritura.
type ProductUseCase struct {
	repo   repository.ProductRepository
	events InventoryNotifier
}

// InventoryNotifier publica eventos de inventario hacia los dashboards
// conectados. Una implementación nula es válida (los tests la omiten).
type InventoryNotifier interface {
	NotifyProduct(ownerID, event string, p *entity.Product)
}

// NewProductUseCase construye el caso de uso. notifier puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, notifier InventoryNotifier) *ProductUseCase {
	return &ProductUseCase{repo: repo, events: notifier}
}

// Create valida y persiste un producto nuevo. La unicidad global del SKU la
// resuelve el constraint en una sola sentencia (el repo devuelve
// ErrSKUAlreadyExists); no hay verificación previa que deje una carrera abierta.
func (uc *ProductUseCase) Create(ctx context.Context, ownerID string, in dto.CreateProductRequest) (*dto.MessageResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		SKU:         in.SKU,
		Stock:       *in.Stock,
		Price:       decimal.NewFromFloat(*in.Price),
		Cost:        decimal.NewFromFloat(*in.Cost),
		Status:      entity.StatusForStock(*in.Stock),
		LastUpdated: time.Now(),
		Supplier:    in.Supplier,
		UserID:      ownerID,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.notify(ownerID, "product.created", p)
	return &dto.MessageResponse{Message: "Product added successfully", ID: p.ID}, nil
}

// List devuelve los productos del usuario, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context, ownerID string) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update reemplaza los campos del producto. El predicado del repo incluye
// id Y owner: el id de un producto ajeno devuelve ErrNotFound sin tocar nada.
// El status del request se ignora y se recalcula del stock entrante.
func (uc *ProductUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateProductRequest) (*dto.MessageResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	p := &entity.Product{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		SKU:         in.SKU,
		Stock:       *in.Stock,
		Price:       decimal.NewFromFloat(*in.Price),
		Cost:        decimal.NewFromFloat(*in.Cost),
		Status:      entity.StatusForStock(*in.Stock),
		LastUpdated: time.Now(),
		Supplier:    in.Supplier,
		UserID:      ownerID,
	}
	if err := uc.repo.Update(ctx, ownerID, p); err != nil {
		return nil, err
	}
	uc.notify(ownerID, "product.updated", p)
	return &dto.MessageResponse{Message: "Product updated successfully"}, nil
}

// Delete elimina el producto con el mismo predicado doble que Update.
func (uc *ProductUseCase) Delete(ctx context.Context, ownerID, id string) (*dto.MessageResponse, error) {
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Product deleted successfully"}, nil
}

func (uc *ProductUseCase) notify(ownerID, event string, p *entity.Product) {
	if uc.events == nil {
		return
	}
	uc.events.NotifyProduct(ownerID, event, p)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		SKU:         p.SKU,
		Stock:       p.Stock,
		Price:       p.Price,
		Cost:        p.Cost,
		Status:      p.Status,
		LastUpdated: p.LastUpdated,
		Supplier:    p.Supplier,
	}
}
