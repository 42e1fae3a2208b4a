package usecase

import (
	"context"

	"github.com/jcastellr/bizpulse-api/internal/domain"
	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
	"github.com/jcastellr/bizpulse-api/internal/domain/repository"
)

// InventoryReportGenerator puerto de salida hacia el generador de PDF.
type InventoryReportGenerator interface {
	Generate(ctx context.Context, ownerName string, products []*entity.Product) ([]byte, error)
}

// ReportUseCase genera el reporte de inventario del usuario autenticado.
type ReportUseCase struct {
	gen         InventoryReportGenerator
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(gen InventoryReportGenerator, productRepo repository.ProductRepository, userRepo repository.UserRepository) *ReportUseCase {
	return &ReportUseCase{gen: gen, productRepo: productRepo, userRepo: userRepo}
}

// InventoryPDF produce el PDF con todos los productos del usuario.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context, ownerID string) ([]byte, error) {
	user, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	products, err := uc.productRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return uc.gen.Generate(ctx, user.Name, products)
}
