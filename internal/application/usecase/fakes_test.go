package usecase_test

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jcastellr/bizpulse-api/internal/domain"
	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
	"github.com/jcastellr/bizpulse-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso. Replican el contrato de los repos
// de postgres: predicado doble (id + owner) y unicidad global de SKU.

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) bySKU(sku string) *entity.Product {
	for _, p := range r.products {
		if p.SKU == sku {
			return p
		}
	}
	return nil
}

func (r *fakeProductRepo) byOwnerAndID(ownerID, id string) *entity.Product {
	for _, p := range r.products {
		if p.ID == id && p.UserID == ownerID {
			return p
		}
	}
	return nil
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if r.bySKU(p.SKU) != nil {
		return domain.ErrSKUAlreadyExists
	}
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *fakeProductRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for i := len(r.products) - 1; i >= 0; i-- {
		if r.products[i].UserID == ownerID {
			out = append(out, r.products[i])
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, ownerID string, p *entity.Product) error {
	existing := r.byOwnerAndID(ownerID, p.ID)
	if existing == nil {
		return domain.ErrNotFound
	}
	*existing = *p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, ownerID, id string) error {
	for i, p := range r.products {
		if p.ID == id && p.UserID == ownerID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) GetByOwnerAndID(_ context.Context, ownerID, id string) (*entity.Product, error) {
	p := r.byOwnerAndID(ownerID, id)
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Upsert(_ context.Context, p *entity.Product) error {
	existing := r.bySKU(p.SKU)
	if existing == nil {
		cp := *p
		r.products = append(r.products, &cp)
		return nil
	}
	if existing.UserID != p.UserID {
		// La fila pertenece a otro usuario: el upsert no la toca.
		return domain.ErrSKUAlreadyExists
	}
	id := existing.ID
	*existing = *p
	existing.ID = id
	return nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, ownerID, id string, quantity int) error {
	p := r.byOwnerAndID(ownerID, id)
	if p == nil {
		return domain.ErrNotFound
	}
	p.Stock -= quantity
	if p.Stock < 0 {
		p.Stock = 0
	}
	p.Status = entity.StatusForStock(p.Stock)
	return nil
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	cp := *s
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for i := len(r.sales) - 1; i >= 0; i-- {
		if r.sales[i].UserID == ownerID {
			out = append(out, r.sales[i])
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes (sin tx real).
type fakeTxRunner struct {
	products *fakeProductRepo
	sales    *fakeSaleRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
) error) error {
	return fn(t.products, t.sales)
}

// fakeInsightService colaborador de IA controlable desde el test.
type fakeInsightService struct {
	reply string
	err   error
}

func (s *fakeInsightService) AnalyticsInsights(context.Context, any, string) (string, error) {
	return s.reply, s.err
}

func (s *fakeInsightService) BusinessInsights(context.Context, any) (string, error) {
	return s.reply, s.err
}

func (s *fakeInsightService) ChatResponse(context.Context, string, any) (string, error) {
	return s.reply, s.err
}

// fakeAnalyticsRepo devuelve agregados fijos.
type fakeAnalyticsRepo struct {
	revenue decimal.Decimal
}

func (r *fakeAnalyticsRepo) GetSalesTotals(context.Context, string) (decimal.Decimal, int64, int64, error) {
	return r.revenue, 3, 2, nil
}

func (r *fakeAnalyticsRepo) GetMonthlyRevenue(context.Context, string, int) ([]repository.MonthlyRevenueResult, error) {
	return []repository.MonthlyRevenueResult{{Month: "2026-08", Revenue: r.revenue, Count: 2}}, nil
}

func (r *fakeAnalyticsRepo) GetTopProducts(context.Context, string, int) ([]repository.TopProductResult, error) {
	return nil, nil
}

func (r *fakeAnalyticsRepo) GetInventoryCounts(context.Context, string) (repository.InventoryCountsResult, error) {
	return repository.InventoryCountsResult{Total: 4, LowStock: 1, OutOfStock: 1}, nil
}

func (r *fakeAnalyticsRepo) GetCustomerCount(context.Context, string) (int64, error) {
	return 7, nil
}

func (r *fakeAnalyticsRepo) GetInventoryValue(context.Context, string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

var errUpstream = errors.New("upstream caído")
