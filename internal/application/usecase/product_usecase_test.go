package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellr/bizpulse-api/internal/application/dto"
	"github.com/jcastellr/bizpulse-api/internal/application/usecase"
	"github.com/jcastellr/bizpulse-api/internal/domain"
	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
)

func ptrInt(v int) *int           { return &v }
func ptrFloat(v float64) *float64 { return &v }

func createReq(sku string, stock int) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:     "Widget",
		Category: "X",
		SKU:      sku,
		Stock:    ptrInt(stock),
		Price:    ptrFloat(10),
		Cost:     ptrFloat(5),
	}
}

// Derivación de status: 0 → out-of-stock, <=10 → low-stock, resto → in-stock.
func TestProductCreate_StatusDerivadoDelStock(t *testing.T) {
	cases := []struct {
		stock  int
		status string
	}{
		{0, entity.StatusOutOfStock},
		{5, entity.StatusLowStock},
		{10, entity.StatusLowStock},
		{11, entity.StatusInStock},
		{50, entity.StatusInStock},
	}
	for _, tc := range cases {
		repo := &fakeProductRepo{}
		uc := usecase.NewProductUseCase(repo, nil)

		_, err := uc.Create(context.Background(), "user-a", createReq("W-1", tc.stock))
		require.NoError(t, err)

		list, err := uc.List(context.Background(), "user-a")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, tc.status, list[0].Status, "stock=%d", tc.stock)
	}
}

func TestProductCreate_CamposFaltantes(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, nil)

	in := dto.CreateProductRequest{Name: "Widget"} // sin category, sku, stock, price, cost
	_, err := uc.Create(context.Background(), "user-a", in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "category")
	assert.Contains(t, verr.Fields, "sku")
	assert.Contains(t, verr.Fields, "stock")
}

func TestProductCreate_StockNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, nil)

	in := createReq("W-1", 0)
	in.Stock = ptrInt(-3)
	_, err := uc.Create(context.Background(), "user-a", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El SKU es único global: el duplicado se rechaza aunque lo envíe otro usuario.
func TestProductCreate_SKUDuplicadoEntreUsuarios(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo, nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-a", createReq("W-1", 3))
	require.NoError(t, err)

	_, err = uc.Create(ctx, "user-b", createReq("W-1", 9))
	assert.ErrorIs(t, err, domain.ErrSKUAlreadyExists)
}

// Aislamiento entre usuarios: update/delete/list de B contra la entidad de A
// devuelven NotFound o vacío, nunca los datos de A ni una mutación exitosa.
func TestProduct_AislamientoEntreUsuarios(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-a", createReq("W-1", 3))
	require.NoError(t, err)
	productID := created.ID

	// List de B no ve el producto de A.
	listB, err := uc.List(ctx, "user-b")
	require.NoError(t, err)
	assert.Empty(t, listB)

	// Update de B contra el id de A → NotFound.
	upd := dto.UpdateProductRequest{
		Name: "Hacked", Category: "X", SKU: "W-1",
		Stock: ptrInt(99), Price: ptrFloat(1), Cost: ptrFloat(1),
	}
	_, err = uc.Update(ctx, "user-b", productID, upd)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Delete de B contra el id de A → NotFound.
	_, err = uc.Delete(ctx, "user-b", productID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El producto de A sigue intacto.
	listA, err := uc.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, listA, 1)
	assert.Equal(t, "Widget", listA[0].Name)
	assert.Equal(t, 3, listA[0].Stock)
}

// El status que envíe el cliente en update se ignora: manda el stock.
func TestProductUpdate_RecalculaStatus(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(repo, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-a", createReq("W-1", 50))
	require.NoError(t, err)

	upd := dto.UpdateProductRequest{
		Name: "Widget", Category: "X", SKU: "W-1",
		Stock: ptrInt(0), Price: ptrFloat(10), Cost: ptrFloat(5),
		Status: entity.StatusInStock, // mentira del cliente, debe ignorarse
	}
	_, err = uc.Update(ctx, "user-a", created.ID, upd)
	require.NoError(t, err)

	list, err := uc.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.StatusOutOfStock, list[0].Status)
}
