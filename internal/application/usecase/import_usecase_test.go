package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellr/bizpulse-api/internal/application/usecase"
	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
)

const csvHeader = "name,category,sku,stock,price,cost,supplier\n"

func TestImportCSV_FilasValidasEInvalidas(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewImportUseCase(repo)

	// 5 filas: 3 válidas, 1 sin category, 1 con stock no numérico.
	csv := csvHeader +
		"Widget,Tools,W-1,3,10,5,Acme\n" +
		"Gadget,Tools,G-1,0,20,8,\n" +
		"Doohickey,,D-1,4,5,2,Acme\n" +
		"Gizmo,Tools,Z-1,muchos,5,2,\n" +
		"Sprocket,Parts,S-1,40,15,6,Acme\n"

	out, err := uc.ImportCSV(context.Background(), "user-a", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 5, out.TotalRows)
	assert.Equal(t, 3, out.SuccessCount)
	assert.Equal(t, 2, out.ErrorCount)

	// Solo las filas válidas quedan en el listado del usuario.
	list, err := repo.ListByOwner(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, list, 3)
}

func TestImportCSV_StatusDerivadoPorFila(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewImportUseCase(repo)

	csv := csvHeader +
		"Agotado,Tools,A-1,0,10,5,\n" +
		"Bajo,Tools,B-1,5,10,5,\n" +
		"Lleno,Tools,C-1,50,10,5,\n"

	_, err := uc.ImportCSV(context.Background(), "user-a", strings.NewReader(csv))
	require.NoError(t, err)

	want := map[string]string{
		"A-1": entity.StatusOutOfStock,
		"B-1": entity.StatusLowStock,
		"C-1": entity.StatusInStock,
	}
	list, _ := repo.ListByOwner(context.Background(), "user-a")
	require.Len(t, list, 3)
	for _, p := range list {
		assert.Equal(t, want[p.SKU], p.Status, "sku %s", p.SKU)
	}
}

// Reimportar un SKU propio reemplaza la fila (upsert por clave natural).
func TestImportCSV_UpsertPorSKU(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewImportUseCase(repo)
	ctx := context.Background()

	_, err := uc.ImportCSV(ctx, "user-a", strings.NewReader(csvHeader+"Widget,Tools,W-1,3,10,5,\n"))
	require.NoError(t, err)

	out, err := uc.ImportCSV(ctx, "user-a", strings.NewReader(csvHeader+"Widget v2,Tools,W-1,30,12,6,\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, out.SuccessCount)

	list, _ := repo.ListByOwner(ctx, "user-a")
	require.Len(t, list, 1)
	assert.Equal(t, "Widget v2", list[0].Name)
	assert.Equal(t, 30, list[0].Stock)
}

// Un SKU que pertenece a otro usuario no se sobreescribe: la fila falla
// y el resto del lote continúa.
func TestImportCSV_NoPisaSKUDeOtroUsuario(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewImportUseCase(repo)
	ctx := context.Background()

	_, err := uc.ImportCSV(ctx, "user-a", strings.NewReader(csvHeader+"Widget,Tools,W-1,3,10,5,\n"))
	require.NoError(t, err)

	out, err := uc.ImportCSV(ctx, "user-b", strings.NewReader(csvHeader+
		"Pirata,Tools,W-1,99,1,1,\n"+
		"Propio,Tools,B-1,10,5,2,\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalRows)
	assert.Equal(t, 1, out.SuccessCount)
	assert.Equal(t, 1, out.ErrorCount)

	listA, _ := repo.ListByOwner(ctx, "user-a")
	require.Len(t, listA, 1)
	assert.Equal(t, "Widget", listA[0].Name, "la fila de A queda intacta")
}

func TestImportCSV_CabeceraInvalida(t *testing.T) {
	uc := usecase.NewImportUseCase(&fakeProductRepo{})

	_, err := uc.ImportCSV(context.Background(), "user-a", strings.NewReader("foo,bar\n1,2\n"))
	assert.Error(t, err)
}

// Un BOM UTF-8 al inicio del archivo no rompe la detección de la cabecera.
func TestImportCSV_CabeceraConBOM(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewImportUseCase(repo)

	raw := "\uFEFF" + csvHeader + "Widget,Tools,W-1,3,10,5,Acme\n"
	out, err := uc.ImportCSV(context.Background(), "user-a", strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 1, out.SuccessCount)
	assert.Equal(t, 0, out.ErrorCount)
}

// Archivos exportados en ISO-8859-1 (Excel) se decodifican antes de parsear.
func TestImportCSV_Latin1(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := usecase.NewImportUseCase(repo)

	// "Caf\xe9" es "Café" en ISO-8859-1 (byte inválido en UTF-8).
	raw := csvHeader + "Caf\xe9,Bebidas,K-1,8,3,1,\n"
	out, err := uc.ImportCSV(context.Background(), "user-a", strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 1, out.SuccessCount)

	list, _ := repo.ListByOwner(context.Background(), "user-a")
	require.Len(t, list, 1)
	assert.Equal(t, "Café", list[0].Name)
}
