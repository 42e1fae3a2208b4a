package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jcastellr/bizpulse-api/internal/application/dto"
	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
	"github.com/jcastellr/bizpulse-api/internal/domain/repository"
)

// Columnas requeridas del CSV de productos. supplier es opcional.
var csvRequiredColumns = []string{"name", "category", "sku", "stock", "price", "cost"}

// ImportUseCase importación masiva de productos desde CSV.
// El fallo es por fila: una fila malformada cuenta como error y el lote sigue.
// Cada fila válida se inserta-o-reemplaza por SKU en una sola sentencia.
type ImportUseCase struct {
	repo repository.ProductRepository
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(repo repository.ProductRepository) *ImportUseCase {
	return &ImportUseCase{repo: repo}
}

// ImportCSV procesa el archivo completo y devuelve el resumen
// {totalRows, successCount, errorCount}. Solo devuelve error si el archivo
// entero es ilegible (sin cabecera válida); nunca por una fila individual.
func (uc *ImportUseCase) ImportCSV(ctx context.Context, ownerID string, r io.Reader) (*dto.ImportResultResponse, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer archivo CSV: %w", err)
	}
	raw = decodeToUTF8(raw)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.TrimLeadingSpace = true
	// Filas con menos columnas que la cabecera cuentan como error, no abortan.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera CSV: %w", err)
	}
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[normalizeHeader(name)] = i
	}
	for _, col := range csvRequiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("cabecera CSV sin la columna %q", col)
		}
	}

	result := &dto.ImportResultResponse{Message: "CSV upload completed"}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.TotalRows++
			result.ErrorCount++
			continue
		}
		result.TotalRows++
		p, ok := rowToProduct(record, colIndex, ownerID)
		if !ok {
			result.ErrorCount++
			continue
		}
		if err := uc.repo.Upsert(ctx, p); err != nil {
			result.ErrorCount++
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

// rowToProduct valida y convierte una fila. ok=false si falta un campo
// requerido o un número no parsea o es negativo.
func rowToProduct(record []string, colIndex map[string]int, ownerID string) (*entity.Product, bool) {
	field := func(name string) string {
		i, ok := colIndex[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name, category, sku := field("name"), field("category"), field("sku")
	if name == "" || category == "" || sku == "" {
		return nil, false
	}
	stock, err := strconv.Atoi(field("stock"))
	if err != nil || stock < 0 {
		return nil, false
	}
	price, err := decimal.NewFromString(field("price"))
	if err != nil || price.IsNegative() {
		return nil, false
	}
	cost, err := decimal.NewFromString(field("cost"))
	if err != nil || cost.IsNegative() {
		return nil, false
	}

	return &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		SKU:         sku,
		Stock:       stock,
		Price:       price,
		Cost:        cost,
		Status:      entity.StatusForStock(stock),
		LastUpdated: time.Now(),
		Supplier:    field("supplier"),
		UserID:      ownerID,
	}, true
}

// decodeToUTF8 devuelve el contenido como UTF-8. Los CSV exportados por hojas
// de cálculo suelen venir en ISO-8859-1 o con BOM.
func decodeToUTF8(raw []byte) []byte {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(raw) {
		return raw
	}
	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
	if err != nil {
		return raw
	}
	return decoded
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "\uFEFF")))
}
