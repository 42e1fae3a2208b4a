package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellr/bizpulse-api/internal/application/dto"
	"github.com/jcastellr/bizpulse-api/internal/application/usecase"
	"github.com/jcastellr/bizpulse-api/internal/domain"
	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
	apphttp "github.com/jcastellr/bizpulse-api/internal/interfaces/http"
)

// fakeProductStore almacén de productos en memoria con predicado doble
// (id + owner) y unicidad global de SKU, como el repo de postgres.
type fakeProductStore struct {
	products []*entity.Product
}

func (r *fakeProductStore) Create(_ context.Context, p *entity.Product) error {
	for _, e := range r.products {
		if e.SKU == p.SKU {
			return domain.ErrSKUAlreadyExists
		}
	}
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *fakeProductStore) ListByOwner(_ context.Context, ownerID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.UserID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductStore) Update(_ context.Context, ownerID string, p *entity.Product) error {
	for _, e := range r.products {
		if e.ID == p.ID && e.UserID == ownerID {
			*e = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductStore) Delete(_ context.Context, ownerID, id string) error {
	for i, p := range r.products {
		if p.ID == id && p.UserID == ownerID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductStore) GetByOwnerAndID(_ context.Context, ownerID, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id && p.UserID == ownerID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductStore) Upsert(_ context.Context, p *entity.Product) error {
	for _, e := range r.products {
		if e.SKU == p.SKU {
			if e.UserID != p.UserID {
				return domain.ErrSKUAlreadyExists
			}
			id := e.ID
			*e = *p
			e.ID = id
			return nil
		}
	}
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *fakeProductStore) DecrementStock(_ context.Context, ownerID, id string, quantity int) error {
	for _, p := range r.products {
		if p.ID == id && p.UserID == ownerID {
			p.Stock -= quantity
			if p.Stock < 0 {
				p.Stock = 0
			}
			p.Status = entity.StatusForStock(p.Stock)
			return nil
		}
	}
	return domain.ErrNotFound
}

func buildProductApp() (*fiber.App, *fakeProductStore) {
	store := &fakeProductStore{}
	uc := usecase.NewProductUseCase(store, nil)
	h := apphttp.NewProductHandler(uc, zerolog.Nop())
	app := fiber.New()
	api := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))
	api.Post("/products", h.Create)
	return app, store
}

func postJSONAuth(t *testing.T, app *fiber.App, path, authHeader, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// La creación exitosa responde 200 con el mensaje y el id asignado, no 201.
func TestProductCreate_Exitoso_Retorna200(t *testing.T) {
	app, store := buildProductApp()

	resp := postJSONAuth(t, app, "/api/products", validToken(t),
		`{"name":"Widget","category":"Tools","sku":"W-1","stock":12,"price":10.5,"cost":4}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Product added successfully", out.Message)
	assert.NotEmpty(t, out.ID)
	require.Len(t, store.products, 1)
	assert.Equal(t, testUserID, store.products[0].UserID)
}

// SKU ya tomado → 400.
func TestProductCreate_SKUDuplicado_Retorna400(t *testing.T) {
	app, _ := buildProductApp()

	first := postJSONAuth(t, app, "/api/products", validToken(t),
		`{"name":"Widget","category":"Tools","sku":"W-1","stock":12,"price":10.5,"cost":4}`)
	first.Body.Close()

	resp := postJSONAuth(t, app, "/api/products", validToken(t),
		`{"name":"Otro","category":"Tools","sku":"W-1","stock":2,"price":5,"cost":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
