package ws

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastellr/bizpulse-api/internal/domain/entity"
)

type fakeConn struct {
	messages [][]byte
	writeErr error
	closed   bool
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.messages = append(c.messages, data)
	return nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func testProduct(owner string) *entity.Product {
	return &entity.Product{
		ID:     "prod-1",
		Name:   "Widget",
		SKU:    "WID-1",
		Stock:  3,
		Price:  decimal.NewFromInt(10),
		Cost:   decimal.NewFromInt(4),
		Status: entity.StatusLowStock,
		UserID: owner,
	}
}

// Cada usuario recibe solo los eventos de sus propios productos.
func TestHub_EventosSoloAlDueno(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	connA := &fakeConn{}
	connB := &fakeConn{}
	hub.Register("user-a", connA)
	hub.Register("user-b", connB)

	hub.NotifyProduct("user-a", "product.updated", testProduct("user-a"))

	require.Len(t, connA.messages, 1)
	assert.Empty(t, connB.messages)

	var event inventoryEvent
	require.NoError(t, json.Unmarshal(connA.messages[0], &event))
	assert.Equal(t, "product.updated", event.Type)
	assert.Equal(t, "prod-1", event.Data.ID)
	assert.Equal(t, entity.StatusLowStock, event.Data.Status)
}

func TestHub_ExpulsaConexionRota(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	broken := &fakeConn{writeErr: errors.New("conexión cerrada")}
	healthy := &fakeConn{}
	hub.Register("user-a", broken)
	hub.Register("user-a", healthy)

	hub.NotifyProduct("user-a", "product.created", testProduct("user-a"))
	assert.True(t, broken.closed)

	// La rota ya no está: el siguiente evento solo llega a la sana.
	hub.NotifyProduct("user-a", "product.created", testProduct("user-a"))
	assert.Len(t, healthy.messages, 2)
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	conn := &fakeConn{}
	hub.Register("user-a", conn)
	hub.Unregister("user-a", conn)

	assert.True(t, conn.closed)
	hub.NotifyProduct("user-a", "product.deleted", testProduct("user-a"))
	assert.Empty(t, conn.messages)
}
